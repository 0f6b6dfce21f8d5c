// Package zkeq proves that two Pedersen commitments, possibly in different
// groups sharing a scalar field, hide the same value.
//
// Given
//
//	B = G₁•x + Q₁•r₁ and C = G₂•x + Q₂•r₂,
//
// the prover shows knowledge of (x, r₁, r₂) without revealing them. The
// Sigma protocol is made non-interactive with Fiat-Shamir; the challenge is
// bound to an application supplied nonce.
package zkeq

import (
	"crypto/subtle"
	"encoding"
	"errors"
	"fmt"
	"io"

	"github.com/taurusgroup/eqproof/internal/hash"
	"github.com/taurusgroup/eqproof/pkg/math/curve"
	"github.com/taurusgroup/eqproof/pkg/math/sample"
	"github.com/taurusgroup/eqproof/pkg/pedersen"
)

var (
	// ErrFieldMismatch is returned when the groups or scalars of a statement
	// do not share a scalar field.
	ErrFieldMismatch = errors.New("zkeq: groups do not share a scalar field")
	// ErrNilFields is returned when an input is missing.
	ErrNilFields = errors.New("zkeq: nil input")
)

type Proof struct {
	// C = H(W₁ ∥ W₂ ∥ nonce)
	C curve.Scalar
	// D = w - c•x
	D curve.Scalar
	// D1 = n₁ - c•r₁
	D1 curve.Scalar
	// D2 = n₂ - c•r₂
	D2 curve.Scalar
}

// NewProof proves that Commit(groupB, SlotB, x, r1) and Commit(groupC, SlotC, x, r2)
// commit to the same x.
//
// Three masking scalars are read from rand, which must be a cryptographically
// secure source. A read failure is returned as is; no proof is produced.
func NewProof(rand io.Reader, groupB, groupC curve.Curve, x, r1, r2, nonce curve.Scalar) (*Proof, error) {
	field := groupB.ScalarField()
	if groupC.ScalarField() != field {
		return nil, fmt.Errorf("zkeq.NewProof: %s and %s: %w", groupB.Name(), groupC.Name(), ErrFieldMismatch)
	}
	for _, s := range []curve.Scalar{x, r1, r2, nonce} {
		if s == nil {
			return nil, ErrNilFields
		}
		if s.Field() != field {
			return nil, fmt.Errorf("zkeq.NewProof: scalar in %s: %w", s.Field(), ErrFieldMismatch)
		}
	}

	q1 := pedersen.AuxPoint(groupB, pedersen.SlotB)
	q2 := pedersen.AuxPoint(groupC, pedersen.SlotC)

	masks, err := sample.Scalars(rand, groupB, 3)
	if err != nil {
		return nil, fmt.Errorf("zkeq.NewProof: %w", err)
	}
	w, n1, n2 := masks[0], masks[1], masks[2]

	// W₁ = G₁•w + Q₁•n₁, W₂ = G₂•w + Q₂•n₂
	w1 := pedersen.New(w, n1, q1).Point
	w2 := pedersen.New(w, n2, q2).Point

	c, err := challenge(groupB, w1, w2, nonce)
	if err != nil {
		return nil, fmt.Errorf("zkeq.NewProof: %w", err)
	}

	return &Proof{
		C:  c,
		D:  response(groupB, w, c, x),
		D1: response(groupB, n1, c, r1),
		D2: response(groupB, n2, c, r2),
	}, nil
}

// response returns mask - c•secret.
func response(group curve.Curve, mask, c, secret curve.Scalar) curve.Scalar {
	out := group.NewScalar().Set(c).Mul(secret).Negate()
	return out.Add(mask)
}

// IsValid checks that all responses are set and belong to the same field.
func (p *Proof) IsValid() bool {
	if p == nil || p.C == nil || p.D == nil || p.D1 == nil || p.D2 == nil {
		return false
	}
	field := p.C.Field()
	return p.D.Field() == field && p.D1.Field() == field && p.D2.Field() == field
}

// Verify reports whether p proves that b and c commit to the same value, for this nonce.
//
// b must be the SlotB commitment and c the SlotC commitment. Malformed and
// false proofs are both rejected with false, without distinction.
func (p *Proof) Verify(b, c *pedersen.Commitment, nonce curve.Scalar) bool {
	if !p.IsValid() || nonce == nil {
		return false
	}
	if b == nil || c == nil || b.Point == nil || c.Point == nil {
		return false
	}
	// typed nil points and scalars fail to encode
	if !encodes(b, c, nonce, p.C, p.D, p.D1, p.D2) {
		return false
	}
	groupB, groupC := b.Curve(), c.Curve()
	field := groupB.ScalarField()
	if groupC.ScalarField() != field || nonce.Field() != field || p.C.Field() != field {
		return false
	}

	q1 := pedersen.AuxPoint(groupB, pedersen.SlotB)
	q2 := pedersen.AuxPoint(groupC, pedersen.SlotC)

	// lhs = G₁•d + Q₁•d₁ + B•c = W₁
	lhs := pedersen.New(p.D, p.D1, q1).Point.Add(p.C.Act(b.Point))
	// rhs = G₂•d + Q₂•d₂ + C•c = W₂
	rhs := pedersen.New(p.D, p.D2, q2).Point.Add(p.C.Act(c.Point))

	expected, err := challenge(groupB, lhs, rhs, nonce)
	if err != nil {
		return false
	}
	return equalConstantTime(expected, p.C)
}

func encodes(items ...encoding.BinaryMarshaler) bool {
	for _, item := range items {
		if _, err := item.MarshalBinary(); err != nil {
			return false
		}
	}
	return true
}

// challenge derives c from the prover's first message and the nonce, using
// the challenge hash and reduction of group.
func challenge(group curve.Curve, w1, w2 curve.Point, nonce curve.Scalar) (curve.Scalar, error) {
	h := hash.New(group)
	if err := h.WriteAny(w1, w2, nonce); err != nil {
		return nil, fmt.Errorf("challenge: %w", err)
	}
	return h.Scalar(), nil
}

// equalConstantTime compares the canonical encodings of two scalars without
// branching on their contents.
func equalConstantTime(a, b curve.Scalar) bool {
	aBytes, errA := a.MarshalBinary()
	bBytes, errB := b.MarshalBinary()
	if errA != nil || errB != nil {
		return false
	}
	return subtle.ConstantTimeCompare(aBytes, bBytes) == 1
}
