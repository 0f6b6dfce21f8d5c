package hash

import (
	"encoding"
	"fmt"
	"hash"

	"github.com/taurusgroup/eqproof/pkg/math/curve"
)

// Hash is the Fiat-Shamir transcript of a proof over a given group.
//
// Items are written as their canonical encodings, concatenated without
// framing, so the transcript of (w1, w2, nonce) is enc(w1) ∥ enc(w2) ∥ enc(nonce).
// Every item has a fixed length encoding, which keeps the concatenation unambiguous.
type Hash struct {
	h     hash.Hash
	group curve.Curve
}

// New creates a Hash using the challenge hash of group.
func New(group curve.Curve) *Hash {
	return &Hash{h: group.NewChallengeHash(), group: group}
}

// WriteAny writes the canonical encoding of each item to the hash state.
//
// Currently supported types:
//
//   - []byte
//   - curve.Point
//   - curve.Scalar
//   - encoding.BinaryMarshaler
//
// A nil interface matches no case and is rejected as unsupported; a typed nil
// point or scalar fails to encode.
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		var (
			b   []byte
			err error
		)
		switch t := d.(type) {
		case []byte:
			b = t
		case curve.Point:
			if b, err = t.MarshalBinary(); err != nil {
				return fmt.Errorf("hash.Hash: write curve.Point: %w", err)
			}
		case curve.Scalar:
			if b, err = t.MarshalBinary(); err != nil {
				return fmt.Errorf("hash.Hash: write curve.Scalar: %w", err)
			}
		case encoding.BinaryMarshaler:
			if b, err = t.MarshalBinary(); err != nil {
				return fmt.Errorf("hash.Hash: write encoding.BinaryMarshaler: %w", err)
			}
		default:
			return fmt.Errorf("hash.Hash: unsupported type %T", d)
		}
		// the underlying hash function never returns an error
		_, _ = hash.h.Write(b)
	}
	return nil
}

// Sum returns the digest of the current state, without modifying it.
func (hash *Hash) Sum() []byte {
	return hash.h.Sum(nil)
}

// Scalar reduces the current digest into the scalar field of the group.
func (hash *Hash) Scalar() curve.Scalar {
	return hash.group.ScalarFromDigest(hash.Sum())
}
