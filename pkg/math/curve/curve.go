package curve

import (
	"encoding"
	"errors"
	"fmt"
	"hash"
	"strings"
)

var (
	// ErrInvalidPoint is returned when decoding bytes that are not a valid group element.
	ErrInvalidPoint = errors.New("curve: invalid point encoding")
	// ErrInvalidScalar is returned when decoding bytes that are not a canonical scalar.
	ErrInvalidScalar = errors.New("curve: invalid scalar encoding")
)

// Curve is a prime order group usable for Pedersen commitments and equality proofs.
//
// Two curves may be used together in a single proof only if they report the
// same ScalarField, in which case their scalars are interchangeable.
type Curve interface {
	// Name identifies the group, e.g. "bls12381-g1".
	Name() string
	// ScalarField identifies the field of exponents of this group.
	ScalarField() string
	// NewPoint returns the identity element.
	NewPoint() Point
	// NewBasePoint returns the canonical generator.
	NewBasePoint() Point
	// NewScalar returns the zero scalar.
	NewScalar() Scalar
	// HashToPoint deterministically maps msg to a group element, using a
	// domain separation tag fixed for this group.
	HashToPoint(msg []byte) Point
	// SafeScalarBytes is the number of random bytes needed to sample a scalar
	// with negligible bias.
	SafeScalarBytes() int
	// NewChallengeHash returns the wide output hash used for Fiat-Shamir challenges.
	NewChallengeHash() hash.Hash
	// ScalarFromDigest reduces the output of NewChallengeHash into a scalar.
	ScalarFromDigest(digest []byte) Scalar
}

// Scalar is an element of a Curve's scalar field.
//
// Arithmetic methods modify and return the receiver.
type Scalar interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	// Field identifies the field this scalar belongs to, see Curve.ScalarField.
	Field() string
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Mul(Scalar) Scalar
	Negate() Scalar
	Set(Scalar) Scalar
	SetUint64(uint64) Scalar
	// SetUniformBytes sets the scalar to data mod the field order, reading data
	// in the backend's native byte order. Used for sampling.
	SetUniformBytes(data []byte) Scalar
	// Equal runs in constant time.
	Equal(Scalar) bool
	IsZero() bool
	// Act returns s * P as a new Point.
	Act(Point) Point
}

// Point is an element of a Curve.
//
// MarshalBinary on a nil Point or Scalar pointer returns ErrInvalidPoint or ErrInvalidScalar.
type Point interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	Curve() Curve
	// Add returns p + q as a new Point.
	Add(Point) Point
	Set(Point) Point
	Equal(Point) bool
	IsIdentity() bool
}

// FromName returns the Curve registered under name.
func FromName(name string) (Curve, error) {
	switch strings.ToLower(name) {
	case BLS12381G1{}.Name():
		return BLS12381G1{}, nil
	case BLS12381G2{}.Name():
		return BLS12381G2{}, nil
	case Ristretto255{}.Name():
		return Ristretto255{}, nil
	case Secp256k1{}.Name():
		return Secp256k1{}, nil
	default:
		return nil, fmt.Errorf("curve: unsupported curve %q", name)
	}
}

// FromScalarField returns a supported Curve whose scalars belong to field.
// BLS12-381 G1 and G2 share a field; FromScalarField picks G1 for it.
func FromScalarField(field string) (Curve, error) {
	for _, name := range SupportedCurves() {
		group, _ := FromName(name)
		if group.ScalarField() == field {
			return group, nil
		}
	}
	return nil, fmt.Errorf("curve: unsupported scalar field %q", field)
}

// SupportedCurves lists the names understood by FromName.
func SupportedCurves() []string {
	return []string{
		BLS12381G1{}.Name(),
		BLS12381G2{}.Name(),
		Ristretto255{}.Name(),
		Secp256k1{}.Name(),
	}
}

// reverse returns a reversed copy of b.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}
