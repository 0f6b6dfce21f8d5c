package curve

import (
	"crypto/sha512"
	"crypto/subtle"
	"fmt"
	"hash"

	"github.com/bwesterb/go-ristretto"
)

// Ristretto255 is the prime order group built on Curve25519.
//
// Scalars and points both encode as 32 bytes, scalars little-endian.
// HashToPoint and ScalarFromDigest match curve25519-dalek's
// RistrettoPoint::hash_from_bytes::<Sha512> and Scalar::from_hash.
type Ristretto255 struct{}

func (Ristretto255) Name() string         { return "ristretto255" }
func (Ristretto255) ScalarField() string  { return "ristretto255-l" }
func (Ristretto255) SafeScalarBytes() int { return 64 }
func (Ristretto255) NewScalar() Scalar    { return new(RistrettoScalar) }

func (Ristretto255) NewPoint() Point {
	out := new(RistrettoPoint)
	out.value.SetZero()
	return out
}

func (Ristretto255) NewBasePoint() Point {
	out := new(RistrettoPoint)
	out.value.SetBase()
	return out
}

func (Ristretto255) HashToPoint(msg []byte) Point {
	out := new(RistrettoPoint)
	out.value.DeriveDalek(msg)
	return out
}

func (Ristretto255) NewChallengeHash() hash.Hash { return sha512.New() }

// ScalarFromDigest reduces a 64 byte little-endian digest mod l.
func (Ristretto255) ScalarFromDigest(digest []byte) Scalar {
	return new(RistrettoScalar).SetUniformBytes(digest)
}

type RistrettoScalar struct {
	value ristretto.Scalar
}

func ristrettoCastScalar(generic Scalar) *RistrettoScalar {
	out, ok := generic.(*RistrettoScalar)
	if !ok {
		panic(fmt.Sprintf("failed to convert to RistrettoScalar: %v", generic))
	}
	return out
}

func (*RistrettoScalar) Field() string { return Ristretto255{}.ScalarField() }

func (s *RistrettoScalar) MarshalBinary() ([]byte, error) {
	if s == nil {
		return nil, ErrInvalidScalar
	}
	return s.value.Bytes(), nil
}

// UnmarshalBinary rejects encodings of integers >= l.
func (s *RistrettoScalar) UnmarshalBinary(data []byte) error {
	if len(data) != 32 {
		return fmt.Errorf("curve.RistrettoScalar: invalid length %d: %w", len(data), ErrInvalidScalar)
	}
	var wide [64]byte
	copy(wide[:], data)
	var value ristretto.Scalar
	value.SetReduced(&wide)
	if subtle.ConstantTimeCompare(value.Bytes(), data) != 1 {
		return fmt.Errorf("curve.RistrettoScalar: scalar >= l: %w", ErrInvalidScalar)
	}
	s.value = value
	return nil
}

func (s *RistrettoScalar) Add(that Scalar) Scalar {
	other := ristrettoCastScalar(that)

	s.value.Add(&s.value, &other.value)
	return s
}

func (s *RistrettoScalar) Sub(that Scalar) Scalar {
	other := ristrettoCastScalar(that)

	s.value.Sub(&s.value, &other.value)
	return s
}

func (s *RistrettoScalar) Mul(that Scalar) Scalar {
	other := ristrettoCastScalar(that)

	s.value.Mul(&s.value, &other.value)
	return s
}

func (s *RistrettoScalar) Negate() Scalar {
	s.value.Neg(&s.value)
	return s
}

func (s *RistrettoScalar) Set(that Scalar) Scalar {
	other := ristrettoCastScalar(that)

	s.value = other.value
	return s
}

func (s *RistrettoScalar) SetUint64(v uint64) Scalar {
	var wide [64]byte
	for i := 0; i < 8; i++ {
		wide[i] = byte(v >> (8 * i))
	}
	s.value.SetReduced(&wide)
	return s
}

// SetUniformBytes reads up to 64 bytes little-endian and reduces them mod l.
func (s *RistrettoScalar) SetUniformBytes(data []byte) Scalar {
	if len(data) > 64 {
		panic(fmt.Sprintf("curve.RistrettoScalar: cannot reduce %d bytes", len(data)))
	}
	var wide [64]byte
	copy(wide[:], data)
	s.value.SetReduced(&wide)
	return s
}

func (s *RistrettoScalar) Equal(that Scalar) bool {
	other := ristrettoCastScalar(that)

	return subtle.ConstantTimeCompare(s.value.Bytes(), other.value.Bytes()) == 1
}

func (s *RistrettoScalar) IsZero() bool {
	var zero ristretto.Scalar
	zero.SetZero()
	return subtle.ConstantTimeCompare(s.value.Bytes(), zero.Bytes()) == 1
}

func (s *RistrettoScalar) Act(that Point) Point {
	other := ristrettoCastPoint(that)

	out := new(RistrettoPoint)
	out.value.ScalarMult(&other.value, &s.value)
	return out
}

type RistrettoPoint struct {
	value ristretto.Point
}

func ristrettoCastPoint(generic Point) *RistrettoPoint {
	out, ok := generic.(*RistrettoPoint)
	if !ok {
		panic(fmt.Sprintf("failed to convert to RistrettoPoint: %v", generic))
	}
	return out
}

func (*RistrettoPoint) Curve() Curve { return Ristretto255{} }

func (p *RistrettoPoint) MarshalBinary() ([]byte, error) {
	if p == nil {
		return nil, ErrInvalidPoint
	}
	return p.value.Bytes(), nil
}

func (p *RistrettoPoint) UnmarshalBinary(data []byte) error {
	if len(data) != 32 {
		return fmt.Errorf("curve.RistrettoPoint: invalid length %d: %w", len(data), ErrInvalidPoint)
	}
	var buf [32]byte
	copy(buf[:], data)
	var value ristretto.Point
	if !value.SetBytes(&buf) {
		return fmt.Errorf("curve.RistrettoPoint: non canonical encoding: %w", ErrInvalidPoint)
	}
	p.value = value
	return nil
}

func (p *RistrettoPoint) Add(that Point) Point {
	other := ristrettoCastPoint(that)

	out := new(RistrettoPoint)
	out.value.Add(&p.value, &other.value)
	return out
}

func (p *RistrettoPoint) Set(that Point) Point {
	other := ristrettoCastPoint(that)

	p.value = other.value
	return p
}

func (p *RistrettoPoint) Equal(that Point) bool {
	other := ristrettoCastPoint(that)

	return p.value.Equals(&other.value)
}

func (p *RistrettoPoint) IsIdentity() bool {
	var zero ristretto.Point
	zero.SetZero()
	return p.value.Equals(&zero)
}
