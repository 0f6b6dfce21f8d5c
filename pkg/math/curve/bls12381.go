package curve

import (
	"crypto/sha512"
	"fmt"
	"hash"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Hash to curve suites from RFC 9380, used as DSTs.
const (
	dstG1 = "BLS12381G1_XMD:SHA-256_SSWU_RO_"
	dstG2 = "BLS12381G2_XMD:SHA-256_SSWU_RO_"
)

const bls12381Field = "bls12381-fr"

// BLS12381G1 is the first source group of the BLS12-381 pairing.
//
// It shares its scalar field with BLS12381G2, so commitments in G1 and G2
// can be proven to hide the same value.
type BLS12381G1 struct{}

// BLS12381G2 is the second source group of the BLS12-381 pairing.
type BLS12381G2 struct{}

func (BLS12381G1) Name() string         { return "bls12381-g1" }
func (BLS12381G1) ScalarField() string  { return bls12381Field }
func (BLS12381G1) SafeScalarBytes() int { return 64 }
func (BLS12381G1) NewScalar() Scalar    { return new(BLS12381Scalar) }

func (BLS12381G1) NewPoint() Point {
	out := new(BLS12381G1Point)
	out.value.X.SetOne()
	out.value.Y.SetOne()
	return out
}

func (BLS12381G1) NewBasePoint() Point {
	g1, _, _, _ := bls12381.Generators()
	return &BLS12381G1Point{value: g1}
}

func (BLS12381G1) HashToPoint(msg []byte) Point {
	p, err := bls12381.HashToG1(msg, []byte(dstG1))
	if err != nil {
		panic(fmt.Sprintf("curve.BLS12381G1.HashToPoint: %v", err))
	}
	out := new(BLS12381G1Point)
	out.value.FromAffine(&p)
	return out
}

func (BLS12381G1) NewChallengeHash() hash.Hash { return sha512.New384() }

func (BLS12381G1) ScalarFromDigest(digest []byte) Scalar { return blsScalarFromOKM(digest) }

func (BLS12381G2) Name() string         { return "bls12381-g2" }
func (BLS12381G2) ScalarField() string  { return bls12381Field }
func (BLS12381G2) SafeScalarBytes() int { return 64 }
func (BLS12381G2) NewScalar() Scalar    { return new(BLS12381Scalar) }

func (BLS12381G2) NewPoint() Point {
	out := new(BLS12381G2Point)
	out.value.X.SetOne()
	out.value.Y.SetOne()
	return out
}

func (BLS12381G2) NewBasePoint() Point {
	_, g2, _, _ := bls12381.Generators()
	return &BLS12381G2Point{value: g2}
}

func (BLS12381G2) HashToPoint(msg []byte) Point {
	p, err := bls12381.HashToG2(msg, []byte(dstG2))
	if err != nil {
		panic(fmt.Sprintf("curve.BLS12381G2.HashToPoint: %v", err))
	}
	out := new(BLS12381G2Point)
	out.value.FromAffine(&p)
	return out
}

func (BLS12381G2) NewChallengeHash() hash.Hash { return sha512.New384() }

func (BLS12381G2) ScalarFromDigest(digest []byte) Scalar { return blsScalarFromOKM(digest) }

// blsScalarFromOKM interprets the output keying material as a big-endian
// integer and reduces it mod r.
func blsScalarFromOKM(okm []byte) *BLS12381Scalar {
	out := new(BLS12381Scalar)
	out.value.SetBytes(okm)
	return out
}

// BLS12381Scalar is an element of the BLS12-381 scalar field, acting on both G1 and G2.
//
// The canonical encoding is 32 bytes little-endian.
type BLS12381Scalar struct {
	value fr.Element
}

func blsCastScalar(generic Scalar) *BLS12381Scalar {
	out, ok := generic.(*BLS12381Scalar)
	if !ok {
		panic(fmt.Sprintf("failed to convert to BLS12381Scalar: %v", generic))
	}
	return out
}

func (*BLS12381Scalar) Field() string { return bls12381Field }

func (s *BLS12381Scalar) MarshalBinary() ([]byte, error) {
	if s == nil {
		return nil, ErrInvalidScalar
	}
	data := s.value.Bytes()
	return reverse(data[:]), nil
}

func (s *BLS12381Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != fr.Bytes {
		return fmt.Errorf("curve.BLS12381Scalar: invalid length %d: %w", len(data), ErrInvalidScalar)
	}
	var value fr.Element
	if err := value.SetBytesCanonical(reverse(data)); err != nil {
		return fmt.Errorf("curve.BLS12381Scalar: %v: %w", err, ErrInvalidScalar)
	}
	s.value.Set(&value)
	return nil
}

func (s *BLS12381Scalar) Add(that Scalar) Scalar {
	other := blsCastScalar(that)

	s.value.Add(&s.value, &other.value)
	return s
}

func (s *BLS12381Scalar) Sub(that Scalar) Scalar {
	other := blsCastScalar(that)

	s.value.Sub(&s.value, &other.value)
	return s
}

func (s *BLS12381Scalar) Mul(that Scalar) Scalar {
	other := blsCastScalar(that)

	s.value.Mul(&s.value, &other.value)
	return s
}

func (s *BLS12381Scalar) Negate() Scalar {
	s.value.Neg(&s.value)
	return s
}

func (s *BLS12381Scalar) Set(that Scalar) Scalar {
	other := blsCastScalar(that)

	s.value.Set(&other.value)
	return s
}

func (s *BLS12381Scalar) SetUint64(v uint64) Scalar {
	s.value.SetUint64(v)
	return s
}

// SetUniformBytes reads data little-endian and reduces it mod r.
func (s *BLS12381Scalar) SetUniformBytes(data []byte) Scalar {
	s.value.SetBytes(reverse(data))
	return s
}

func (s *BLS12381Scalar) Equal(that Scalar) bool {
	other := blsCastScalar(that)

	return s.value.Equal(&other.value)
}

func (s *BLS12381Scalar) IsZero() bool {
	return s.value.IsZero()
}

func (s *BLS12381Scalar) Act(that Point) Point {
	k := s.value.BigInt(new(big.Int))
	switch p := that.(type) {
	case *BLS12381G1Point:
		out := new(BLS12381G1Point)
		out.value.ScalarMultiplication(&p.value, k)
		return out
	case *BLS12381G2Point:
		out := new(BLS12381G2Point)
		out.value.ScalarMultiplication(&p.value, k)
		return out
	default:
		panic(fmt.Sprintf("BLS12381Scalar cannot act on %T", that))
	}
}

type BLS12381G1Point struct {
	value bls12381.G1Jac
}

func blsCastG1(generic Point) *BLS12381G1Point {
	out, ok := generic.(*BLS12381G1Point)
	if !ok {
		panic(fmt.Sprintf("failed to convert to BLS12381G1Point: %v", generic))
	}
	return out
}

func (*BLS12381G1Point) Curve() Curve { return BLS12381G1{} }

// MarshalBinary returns the 48 byte compressed encoding.
func (p *BLS12381G1Point) MarshalBinary() ([]byte, error) {
	if p == nil {
		return nil, ErrInvalidPoint
	}
	var a bls12381.G1Affine
	a.FromJacobian(&p.value)
	data := a.Bytes()
	return data[:], nil
}

// UnmarshalBinary accepts only compressed encodings of points in the prime order subgroup.
func (p *BLS12381G1Point) UnmarshalBinary(data []byte) error {
	if len(data) != bls12381.SizeOfG1AffineCompressed {
		return fmt.Errorf("curve.BLS12381G1Point: invalid length %d: %w", len(data), ErrInvalidPoint)
	}
	var a bls12381.G1Affine
	if _, err := a.SetBytes(data); err != nil {
		return fmt.Errorf("curve.BLS12381G1Point: %v: %w", err, ErrInvalidPoint)
	}
	p.value.FromAffine(&a)
	return nil
}

func (p *BLS12381G1Point) Add(that Point) Point {
	other := blsCastG1(that)

	out := new(BLS12381G1Point)
	out.value.Set(&p.value)
	out.value.AddAssign(&other.value)
	return out
}

func (p *BLS12381G1Point) Set(that Point) Point {
	other := blsCastG1(that)

	p.value.Set(&other.value)
	return p
}

func (p *BLS12381G1Point) Equal(that Point) bool {
	other := blsCastG1(that)

	return p.value.Equal(&other.value)
}

func (p *BLS12381G1Point) IsIdentity() bool {
	return p.value.Z.IsZero()
}

type BLS12381G2Point struct {
	value bls12381.G2Jac
}

func blsCastG2(generic Point) *BLS12381G2Point {
	out, ok := generic.(*BLS12381G2Point)
	if !ok {
		panic(fmt.Sprintf("failed to convert to BLS12381G2Point: %v", generic))
	}
	return out
}

func (*BLS12381G2Point) Curve() Curve { return BLS12381G2{} }

// MarshalBinary returns the 96 byte compressed encoding.
func (p *BLS12381G2Point) MarshalBinary() ([]byte, error) {
	if p == nil {
		return nil, ErrInvalidPoint
	}
	var a bls12381.G2Affine
	a.FromJacobian(&p.value)
	data := a.Bytes()
	return data[:], nil
}

// UnmarshalBinary accepts only compressed encodings of points in the prime order subgroup.
func (p *BLS12381G2Point) UnmarshalBinary(data []byte) error {
	if len(data) != bls12381.SizeOfG2AffineCompressed {
		return fmt.Errorf("curve.BLS12381G2Point: invalid length %d: %w", len(data), ErrInvalidPoint)
	}
	var a bls12381.G2Affine
	if _, err := a.SetBytes(data); err != nil {
		return fmt.Errorf("curve.BLS12381G2Point: %v: %w", err, ErrInvalidPoint)
	}
	p.value.FromAffine(&a)
	return nil
}

func (p *BLS12381G2Point) Add(that Point) Point {
	other := blsCastG2(that)

	out := new(BLS12381G2Point)
	out.value.Set(&p.value)
	out.value.AddAssign(&other.value)
	return out
}

func (p *BLS12381G2Point) Set(that Point) Point {
	other := blsCastG2(that)

	p.value.Set(&other.value)
	return p
}

func (p *BLS12381G2Point) Equal(that Point) bool {
	other := blsCastG2(that)

	return p.value.Equal(&other.value)
}

func (p *BLS12381G2Point) IsIdentity() bool {
	return p.value.Z.IsZero()
}
