package curve

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// secp256k1HashDST separates HashToPoint outputs from other uses of SHA-256.
const secp256k1HashDST = "SECP256K1_XMD:SHA-256_TAI_"

var secp256k1Order = saferith.ModulusFromBytes(secp256k1.Params().N.Bytes())

// Secp256k1 is the Koblitz curve used by Bitcoin.
//
// Scalars encode as 32 bytes big-endian, points as 33 byte compressed SEC1,
// with the identity encoded as 33 zero bytes.
type Secp256k1 struct{}

func (Secp256k1) Name() string        { return "secp256k1" }
func (Secp256k1) ScalarField() string { return "secp256k1-n" }
func (Secp256k1) SafeScalarBytes() int { return 64 }

func (Secp256k1) NewPoint() Point {
	return new(Secp256k1Point)
}

func (Secp256k1) NewBasePoint() Point {
	out := new(Secp256k1Point)
	var one secp256k1.ModNScalar
	one.SetInt(1)
	secp256k1.ScalarBaseMultNonConst(&one, &out.value)
	return out
}

func (Secp256k1) NewScalar() Scalar {
	return new(Secp256k1Scalar)
}

// HashToPoint uses try-and-increment: the first counter for which
// SHA-256(dst || msg || ctr) is a valid x coordinate gives the point with even y.
//
// This is not constant time in msg, which is fine for the public inputs it is used on.
func (Secp256k1) HashToPoint(msg []byte) Point {
	for ctr := 0; ctr < 256; ctr++ {
		h := sha256.New()
		_, _ = h.Write([]byte(secp256k1HashDST))
		_, _ = h.Write(msg)
		_, _ = h.Write([]byte{byte(ctr)})
		digest := h.Sum(nil)

		var x, y secp256k1.FieldVal
		if overflow := x.SetByteSlice(digest); overflow {
			continue
		}
		if !secp256k1.DecompressY(&x, false, &y) {
			continue
		}
		y.Normalize()
		out := new(Secp256k1Point)
		out.value.X.Set(&x)
		out.value.Y.Set(&y)
		out.value.Z.SetInt(1)
		return out
	}
	panic("curve.Secp256k1.HashToPoint: exhausted counter")
}

func (Secp256k1) NewChallengeHash() hash.Hash {
	return sha512.New()
}

// ScalarFromDigest reads digest as a big-endian integer and reduces it mod n.
func (Secp256k1) ScalarFromDigest(digest []byte) Scalar {
	return new(Secp256k1Scalar).SetUniformBytes(digest)
}

type Secp256k1Scalar struct {
	value secp256k1.ModNScalar
}

func secp256k1CastScalar(generic Scalar) *Secp256k1Scalar {
	out, ok := generic.(*Secp256k1Scalar)
	if !ok {
		panic(fmt.Sprintf("failed to convert to secp256k1Scalar: %v", generic))
	}
	return out
}

func (*Secp256k1Scalar) Field() string { return Secp256k1{}.ScalarField() }

func (s *Secp256k1Scalar) MarshalBinary() ([]byte, error) {
	if s == nil {
		return nil, ErrInvalidScalar
	}
	data := s.value.Bytes()
	return data[:], nil
}

func (s *Secp256k1Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != 32 {
		return fmt.Errorf("curve.Secp256k1Scalar: invalid length %d: %w", len(data), ErrInvalidScalar)
	}
	var exactData [32]byte
	copy(exactData[:], data)
	var value secp256k1.ModNScalar
	if value.SetBytes(&exactData) != 0 {
		return fmt.Errorf("curve.Secp256k1Scalar: scalar >= n: %w", ErrInvalidScalar)
	}
	s.value.Set(&value)
	return nil
}

func (s *Secp256k1Scalar) Add(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	s.value.Add(&other.value)
	return s
}

func (s *Secp256k1Scalar) Sub(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	var negated secp256k1.ModNScalar
	negated.NegateVal(&other.value)
	s.value.Add(&negated)
	return s
}

func (s *Secp256k1Scalar) Mul(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	s.value.Mul(&other.value)
	return s
}

func (s *Secp256k1Scalar) Negate() Scalar {
	s.value.Negate()
	return s
}

func (s *Secp256k1Scalar) Set(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	s.value.Set(&other.value)
	return s
}

func (s *Secp256k1Scalar) SetUint64(v uint64) Scalar {
	var data [32]byte
	for i := 0; i < 8; i++ {
		data[31-i] = byte(v >> (8 * i))
	}
	s.value.SetBytes(&data)
	return s
}

// SetUniformBytes reads data as a big-endian integer of any length and reduces it mod n.
func (s *Secp256k1Scalar) SetUniformBytes(data []byte) Scalar {
	reduced := new(saferith.Nat).SetBytes(data)
	reduced.Mod(reduced, secp256k1Order)
	var buf [32]byte
	reduced.FillBytes(buf[:])
	s.value.SetBytes(&buf)
	return s
}

func (s *Secp256k1Scalar) Equal(that Scalar) bool {
	other := secp256k1CastScalar(that)

	return s.value.Equals(&other.value)
}

func (s *Secp256k1Scalar) IsZero() bool {
	return s.value.IsZero()
}

func (s *Secp256k1Scalar) Act(that Point) Point {
	other := secp256k1CastPoint(that)
	out := new(Secp256k1Point)
	secp256k1.ScalarMultNonConst(&s.value, &other.value, &out.value)
	return out
}

type Secp256k1Point struct {
	value secp256k1.JacobianPoint
}

func secp256k1CastPoint(generic Point) *Secp256k1Point {
	out, ok := generic.(*Secp256k1Point)
	if !ok {
		panic(fmt.Sprintf("failed to convert to secp256k1Point: %v", generic))
	}
	return out
}

func (*Secp256k1Point) Curve() Curve { return Secp256k1{} }

// affine returns a normalized copy, leaving p untouched.
func (p *Secp256k1Point) affine() secp256k1.JacobianPoint {
	var out secp256k1.JacobianPoint
	out.Set(&p.value)
	out.ToAffine()
	return out
}

func (p *Secp256k1Point) MarshalBinary() ([]byte, error) {
	if p == nil {
		return nil, ErrInvalidPoint
	}
	out := make([]byte, 33)
	if p.IsIdentity() {
		return out, nil
	}
	a := p.affine()
	out[0] = secp256k1.PubKeyFormatCompressedEven
	if a.Y.IsOdd() {
		out[0] = secp256k1.PubKeyFormatCompressedOdd
	}
	a.X.PutBytesUnchecked(out[1:])
	return out, nil
}

func (p *Secp256k1Point) UnmarshalBinary(data []byte) error {
	if len(data) != 33 {
		return fmt.Errorf("curve.Secp256k1Point: invalid length %d: %w", len(data), ErrInvalidPoint)
	}
	if isAllZero(data) {
		p.value = secp256k1.JacobianPoint{}
		return nil
	}
	format := data[0]
	if format != secp256k1.PubKeyFormatCompressedEven && format != secp256k1.PubKeyFormatCompressedOdd {
		return fmt.Errorf("curve.Secp256k1Point: incorrect format byte: %w", ErrInvalidPoint)
	}
	var x, y secp256k1.FieldVal
	if overflow := x.SetByteSlice(data[1:]); overflow {
		return fmt.Errorf("curve.Secp256k1Point: x >= field prime: %w", ErrInvalidPoint)
	}
	if !secp256k1.DecompressY(&x, format == secp256k1.PubKeyFormatCompressedOdd, &y) {
		return fmt.Errorf("curve.Secp256k1Point: x not on curve: %w", ErrInvalidPoint)
	}
	y.Normalize()
	p.value.X.Set(&x)
	p.value.Y.Set(&y)
	p.value.Z.SetInt(1)
	return nil
}

func (p *Secp256k1Point) Add(that Point) Point {
	other := secp256k1CastPoint(that)

	out := new(Secp256k1Point)
	secp256k1.AddNonConst(&p.value, &other.value, &out.value)
	return out
}

func (p *Secp256k1Point) Set(that Point) Point {
	other := secp256k1CastPoint(that)

	p.value.Set(&other.value)
	return p
}

func (p *Secp256k1Point) Equal(that Point) bool {
	other := secp256k1CastPoint(that)

	if p.IsIdentity() || other.IsIdentity() {
		return p.IsIdentity() && other.IsIdentity()
	}
	a, b := p.affine(), other.affine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

func (p *Secp256k1Point) IsIdentity() bool {
	return (p.value.X.IsZero() && p.value.Y.IsZero()) || p.value.Z.IsZero()
}

func isAllZero(data []byte) bool {
	var acc byte
	for _, b := range data {
		acc |= b
	}
	return acc == 0
}
