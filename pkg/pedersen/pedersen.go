package pedersen

import (
	"fmt"

	"github.com/taurusgroup/eqproof/pkg/math/curve"
)

type Error string

const (
	ErrNilFields   Error = "contains nil field"
	ErrUnknownSlot Error = "unknown commitment slot"
)

func (e Error) Error() string {
	return fmt.Sprintf("pedersen: %s", string(e))
}

// Slot is the position of a commitment in an equality statement.
//
// Each slot has its own auxiliary generator, so the two commitments of a
// statement never share Q even when they live in the same group.
type Slot int

const (
	// SlotB is the first operand, committed with Q1.
	SlotB Slot = iota
	// SlotC is the second operand, committed with Q2.
	SlotC
)

// Nothing-up-my-sleeve inputs for the auxiliary generators. Changing them
// changes every commitment and proof.
var (
	nothingUpMySleeveQ1 = []byte("Cowards die many times before their deaths; The valiant never taste of death but once")
	nothingUpMySleeveQ2 = []byte("Men at some time are masters of their fates")
)

func (s Slot) tag() []byte {
	switch s {
	case SlotB:
		return nothingUpMySleeveQ1
	case SlotC:
		return nothingUpMySleeveQ2
	default:
		panic(ErrUnknownSlot)
	}
}

func (s Slot) String() string {
	switch s {
	case SlotB:
		return "B"
	case SlotC:
		return "C"
	default:
		return fmt.Sprintf("Slot(%d)", int(s))
	}
}

// AuxPoint returns the auxiliary generator Q of slot in group.
//
// Q is obtained by hashing a public constant, so nobody knows log_G(Q).
// It is recomputed on every call; callers may keep the result.
func AuxPoint(group curve.Curve, slot Slot) curve.Point {
	return group.HashToPoint(slot.tag())
}

// Commitment is a Pedersen commitment G•x + Q•r.
type Commitment struct {
	Point curve.Point
}

// New computes G•x + aux•r, where G is the generator of aux's group.
func New(x, r curve.Scalar, aux curve.Point) *Commitment {
	base := aux.Curve().NewBasePoint()
	return &Commitment{
		Point: x.Act(base).Add(r.Act(aux)),
	}
}

// Commit computes the commitment to x with blinding r in the given slot of group.
func Commit(group curve.Curve, slot Slot, x, r curve.Scalar) *Commitment {
	return New(x, r, AuxPoint(group, slot))
}

// Empty returns a commitment in group, to be used with UnmarshalBinary.
func Empty(group curve.Curve) *Commitment {
	return &Commitment{Point: group.NewPoint()}
}

// Curve returns the group the commitment lives in.
func (c *Commitment) Curve() curve.Curve {
	return c.Point.Curve()
}

// Opens reports whether (x, r) opens c with respect to aux.
func (c *Commitment) Opens(x, r curve.Scalar, aux curve.Point) bool {
	if c == nil || c.Point == nil || x == nil || r == nil || aux == nil {
		return false
	}
	if aux.Curve().Name() != c.Curve().Name() || x.Field() != c.Curve().ScalarField() || r.Field() != x.Field() {
		return false
	}
	return New(x, r, aux).Point.Equal(c.Point)
}

// Equal compares the underlying group elements of two commitments in the same group.
func (c *Commitment) Equal(other *Commitment) bool {
	if c == nil || other == nil || c.Point == nil || other.Point == nil {
		return false
	}
	if c.Curve().Name() != other.Curve().Name() {
		return false
	}
	return c.Point.Equal(other.Point)
}

// MarshalBinary implements encoding.BinaryMarshaler, using the compressed point encoding.
func (c *Commitment) MarshalBinary() ([]byte, error) {
	if c == nil || c.Point == nil {
		return nil, ErrNilFields
	}
	return c.Point.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The commitment must have been created with Empty.
func (c *Commitment) UnmarshalBinary(data []byte) error {
	if c == nil || c.Point == nil {
		return ErrNilFields
	}
	if err := c.Point.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("pedersen.Commitment: %w", err)
	}
	return nil
}
