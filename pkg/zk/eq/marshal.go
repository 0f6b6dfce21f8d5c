package zkeq

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/taurusgroup/eqproof/pkg/math/curve"
)

// proofEnvelope is the wire form of a Proof: the canonical encodings of its
// scalars, tagged with their field.
type proofEnvelope struct {
	Field string
	C     []byte
	D     []byte
	D1    []byte
	D2    []byte
}

// Empty returns a proof over the scalar field of group, to be used with UnmarshalBinary.
func Empty(group curve.Curve) *Proof {
	return &Proof{
		C:  group.NewScalar(),
		D:  group.NewScalar(),
		D1: group.NewScalar(),
		D2: group.NewScalar(),
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p *Proof) MarshalBinary() ([]byte, error) {
	if !p.IsValid() {
		return nil, ErrNilFields
	}
	envelope := proofEnvelope{Field: p.C.Field()}
	targets := []*[]byte{&envelope.C, &envelope.D, &envelope.D1, &envelope.D2}
	for i, s := range []curve.Scalar{p.C, p.D, p.D1, p.D2} {
		data, err := s.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("zkeq.Proof: marshal scalar %d: %w", i, err)
		}
		*targets[i] = data
	}
	return cbor.Marshal(envelope)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// The proof must have been created with Empty, for the field the data was produced in.
func (p *Proof) UnmarshalBinary(data []byte) error {
	if !p.IsValid() {
		return ErrNilFields
	}
	var envelope proofEnvelope
	if err := cbor.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("zkeq.Proof: %w", err)
	}
	if envelope.Field != p.C.Field() {
		return fmt.Errorf("zkeq.Proof: got %q, expected %q: %w", envelope.Field, p.C.Field(), ErrFieldMismatch)
	}
	group, err := curve.FromScalarField(envelope.Field)
	if err != nil {
		return fmt.Errorf("zkeq.Proof: %w", err)
	}
	// p is only modified once all four scalars decode
	sources := [][]byte{envelope.C, envelope.D, envelope.D1, envelope.D2}
	decoded := make([]curve.Scalar, len(sources))
	for i, source := range sources {
		decoded[i] = group.NewScalar()
		if err := decoded[i].UnmarshalBinary(source); err != nil {
			return fmt.Errorf("zkeq.Proof: unmarshal scalar %d: %w", i, err)
		}
	}
	p.C.Set(decoded[0])
	p.D.Set(decoded[1])
	p.D1.Set(decoded[2])
	p.D2.Set(decoded[3])
	return nil
}
