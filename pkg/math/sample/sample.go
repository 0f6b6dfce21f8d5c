package sample

import (
	"fmt"
	"io"

	"github.com/taurusgroup/eqproof/pkg/math/curve"
)

// Scalar returns a uniformly random scalar of group, reading
// group.SafeScalarBytes() bytes from rand and reducing them.
//
// A failing reader is reported to the caller. Scalar never retries or
// falls back to another source.
func Scalar(rand io.Reader, group curve.Curve) (curve.Scalar, error) {
	buf := make([]byte, group.SafeScalarBytes())
	if _, err := io.ReadFull(rand, buf); err != nil {
		return nil, fmt.Errorf("sample.Scalar: read entropy: %w", err)
	}
	return group.NewScalar().SetUniformBytes(buf), nil
}

// Scalars samples n independent scalars, stopping at the first failure.
func Scalars(rand io.Reader, group curve.Curve, n int) ([]curve.Scalar, error) {
	out := make([]curve.Scalar, n)
	for i := range out {
		s, err := Scalar(rand, group)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
