package sample

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/eqproof/pkg/math/curve"
)

func TestScalar(t *testing.T) {
	for _, name := range curve.SupportedCurves() {
		group, err := curve.FromName(name)
		require.NoError(t, err)

		a, err := Scalar(rand.Reader, group)
		require.NoError(t, err)
		b, err := Scalar(rand.Reader, group)
		require.NoError(t, err)
		assert.False(t, a.Equal(b), name)
		assert.Equal(t, group.ScalarField(), a.Field())
	}
}

func TestScalarDeterministic(t *testing.T) {
	group := curve.Ristretto255{}
	seed := bytes.Repeat([]byte{7}, 2*group.SafeScalarBytes())

	a, err := Scalar(bytes.NewReader(seed), group)
	require.NoError(t, err)
	b, err := Scalar(bytes.NewReader(seed), group)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestScalarPropagatesReaderFailure(t *testing.T) {
	_, err := Scalar(failingReader{}, curve.BLS12381G1{})
	assert.Error(t, err)

	short := bytes.NewReader(make([]byte, 10))
	_, err = Scalar(short, curve.Secp256k1{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestScalars(t *testing.T) {
	group := curve.BLS12381G2{}
	out, err := Scalars(rand.Reader, group, 3)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.False(t, out[0].Equal(out[1]))

	limited := io.LimitReader(rand.Reader, int64(2*group.SafeScalarBytes()))
	_, err = Scalars(limited, group, 3)
	assert.Error(t, err)
}
