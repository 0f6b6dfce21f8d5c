package hash

import (
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/eqproof/pkg/math/curve"
	"github.com/taurusgroup/eqproof/pkg/pedersen"
)

func TestHash_WriteAny(t *testing.T) {
	group := curve.Ristretto255{}
	testFunc := func(vs ...interface{}) error {
		return New(group).WriteAny(vs...)
	}

	assert.NoError(t, testFunc([]byte{1, 4, 6}))
	assert.NoError(t, testFunc(group.NewBasePoint()))
	assert.NoError(t, testFunc(group.NewScalar().SetUint64(35)))
	assert.NoError(t, testFunc(group.NewBasePoint(), []byte{1}, group.NewScalar()))

	assert.Error(t, testFunc(35))
	var nilPoint curve.Point
	assert.Error(t, testFunc(nilPoint))
}

func TestHash_Concatenation(t *testing.T) {
	group := curve.BLS12381G1{}
	g := group.NewBasePoint()
	s := group.NewScalar().SetUint64(11)

	h := New(group)
	require.NoError(t, h.WriteAny(g, g, s))

	gBytes, _ := g.MarshalBinary()
	sBytes, _ := s.MarshalBinary()
	expected := sha512.New384()
	expected.Write(gBytes)
	expected.Write(gBytes)
	expected.Write(sBytes)
	assert.Equal(t, expected.Sum(nil), h.Sum())
	assert.Len(t, h.Sum(), 48)
}

func TestHash_Scalar(t *testing.T) {
	for _, name := range curve.SupportedCurves() {
		group, err := curve.FromName(name)
		require.NoError(t, err)

		h1, h2 := New(group), New(group)
		require.NoError(t, h1.WriteAny([]byte("nonce")))
		require.NoError(t, h2.WriteAny([]byte("nonce")))
		assert.True(t, h1.Scalar().Equal(h2.Scalar()), name)
		assert.Equal(t, h1.Sum(), h1.Sum())

		h3 := New(group)
		require.NoError(t, h3.WriteAny([]byte("other")))
		assert.False(t, h1.Scalar().Equal(h3.Scalar()), name)
	}
}

func TestHash_BinaryMarshaler(t *testing.T) {
	group := curve.Secp256k1{}
	one := group.NewScalar().SetUint64(1)
	c := pedersen.Commit(group, pedersen.SlotB, one, one)

	h1, h2 := New(group), New(group)
	require.NoError(t, h1.WriteAny(c))
	require.NoError(t, h2.WriteAny(c.Point))
	assert.Equal(t, h1.Sum(), h2.Sum())

	var empty *pedersen.Commitment
	assert.Error(t, New(group).WriteAny(empty))
}

func TestHash_TypedNil(t *testing.T) {
	group := curve.BLS12381G1{}
	assert.NotPanics(t, func() {
		assert.ErrorIs(t, New(group).WriteAny((*curve.BLS12381G1Point)(nil)), curve.ErrInvalidPoint)
		assert.ErrorIs(t, New(group).WriteAny((*curve.BLS12381Scalar)(nil)), curve.ErrInvalidScalar)
	})
	var nilScalar curve.Scalar
	assert.Error(t, New(group).WriteAny(nilScalar))
}
