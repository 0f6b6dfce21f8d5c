package pedersen

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/eqproof/pkg/math/curve"
	"github.com/taurusgroup/eqproof/pkg/math/sample"
)

func TestAuxPoint(t *testing.T) {
	for _, name := range curve.SupportedCurves() {
		group, err := curve.FromName(name)
		require.NoError(t, err)

		q1 := AuxPoint(group, SlotB)
		q2 := AuxPoint(group, SlotC)
		assert.False(t, q1.Equal(q2), "slots must use distinct generators")
		assert.True(t, q1.Equal(AuxPoint(group, SlotB)), "aux point must be deterministic")
		assert.False(t, q1.Equal(group.NewBasePoint()))
		assert.False(t, q1.IsIdentity())
	}
	assert.Panics(t, func() { AuxPoint(curve.Ristretto255{}, Slot(2)) })
}

func TestCommitment(t *testing.T) {
	group := curve.BLS12381G2{}
	x, err := sample.Scalar(rand.Reader, group)
	require.NoError(t, err)
	r, err := sample.Scalar(rand.Reader, group)
	require.NoError(t, err)

	aux := AuxPoint(group, SlotC)
	c := New(x, r, aux)
	assert.True(t, c.Opens(x, r, aux))
	assert.True(t, c.Equal(Commit(group, SlotC, x, r)))
	assert.False(t, c.Equal(Commit(group, SlotB, x, r)))

	x2 := group.NewScalar().Set(x).Add(group.NewScalar().SetUint64(1))
	assert.False(t, c.Opens(x2, r, aux))
	assert.False(t, c.Opens(x, r, AuxPoint(curve.BLS12381G1{}, SlotC)))
}

func TestCommitmentHomomorphic(t *testing.T) {
	group := curve.Ristretto255{}
	aux := AuxPoint(group, SlotB)
	a := New(group.NewScalar().SetUint64(2), group.NewScalar().SetUint64(10), aux)
	b := New(group.NewScalar().SetUint64(3), group.NewScalar().SetUint64(20), aux)
	sum := New(group.NewScalar().SetUint64(5), group.NewScalar().SetUint64(30), aux)
	assert.True(t, a.Point.Add(b.Point).Equal(sum.Point))
}

func TestCommitmentMarshal(t *testing.T) {
	for _, name := range curve.SupportedCurves() {
		group, err := curve.FromName(name)
		require.NoError(t, err)

		x, err := sample.Scalar(rand.Reader, group)
		require.NoError(t, err)
		c := Commit(group, SlotB, x, group.NewScalar().SetUint64(99))

		data, err := c.MarshalBinary()
		require.NoError(t, err)
		c2 := Empty(group)
		require.NoError(t, c2.UnmarshalBinary(data))
		assert.True(t, c.Equal(c2), name)
	}

	var nilCommitment *Commitment
	_, err := nilCommitment.MarshalBinary()
	assert.ErrorIs(t, err, ErrNilFields)
	assert.Error(t, Empty(curve.Secp256k1{}).UnmarshalBinary([]byte{1, 2, 3}))
}

func TestCommitmentEqualAcrossGroups(t *testing.T) {
	one := curve.BLS12381G1{}.NewScalar().SetUint64(1)
	c1 := Commit(curve.BLS12381G1{}, SlotB, one, one)
	c2 := Commit(curve.BLS12381G2{}, SlotB, one, one)
	assert.False(t, c1.Equal(c2))
	assert.False(t, c1.Equal(nil))
}

func TestAuxPointVectors(t *testing.T) {
	vectors := []struct {
		group  curve.Curve
		q1, q2 string
	}{
		{
			curve.BLS12381G1{},
			"82f79076a7af3e376444f36ed3c86ef96285ca9b38409fcbd45fad521cadb870b818491ec462edeca1a9219f975f82cf",
			"a348ec6adc2fa8eeec744601e61798365c9f978f830c15625cca743f3ceff2a367bba12301ace1539fb87c534d474bf0",
		},
		{
			curve.BLS12381G2{},
			"9182ebea52c0ae28fab60c56fa85cf1bab6c093de21fe1d1a3b6f811a3ff645854d0b2c15a74f1d62ee41c5ace375745" +
				"015680fcab278801d806bbcaa8d7ddc207eacfbace97bd6ed57aa770857aac2a586f9978b308f6dde51f4b6a800371f6",
			"9394c0a53e8b1451da10e19795ed048e7996b06f24e4ff0b242a7a18620970b19d14a216099a59b77a14dd01abaf6b90" +
				"1601f266708717845a456a0cb967badd7531fae01f601d5e44b82d67ac3ec7ee9cb6ed7ffe83719e6fe375fe8035b280",
		},
		{
			curve.Ristretto255{},
			"324acb906d910faa3b08c2f283403e4b376329692ff1862cde50fcdcb16a667a",
			"68686d680e315f84fa7a6325d654999e9ff7f745d794765248f31b35671c0c41",
		},
		{
			curve.Secp256k1{},
			"02f723fdbe146ec94be9a2d2aa428f40f811a005b319f196df2156e88bdf37889c",
			"02666369c3379599ba34d42b22dffb7524292379ebb1340c0b86b0d78e3c9b8db4",
		},
	}
	for _, v := range vectors {
		q1, err := AuxPoint(v.group, SlotB).MarshalBinary()
		require.NoError(t, err)
		q2, err := AuxPoint(v.group, SlotC).MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, v.q1, hex.EncodeToString(q1), v.group.Name())
		assert.Equal(t, v.q2, hex.EncodeToString(q2), v.group.Name())
	}
}
