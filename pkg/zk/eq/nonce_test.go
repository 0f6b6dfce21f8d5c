package zkeq

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/eqproof/pkg/math/curve"
)

func TestNonceFromContext(t *testing.T) {
	g1 := curve.BLS12381G1{}
	a := NonceFromContext(g1, []byte("session 1"))
	assert.True(t, a.Equal(NonceFromContext(g1, []byte("session 1"))))
	assert.False(t, a.Equal(NonceFromContext(g1, []byte("session 2"))))
	assert.True(t, a.Equal(NonceFromContext(curve.BLS12381G2{}, []byte("session 1"))), "G1 and G2 share a field")
	assert.Equal(t, curve.Ristretto255{}.ScalarField(), NonceFromContext(curve.Ristretto255{}, nil).Field())
	assert.False(t, NonceFromContext(curve.Secp256k1{}, nil).IsZero())
}

func TestNonceFromContextBindsProof(t *testing.T) {
	group := curve.Ristretto255{}
	w := newWitness(t, rand.Reader, group)
	w.nonce = NonceFromContext(group, []byte("tx 0xabcd"))
	b, c := w.commit(group, group)

	proof, err := NewProof(rand.Reader, group, group, w.x, w.r1, w.r2, w.nonce)
	require.NoError(t, err)
	assert.True(t, proof.Verify(b, c, NonceFromContext(group, []byte("tx 0xabcd"))))
	assert.False(t, proof.Verify(b, c, NonceFromContext(group, []byte("tx 0xabce"))))
}

func TestNonceFromContextVectors(t *testing.T) {
	vectors := []struct {
		group    curve.Curve
		expected string
	}{
		{curve.BLS12381G1{}, "cac3c5bb846a236f2f560ad8eb5fe9255f0d691034b7f16f9464fe02c1ff7b3b"},
		{curve.Ristretto255{}, "64312802572cc1117565c317ede5c83361afc61c39107552abab28c213677c01"},
		{curve.Secp256k1{}, "a604c55ba598346c476d18e822b9f7d6590e406ae11e69fdb7fc8739516f5d01"},
	}
	for _, v := range vectors {
		data, err := NonceFromContext(v.group, []byte("eqproof regression")).MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, v.expected, hex.EncodeToString(data), v.group.Name())
	}
}
