package zkeq

import (
	"github.com/taurusgroup/eqproof/pkg/math/curve"
	"golang.org/x/crypto/blake2b"
)

const nonceDomain = "eqproof context nonce"

// NonceFromContext maps an application identifier, such as a session id or a
// transaction hash, to a nonce in the scalar field of group.
//
// The same context always yields the same nonce, so prover and verifier can
// derive it independently.
func NonceFromContext(group curve.Curve, context []byte) curve.Scalar {
	h, _ := blake2b.New512(nil)
	_, _ = h.Write([]byte(nonceDomain))
	_, _ = h.Write([]byte(group.ScalarField()))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(context)
	return group.NewScalar().SetUniformBytes(h.Sum(nil))
}
