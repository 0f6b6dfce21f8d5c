package test

import (
	"io"

	"github.com/zeebo/blake3"
)

// Rand returns a deterministic stream of bytes derived from seed.
//
// It satisfies the same io.Reader contract as crypto/rand.Reader so it can
// stand in for it when producing reproducible test vectors. It is not a
// source of entropy and is only imported from tests.
func Rand(seed []byte) io.Reader {
	h := blake3.New()
	_, _ = h.Write([]byte("eqproof test rand"))
	_, _ = h.Write(seed)
	return h.Digest()
}

// FailingReader is an io.Reader that always fails, simulating an exhausted entropy source.
type FailingReader struct {
	Err error
}

func (r FailingReader) Read([]byte) (int, error) {
	if r.Err == nil {
		return 0, io.ErrUnexpectedEOF
	}
	return 0, r.Err
}
