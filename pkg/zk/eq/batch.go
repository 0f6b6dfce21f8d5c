package zkeq

import (
	"context"
	"errors"
	"runtime"

	"github.com/taurusgroup/eqproof/pkg/math/curve"
	"github.com/taurusgroup/eqproof/pkg/pedersen"
	"golang.org/x/sync/errgroup"
)

var errRejected = errors.New("zkeq: proof rejected")

// Statement is a proof together with the public values it is checked against.
type Statement struct {
	Proof *Proof
	B, C  *pedersen.Commitment
	Nonce curve.Scalar
}

// VerifyBatch verifies independent statements in parallel, using at most
// runtime.NumCPU() goroutines.
//
// It returns true only if every statement verifies. Remaining work is
// abandoned after the first rejection or when ctx is done.
func VerifyBatch(ctx context.Context, statements []Statement) bool {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range statements {
		s := statements[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !s.Proof.Verify(s.B, s.C, s.Nonce) {
				return errRejected
			}
			return nil
		})
	}
	return g.Wait() == nil
}
