package main

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/zerolog"
	"github.com/taurusgroup/eqproof/pkg/math/curve"
	"github.com/taurusgroup/eqproof/pkg/math/sample"
	"github.com/taurusgroup/eqproof/pkg/pedersen"
	zkeq "github.com/taurusgroup/eqproof/pkg/zk/eq"
)

const (
	prover   = "prover"
	verifier = "verifier"
)

// statement is what the prover sends: both commitments and the proof, each
// in its binary encoding, plus the names of the groups they live in.
type statement struct {
	GroupB, GroupC string
	B, C, Proof    []byte
}

// Prove commits to a fresh secret in groupB and groupC and sends the
// commitments with an equality proof to the verifier.
func Prove(log zerolog.Logger, groupB, groupC curve.Curve, ctxID []byte, n Network) error {
	s, err := sample.Scalars(rand.Reader, groupB, 3)
	if err != nil {
		return err
	}
	x, r1, r2 := s[0], s[1], s[2]
	nonce := zkeq.NonceFromContext(groupB, ctxID)

	proof, err := zkeq.NewProof(rand.Reader, groupB, groupC, x, r1, r2, nonce)
	if err != nil {
		return err
	}

	msg := statement{GroupB: groupB.Name(), GroupC: groupC.Name()}
	if msg.B, err = pedersen.Commit(groupB, pedersen.SlotB, x, r1).MarshalBinary(); err != nil {
		return err
	}
	if msg.C, err = pedersen.Commit(groupC, pedersen.SlotC, x, r2).MarshalBinary(); err != nil {
		return err
	}
	if msg.Proof, err = proof.MarshalBinary(); err != nil {
		return err
	}
	data, err := cbor.Marshal(msg)
	if err != nil {
		return err
	}

	log.Info().Hex("proof", msg.Proof).Int("bytes", len(data)).Msg("sending statement")
	n.Send(&Message{From: prover, To: verifier, Data: data})
	return nil
}

// Verify waits for a statement and checks it against the nonce derived from ctxID.
func Verify(log zerolog.Logger, ctxID []byte, n Network) (bool, error) {
	msg := <-n.Next(verifier)

	var st statement
	if err := cbor.Unmarshal(msg.Data, &st); err != nil {
		return false, err
	}
	groupB, err := curve.FromName(st.GroupB)
	if err != nil {
		return false, err
	}
	groupC, err := curve.FromName(st.GroupC)
	if err != nil {
		return false, err
	}

	b, c := pedersen.Empty(groupB), pedersen.Empty(groupC)
	if err = b.UnmarshalBinary(st.B); err != nil {
		return false, err
	}
	if err = c.UnmarshalBinary(st.C); err != nil {
		return false, err
	}
	proof := zkeq.Empty(groupB)
	if err = proof.UnmarshalBinary(st.Proof); err != nil {
		return false, err
	}

	ok := proof.Verify(b, c, zkeq.NonceFromContext(groupB, ctxID))
	log.Info().Str("from", msg.From).Str("b", st.GroupB).Str("c", st.GroupC).Bool("valid", ok).Msg("verified statement")
	return ok, nil
}

// Batch produces count independent statements and verifies them together.
func Batch(ctx context.Context, log zerolog.Logger, groupB, groupC curve.Curve, ctxID []byte, count int) (bool, error) {
	nonce := zkeq.NonceFromContext(groupB, ctxID)
	statements := make([]zkeq.Statement, 0, count)
	for i := 0; i < count; i++ {
		s, err := sample.Scalars(rand.Reader, groupB, 3)
		if err != nil {
			return false, err
		}
		proof, err := zkeq.NewProof(rand.Reader, groupB, groupC, s[0], s[1], s[2], nonce)
		if err != nil {
			return false, fmt.Errorf("statement %d: %w", i, err)
		}
		statements = append(statements, zkeq.Statement{
			Proof: proof,
			B:     pedersen.Commit(groupB, pedersen.SlotB, s[0], s[1]),
			C:     pedersen.Commit(groupC, pedersen.SlotC, s[0], s[2]),
			Nonce: nonce,
		})
	}
	ok := zkeq.VerifyBatch(ctx, statements)
	log.Info().Int("statements", count).Bool("valid", ok).Msg("batch verified")
	return ok, nil
}
