package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/eqproof/pkg/math/curve"
)

func main() {
	nameB := flag.String("b", "bls12381-g1", "group of the first commitment ("+strings.Join(curve.SupportedCurves(), ", ")+")")
	nameC := flag.String("c", "bls12381-g2", "group of the second commitment")
	ctxID := flag.String("context", "eqproof example", "application context the proof is bound to")
	count := flag.Int("n", 8, "number of statements in the batch run")
	level := flag.String("level", "info", "log level")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.NewConsoleWriter()).Level(lvl).With().Timestamp().Logger()

	groupB, err := curve.FromName(*nameB)
	if err != nil {
		log.Fatal().Err(err).Msg("group B")
	}
	groupC, err := curve.FromName(*nameC)
	if err != nil {
		log.Fatal().Err(err).Msg("group C")
	}

	n := NewNetwork(prover, verifier)
	var (
		wg    sync.WaitGroup
		valid bool
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := Prove(log.With().Str("party", prover).Logger(), groupB, groupC, []byte(*ctxID), n); err != nil {
			log.Fatal().Err(err).Msg("prove")
		}
	}()
	go func() {
		defer wg.Done()
		ok, err := Verify(log.With().Str("party", verifier).Logger(), []byte(*ctxID), n)
		if err != nil {
			log.Fatal().Err(err).Msg("verify")
		}
		valid = ok
	}()
	wg.Wait()

	batchOK, err := Batch(context.Background(), log, groupB, groupC, []byte(*ctxID), *count)
	if err != nil {
		log.Fatal().Err(err).Msg("batch")
	}
	if !valid || !batchOK {
		os.Exit(1)
	}
}
