package core

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Jx2f/mtwist/internal/config"
	"github.com/Jx2f/mtwist/internal/reference"
	"github.com/Jx2f/mtwist/pkg/crypto/mt19937"
	"github.com/Jx2f/mtwist/pkg/logger"
)

var ErrHashMismatch = errors.New("hashes do not match")

type source32 interface {
	Seed(seed uint32)
	Uint32() uint32
}

// hashDraws folds iterations outputs into one word so the work can't be
// skipped and both implementations can be compared cheaply.
func hashDraws(ctx context.Context, s source32, seed uint32, iterations uint64) (uint32, error) {
	hash := uint32(0xFFFFFFFF)
	s.Seed(seed)
	for n := uint64(0); n < iterations; n++ {
		hash ^= s.Uint32()
		if n&(1<<24-1) == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
	}
	return hash, nil
}

type CompareResult struct {
	ReferenceSeconds float64
	Seconds          float64
	// Ratio > 1 means the generator is faster than the reference.
	Ratio float64
	Hash  uint32
}

// Compare times both implementations over the same draws and keeps the best
// time of each across passes.
func Compare(ctx context.Context, c *config.ConfigCompare) (*CompareResult, error) {
	res := &CompareResult{ReferenceSeconds: 9999, Seconds: 9999}
	ref := new(reference.MT)
	ours := new(mt19937.Generator)
	logger.Info().Int("passes", c.Passes).Msg("Benchmarking against reference implementation")
	for pass := 0; pass < c.Passes; pass++ {
		t := NewTimer()
		refHash, err := hashDraws(ctx, ref, c.Seed, c.Iterations)
		if err != nil {
			return nil, err
		}
		if elapsed := t.Elapsed(); elapsed < res.ReferenceSeconds {
			res.ReferenceSeconds = elapsed
			logger.Info().Float64("secs", elapsed).Msg("Reference improved")
		} else {
			logger.Debug().Msg("Reference no improvement")
		}

		t.Reset()
		ourHash, err := hashDraws(ctx, ours, c.Seed, c.Iterations)
		if err != nil {
			return nil, err
		}
		if elapsed := t.Elapsed(); elapsed < res.Seconds {
			res.Seconds = elapsed
			logger.Info().Float64("secs", elapsed).Msg("Generator improved")
		} else {
			logger.Debug().Msg("Generator no improvement")
		}

		if refHash != ourHash {
			return nil, errors.Wrapf(ErrHashMismatch, "pass %d: reference %#x, generator %#x", pass+1, refHash, ourHash)
		}
		res.Hash = ourHash
	}
	if res.Seconds > 0 {
		res.Ratio = res.ReferenceSeconds / res.Seconds
	}
	return res, nil
}
