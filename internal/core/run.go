package core

import (
	"context"

	"github.com/Jx2f/mtwist/internal/config"
	"github.com/Jx2f/mtwist/pkg/crypto/mt19937"
)

type RunResult struct {
	Iterations uint64
	Seconds    float64
	Hash       uint32
}

// Run draws c.Iterations values and reports the CPU time it took.
func Run(ctx context.Context, c *config.ConfigRun) (*RunResult, error) {
	t := NewTimer()
	hash, err := hashDraws(ctx, new(mt19937.Generator), c.Seed, c.Iterations)
	if err != nil {
		return nil, err
	}
	return &RunResult{Iterations: c.Iterations, Seconds: t.Elapsed(), Hash: hash}, nil
}
