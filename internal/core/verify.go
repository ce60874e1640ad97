package core

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/Jx2f/mtwist/internal/config"
	"github.com/Jx2f/mtwist/internal/reference"
	"github.com/Jx2f/mtwist/pkg/crypto/mt19937"
	"github.com/Jx2f/mtwist/pkg/logger"
)

// MismatchError reports the first output where the generator and the
// reference disagree.
type MismatchError struct {
	Seed     uint32
	Index    int
	Expected uint32
	Got      uint32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("seed=%d n=%d expected %d got %d", e.Seed, e.Index, e.Expected, e.Got)
}

func verifySeed(seed uint32, draws int) error {
	g := mt19937.New(seed)
	r := reference.New(seed)
	for n := 0; n < draws; n++ {
		a, b := g.Uint32(), r.Uint32()
		if a != b {
			return &MismatchError{Seed: seed, Index: n, Expected: b, Got: a}
		}
	}
	return nil
}

// Verify checks the generator against the reference for every seed in
// [0, c.Seeds). Each seed gets its own generator pair, so seeds can be spread
// across goroutines.
func Verify(ctx context.Context, c *config.ConfigVerify) error {
	workers := c.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	for pass := 0; pass < c.Passes; pass++ {
		var checked atomic.Uint32
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for seed := uint32(0); seed < c.Seeds; seed++ {
			if gctx.Err() != nil {
				break
			}
			seed := seed
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := verifySeed(seed, c.Draws); err != nil {
					return err
				}
				if n := checked.Add(1); n%100 == 0 {
					logger.Debug().Int("pass", pass+1).Msgf("Checked %d/%d seeds", n, c.Seeds)
				}
				return nil
			})
		}
		err := g.Wait()
		if err == nil {
			// the loop may have stopped early without any worker failing
			err = ctx.Err()
		}
		if err != nil {
			logger.Error().Int("pass", pass+1).Int("passes", c.Passes).Msg("Pass failed")
			return errors.Wrapf(err, "pass %d/%d", pass+1, c.Passes)
		}
		logger.Info().Int("pass", pass+1).Int("passes", c.Passes).Uint32("seeds", c.Seeds).Int("draws", c.Draws).Msg("Pass OK")
	}
	return nil
}
