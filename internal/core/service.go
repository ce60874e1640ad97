package core

import (
	"context"
	"fmt"

	"github.com/Jx2f/mtwist/internal/config"
	"github.com/Jx2f/mtwist/pkg/logger"
)

type Service struct {
	config *config.Config

	ctx       context.Context
	ctxCancel context.CancelFunc
}

func NewService(c *config.Config) *Service {
	s := new(Service)
	s.config = c
	s.ctx, s.ctxCancel = context.WithCancel(context.Background())
	return s
}

// Start runs one task to completion, or until Stop is called.
func (s *Service) Start(task config.Task) error {
	switch task {
	case config.TaskVerify:
		c := s.config.Verify
		logger.Info().Uint32("seeds", c.Seeds).Int("draws", c.Draws).Int("passes", c.Passes).Msg("Testing Mersenne Twister with reference implementation")
		if err := Verify(s.ctx, c); err != nil {
			return err
		}
		logger.Info().Msg("All passes OK")
	case config.TaskCompare:
		res, err := Compare(s.ctx, s.config.Compare)
		if err != nil {
			return err
		}
		faster := "faster"
		if res.Ratio <= 1 {
			faster = "slower"
		}
		logger.Info().
			Float64("referenceSecs", res.ReferenceSeconds).
			Float64("secs", res.Seconds).
			Msgf("%.7f x %s (higher is better)", res.Ratio, faster)
	case config.TaskBench:
		res, err := Bench(s.ctx, s.config.Bench)
		if err != nil {
			return err
		}
		logger.Info().
			Str("total", FormatShortScale(float64(res.Total), 2)).
			Str("totalSpeed", FormatShortScale(res.TotalSpeed, 4)).
			Str("worst", FormatShortScale(res.Worst, 4)).
			Str("best", FormatShortScale(res.Best, 4)).
			Str("mean", FormatShortScale(res.Mean, 4)).
			Str("stddev", FormatShortScale(res.StdDev, 4)).
			Msg("Results in numbers/second")
	case config.TaskRun:
		res, err := Run(s.ctx, s.config.Run)
		if err != nil {
			return err
		}
		logger.Info().Uint64("iterations", res.Iterations).Float64("secs", res.Seconds).Msg("Run finished")
	default:
		return fmt.Errorf("unknown task %q", task)
	}
	return nil
}

func (s *Service) Stop() error {
	s.ctxCancel()
	return nil
}
