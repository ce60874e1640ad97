package core

import (
	"context"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"github.com/Jx2f/mtwist/internal/config"
	"github.com/Jx2f/mtwist/pkg/crypto/mt19937"
	"github.com/Jx2f/mtwist/pkg/logger"
)

const (
	primeMaxCalls   = 10000000
	primeCheckEvery = 10000
	// getrusage reports microseconds
	minSeconds = 1e-6
)

// BenchResult holds numbers-per-second figures. It is not a rigorous
// benchmark; Best is the figure closest to what the code can do undisturbed.
type BenchResult struct {
	Total      uint64
	TotalSpeed float64
	Worst      float64
	Best       float64
	Mean       float64
	StdDev     float64
	PerBatch   []float64
}

func estimateCallsPerSecond(ctx context.Context, g *mt19937.Generator, runSecs float64) (float64, error) {
	var count uint64
	t := NewTimer()
	for count < primeMaxCalls {
		g.Uint32()
		if count++; count%primeCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			if t.Elapsed() >= runSecs {
				break
			}
		}
	}
	return float64(count) / clampSeconds(t.Elapsed()), nil
}

func numbersPerSecond(ctx context.Context, g *mt19937.Generator, count uint64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	t := NewTimer()
	for n := uint64(0); n < count; n++ {
		g.Uint32()
	}
	secs := t.Elapsed()
	logger.Debug().Str("count", FormatShortScale(float64(count), 1)).Float64("secs", secs).Msg("Generated batch")
	return float64(count) / clampSeconds(secs), nil
}

func clampSeconds(s float64) float64 {
	if s < minSeconds {
		return minSeconds
	}
	return s
}

// Bench primes an estimate of the draw rate, then times Batches-30 half-size
// batches, Batches-30 normal batches and 10 double-size batches.
func Bench(ctx context.Context, c *config.ConfigBench) (*BenchResult, error) {
	g := mt19937.New(c.Seed)

	speed, err := estimateCallsPerSecond(ctx, g, c.PrimeSeconds)
	if err != nil {
		return nil, err
	}
	logger.Info().Msgf("Priming system performance... ca. %s / second", FormatShortScale(speed, 2))

	part := uint64(c.Batches)
	count := uint64(float64(part) * speed)
	if c.MaxDraws > 0 && count/part > c.MaxDraws {
		count = c.MaxDraws * part
	}
	if count < 2*part {
		count = 2 * part
	}
	logger.Info().Uint64("batches", part).Msg("Generating batches of numbers")

	schedule := []struct {
		n    uint64
		size uint64
	}{
		{part - 30, count / (2 * part)},
		{part - 30, count / part},
		{10, 2 * count / part},
	}

	res := new(BenchResult)
	t := NewTimer()
	for _, s := range schedule {
		for i := uint64(0); i < s.n; i++ {
			v, err := numbersPerSecond(ctx, g, s.size)
			if err != nil {
				return nil, err
			}
			res.PerBatch = append(res.PerBatch, v)
			res.Total += s.size
		}
	}
	res.TotalSpeed = float64(res.Total) / clampSeconds(t.Elapsed())

	data := stats.Float64Data(res.PerBatch)
	if res.Worst, err = data.Min(); err != nil {
		return nil, errors.Wrap(err, "worst")
	}
	if res.Best, err = data.Max(); err != nil {
		return nil, errors.Wrap(err, "best")
	}
	if res.Mean, err = data.Mean(); err != nil {
		return nil, errors.Wrap(err, "mean")
	}
	if res.StdDev, err = data.StandardDeviation(); err != nil {
		return nil, errors.Wrap(err, "standard deviation")
	}
	return res, nil
}
