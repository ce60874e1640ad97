package main

import (
	"bufio"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Jx2f/mtwist/internal/config"
	"github.com/Jx2f/mtwist/pkg/crypto/mt19937"
)

var (
	flagSeeds      uint32
	flagDraws      int
	flagPasses     int
	flagWorkers    int
	flagSeed       uint32
	flagIterations uint64
	flagBatches    int
	flagPrime      float64
	flagMaxDraws   uint64
	flagCount      int
	flagDrawSeed   uint32
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the generator against the reference implementation for a range of seeds",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		f := cmd.Flags()
		if f.Changed("seeds") {
			c.Verify.Seeds = flagSeeds
		}
		if f.Changed("draws") {
			c.Verify.Draws = flagDraws
		}
		if f.Changed("passes") {
			c.Verify.Passes = flagPasses
		}
		if f.Changed("workers") {
			c.Verify.Workers = flagWorkers
		}
		return serve(c, config.TaskVerify)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Time the generator against the reference implementation",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		f := cmd.Flags()
		if f.Changed("seed") {
			c.Compare.Seed = flagSeed
		}
		if f.Changed("iterations") {
			c.Compare.Iterations = flagIterations
		}
		if f.Changed("passes") {
			c.Compare.Passes = flagPasses
		}
		return serve(c, config.TaskCompare)
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Non-rigorous batch benchmark of the generator",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		f := cmd.Flags()
		if f.Changed("seed") {
			c.Bench.Seed = flagSeed
		}
		if f.Changed("batches") {
			c.Bench.Batches = flagBatches
		}
		if f.Changed("prime-seconds") {
			c.Bench.PrimeSeconds = flagPrime
		}
		if f.Changed("max-draws") {
			c.Bench.MaxDraws = flagMaxDraws
		}
		return serve(c, config.TaskBench)
	},
}

var runCmd = &cobra.Command{
	Use:   "run [iterations]",
	Short: "Draw a number of values and report the time taken",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			c.Run.Seed = flagSeed
		}
		if len(args) == 1 {
			if c.Run.Iterations, err = strconv.ParseUint(args[0], 10, 64); err != nil {
				return err
			}
		}
		return serve(c, config.TaskRun)
	},
}

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Print raw 32-bit outputs, one per line",
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := bufio.NewWriter(cmd.OutOrStdout())
		g := mt19937.New(flagDrawSeed)
		for i := 0; i < flagCount; i++ {
			w.WriteString(strconv.FormatUint(uint64(g.Uint32()), 10))
			w.WriteByte('\n')
		}
		return w.Flush()
	},
}

func init() {
	verifyCmd.Flags().Uint32Var(&flagSeeds, "seeds", 0, "number of seeds, starting at 0")
	verifyCmd.Flags().IntVar(&flagDraws, "draws", 0, "outputs compared per seed")
	verifyCmd.Flags().IntVar(&flagPasses, "passes", 0, "number of passes")
	verifyCmd.Flags().IntVar(&flagWorkers, "workers", 0, "parallel workers, 0 for GOMAXPROCS")

	compareCmd.Flags().Uint32Var(&flagSeed, "seed", 0, "seed")
	compareCmd.Flags().Uint64Var(&flagIterations, "iterations", 0, "outputs drawn per pass")
	compareCmd.Flags().IntVar(&flagPasses, "passes", 0, "number of passes")

	benchCmd.Flags().Uint32Var(&flagSeed, "seed", 0, "seed")
	benchCmd.Flags().IntVar(&flagBatches, "batches", 0, "batch count, at least 31")
	benchCmd.Flags().Float64Var(&flagPrime, "prime-seconds", 0, "seconds spent estimating the draw rate")
	benchCmd.Flags().Uint64Var(&flagMaxDraws, "max-draws", 0, "cap on draws in a normal batch, 0 for none")

	runCmd.Flags().Uint32Var(&flagSeed, "seed", 0, "seed")

	drawCmd.Flags().Uint32Var(&flagDrawSeed, "seed", mt19937.DefaultSeed, "seed")
	drawCmd.Flags().IntVar(&flagCount, "count", 10, "number of outputs")
}
