package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Jx2f/mtwist/internal/config"
	"github.com/Jx2f/mtwist/internal/core"
	"github.com/Jx2f/mtwist/pkg/logger"
)

var (
	flagConfig   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "mtwist",
	Short:         "Mersenne Twister MT19937 verification and benchmarking",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", os.Getenv("CONFIG_FILE"), "config file (defaults to $CONFIG_FILE, then built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "trace, debug, info, warn, error or silent")

	rootCmd.AddCommand(verifyCmd, compareCmd, benchCmd, runCmd, drawCmd, configCmd)
}

// loadConfig returns a private copy so flag overrides never leak into
// config.DefaultConfig.
func loadConfig() (*config.Config, error) {
	c := config.DefaultConfig
	if flagConfig != "" {
		var err error
		if c, err = config.LoadConfig(flagConfig); err != nil {
			return nil, err
		}
	}
	c = c.Clone()
	level := c.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	if !logger.SetLevel(level) {
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return c, nil
}

// serve runs task until it finishes or a signal arrives.
func serve(c *config.Config, task config.Task) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s := core.NewService(c)

	exited := make(chan error, 1)
	go func() {
		logger.Info().Str("task", string(task)).Msg("Task is starting")
		exited <- s.Start(task)
	}()

	// Wait for a signal to quit:
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-exited:
		return err
	case <-sig:
		logger.Info().Msg("Signal received, stopping task")
		if err := s.Stop(); err != nil {
			logger.Error().Err(err).Msg("Task stop failed")
		}
		return <-exited
	}
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := json.MarshalIndent(config.DefaultConfig, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(p))
		return err
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("mtwist exited")
		os.Exit(1)
	}
}
