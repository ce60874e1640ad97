package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string         `json:"logLevel,omitempty"`
	Verify   *ConfigVerify  `json:"verify,omitempty"`
	Compare  *ConfigCompare `json:"compare,omitempty"`
	Bench    *ConfigBench   `json:"bench,omitempty"`
	Run      *ConfigRun     `json:"run,omitempty"`
}

// ConfigVerify checks seeds [0, Seeds) for Draws outputs each, Passes times.
// Workers 0 means GOMAXPROCS.
type ConfigVerify struct {
	Seeds   uint32 `json:"seeds"`
	Draws   int    `json:"draws"`
	Passes  int    `json:"passes"`
	Workers int    `json:"workers,omitempty"`
}

type ConfigCompare struct {
	Seed       uint32 `json:"seed"`
	Iterations uint64 `json:"iterations"`
	Passes     int    `json:"passes"`
}

// ConfigBench drives the batch benchmark. MaxDraws, when set, caps the draws
// in a normal-sized batch.
type ConfigBench struct {
	Seed         uint32  `json:"seed"`
	Batches      int     `json:"batches"`
	PrimeSeconds float64 `json:"primeSeconds"`
	MaxDraws     uint64  `json:"maxDraws,omitempty"`
}

type ConfigRun struct {
	Seed       uint32 `json:"seed"`
	Iterations uint64 `json:"iterations"`
}

var ErrInvalidConfig = errors.New("invalid config")

// MinBatches is the smallest batch count the bench schedule accepts: it runs
// Batches-30 small and normal batches plus 10 large ones.
const MinBatches = 31

func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()
	c := new(Config)
	d := json.NewDecoder(f)
	d.DisallowUnknownFields()
	if err := d.Decode(c); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Verify == nil {
		return errors.Wrap(ErrInvalidConfig, "no verify section")
	}
	if c.Verify.Seeds == 0 || c.Verify.Draws <= 0 || c.Verify.Passes <= 0 {
		return errors.Wrap(ErrInvalidConfig, "verify: seeds, draws and passes must be positive")
	}
	if c.Verify.Workers < 0 {
		return errors.Wrap(ErrInvalidConfig, "verify: workers must not be negative")
	}
	if c.Compare == nil {
		return errors.Wrap(ErrInvalidConfig, "no compare section")
	}
	if c.Compare.Iterations == 0 || c.Compare.Passes <= 0 {
		return errors.Wrap(ErrInvalidConfig, "compare: iterations and passes must be positive")
	}
	if c.Bench == nil {
		return errors.Wrap(ErrInvalidConfig, "no bench section")
	}
	if c.Bench.Batches < MinBatches {
		return errors.Wrapf(ErrInvalidConfig, "bench: batches must be at least %d", MinBatches)
	}
	if c.Bench.PrimeSeconds <= 0 {
		return errors.Wrap(ErrInvalidConfig, "bench: primeSeconds must be positive")
	}
	if c.Run == nil {
		return errors.Wrap(ErrInvalidConfig, "no run section")
	}
	if c.Run.Iterations == 0 {
		return errors.Wrap(ErrInvalidConfig, "run: iterations must be positive")
	}
	return nil
}

// DefaultConfig mirrors the parameters of the original harness programs.
var DefaultConfig = &Config{
	LogLevel: "info",
	Verify: &ConfigVerify{
		Seeds:  5000,
		Draws:  5000,
		Passes: 2,
	},
	Compare: &ConfigCompare{
		Seed:       0,
		Iterations: 200000000,
		Passes:     10,
	},
	Bench: &ConfigBench{
		Seed:         5769,
		Batches:      40,
		PrimeSeconds: 1.0,
	},
	Run: &ConfigRun{
		Seed:       5769,
		Iterations: 10000000,
	},
}

// Clone returns a deep copy, so flag overrides never touch DefaultConfig.
func (c *Config) Clone() *Config {
	n := *c
	if c.Verify != nil {
		v := *c.Verify
		n.Verify = &v
	}
	if c.Compare != nil {
		v := *c.Compare
		n.Compare = &v
	}
	if c.Bench != nil {
		v := *c.Bench
		n.Bench = &v
	}
	if c.Run != nil {
		v := *c.Run
		n.Run = &v
	}
	return &n
}
