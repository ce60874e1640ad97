package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, v any) string {
	t.Helper()
	p, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, p, 0o600))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig.Validate())
}

func TestLoadConfigRoundTrip(t *testing.T) {
	c := DefaultConfig.Clone()
	c.Verify.Seeds = 10
	c.Run.Seed = 1
	path := writeConfig(t, c)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestLoadConfigUnknownField(t *testing.T) {
	path := writeConfig(t, map[string]any{"logLevel": "info", "seedz": 1})
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"no verify":       func(c *Config) { c.Verify = nil },
		"zero seeds":      func(c *Config) { c.Verify.Seeds = 0 },
		"negative worker": func(c *Config) { c.Verify.Workers = -1 },
		"no compare":      func(c *Config) { c.Compare = nil },
		"zero iterations": func(c *Config) { c.Compare.Iterations = 0 },
		"few batches":     func(c *Config) { c.Bench.Batches = 30 },
		"zero prime":      func(c *Config) { c.Bench.PrimeSeconds = 0 },
		"no run":          func(c *Config) { c.Run = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := DefaultConfig.Clone()
			mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Equal(t, ErrInvalidConfig, errors.Cause(err))
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := DefaultConfig.Clone()
	c.Bench.Seed = 1
	assert.Equal(t, uint32(5769), DefaultConfig.Bench.Seed)
}

func TestParseTask(t *testing.T) {
	for _, task := range Tasks {
		got, err := ParseTask(string(task))
		require.NoError(t, err)
		assert.Equal(t, task, got)
	}
	_, err := ParseTask("fuzz")
	assert.Error(t, err)
}
