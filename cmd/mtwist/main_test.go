package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jx2f/mtwist/internal/config"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestDrawCommand(t *testing.T) {
	out := execute(t, "draw", "--seed", "1", "--count", "2")
	assert.Equal(t, []string{"1791095845", "4282876139"}, strings.Fields(out))
}

func TestConfigCommand(t *testing.T) {
	out := execute(t, "config")
	c := new(config.Config)
	require.NoError(t, json.Unmarshal([]byte(out), c))
	assert.Equal(t, config.DefaultConfig, c)
}

func TestRunCommand(t *testing.T) {
	execute(t, "run", "--log-level", "silent", "--seed", "5769", "1000")
}

func TestVerifyCommand(t *testing.T) {
	execute(t, "verify", "--log-level", "silent", "--seeds", "10", "--draws", "700", "--passes", "1")
	// defaults stay untouched by flag overrides
	assert.Equal(t, uint32(5000), config.DefaultConfig.Verify.Seeds)
}
