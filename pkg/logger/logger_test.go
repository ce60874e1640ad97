package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	saved := Logger
	defer func() { Logger = saved }()

	assert.True(t, SetLevel("debug"))
	assert.Equal(t, zerolog.DebugLevel, Logger.GetLevel())

	assert.True(t, SetLevel("SILENT"))
	assert.Equal(t, zerolog.Disabled, Logger.GetLevel())

	assert.False(t, SetLevel("loud"))
	assert.Equal(t, zerolog.Disabled, Logger.GetLevel())
}
