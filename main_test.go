package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/iburimskiy/sorry-card/internal/config"
)

func TestApplyFlagsOverridesEnv(t *testing.T) {
	t.Setenv("CARD_WINDOW_WIDTH", "640")
	t.Setenv("CARD_MUTED", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--height", "480", "--muted=false", "--to", "Sam", "--seed", "9"}))
	require.NoError(t, applyFlags(cmd, &cfg))

	assert.Equal(t, 640, cfg.WindowWidth, "unset flag keeps env value")
	assert.Equal(t, 480, cfg.WindowHeight)
	assert.False(t, cfg.Muted)
	assert.Equal(t, "Sam", cfg.Recipient)
	assert.Equal(t, uint64(9), cfg.Seed)
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = newLogger("loud")
	assert.Error(t, err)
}
