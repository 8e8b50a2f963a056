package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("CHESSCOACH_ENGINE_PATH", "/opt/sf")
	t.Setenv("CHESSCOACH_ENGINE_DEPTH", "0")
	t.Setenv("CHESSCOACH_ENGINE_MOVETIME_MS", "250")
	t.Setenv("CHESSCOACH_ENGINE_MULTIPV", "5")
	t.Setenv("CHESSCOACH_ENGINE_POOL_SIZE", "4")
	t.Setenv("CHESSCOACH_ENGINE_THREADS", "not-a-number")

	cfg := ConfigFromEnv()
	assert.Equal(t, "/opt/sf", cfg.Path)
	assert.Equal(t, 0, cfg.Depth)
	assert.Equal(t, 250*time.Millisecond, cfg.MoveTime)
	assert.Equal(t, 5, cfg.MultiPV)
	assert.Equal(t, 4, cfg.PoolSize)
	assert.Equal(t, 1, cfg.Threads, "bad values fall back to the default")
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "go movetime 250", (&Engine{cfg: cfg}).goCommand())
}

func TestConfigFromEnvMoveTimeOnly(t *testing.T) {
	t.Setenv("CHESSCOACH_ENGINE_MOVETIME_MS", "800")

	cfg := ConfigFromEnv()
	assert.Equal(t, 0, cfg.Depth, "movetime alone replaces the default depth")
	assert.Equal(t, 800*time.Millisecond, cfg.MoveTime)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "go movetime 800", (&Engine{cfg: cfg}).goCommand())
}

func TestConfigFromEnvDepthWins(t *testing.T) {
	t.Setenv("CHESSCOACH_ENGINE_DEPTH", "12")
	t.Setenv("CHESSCOACH_ENGINE_MOVETIME_MS", "800")

	cfg := ConfigFromEnv()
	assert.Equal(t, 12, cfg.Depth)
	assert.Equal(t, "go depth 12", (&Engine{cfg: cfg}).goCommand())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty path", func(c *Config) { c.Path = "" }},
		{"negative depth", func(c *Config) { c.Depth = -1 }},
		{"no limit", func(c *Config) { c.Depth = 0; c.MoveTime = 0 }},
		{"zero threads", func(c *Config) { c.Threads = 0 }},
		{"zero hash", func(c *Config) { c.HashMB = 0 }},
		{"multipv too high", func(c *Config) { c.MultiPV = 500 }},
		{"zero pool", func(c *Config) { c.PoolSize = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
