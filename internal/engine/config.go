package engine

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the settings for a UCI engine process.
type Config struct {
	// Path is the engine binary. Default: "stockfish", resolved via $PATH.
	Path string

	// Depth limits each search to a fixed depth and takes precedence over
	// MoveTime. When zero, MoveTime is used. Default: 15.
	Depth int

	// MoveTime bounds each search when Depth is zero. Default: 500ms.
	MoveTime time.Duration

	Threads int
	HashMB  int

	// MultiPV is how many ranked lines a search reports. Default: 3.
	MultiPV int

	// PoolSize is how many engine processes a Pool runs. Default: 1.
	PoolSize int

	// StartTimeout bounds the uci/isready handshake. Default: 5s.
	StartTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Path:         "stockfish",
		Depth:        15,
		MoveTime:     500 * time.Millisecond,
		Threads:      1,
		HashMB:       16,
		MultiPV:      3,
		PoolSize:     1,
		StartTimeout: 5 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset or unparsable values. Setting only
// CHESSCOACH_ENGINE_MOVETIME_MS switches searches to movetime; when both
// limits are set, depth wins.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("CHESSCOACH_ENGINE_PATH"); p != "" {
		cfg.Path = p
	}
	depth, depthSet := envInt("CHESSCOACH_ENGINE_DEPTH")
	if depthSet {
		cfg.Depth = depth
	}
	if n, ok := envInt("CHESSCOACH_ENGINE_MOVETIME_MS"); ok {
		cfg.MoveTime = time.Duration(n) * time.Millisecond
		// A movetime on its own replaces the default depth limit.
		if !depthSet {
			cfg.Depth = 0
		}
	}
	if n, ok := envInt("CHESSCOACH_ENGINE_THREADS"); ok {
		cfg.Threads = n
	}
	if n, ok := envInt("CHESSCOACH_ENGINE_HASH_MB"); ok {
		cfg.HashMB = n
	}
	if n, ok := envInt("CHESSCOACH_ENGINE_MULTIPV"); ok {
		cfg.MultiPV = n
	}
	if n, ok := envInt("CHESSCOACH_ENGINE_POOL_SIZE"); ok {
		cfg.PoolSize = n
	}

	return cfg
}

// Validate checks that the configuration can start an engine.
func (c Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("engine path is required")
	}
	if c.Depth < 0 {
		return fmt.Errorf("depth must be >= 0, got %d", c.Depth)
	}
	if c.Depth == 0 && c.MoveTime <= 0 {
		return fmt.Errorf("either depth or movetime must be set")
	}
	if c.Threads < 1 {
		return fmt.Errorf("threads must be >= 1, got %d", c.Threads)
	}
	if c.HashMB < 1 {
		return fmt.Errorf("hash must be >= 1 MB, got %d", c.HashMB)
	}
	if c.MultiPV < 1 || c.MultiPV > 256 {
		return fmt.Errorf("multipv must be between 1 and 256, got %d", c.MultiPV)
	}
	if c.PoolSize < 1 {
		return fmt.Errorf("pool size must be >= 1, got %d", c.PoolSize)
	}
	return nil
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
