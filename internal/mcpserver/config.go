package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Loader settings.
	MaxFiles         int
	CacheEnabled     bool
	CacheSize        int
	ParseConcurrency int

	// Inline input limits.
	MaxInlineSize int64
	MaxDocuments  int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from GREEM_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
// A zero ParseConcurrency means GOMAXPROCS.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxFiles:         envInt("GREEM_MAX_FILES", 1000),
		CacheEnabled:     envBool("GREEM_CACHE_ENABLED", true),
		CacheSize:        envInt("GREEM_CACHE_SIZE", 256),
		ParseConcurrency: envInt("GREEM_PARSE_CONCURRENCY", 0),
		MaxInlineSize:    envInt64("GREEM_MAX_INLINE_SIZE", 10*1024*1024),
		MaxDocuments:     envInt("GREEM_MAX_DOCUMENTS", 100),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int64 env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
