package web

import (
	"fmt"
	"os"
	"strconv"
)

const EnvDevMode = "KEXPBOARD_DEV"

// ServerConfig contains settings for running the status server.
// An empty ListenAddr disables it.
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
}

func ServerConfigFromEnv(listenAddr string) (ServerConfig, error) {
	devMode := false
	if raw := os.Getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		devMode = parsed
	}

	return ServerConfig{ListenAddr: listenAddr, DevMode: devMode}, nil
}

// Enabled reports whether a listen address was configured.
func (c ServerConfig) Enabled() bool { return c.ListenAddr != "" }
