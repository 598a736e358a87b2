package server

import (
	"fmt"
	"strconv"
)

// Host is the address the server binds to. It is fixed for the process
// lifetime; only the port is configurable.
const Host = "0.0.0.0"

// DefaultPort is used when no port is set in the environment.
const DefaultPort = "8000"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the TCP port the server will listen on. Populated from the
	// PORT environment variable (or SERVER_PORT), defaulting to 8000.
	Port string `mapstructure:"port" default:"8000"`
	// ClientDir is the local directory served as the static mini-app
	// under /client.
	ClientDir string `mapstructure:"client_dir" default:"client"`
}

// ParsePort validates the configured port and returns it as an integer.
// An empty port falls back to DefaultPort; anything non-numeric or outside
// the TCP port range is a startup error.
func (c Config) ParsePort() (int, error) {
	raw := c.Port
	if raw == "" {
		raw = DefaultPort
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d out of range (1-65535)", port)
	}
	return port, nil
}

// Addr returns the listen address (host:port) or an error if the port is
// invalid.
func (c Config) Addr() (string, error) {
	port, err := c.ParsePort()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d", Host, port), nil
}
