package server

import (
	"fmt"
	"strconv"
)

// DefaultPort is used when no valid port is configured.
const DefaultPort = 8000

// Config holds configuration for the local HTTP server.
type Config struct {
	// Host is the address to bind. The default binds all interfaces.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000"`
	// Root is the directory served as the document root.
	Root string `mapstructure:"root" default:"."`
	// OpenBrowser launches a browser on desktop sessions.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
}

// ParsePort parses a port number in [1, 65535].
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid port number: %s", s)
	}
	return port, nil
}

// ResolvePort returns the configured port, or DefaultPort when the value
// does not parse. The boolean reports whether the fallback was taken.
func (c Config) ResolvePort() (int, bool) {
	port, err := ParsePort(c.Port)
	if err != nil {
		return DefaultPort, true
	}
	return port, false
}
