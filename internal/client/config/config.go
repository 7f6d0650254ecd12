package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the authctl CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the account service gRPC endpoint.
//   - RequestTimeout: deadline applied to every call.
//   - Origin: value sent in the "origin" metadata, empty to send none.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	Origin             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.Origin = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if cfg.ServerEndpointAddr == "" {
		return nil, fmt.Errorf("invalid config: server address is empty")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("invalid config: request timeout must be positive")
	}
	return cfg, nil
}
