package config

import "time"

// Config holds runtime settings for the exchange CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the exchange gRPC endpoint.
//   - MonitorInterval: how often `monitor` polls a price.
//   - RequestTimeout: deadline applied to each RPC.
//   - LocalDBPath: SQLite file caching credentials and the session token.
//   - Command: positional arguments; when set the CLI runs them once
//     instead of starting the REPL.
type Config struct {
	ServerEndpointAddr string
	MonitorInterval    time.Duration
	RequestTimeout     time.Duration
	LocalDBPath        string
	Command            []string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:8980"
	c.MonitorInterval = time.Second
	c.RequestTimeout = 5 * time.Second
	c.LocalDBPath = "vaccx.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
