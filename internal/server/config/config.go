// Package config handles configuration for the exchange server, including
// defaults, environment overrides, a JSON or YAML file overlay, and
// command-line flags.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/common"
	"github.com/dmitrijs2005/vaccx/internal/flagx"
)

// Password storage modes.
const (
	PasswordModePlain  = "plain"
	PasswordModeBcrypt = "bcrypt"
)

// Config holds runtime settings for the exchange server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - StorageDSN: key-value backend, one of redis://, postgres://, sqlite://, mem://.
//   - SessionTTL: lifetime of a login token.
//   - LockStripes: number of mutexes in each lock arena.
//   - DefaultBalance: balance credited on registration.
//   - ListLimit: max entries returned by List.
//   - PasswordMode: "plain" (stored as given) or "bcrypt".
//   - MetricsAddr: bind address for /metrics; empty disables the endpoint.
//   - RateLimitRPS / RateLimitBurst: per-peer request budget; RPS 0 disables.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrGRPC string
	StorageDSN       string
	SessionTTL       time.Duration
	LockStripes      int
	DefaultBalance   float64
	ListLimit        int
	PasswordMode     string
	MetricsAddr      string
	RateLimitRPS     float64
	RateLimitBurst   int
	LogLevel         string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":8980"
	c.StorageDSN = "redis://localhost:6379/0"
	c.SessionTTL = common.DefaultSessionTTL
	c.LockStripes = common.DefaultLockStripes
	c.DefaultBalance = common.DefaultBalance
	c.ListLimit = common.DefaultListLimit
	c.PasswordMode = PasswordModePlain
	c.MetricsAddr = ":9090"
	c.RateLimitRPS = 0
	c.RateLimitBurst = 0
	c.LogLevel = "info"
}

// parseEnv applies the environment variables understood by the deployed
// service container: APP_PORT, REDIS_HOST and REDIS_PORT.
func parseEnv(c *Config) {
	if port := flagx.EnvInt("APP_PORT", 0); port > 0 {
		c.EndpointAddrGRPC = fmt.Sprintf(":%d", port)
	}

	host := flagx.EnvString("REDIS_HOST", "")
	port := flagx.EnvInt("REDIS_PORT", 0)
	if host == "" && port == 0 {
		return
	}
	if host == "" {
		host = "localhost"
	}
	if port == 0 {
		port = 6379
	}
	c.StorageDSN = fmt.Sprintf("redis://%s:%d/0", host, port)
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if c.LockStripes <= 0 {
		return fmt.Errorf("%w: lock stripes must be positive", common.ErrorValidation)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("%w: session ttl must be positive", common.ErrorValidation)
	}
	if c.ListLimit <= 0 {
		return fmt.Errorf("%w: list limit must be positive", common.ErrorValidation)
	}
	if !(c.DefaultBalance >= 0) {
		return fmt.Errorf("%w: default balance must be non-negative", common.ErrorValidation)
	}
	switch c.PasswordMode {
	case PasswordModePlain, PasswordModeBcrypt:
	default:
		return fmt.Errorf("%w: unknown password mode %q", common.ErrorValidation, c.PasswordMode)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then the environment,
// then an optional config file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
