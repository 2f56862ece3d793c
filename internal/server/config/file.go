package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/vaccx/internal/flagx"
	"github.com/dmitrijs2005/vaccx/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration. Pointer fields let a
// file override only what it mentions; everything else keeps the value from
// defaults and environment.
type FileConfig struct {
	EndpointAddrGRPC *string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	StorageDSN       *string         `json:"storage_dsn" yaml:"storage_dsn"`
	SessionTTL       *timex.Duration `json:"session_ttl" yaml:"session_ttl"`
	LockStripes      *int            `json:"lock_stripes" yaml:"lock_stripes"`
	DefaultBalance   *float64        `json:"default_balance" yaml:"default_balance"`
	ListLimit        *int            `json:"list_limit" yaml:"list_limit"`
	PasswordMode     *string         `json:"password_mode" yaml:"password_mode"`
	MetricsAddr      *string         `json:"metrics_addr" yaml:"metrics_addr"`
	RateLimitRPS     *float64        `json:"rate_limit_rps" yaml:"rate_limit_rps"`
	RateLimitBurst   *int            `json:"rate_limit_burst" yaml:"rate_limit_burst"`
	LogLevel         *string         `json:"log_level" yaml:"log_level"`
}

// parseFile loads the file named by -c/-config, if any, into config.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
// An unreadable or malformed file panics: the server must not start on a
// half-applied configuration.
func parseFile(config *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc, err := decodeFile(path, data)
	if err != nil {
		panic(err)
	}

	fc.apply(config)
}

func decodeFile(path string, data []byte) (*FileConfig, error) {
	fc := &FileConfig{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, fc); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, fc); err != nil {
			return nil, err
		}
	}

	return fc, nil
}

func (fc *FileConfig) apply(c *Config) {
	if fc.EndpointAddrGRPC != nil {
		c.EndpointAddrGRPC = *fc.EndpointAddrGRPC
	}
	if fc.StorageDSN != nil {
		c.StorageDSN = *fc.StorageDSN
	}
	if fc.SessionTTL != nil {
		c.SessionTTL = fc.SessionTTL.Duration
	}
	if fc.LockStripes != nil {
		c.LockStripes = *fc.LockStripes
	}
	if fc.DefaultBalance != nil {
		c.DefaultBalance = *fc.DefaultBalance
	}
	if fc.ListLimit != nil {
		c.ListLimit = *fc.ListLimit
	}
	if fc.PasswordMode != nil {
		c.PasswordMode = *fc.PasswordMode
	}
	if fc.MetricsAddr != nil {
		c.MetricsAddr = *fc.MetricsAddr
	}
	if fc.RateLimitRPS != nil {
		c.RateLimitRPS = *fc.RateLimitRPS
	}
	if fc.RateLimitBurst != nil {
		c.RateLimitBurst = *fc.RateLimitBurst
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
}
