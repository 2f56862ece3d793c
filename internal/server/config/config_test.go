package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8980", c.EndpointAddrGRPC)
	assert.Equal(t, "redis://localhost:6379/0", c.StorageDSN)
	assert.Equal(t, 600*time.Second, c.SessionTTL)
	assert.Equal(t, 4096, c.LockStripes)
	assert.Equal(t, 5.0, c.DefaultBalance)
	assert.Equal(t, 250, c.ListLimit)
	assert.Equal(t, PasswordModePlain, c.PasswordMode)
	assert.Equal(t, ":9090", c.MetricsAddr)
	assert.Zero(t, c.RateLimitRPS)
	assert.Equal(t, "info", c.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()
	require.NotNil(t, c)

	var want Config
	want.LoadDefaults()
	parseEnv(&want)
	assert.Equal(t, want, *c)
}

func TestParseEnv(t *testing.T) {
	t.Run("port and redis host", func(t *testing.T) {
		t.Setenv("APP_PORT", "9000")
		t.Setenv("REDIS_HOST", "redis")
		t.Setenv("REDIS_PORT", "6380")

		var c Config
		c.LoadDefaults()
		parseEnv(&c)

		assert.Equal(t, ":9000", c.EndpointAddrGRPC)
		assert.Equal(t, "redis://redis:6380/0", c.StorageDSN)
	})

	t.Run("host only keeps default port", func(t *testing.T) {
		t.Setenv("REDIS_HOST", "cache")

		var c Config
		c.LoadDefaults()
		parseEnv(&c)

		assert.Equal(t, "redis://cache:6379/0", c.StorageDSN)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero stripes", func(c *Config) { c.LockStripes = 0 }},
		{"zero ttl", func(c *Config) { c.SessionTTL = 0 }},
		{"zero list limit", func(c *Config) { c.ListLimit = 0 }},
		{"negative balance", func(c *Config) { c.DefaultBalance = -1 }},
		{"unknown password mode", func(c *Config) { c.PasswordMode = "md5" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), common.ErrorValidation)
		})
	}
}
