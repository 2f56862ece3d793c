package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:8980", c.ServerEndpointAddr)
	assert.Equal(t, time.Second, c.MonitorInterval)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.Equal(t, "vaccx.db", c.LocalDBPath)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"client"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "127.0.0.1:8980", cfg.ServerEndpointAddr)
	assert.Equal(t, time.Second, cfg.MonitorInterval)
	assert.Empty(t, cfg.Command)
}
