package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "base.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigBase(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("..", "configs", "base.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.API.Port)
	assert.True(t, cfg.Limiter.Enabled)
	assert.Equal(t, "memory", cfg.Registry.Kind)
	assert.Equal(t, "ratings", cfg.Kafka.Topic)
	assert.False(t, cfg.Kafka.Enabled)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, "api:\n  port: 4000\n"))
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.API.Port)
	assert.Equal(t, "development", cfg.API.Env)
	assert.Equal(t, "memory", cfg.Registry.Kind)
	assert.Equal(t, "movie", cfg.Kafka.GroupID)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "registry:\n  kind: etcd\n"))
	assert.ErrorContains(t, err, "etcd")

	_, err = loadConfig(writeConfig(t, "api: [\n"))
	assert.Error(t, err)
}
