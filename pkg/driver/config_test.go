package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	assert.Equal(t, 600, cfg.MaxWaitTime)
	require.NotNil(t, cfg.MaxRetries)
	assert.Equal(t, 1, *cfg.MaxRetries)
	assert.Equal(t, 5, cfg.PollInterval)
}

func TestConfigExplicitZeroRetries(t *testing.T) {
	zero := 0
	cfg := Config{MaxRetries: &zero}
	cfg.ApplyDefaults()

	assert.Equal(t, 0, *cfg.MaxRetries)
}

func TestLoadConfig(t *testing.T) {
	raw := `
endpoint: https://platform.example.com
token: s3cret
max_wait_time: 120
max_retries: 3
bootstrap:
  catalog_id: cat-linux
  cpus: 4
  memory: 8192
  requested_for: ci@example.com
  lease_days: 7
  subtenant_id: tenant-a
  extra_parameters:
    - key: provider-Environment
      type: string
      value: staging
transport:
  is_windows: true
  username: svc-ci
  winrm_transport: ssl
`
	path := filepath.Join(t.TempDir(), "vmcat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://platform.example.com", cfg.Endpoint)
	assert.Equal(t, 120, cfg.MaxWaitTime)
	assert.Equal(t, 3, *cfg.MaxRetries)
	assert.Equal(t, 5, cfg.PollInterval)

	assert.Equal(t, "cat-linux", cfg.Bootstrap.CatalogID)
	assert.Equal(t, 4, cfg.Bootstrap.CPUs)
	assert.Equal(t, 8192, cfg.Bootstrap.MemoryMB)
	require.NotNil(t, cfg.Bootstrap.LeaseDays)
	assert.Equal(t, 7, *cfg.Bootstrap.LeaseDays)
	require.Len(t, cfg.Bootstrap.ExtraParameters, 1)
	assert.Equal(t, "provider-Environment", cfg.Bootstrap.ExtraParameters[0].Key)

	assert.True(t, cfg.Transport.IsWindows)
	assert.Equal(t, "svc-ci", cfg.Transport.Username)
	assert.Equal(t, "ssl", cfg.Transport.WinRMTransport)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
