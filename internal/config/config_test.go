package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TOKEN_KEY", "k")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8443", cfg.Addr)
	assert.Equal(t, "admin", cfg.AdminLogin)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.False(t, cfg.TLS())
}

func TestLoad_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TIMBERLINE_ADDR=:9000\nCATALOG_PATH=/srv/catalog.xlsx\n"), 0o644))
	t.Setenv("TOKEN_KEY", "k")
	t.Setenv("TIMBERLINE_ADDR", "")
	os.Unsetenv("TIMBERLINE_ADDR")
	t.Setenv("CATALOG_PATH", "/etc/override.csv")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/etc/override.csv", cfg.CatalogPath, "process environment wins over the file")
}

func TestLoad_RequiresTokenKey(t *testing.T) {
	t.Setenv("TOKEN_KEY", "")
	os.Unsetenv("TOKEN_KEY")
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestLoad_RejectsBadRateLimit(t *testing.T) {
	t.Setenv("TOKEN_KEY", "k")
	t.Setenv("RATE_LIMIT_RPS", "0")
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestConfig_TLS(t *testing.T) {
	assert.True(t, Config{TLSCert: "a.crt", TLSKey: "a.key"}.TLS())
	assert.False(t, Config{TLSCert: "a.crt"}.TLS())
}
