package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantive/gauge/internal/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
provider:
  name: yahoo
  fallback_suffix: ".NS"
  cache_enabled: true
  cache_ttl: 5m
  rate_limit_rps: 2
  rate_limit_burst: 3
analysis:
  lookback_days: 180
intraday:
  sentiment_scale: normalized
watch:
  schedule: "@every 30m"
  symbols: [AAPL, MSFT]
metrics:
  enabled: true
  addr: ":9091"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "yahoo", cfg.Provider.Name)
	assert.Equal(t, ".NS", cfg.Provider.FallbackSuffix)
	assert.True(t, cfg.Provider.CacheEnabled)
	assert.Equal(t, 5*time.Minute, cfg.Provider.CacheTTL)
	assert.Equal(t, 2.0, cfg.Provider.RateLimitRPS)
	assert.Equal(t, 3, cfg.Provider.RateLimitBurst)
	assert.Equal(t, 180, cfg.Analysis.LookbackDays)
	assert.Equal(t, "normalized", cfg.Intraday.SentimentScale)
	assert.Equal(t, "@every 30m", cfg.Watch.Schedule)
	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Watch.Symbols)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9091", cfg.Metrics.Addr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("GAUGE_TEST_SUFFIX", ".HK")
	path := writeConfig(t, `
provider:
  fallback_suffix: "${GAUGE_TEST_SUFFIX}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ".HK", cfg.Provider.FallbackSuffix)
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "yahoo", cfg.Provider.Name)
	assert.Equal(t, ".NS", cfg.Provider.FallbackSuffix)
	assert.Equal(t, 365, cfg.Analysis.LookbackDays)
	assert.Equal(t, "identity", cfg.Intraday.SentimentScale)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr *core.Error
	}{
		{"unknown provider", func(c *Config) { c.Provider.Name = "bloomberg" }, core.ErrConfigInvalid},
		{"negative rps", func(c *Config) { c.Provider.RateLimitRPS = -1 }, core.ErrConfigInvalid},
		{"negative ttl", func(c *Config) { c.Provider.CacheTTL = -time.Second }, core.ErrConfigInvalid},
		{"negative lookback", func(c *Config) { c.Analysis.LookbackDays = -1 }, core.ErrConfigInvalid},
		{"bad sentiment scale", func(c *Config) { c.Intraday.SentimentScale = "log" }, core.ErrConfigInvalid},
		{"symbols without schedule", func(c *Config) {
			c.Watch.Symbols = []string{"AAPL"}
			c.Watch.Schedule = ""
		}, core.ErrConfigMissing},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
