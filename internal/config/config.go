package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/quantive/gauge/internal/core"
	"github.com/spf13/viper"
)

type Config struct {
	Provider ProviderConfig `mapstructure:"provider"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Intraday IntradayConfig `mapstructure:"intraday"`
	Search   SearchConfig   `mapstructure:"search"`
	Watch    WatchConfig    `mapstructure:"watch"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// ProviderConfig selects and tunes the market data source.
type ProviderConfig struct {
	Name           string        `mapstructure:"name"`
	FallbackSuffix string        `mapstructure:"fallback_suffix"`
	CacheEnabled   bool          `mapstructure:"cache_enabled"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
	RateLimitRPS   float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst int           `mapstructure:"rate_limit_burst"`
}

// AnalysisConfig tunes the scoring pipeline.
type AnalysisConfig struct {
	LookbackDays int `mapstructure:"lookback_days"`
}

// IntradayConfig tunes trade level derivation.
type IntradayConfig struct {
	SentimentScale string `mapstructure:"sentiment_scale"` // "identity" or "normalized"
}

// SearchConfig tunes the news search collaborator.
type SearchConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	MaxResults int  `mapstructure:"max_results"`
}

// WatchConfig holds watchlist scanning settings.
type WatchConfig struct {
	Schedule string   `mapstructure:"schedule"`
	Symbols  []string `mapstructure:"symbols"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from file
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Support environment variable overrides
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Provider: ProviderConfig{
			Name:           "yahoo",
			FallbackSuffix: ".NS",
			CacheEnabled:   true,
			CacheTTL:       time.Minute,
			RateLimitRPS:   5,
			RateLimitBurst: 1,
		},
		Analysis: AnalysisConfig{
			LookbackDays: 365,
		},
		Intraday: IntradayConfig{
			SentimentScale: "identity",
		},
		Search: SearchConfig{
			Enabled:    true,
			MaxResults: 3,
		},
		Watch: WatchConfig{
			Schedule: "@every 15m",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    ":9090",
			Path:    "/metrics",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	// Provider validation
	switch c.Provider.Name {
	case "", "yahoo":
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("unknown provider %q", c.Provider.Name))
	}
	if c.Provider.RateLimitRPS < 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("rate_limit_rps cannot be negative, got %f", c.Provider.RateLimitRPS))
	}
	if c.Provider.CacheTTL < 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("cache_ttl cannot be negative, got %s", c.Provider.CacheTTL))
	}

	// Analysis validation
	if c.Analysis.LookbackDays < 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("lookback_days cannot be negative, got %d", c.Analysis.LookbackDays))
	}

	// Intraday validation
	switch c.Intraday.SentimentScale {
	case "", "identity", "normalized":
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("sentiment_scale must be identity or normalized, got %q", c.Intraday.SentimentScale))
	}

	// Watch validation - symbols required when a schedule is set
	if len(c.Watch.Symbols) > 0 && c.Watch.Schedule == "" {
		return core.WrapError(core.ErrConfigMissing,
			fmt.Errorf("watch schedule required when symbols are configured"))
	}

	return nil
}
