package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/quantive/gauge/internal/analysis"
	"github.com/quantive/gauge/internal/config"
	"github.com/quantive/gauge/internal/logger"
	"github.com/quantive/gauge/internal/marketdata"
	"github.com/quantive/gauge/internal/marketdata/yahoo"
	"github.com/quantive/gauge/internal/metrics"
)

// runtime bundles everything a command needs after wiring.
type runtime struct {
	cfg      *config.Config
	log      *zap.Logger
	analyzer *analysis.Analyzer
	metrics  *metrics.Registry
}

// setup loads config and wires the provider chain, analyzer and metrics.
func setup() (*runtime, error) {
	log := logger.Must(debug)

	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.Defaults()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	reg := metrics.NewRegistry()

	// Provider chain: live client -> rate limiter -> cache.
	var provider marketdata.Provider = yahoo.New()
	if cfg.Provider.RateLimitRPS > 0 {
		provider = marketdata.NewRateLimitedProvider(provider,
			cfg.Provider.RateLimitRPS, cfg.Provider.RateLimitBurst)
	}
	if cfg.Provider.CacheEnabled {
		cached := marketdata.NewCachedProvider(provider, cfg.Provider.CacheTTL)
		cached.OnHit(reg.RecordCacheHit)
		cached.OnMiss(reg.RecordCacheMiss)
		provider = cached
	}

	analyzer := analysis.New(provider, analysis.Config{
		LookbackDays:   cfg.Analysis.LookbackDays,
		FallbackSuffix: cfg.Provider.FallbackSuffix,
		Intraday: analysis.IntradayConfig{
			SentimentScale: sentimentScale(cfg.Intraday.SentimentScale),
		},
	}, analysis.WithLogger(log), analysis.WithMetrics(reg))

	rt := &runtime{
		cfg:      cfg,
		log:      log,
		analyzer: analyzer,
		metrics:  reg,
	}
	rt.serveMetrics()
	return rt, nil
}

func sentimentScale(name string) analysis.SentimentScale {
	if name == "normalized" {
		return analysis.NormalizedScale
	}
	return analysis.IdentityScale
}

// serveMetrics exposes the Prometheus registry when requested, either
// by flag or by config.
func (rt *runtime) serveMetrics() {
	addr := metricsAddr
	if addr == "" && rt.cfg.Metrics.Enabled {
		addr = rt.cfg.Metrics.Addr
	}
	if addr == "" {
		return
	}

	path := rt.cfg.Metrics.Path
	if path == "" {
		path = "/metrics"
	}

	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(rt.metrics.Registry, promhttp.HandlerOpts{}))
	go func() {
		rt.log.Info("metrics listener started", zap.String("addr", addr), zap.String("path", path))
		if err := http.ListenAndServe(addr, mux); err != nil {
			rt.log.Error("metrics listener error", zap.Error(err))
		}
	}()
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
