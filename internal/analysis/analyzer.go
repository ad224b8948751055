package analysis

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/quantive/gauge/internal/core"
	"github.com/quantive/gauge/internal/marketdata"
	"github.com/quantive/gauge/internal/metrics"
)

// DefaultLookbackDays covers roughly one trading year of history.
const DefaultLookbackDays = 365

// Config tunes an Analyzer.
type Config struct {
	LookbackDays   int
	FallbackSuffix string
	Intraday       IntradayConfig
}

// Option configures optional Analyzer collaborators.
type Option func(*Analyzer)

// WithLogger sets the analyzer logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithMetrics sets the metrics registry.
func WithMetrics(reg *metrics.Registry) Option {
	return func(a *Analyzer) { a.metrics = reg }
}

// Analyzer runs the full scoring pipeline for a symbol. Every
// invocation is request-scoped: it resolves the symbol once, fetches
// fresh data and recomputes everything; no state survives between
// calls.
type Analyzer struct {
	provider marketdata.Provider
	resolver *marketdata.Resolver
	cfg      Config
	logger   *zap.Logger
	metrics  *metrics.Registry
}

// New creates an analyzer over the given provider.
func New(provider marketdata.Provider, cfg Config, opts ...Option) *Analyzer {
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = DefaultLookbackDays
	}
	a := &Analyzer{
		provider: provider,
		resolver: marketdata.NewResolver(provider, cfg.FallbackSuffix),
		cfg:      cfg,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// dataset is the per-request view of everything the scorers consume.
type dataset struct {
	symbol string
	prices core.PriceSeries
	stmts  *core.Statements
	snap   *core.Snapshot
}

// fetch resolves the symbol once and gathers the three datasets. Each
// individual fetch fails soft: the error is logged and the dataset
// field left nil so the scorers degrade instead of aborting. Only a
// total absence of data is an error.
func (a *Analyzer) fetch(ctx context.Context, symbol string) (*dataset, error) {
	resolved, err := a.resolver.Resolve(ctx, symbol)
	if err != nil {
		return nil, err
	}

	ds := &dataset{symbol: resolved}

	if prices, err := a.provider.PriceHistory(ctx, resolved, a.cfg.LookbackDays); err != nil {
		a.recordFetch(marketdata.KindPrices, "error")
		a.logger.Warn("price history unavailable", zap.String("symbol", resolved), zap.Error(err))
	} else {
		a.recordFetch(marketdata.KindPrices, "ok")
		ds.prices = prices
	}

	if stmts, err := a.provider.Statements(ctx, resolved); err != nil {
		a.recordFetch(marketdata.KindStatements, "error")
		a.logger.Warn("statements unavailable", zap.String("symbol", resolved), zap.Error(err))
	} else {
		a.recordFetch(marketdata.KindStatements, "ok")
		ds.stmts = stmts
	}

	if snap, err := a.provider.Snapshot(ctx, resolved); err != nil {
		a.recordFetch(marketdata.KindSnapshot, "error")
		a.logger.Warn("snapshot unavailable", zap.String("symbol", resolved), zap.Error(err))
	} else {
		a.recordFetch(marketdata.KindSnapshot, "ok")
		ds.snap = snap
	}

	if ds.prices.Len() == 0 && ds.stmts == nil && ds.snap == nil {
		return nil, core.WrapError(core.ErrNoData, nil)
	}
	return ds, nil
}

// Analyze runs all five scorers and combines them into the composite
// rating.
func (a *Analyzer) Analyze(ctx context.Context, symbol string) (*core.CompositeScore, error) {
	start := time.Now()

	ds, err := a.fetch(ctx, symbol)
	if err != nil {
		a.recordAnalysis("composite", "error", start)
		return nil, err
	}

	fund := ScoreFundamentals(ds.symbol, ds.stmts, ds.snap)
	earn := ScoreEarnings(ds.symbol, ds.stmts)
	tech := ScoreTechnical(ds.symbol, ds.prices)
	sent := ScoreSentiment(ds.symbol, ds.snap)
	esg := ScoreESGRisk(ds.symbol, ds.snap)

	score := Composite(ds.symbol, fund, earn, tech, sent, esg)

	a.recordAnalysis("composite", "ok", start)
	a.logger.Info("analysis complete",
		zap.String("symbol", ds.symbol),
		zap.Float64("total_score", score.Total),
		zap.String("band", score.Band),
	)
	return score, nil
}

// Technical runs only the indicator pass.
func (a *Analyzer) Technical(ctx context.Context, symbol string) (*core.TechnicalIndicators, error) {
	resolved, err := a.resolver.Resolve(ctx, symbol)
	if err != nil {
		return nil, err
	}
	prices, err := a.provider.PriceHistory(ctx, resolved, a.cfg.LookbackDays)
	if err != nil {
		return nil, err
	}
	return ScoreTechnical(resolved, prices), nil
}

// Fundamentals runs only the fundamental ratio pass.
func (a *Analyzer) Fundamentals(ctx context.Context, symbol string) (*core.FundamentalSummary, error) {
	ds, err := a.fetch(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return ScoreFundamentals(ds.symbol, ds.stmts, ds.snap), nil
}

// Earnings runs only the earnings quality pass.
func (a *Analyzer) Earnings(ctx context.Context, symbol string) (*core.EarningsQuality, error) {
	resolved, err := a.resolver.Resolve(ctx, symbol)
	if err != nil {
		return nil, err
	}
	stmts, err := a.provider.Statements(ctx, resolved)
	if err != nil {
		return nil, err
	}
	return ScoreEarnings(resolved, stmts), nil
}

// Sentiment runs only the sentiment pass.
func (a *Analyzer) Sentiment(ctx context.Context, symbol string) (*core.MarketSentiment, error) {
	resolved, err := a.resolver.Resolve(ctx, symbol)
	if err != nil {
		return nil, err
	}
	snap, err := a.provider.Snapshot(ctx, resolved)
	if err != nil {
		return nil, err
	}
	return ScoreSentiment(resolved, snap), nil
}

// ESGRisk runs only the ESG and risk pass.
func (a *Analyzer) ESGRisk(ctx context.Context, symbol string) (*core.ESGRisk, error) {
	resolved, err := a.resolver.Resolve(ctx, symbol)
	if err != nil {
		return nil, err
	}
	snap, err := a.provider.Snapshot(ctx, resolved)
	if err != nil {
		return nil, err
	}
	return ScoreESGRisk(resolved, snap), nil
}

// Intraday derives the short-horizon trade levels. The current price
// resolves from the snapshot, falling back to the latest close; its
// absence is the single fatal precondition and surfaces as
// core.ErrNoPrice, distinct from the soft-degraded sub-analyses.
func (a *Analyzer) Intraday(ctx context.Context, symbol string) (*core.IntradayLevels, error) {
	start := time.Now()

	ds, err := a.fetch(ctx, symbol)
	if err != nil {
		a.recordAnalysis("intraday", "error", start)
		return nil, err
	}

	var currentPrice float64
	if ds.snap != nil && ds.snap.CurrentPrice != nil {
		currentPrice = *ds.snap.CurrentPrice
	} else if latest := ds.prices.Latest(); latest != nil {
		currentPrice = *latest
	}
	if currentPrice <= 0 {
		a.recordAnalysis("intraday", "error", start)
		return nil, core.ErrNoPrice
	}

	tech := ScoreTechnical(ds.symbol, ds.prices)
	sent := ScoreSentiment(ds.symbol, ds.snap)

	levels, err := DeriveIntraday(ds.symbol, currentPrice, tech, sent, a.cfg.Intraday)
	if err != nil {
		a.recordAnalysis("intraday", "error", start)
		return nil, err
	}

	a.recordAnalysis("intraday", "ok", start)
	a.logger.Info("intraday levels derived",
		zap.String("symbol", ds.symbol),
		zap.Float64("entry", levels.EntryPrice),
		zap.Float64("exit", levels.ExitPrice),
		zap.Float64("stop", levels.StopLoss),
		zap.Float64("risk_reward", levels.RiskRewardRatio),
	)
	return levels, nil
}

func (a *Analyzer) recordAnalysis(kind, result string, start time.Time) {
	if a.metrics != nil {
		a.metrics.RecordAnalysis(kind, result, time.Since(start))
	}
}

func (a *Analyzer) recordFetch(kind, outcome string) {
	if a.metrics != nil {
		a.metrics.RecordFetch(kind, outcome)
	}
}
