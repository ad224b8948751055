// Package watch runs the scoring pipeline over a fixed watchlist on a
// cron schedule.
package watch

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/quantive/gauge/internal/analysis"
	"github.com/quantive/gauge/internal/metrics"
)

// Watcher periodically scores every watchlist symbol and logs the
// results. One cycle runs at a time; if a cycle overruns the schedule
// the next tick is skipped.
type Watcher struct {
	analyzer *analysis.Analyzer
	symbols  []string
	schedule string
	logger   *zap.Logger
	metrics  *metrics.Registry

	cron    *cron.Cron
	mu      sync.Mutex
	running bool
}

// New creates a watcher. schedule accepts standard cron expressions and
// descriptors like "@every 15m".
func New(analyzer *analysis.Analyzer, symbols []string, schedule string, logger *zap.Logger, reg *metrics.Registry) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		analyzer: analyzer,
		symbols:  symbols,
		schedule: schedule,
		logger:   logger,
		metrics:  reg,
		cron:     cron.New(),
	}
}

// Start registers the schedule, runs one cycle immediately, and begins
// ticking. It returns once the cron loop is started.
func (w *Watcher) Start(ctx context.Context) error {
	if _, err := w.cron.AddFunc(w.schedule, func() {
		w.runCycle(ctx)
	}); err != nil {
		return err
	}

	go w.runCycle(ctx)
	w.cron.Start()
	w.logger.Info("watcher started",
		zap.String("schedule", w.schedule),
		zap.Int("symbols", len(w.symbols)),
	)
	return nil
}

// Stop halts the schedule and waits for any in-flight cycle jobs.
func (w *Watcher) Stop() {
	stopCtx := w.cron.Stop()
	<-stopCtx.Done()
	w.logger.Info("watcher stopped")
}

// runCycle scores every symbol once. Failures are logged per symbol and
// never abort the rest of the cycle.
func (w *Watcher) runCycle(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		w.logger.Warn("previous cycle still running, skipping tick")
		return
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	for _, symbol := range w.symbols {
		select {
		case <-ctx.Done():
			return
		default:
		}

		score, err := w.analyzer.Analyze(ctx, symbol)
		if err != nil {
			w.logger.Error("watchlist analysis failed",
				zap.String("symbol", symbol),
				zap.Error(err),
			)
			continue
		}
		w.logger.Info("watchlist score",
			zap.String("symbol", score.Symbol),
			zap.Float64("total_score", score.Total),
			zap.String("band", score.Band),
			zap.String("assessment", score.Assessment),
		)
	}

	if w.metrics != nil {
		w.metrics.RecordWatchCycle()
	}
}
