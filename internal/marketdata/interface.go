package marketdata

import (
	"context"

	"github.com/quantive/gauge/internal/core"
)

// Data kinds used by caching and metrics.
const (
	KindPrices     = "prices"
	KindStatements = "statements"
	KindSnapshot   = "snapshot"
)

// Provider is the narrow capability interface the scoring pipeline
// depends on. Implementations report missing symbols with
// core.ErrSymbolNotFound or core.ErrNoData and transport problems with
// core.ErrProviderFailed so callers can tell the two apart.
type Provider interface {
	Name() string

	// PriceHistory returns closing prices for the symbol covering
	// roughly lookbackDays calendar days, most recent first.
	PriceHistory(ctx context.Context, symbol string, lookbackDays int) (core.PriceSeries, error)

	// Statements returns the income statement, balance sheet and
	// cash-flow statement series.
	Statements(ctx context.Context, symbol string) (*core.Statements, error)

	// Snapshot returns the point-in-time company snapshot.
	Snapshot(ctx context.Context, symbol string) (*core.Snapshot, error)
}

// Registry manages provider instances by name.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

func (r *Registry) Register(p Provider) {
	r.providers[p.Name()] = p
}

func (r *Registry) Get(name string) (Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}
