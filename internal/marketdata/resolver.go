package marketdata

import (
	"context"
	"errors"
	"strings"

	"github.com/quantive/gauge/internal/core"
)

// DefaultFallbackSuffix is the secondary-market suffix tried when the
// primary symbol lookup returns no data.
const DefaultFallbackSuffix = ".NS"

// Resolver performs the secondary-suffix symbol fallback exactly once
// per request, before any calculator runs, so every downstream fetch
// sees the same resolved symbol.
type Resolver struct {
	provider Provider
	suffix   string
}

// NewResolver creates a resolver over the given provider. An empty
// suffix falls back to DefaultFallbackSuffix.
func NewResolver(provider Provider, suffix string) *Resolver {
	if suffix == "" {
		suffix = DefaultFallbackSuffix
	}
	return &Resolver{provider: provider, suffix: suffix}
}

// Resolve normalizes the symbol and probes the provider: if the primary
// lookup reports no data and the symbol does not already carry the
// fallback suffix, the suffixed symbol is probed once. Transport
// failures are returned as-is; exhausting both candidates yields
// core.ErrSymbolNotFound.
func (r *Resolver) Resolve(ctx context.Context, symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", core.WrapError(core.ErrSymbolNotFound, errors.New("empty symbol"))
	}

	_, err := r.provider.Snapshot(ctx, symbol)
	if err == nil {
		return symbol, nil
	}
	if !isNoData(err) {
		return "", err
	}

	if strings.HasSuffix(symbol, r.suffix) {
		return "", core.WrapError(core.ErrSymbolNotFound, err)
	}

	alt := symbol + r.suffix
	if _, altErr := r.provider.Snapshot(ctx, alt); altErr == nil {
		return alt, nil
	}
	return "", core.WrapError(core.ErrSymbolNotFound, err)
}

func isNoData(err error) bool {
	return errors.Is(err, core.ErrNoData) || errors.Is(err, core.ErrSymbolNotFound)
}
