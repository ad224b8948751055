package marketdata

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/quantive/gauge/internal/core"
)

// RateLimitedProvider gates every provider call through a shared token
// bucket so upstream quotas are respected across concurrent requests.
type RateLimitedProvider struct {
	inner   Provider
	limiter *rate.Limiter
}

// NewRateLimitedProvider wraps inner with a limiter allowing rps
// requests per second with the given burst. Non-positive values default
// to 5 rps / burst 1.
func NewRateLimitedProvider(inner Provider, rps float64, burst int) *RateLimitedProvider {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimitedProvider{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedProvider) Name() string { return r.inner.Name() }

func (r *RateLimitedProvider) PriceHistory(ctx context.Context, symbol string, lookbackDays int) (core.PriceSeries, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, core.WrapError(core.ErrProviderFailed, err)
	}
	return r.inner.PriceHistory(ctx, symbol, lookbackDays)
}

func (r *RateLimitedProvider) Statements(ctx context.Context, symbol string) (*core.Statements, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, core.WrapError(core.ErrProviderFailed, err)
	}
	return r.inner.Statements(ctx, symbol)
}

func (r *RateLimitedProvider) Snapshot(ctx context.Context, symbol string) (*core.Snapshot, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, core.WrapError(core.ErrProviderFailed, err)
	}
	return r.inner.Snapshot(ctx, symbol)
}
