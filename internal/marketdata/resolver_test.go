package marketdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantive/gauge/internal/core"
)

// stubProvider answers Snapshot only for the symbols in known.
type stubProvider struct {
	known map[string]*core.Snapshot
	err   error
	calls []string
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) PriceHistory(_ context.Context, _ string, _ int) (core.PriceSeries, error) {
	return nil, core.ErrNoData
}

func (s *stubProvider) Statements(_ context.Context, _ string) (*core.Statements, error) {
	return nil, core.ErrNoData
}

func (s *stubProvider) Snapshot(_ context.Context, symbol string) (*core.Snapshot, error) {
	s.calls = append(s.calls, symbol)
	if s.err != nil {
		return nil, s.err
	}
	if snap, ok := s.known[symbol]; ok {
		return snap, nil
	}
	return nil, core.WrapError(core.ErrNoData, nil)
}

func TestResolver_DirectHit(t *testing.T) {
	p := &stubProvider{known: map[string]*core.Snapshot{"AAPL": {Symbol: "AAPL"}}}
	r := NewResolver(p, "")

	resolved, err := r.Resolve(context.Background(), "aapl")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", resolved)
	assert.Equal(t, []string{"AAPL"}, p.calls)
}

func TestResolver_SuffixFallback(t *testing.T) {
	p := &stubProvider{known: map[string]*core.Snapshot{"RELIANCE.NS": {Symbol: "RELIANCE.NS"}}}
	r := NewResolver(p, "")

	resolved, err := r.Resolve(context.Background(), " reliance ")
	require.NoError(t, err)
	assert.Equal(t, "RELIANCE.NS", resolved)
	assert.Equal(t, []string{"RELIANCE", "RELIANCE.NS"}, p.calls)
}

func TestResolver_NoSecondFallback(t *testing.T) {
	// A symbol already carrying the suffix is probed exactly once.
	p := &stubProvider{known: map[string]*core.Snapshot{}}
	r := NewResolver(p, "")

	_, err := r.Resolve(context.Background(), "RELIANCE.NS")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrSymbolNotFound)
	assert.Equal(t, []string{"RELIANCE.NS"}, p.calls)
}

func TestResolver_BothCandidatesMiss(t *testing.T) {
	p := &stubProvider{known: map[string]*core.Snapshot{}}
	r := NewResolver(p, "")

	_, err := r.Resolve(context.Background(), "NOPE")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrSymbolNotFound)
	assert.Equal(t, []string{"NOPE", "NOPE.NS"}, p.calls)
}

func TestResolver_TransportErrorPassesThrough(t *testing.T) {
	p := &stubProvider{err: core.WrapError(core.ErrProviderFailed, nil)}
	r := NewResolver(p, "")

	_, err := r.Resolve(context.Background(), "AAPL")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrProviderFailed)
	assert.NotErrorIs(t, err, core.ErrSymbolNotFound)
	assert.Len(t, p.calls, 1)
}

func TestResolver_EmptySymbol(t *testing.T) {
	r := NewResolver(&stubProvider{}, "")

	_, err := r.Resolve(context.Background(), "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrSymbolNotFound)
}

func TestResolver_CustomSuffix(t *testing.T) {
	p := &stubProvider{known: map[string]*core.Snapshot{"0700.HK": {}}}
	r := NewResolver(p, ".HK")

	resolved, err := r.Resolve(context.Background(), "0700")
	require.NoError(t, err)
	assert.Equal(t, "0700.HK", resolved)
}
