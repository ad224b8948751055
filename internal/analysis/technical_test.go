package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantive/gauge/internal/core"
)

// risingSeries builds a newest-first series that rises by step per bar
// in chronological time.
func risingSeries(n int, start, step float64) core.PriceSeries {
	out := make(core.PriceSeries, n)
	for i := range out {
		out[i] = start + float64(n-1-i)*step
	}
	return out
}

func TestScoreTechnical_Empty(t *testing.T) {
	assert.Nil(t, ScoreTechnical("TEST", nil))
	assert.Nil(t, ScoreTechnical("TEST", core.PriceSeries{}))
}

func TestScoreTechnical_ShortSeries(t *testing.T) {
	// Seven closes: far too short for RSI, MACD or either momentum
	// window. Everything degrades to undefined and the score stays 0.
	prices := core.PriceSeries{110, 106, 107, 105, 101, 102, 100}

	result := ScoreTechnical("TEST", prices)
	require.NotNil(t, result)

	assert.Nil(t, result.RSI)
	assert.Nil(t, result.MACDLine)
	assert.Nil(t, result.MACDSignal)
	assert.Nil(t, result.Momentum3M)
	assert.Nil(t, result.Momentum12M)
	assert.Nil(t, result.RelativeStrength)
	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Reasons)

	require.NotNil(t, result.CurrentPrice)
	assert.Equal(t, 110.0, *result.CurrentPrice)
	require.NotNil(t, result.PriceChange1D)
	assert.InDelta(t, (110.0-106.0)/106.0, *result.PriceChange1D, 1e-9)
}

func TestScoreTechnical_RisingSeries(t *testing.T) {
	// 300 monotonically rising closes: RSI pegs at 100 (overbought +5),
	// both momentum windows are positive (+10 each). The series is
	// linear so the MACD line equals its signal and earns nothing.
	prices := risingSeries(300, 100, 0.5)

	result := ScoreTechnical("TEST", prices)
	require.NotNil(t, result)

	require.NotNil(t, result.RSI)
	assert.Equal(t, 100.0, *result.RSI)
	require.NotNil(t, result.Momentum3M)
	assert.Positive(t, *result.Momentum3M)
	require.NotNil(t, result.Momentum12M)
	assert.Positive(t, *result.Momentum12M)
	require.NotNil(t, result.MACDLine)
	require.NotNil(t, result.MACDSignal)

	assert.Equal(t, 25, result.Score)
	assert.Contains(t, result.Reasons, "RSI indicates overbought conditions")
	assert.Contains(t, result.Reasons, "Positive 3-month momentum")
	assert.Contains(t, result.Reasons, "Positive 12-month momentum")
}

func TestScoreTechnical_FallingSeries(t *testing.T) {
	// Monotonically falling closes: RSI pegs at 0 (oversold +15),
	// momentum is negative everywhere.
	prices := risingSeries(300, 400, -0.5)

	result := ScoreTechnical("TEST", prices)
	require.NotNil(t, result)

	require.NotNil(t, result.RSI)
	assert.Equal(t, 0.0, *result.RSI)
	require.NotNil(t, result.Momentum12M)
	assert.Negative(t, *result.Momentum12M)

	assert.Equal(t, 15, result.Score)
	assert.Contains(t, result.Reasons, "RSI indicates oversold conditions")
}

func TestScoreTechnical_RelativeStrength(t *testing.T) {
	prices := risingSeries(300, 100, 0.5)

	result := ScoreTechnical("TEST", prices)
	require.NotNil(t, result)
	require.NotNil(t, result.RelativeStrength)
	assert.InDelta(t, *result.Momentum12M-0.10, *result.RelativeStrength, 1e-9)
}
