package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantive/gauge/internal/core"
)

func TestScoreSentiment_NilSnapshot(t *testing.T) {
	assert.Nil(t, ScoreSentiment("TEST", nil))
}

func TestScoreSentiment_Bullish(t *testing.T) {
	snap := &core.Snapshot{
		Symbol:             "TEST",
		RecommendationMean: core.Float(1.8),
		RecommendationKey:  "strong_buy",
		CurrentPrice:       core.Float(100),
		TargetMedianPrice:  core.Float(130),
		Volume:             core.Float(2000000),
		AverageVolume:      core.Float(1000000),
	}

	result := ScoreSentiment("TEST", snap)
	require.NotNil(t, result)

	// rec +15, upside 30% +10, volume ratio 2.0 +5
	assert.Equal(t, 30, result.Score)
	require.NotNil(t, result.UpsidePotential)
	assert.InDelta(t, 0.30, *result.UpsidePotential, 1e-9)
	require.NotNil(t, result.VolumeRatio)
	assert.InDelta(t, 2.0, *result.VolumeRatio, 1e-9)
	assert.Len(t, result.Reasons, 3)
}

func TestScoreSentiment_RecommendationBands(t *testing.T) {
	cases := []struct {
		rec  float64
		want int
	}{
		{1.5, 15},
		{2.0, 15},
		{2.3, 10},
		{2.8, 5},
		{3.2, 0}, // between hold and sell, no award
		{4.0, -5},
	}

	for _, tc := range cases {
		snap := &core.Snapshot{RecommendationMean: core.Float(tc.rec)}
		result := ScoreSentiment("TEST", snap)
		require.NotNil(t, result)
		assert.Equal(t, tc.want, result.Score, "rec=%.1f", tc.rec)
	}
}

func TestScoreSentiment_Bearish(t *testing.T) {
	snap := &core.Snapshot{
		RecommendationMean: core.Float(4.2),
		CurrentPrice:       core.Float(100),
		TargetMedianPrice:  core.Float(80),
	}

	result := ScoreSentiment("TEST", snap)
	require.NotNil(t, result)

	// sell -5, downside -5; the score may go negative.
	assert.Equal(t, -10, result.Score)
}

func TestScoreSentiment_MissingFields(t *testing.T) {
	result := ScoreSentiment("TEST", &core.Snapshot{Symbol: "TEST"})
	require.NotNil(t, result)

	assert.Equal(t, 0, result.Score)
	assert.Nil(t, result.UpsidePotential)
	assert.Nil(t, result.VolumeRatio)
	assert.Empty(t, result.Reasons)
}

func TestScoreSentiment_ZeroGuards(t *testing.T) {
	snap := &core.Snapshot{
		CurrentPrice:      core.Float(0),
		TargetMedianPrice: core.Float(100),
		Volume:            core.Float(1000),
		AverageVolume:     core.Float(0),
	}

	result := ScoreSentiment("TEST", snap)
	require.NotNil(t, result)
	assert.Nil(t, result.UpsidePotential)
	assert.Nil(t, result.VolumeRatio)
}
