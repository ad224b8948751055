package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantive/gauge/internal/core"
)

func TestScoreESGRisk_NilSnapshot(t *testing.T) {
	assert.Nil(t, ScoreESGRisk("TEST", nil))
}

func TestScoreESGRisk_TechnologyProfile(t *testing.T) {
	snap := &core.Snapshot{
		Symbol:       "TEST",
		Sector:       "Technology",
		Employees:    core.Float(20000),
		AuditRisk:    core.Float(0.05),
		Beta:         core.Float(0.5),
		DebtToEquity: core.Float(0.2),
		CurrentRatio: core.Float(2.5),
	}

	result := ScoreESGRisk("TEST", snap)
	require.NotNil(t, result)

	// ESG: sector +5, employees +3, audit +5
	assert.Equal(t, 13, result.ESGScore)
	assert.Contains(t, result.ESGReasons, "Technology sector - lower environmental impact")
	assert.Contains(t, result.ESGReasons, "Large employer - positive social impact")
	assert.Contains(t, result.ESGReasons, "Low audit risk - good governance")

	// Risk: beta -5, leverage -5, liquidity -3
	assert.Equal(t, -13, result.RiskScore)
}

func TestScoreESGRisk_EnergyProfile(t *testing.T) {
	snap := &core.Snapshot{
		Symbol:       "TEST",
		Sector:       "Oil & Gas",
		AuditRisk:    core.Float(0.5),
		Beta:         core.Float(2.0),
		DebtToEquity: core.Float(1.5),
		CurrentRatio: core.Float(0.8),
	}

	result := ScoreESGRisk("TEST", snap)
	require.NotNil(t, result)

	// ESG: sector -5, audit -5
	assert.Equal(t, -10, result.ESGScore)
	assert.Contains(t, result.ESGReasons, "Energy sector - environmental concerns")

	// Risk: beta +10, leverage +10, liquidity +5
	assert.Equal(t, 25, result.RiskScore)
	assert.Contains(t, result.RiskReasons, "High volatility (beta > 1.5)")
	assert.Contains(t, result.RiskReasons, "High leverage (D/E > 1.0)")
	assert.Contains(t, result.RiskReasons, "Low liquidity (current ratio < 1.0)")
}

func TestScoreESGRisk_SectorMatchIsCaseInsensitive(t *testing.T) {
	result := ScoreESGRisk("TEST", &core.Snapshot{Sector: "SOFTWARE services"})
	require.NotNil(t, result)
	assert.Equal(t, 5, result.ESGScore)
}

func TestScoreESGRisk_EmptySnapshot(t *testing.T) {
	result := ScoreESGRisk("TEST", &core.Snapshot{Symbol: "TEST"})
	require.NotNil(t, result)

	assert.Equal(t, 0, result.ESGScore)
	assert.Equal(t, 0, result.RiskScore)
	assert.Empty(t, result.ESGReasons)
	assert.Empty(t, result.RiskReasons)
}
