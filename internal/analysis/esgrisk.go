package analysis

import (
	"strings"

	"github.com/quantive/gauge/internal/core"
)

// ScoreESGRisk derives the ESG heuristic and the risk assessment from a
// company snapshot. The two scores are independent signed integers and
// are not clamped here; the composite scorer normalizes them into its
// category budget.
func ScoreESGRisk(symbol string, snap *core.Snapshot) *core.ESGRisk {
	if snap == nil {
		return nil
	}

	result := &core.ESGRisk{
		Symbol:                symbol,
		ESGReasons:            []string{},
		RiskReasons:           []string{},
		Beta:                  snap.Beta,
		DebtToEquity:          snap.DebtToEquity,
		CurrentRatio:          snap.CurrentRatio,
		QuickRatio:            snap.QuickRatio,
		Sector:                snap.Sector,
		Industry:              snap.Industry,
		AuditRisk:             snap.AuditRisk,
		BoardRisk:             snap.BoardRisk,
		CompensationRisk:      snap.CompensationRisk,
		ShareholderRightsRisk: snap.ShareholderRightsRisk,
		OverallRisk:           snap.OverallRisk,
	}

	sector := strings.ToLower(snap.Sector)
	switch {
	case strings.Contains(sector, "energy") || strings.Contains(sector, "oil") || strings.Contains(sector, "gas"):
		result.ESGScore -= 5
		result.ESGReasons = append(result.ESGReasons, "Energy sector - environmental concerns")
	case strings.Contains(sector, "technology") || strings.Contains(sector, "software"):
		result.ESGScore += 5
		result.ESGReasons = append(result.ESGReasons, "Technology sector - lower environmental impact")
	}

	if snap.Employees != nil && *snap.Employees > 10000 {
		result.ESGScore += 3
		result.ESGReasons = append(result.ESGReasons, "Large employer - positive social impact")
	}

	if snap.AuditRisk != nil {
		switch {
		case *snap.AuditRisk < 0.1:
			result.ESGScore += 5
			result.ESGReasons = append(result.ESGReasons, "Low audit risk - good governance")
		case *snap.AuditRisk > 0.3:
			result.ESGScore -= 5
			result.ESGReasons = append(result.ESGReasons, "High audit risk - governance concerns")
		}
	}

	if snap.Beta != nil {
		switch {
		case *snap.Beta > 1.5:
			result.RiskScore += 10
			result.RiskReasons = append(result.RiskReasons, "High volatility (beta > 1.5)")
		case *snap.Beta < 0.8:
			result.RiskScore -= 5
			result.RiskReasons = append(result.RiskReasons, "Low volatility (beta < 0.8)")
		}
	}

	if snap.DebtToEquity != nil {
		switch {
		case *snap.DebtToEquity > 1.0:
			result.RiskScore += 10
			result.RiskReasons = append(result.RiskReasons, "High leverage (D/E > 1.0)")
		case *snap.DebtToEquity < 0.3:
			result.RiskScore -= 5
			result.RiskReasons = append(result.RiskReasons, "Low leverage (D/E < 0.3)")
		}
	}

	if snap.CurrentRatio != nil {
		switch {
		case *snap.CurrentRatio < 1.0:
			result.RiskScore += 5
			result.RiskReasons = append(result.RiskReasons, "Low liquidity (current ratio < 1.0)")
		case *snap.CurrentRatio > 2.0:
			result.RiskScore -= 3
			result.RiskReasons = append(result.RiskReasons, "High liquidity (current ratio > 2.0)")
		}
	}

	return result
}
