package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/quantive/gauge/internal/core"
)

// Category names in the composite breakdown.
const (
	CategoryFundamentals    = "fundamentals"
	CategoryEarningsQuality = "earnings_quality"
	CategoryMarketFactors   = "market_factors"
	CategoryRiskContext     = "risk_context"
)

// Assessment bands on the composite total.
const (
	BandExcellent = "EXCELLENT"
	BandGood      = "GOOD"
	BandFair      = "FAIR"
	BandPoor      = "POOR"
	BandVeryPoor  = "VERY POOR"
)

var assessments = map[string]string{
	BandExcellent: "EXCELLENT - Strong buy candidate",
	BandGood:      "GOOD - Buy recommendation",
	BandFair:      "FAIR - Hold with monitoring",
	BandPoor:      "POOR - Consider selling",
	BandVeryPoor:  "VERY POOR - Strong sell",
}

// Band maps a composite total to its qualitative band.
func Band(total float64) string {
	switch {
	case total >= 80:
		return BandExcellent
	case total >= 65:
		return BandGood
	case total >= 50:
		return BandFair
	case total >= 35:
		return BandPoor
	default:
		return BandVeryPoor
	}
}

// Composite combines the five sub-analyses into the 0-100 rating. Each
// category is rescaled into a 25-point budget; a nil sub-analysis
// contributes 0 to its category instead of aborting the computation.
func Composite(symbol string, fund *core.FundamentalSummary, earn *core.EarningsQuality,
	tech *core.TechnicalIndicators, sent *core.MarketSentiment, esg *core.ESGRisk) *core.CompositeScore {

	var summary []string

	// Core fundamentals: raw score is floored at 0, so this term is
	// already in [0,25].
	var fundamentals float64
	if fund != nil {
		fundamentals = minf(25, float64(fund.Score)*0.25)
	}
	summary = append(summary, fmt.Sprintf("Fundamentals: %.1f/25", fundamentals))

	earnings, notes := EarningsQualityPoints(earn)
	summary = append(summary, notes...)
	summary = append(summary, fmt.Sprintf("Earnings Quality: %.1f/25", earnings))

	var market float64
	if tech != nil {
		market += minf(15, float64(tech.Score)*0.75)
	}
	if sent != nil {
		market += clamp(float64(sent.Score)*0.67, 0, 10)
	}
	summary = append(summary, fmt.Sprintf("Market Factors: %.1f/25", market))

	var riskContext float64
	if esg != nil {
		riskContext += clamp((float64(esg.ESGScore)+10)*0.75, 0, 15)
		riskContext += clamp((10-float64(esg.RiskScore))*0.5, 0, 10)
	}
	summary = append(summary, fmt.Sprintf("Risk & Context: %.1f/25", riskContext))

	total := fundamentals + earnings + market + riskContext
	band := Band(total)

	return &core.CompositeScore{
		ReportID:   uuid.NewString(),
		Symbol:     symbol,
		Total:      round2(total),
		Band:       band,
		Assessment: assessments[band],
		Categories: map[string]core.SubScore{
			CategoryFundamentals:    {Name: CategoryFundamentals, Value: fundamentals, Budget: 25, Reasons: reasonsOf(fund)},
			CategoryEarningsQuality: {Name: CategoryEarningsQuality, Value: earnings, Budget: 25, Reasons: orEmpty(notes)},
			CategoryMarketFactors:   {Name: CategoryMarketFactors, Value: market, Budget: 25, Reasons: marketReasons(tech, sent)},
			CategoryRiskContext:     {Name: CategoryRiskContext, Value: riskContext, Budget: 25, Reasons: riskReasons(esg)},
		},
		Summary: summary,
		Detailed: core.DetailedAnalysis{
			Fundamentals:    fund,
			EarningsQuality: earn,
			Technical:       tech,
			Sentiment:       sent,
			ESGRisk:         esg,
		},
		GeneratedAt: time.Now().UTC(),
	}
}

func reasonsOf(fund *core.FundamentalSummary) []string {
	if fund == nil {
		return []string{}
	}
	return fund.Reasons
}

func marketReasons(tech *core.TechnicalIndicators, sent *core.MarketSentiment) []string {
	reasons := []string{}
	if tech != nil {
		reasons = append(reasons, tech.Reasons...)
	}
	if sent != nil {
		reasons = append(reasons, sent.Reasons...)
	}
	return reasons
}

func riskReasons(esg *core.ESGRisk) []string {
	if esg == nil {
		return []string{}
	}
	reasons := append([]string{}, esg.ESGReasons...)
	return append(reasons, esg.RiskReasons...)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
