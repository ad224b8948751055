package analysis

import (
	"math"

	"github.com/quantive/gauge/internal/core"
)

// Statement row name candidates, in lookup priority order. Providers
// differ on which of these a filing surfaces.
var (
	rowsTotalDebt   = []string{"Total Debt", "Short Long Term Debt", "Long Term Debt"}
	rowsTotalEquity = []string{"Total Stockholder Equity", "Total Equity Gross Minority Interest"}
	rowsTotalAssets = []string{"Total Assets"}
	rowsTotalLiab   = []string{"Total Liab", "Total Liabilities Net Minority Interest"}
	rowsOCF         = []string{"Total Cash From Operating Activities"}
	rowsCapex       = []string{"Capital Expenditures"}
	rowsFCF         = []string{"Free Cash Flow"}

	rowRevenue   = "Total Revenue"
	rowNetIncome = "Net Income"
	rowEBITDA    = "Ebitda"
)

// ScoreFundamentals extracts balance-sheet, income and cash-flow ratios
// and computes the raw heuristic fundamental score. Each ratio is nil
// when an input is missing or its denominator is zero; each scoring
// condition is evaluated independently and only when its inputs are
// defined. Penalties floor the score at zero.
func ScoreFundamentals(symbol string, stmts *core.Statements, snap *core.Snapshot) *core.FundamentalSummary {
	if stmts == nil && snap == nil {
		return nil
	}
	if stmts == nil {
		stmts = &core.Statements{}
	}

	totalDebt := stmts.Balance.Latest(rowsTotalDebt...)
	totalEquity := stmts.Balance.Latest(rowsTotalEquity...)

	revenueSeries := stmts.Income.Series(rowRevenue)
	netIncomeSeries := stmts.Income.Series(rowNetIncome)
	ebitdaSeries := stmts.Income.Series(rowEBITDA)

	ocf := stmts.CashFlow.Latest(rowsOCF...)
	if ocf == nil && snap != nil {
		ocf = snap.OperatingCashFlow
	}
	capex := stmts.CashFlow.Latest(rowsCapex...)
	fcf := stmts.CashFlow.Latest(rowsFCF...)
	if fcf == nil && ocf != nil && capex != nil {
		// Capex is reported as a negative number, so this is addition.
		fcf = core.Float(*ocf + *capex)
	}

	var revenueLatest, netIncomeLatest, ebitdaLatest *float64
	if len(revenueSeries) > 0 {
		revenueLatest = core.Float(revenueSeries[0])
	}
	if len(netIncomeSeries) > 0 {
		netIncomeLatest = core.Float(netIncomeSeries[0])
	}
	if len(ebitdaSeries) > 0 {
		ebitdaLatest = core.Float(ebitdaSeries[0])
	}

	result := &core.FundamentalSummary{
		Symbol:            symbol,
		DebtToEquity:      safeRatio(totalDebt, totalEquity),
		NetMargin:         safeRatio(netIncomeLatest, revenueLatest),
		EBITDAMargin:      safeRatio(ebitdaLatest, revenueLatest),
		ROE:               safeRatio(netIncomeLatest, totalEquity),
		RevenueCAGR:       revenueCAGR(revenueSeries),
		OperatingCashFlow: ocf,
		FreeCashFlow:      fcf,
		TotalAssets:       stmts.Balance.Latest(rowsTotalAssets...),
		TotalLiabilities:  stmts.Balance.Latest(rowsTotalLiab...),
		Reasons:           []string{},
	}
	if snap != nil {
		result.CurrentPrice = snap.CurrentPrice
		result.MarketCap = snap.MarketCap
		result.PE = snap.PE
	}

	addPoints := func(cond bool, points int, reason string) {
		if cond {
			result.Score += points
			result.Reasons = append(result.Reasons, reason)
		}
	}

	addPoints(result.RevenueCAGR != nil && *result.RevenueCAGR > 0, 15, "Positive revenue CAGR")
	addPoints(result.NetMargin != nil && *result.NetMargin > 0.10, 15, "Healthy net margin > 10%")
	addPoints(result.EBITDAMargin != nil && *result.EBITDAMargin > 0.15, 10, "EBITDA margin > 15%")
	addPoints(result.ROE != nil && *result.ROE > 0.15, 15, "ROE > 15%")
	addPoints(result.FreeCashFlow != nil && *result.FreeCashFlow > 0, 15, "Positive free cash flow")
	addPoints(result.DebtToEquity != nil && *result.DebtToEquity < 1.0, 15, "Debt/Equity < 1")

	penalize := func(cond bool, points int, reason string) {
		if cond {
			result.Reasons = append(result.Reasons, reason)
			result.Score = max(0, result.Score-points)
		}
	}

	penalize(result.RevenueCAGR != nil && *result.RevenueCAGR < 0, 10, "Negative revenue CAGR")
	penalize(result.NetMargin != nil && *result.NetMargin < 0.05, 10, "Thin net margin < 5%")
	penalize(result.DebtToEquity != nil && *result.DebtToEquity > 2.0, 10, "High leverage: D/E > 2")

	return result
}

// revenueCAGR computes the compound growth rate over min(3, len-1)
// periods, nil when fewer than 3 periods exist or either endpoint is
// non-positive.
func revenueCAGR(series []float64) *float64 {
	if len(series) < 3 {
		return nil
	}
	periods := min(3, len(series)-1)
	latest := series[0]
	oldest := series[periods]
	if oldest <= 0 || latest <= 0 {
		return nil
	}
	v := math.Pow(latest/oldest, 1.0/float64(periods)) - 1.0
	return &v
}

// safeRatio divides num by den, nil when either is missing or den is 0.
func safeRatio(num, den *float64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	v := *num / *den
	return &v
}
