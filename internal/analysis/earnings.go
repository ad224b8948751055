package analysis

import (
	"math"

	"github.com/quantive/gauge/internal/core"
	"github.com/quantive/gauge/internal/stats"
)

// ScoreEarnings computes the earnings quality metrics: accruals quality
// (3-period mean OCF over mean net income), persistence (consecutive
// period correlation, needing >= 4 periods), predictability
// (1/(1+stdev/|mean|)) and cash-flow quality (latest OCF over latest
// net income). Each metric is independently nil when its preconditions
// fail.
func ScoreEarnings(symbol string, stmts *core.Statements) *core.EarningsQuality {
	if stmts == nil {
		return nil
	}

	netIncome := stmts.Income.Series(rowNetIncome)
	revenue := stmts.Income.Series(rowRevenue)
	ocf := stmts.CashFlow.Series(rowsOCF[0])

	result := &core.EarningsQuality{
		Symbol:          symbol,
		NetIncomeSeries: headPeriods(netIncome, 5),
		OCFSeries:       headPeriods(ocf, 5),
		RevenueSeries:   headPeriods(revenue, 5),
	}

	if len(netIncome) >= 3 && len(ocf) >= 3 {
		avgNI := stats.Mean(netIncome[:3])
		if avgNI != 0 {
			result.AccrualsQuality = core.Float(stats.Mean(ocf[:3]) / avgNI)
		}
	}

	if len(netIncome) >= 4 {
		result.Persistence = stats.Pearson(netIncome[:len(netIncome)-1], netIncome[1:])

		mean := stats.Mean(netIncome)
		if mean != 0 {
			result.Predictability = core.Float(1.0 / (1.0 + stats.StdDev(netIncome)/math.Abs(mean)))
		} else {
			result.Predictability = core.Float(0)
		}
	}

	if len(netIncome) >= 1 && len(ocf) >= 1 && netIncome[0] != 0 {
		result.CashFlowQuality = core.Float(ocf[0] / netIncome[0])
	}

	return result
}

// EarningsQualityPoints bands the earnings quality metrics into the
// composite's 25-point category: accruals quality and persistence each
// award their highest matching threshold.
func EarningsQualityPoints(eq *core.EarningsQuality) (float64, []string) {
	if eq == nil {
		return 0, nil
	}

	var points float64
	var notes []string

	if eq.AccrualsQuality != nil {
		switch {
		case *eq.AccrualsQuality > 1.2:
			points += 15
			notes = append(notes, "Excellent accruals quality (OCF > 120% of NI)")
		case *eq.AccrualsQuality > 0.8:
			points += 10
			notes = append(notes, "Good accruals quality (OCF > 80% of NI)")
		case *eq.AccrualsQuality > 0.5:
			points += 5
			notes = append(notes, "Moderate accruals quality")
		}
	}

	if eq.Persistence != nil {
		switch {
		case *eq.Persistence > 0.7:
			points += 10
			notes = append(notes, "High earnings persistence")
		case *eq.Persistence > 0.5:
			points += 7
			notes = append(notes, "Moderate earnings persistence")
		case *eq.Persistence > 0.3:
			points += 3
			notes = append(notes, "Low earnings persistence")
		}
	}

	return points, notes
}

// headPeriods returns up to n most recent periods of a series, never
// nil so JSON consumers always see an array.
func headPeriods(series []float64, n int) []float64 {
	if len(series) > n {
		series = series[:n]
	}
	out := make([]float64, len(series))
	copy(out, series)
	return out
}
