package analysis

import (
	"github.com/quantive/gauge/internal/core"
	"github.com/quantive/gauge/internal/indicator"
)

// ScoreTechnical runs the indicator pass over a price series and bands
// the results into an additive, non-negative technical score:
// RSI neutral +10 / oversold +15 / overbought +5, positive 3-month and
// 12-month momentum +10 each, MACD line above signal +5.
func ScoreTechnical(symbol string, prices core.PriceSeries) *core.TechnicalIndicators {
	if prices.Len() == 0 {
		return nil
	}

	chron := prices.Chronological()

	rsi := indicator.RSI(chron, indicator.DefaultRSIPeriod)
	macdLine, macdSignal := indicator.MACD(chron,
		indicator.DefaultMACDFast, indicator.DefaultMACDSlow, indicator.DefaultMACDSignal)
	mom3 := indicator.Momentum(chron, indicator.Lookback3M)
	mom12 := indicator.Momentum(chron, indicator.Lookback12M)

	result := &core.TechnicalIndicators{
		Symbol:           symbol,
		RSI:              rsi,
		MACDLine:         macdLine,
		MACDSignal:       macdSignal,
		Momentum3M:       mom3,
		Momentum12M:      mom12,
		RelativeStrength: indicator.RelativeStrength(mom12),
		CurrentPrice:     prices.Latest(),
		Reasons:          []string{},
	}

	if prices.Len() > 1 && prices[1] != 0 {
		result.PriceChange1D = core.Float((prices[0] - prices[1]) / prices[1])
	}

	if rsi != nil {
		switch {
		case *rsi < 30:
			result.Score += 15
			result.Reasons = append(result.Reasons, "RSI indicates oversold conditions")
		case *rsi > 70:
			result.Score += 5
			result.Reasons = append(result.Reasons, "RSI indicates overbought conditions")
		default:
			result.Score += 10
			result.Reasons = append(result.Reasons, "RSI in neutral zone (30-70)")
		}
	}

	if mom3 != nil && *mom3 > 0 {
		result.Score += 10
		result.Reasons = append(result.Reasons, "Positive 3-month momentum")
	}
	if mom12 != nil && *mom12 > 0 {
		result.Score += 10
		result.Reasons = append(result.Reasons, "Positive 12-month momentum")
	}

	if macdLine != nil && macdSignal != nil && *macdLine > *macdSignal {
		result.Score += 5
		result.Reasons = append(result.Reasons, "MACD above signal line (bullish)")
	}

	return result
}
