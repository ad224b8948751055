package analysis

import (
	"math"
	"time"

	"github.com/quantive/gauge/internal/core"
)

// SentimentScale normalizes a raw sentiment score before it is compared
// against the intraday 0.6/0.4 override thresholds.
//
// The sentiment scorer emits an unbounded banded integer while the
// override thresholds read like a 0-1 scale; the two scales do not
// match and which one was intended is an open product question. Neither
// interpretation is silently "fixed": Identity preserves the raw score
// (any positive banded score crosses the 0.6 threshold), Normalized
// divides by the 15-point analyst band maximum so the thresholds bite.
type SentimentScale func(rawScore int) float64

// IdentityScale passes the raw banded score through unchanged.
func IdentityScale(rawScore int) float64 { return float64(rawScore) }

// NormalizedScale maps the raw banded score onto a nominal 0-1 range by
// dividing by the maximum analyst recommendation award.
func NormalizedScale(rawScore int) float64 { return float64(rawScore) / 15.0 }

// IntradayConfig tunes the level deriver.
type IntradayConfig struct {
	SentimentScale SentimentScale
}

// DeriveIntraday computes entry/exit/stop levels from the current price
// and the technical and sentiment passes. The RSI regime selects the
// base levels, momentum and sentiment overrides then widen or tighten
// them. A positive resolvable current price is the single fatal
// precondition.
func DeriveIntraday(symbol string, currentPrice float64, tech *core.TechnicalIndicators,
	sent *core.MarketSentiment, cfg IntradayConfig) (*core.IntradayLevels, error) {

	if currentPrice <= 0 {
		return nil, core.ErrNoPrice
	}
	scale := cfg.SentimentScale
	if scale == nil {
		scale = IdentityScale
	}

	// Neutral / undefined-RSI defaults: tight range trade.
	entry := currentPrice * 0.998
	exit := currentPrice * 1.015
	stop := currentPrice * 0.99

	if tech != nil && tech.RSI != nil {
		switch {
		case *tech.RSI < 30: // oversold
			entry = currentPrice * 0.995
			exit = currentPrice * 1.02
			stop = currentPrice * 0.985
		case *tech.RSI > 70: // overbought
			entry = currentPrice * 1.005
			exit = currentPrice * 0.98
			stop = currentPrice * 1.015
		}
	}

	if tech != nil && tech.Momentum3M != nil {
		switch {
		case *tech.Momentum3M > 0.05:
			entry = math.Min(entry, currentPrice*0.997)
			exit = math.Max(exit, currentPrice*1.025)
		case *tech.Momentum3M < -0.05:
			entry = math.Max(entry, currentPrice*1.003)
			exit = math.Min(exit, currentPrice*0.975)
		}
	}

	if sent != nil {
		scaled := scale(sent.Score)
		if scaled > 0.6 {
			exit = math.Max(exit, currentPrice*1.02)
		} else if scaled < 0.4 {
			stop = math.Min(stop, currentPrice*0.99)
		}
	}

	entry = round2(entry)
	exit = round2(exit)
	stop = round2(stop)

	risk := math.Abs(entry - stop)
	reward := math.Abs(exit - entry)
	ratio := 0.0
	if risk > 0 {
		ratio = round2(reward / risk)
	}

	return &core.IntradayLevels{
		Symbol:          symbol,
		CurrentPrice:    round2(currentPrice),
		EntryPrice:      entry,
		ExitPrice:       exit,
		StopLoss:        stop,
		RiskAmount:      round2(risk),
		RewardAmount:    round2(reward),
		RiskRewardRatio: ratio,
		Recommendation:  recommendation(ratio),
		Technical:       tech,
		Sentiment:       sent,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}

func recommendation(ratio float64) string {
	switch {
	case ratio >= 2:
		return "STRONG BUY - Excellent risk-reward ratio"
	case ratio >= 1.5:
		return "BUY - Good risk-reward ratio"
	case ratio >= 1:
		return "HOLD - Moderate risk-reward ratio"
	default:
		return "AVOID - Poor risk-reward ratio"
	}
}
