package analysis

import "github.com/quantive/gauge/internal/core"

// ScoreSentiment bands analyst coverage, price target upside and
// trading volume into the sentiment score. The recommendation bands are
// checked in order with the first match winning, except the sell
// penalty which applies independently above 3.5. The resulting score is
// an unbounded signed integer.
func ScoreSentiment(symbol string, snap *core.Snapshot) *core.MarketSentiment {
	if snap == nil {
		return nil
	}

	result := &core.MarketSentiment{
		Symbol:             symbol,
		RecommendationMean: snap.RecommendationMean,
		RecommendationKey:  snap.RecommendationKey,
		AnalystCount:       snap.AnalystCount,
		TargetHighPrice:    snap.TargetHighPrice,
		TargetLowPrice:     snap.TargetLowPrice,
		TargetMedianPrice:  snap.TargetMedianPrice,
		CurrentPrice:       snap.CurrentPrice,
		Reasons:            []string{},
	}

	if rec := snap.RecommendationMean; rec != nil {
		switch {
		case *rec <= 2.0:
			result.Score += 15
			result.Reasons = append(result.Reasons, "Strong buy recommendation from analysts")
		case *rec <= 2.5:
			result.Score += 10
			result.Reasons = append(result.Reasons, "Buy recommendation from analysts")
		case *rec <= 3.0:
			result.Score += 5
			result.Reasons = append(result.Reasons, "Hold recommendation from analysts")
		case *rec > 3.5:
			result.Score -= 5
			result.Reasons = append(result.Reasons, "Sell recommendation from analysts")
		}
	}

	if snap.TargetMedianPrice != nil && snap.CurrentPrice != nil && *snap.CurrentPrice != 0 {
		upside := (*snap.TargetMedianPrice - *snap.CurrentPrice) / *snap.CurrentPrice
		result.UpsidePotential = &upside
		switch {
		case upside > 0.20:
			result.Score += 10
			result.Reasons = append(result.Reasons, "High upside potential (>20%)")
		case upside > 0.10:
			result.Score += 5
			result.Reasons = append(result.Reasons, "Moderate upside potential (10-20%)")
		case upside < -0.10:
			result.Score -= 5
			result.Reasons = append(result.Reasons, "Downside risk (>10%)")
		}
	}

	if snap.Volume != nil && snap.AverageVolume != nil && *snap.AverageVolume != 0 {
		ratio := *snap.Volume / *snap.AverageVolume
		result.VolumeRatio = &ratio
		if ratio > 1.5 {
			result.Score += 5
			result.Reasons = append(result.Reasons, "Above-average trading volume")
		}
	}

	return result
}
