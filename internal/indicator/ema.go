package indicator

// EMASpan evaluates a span-parameterized exponential moving average at
// the last point of the series (oldest-to-newest). Weights are
// bias-corrected: the result is the weighted mean of all observations
// with weight (1-alpha)^age and alpha = 2/(span+1), so short series are
// still defined. Returns nil only for an empty series.
func EMASpan(prices []float64, span int) *float64 {
	if len(prices) == 0 || span <= 0 {
		return nil
	}

	alpha := 2.0 / (float64(span) + 1.0)
	decay := 1.0 - alpha

	var num, den float64
	weight := 1.0
	for i := len(prices) - 1; i >= 0; i-- {
		num += weight * prices[i]
		den += weight
		weight *= decay
	}

	v := num / den
	return &v
}
