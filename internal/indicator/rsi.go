package indicator

// DefaultRSIPeriod is the standard Wilder lookback.
const DefaultRSIPeriod = 14

// RSI computes the Wilder-smoothed Relative Strength Index over prices
// in oldest-to-newest order. The average gain/loss is seeded with the
// simple mean of the first `period` deltas, then updated once per
// remaining delta with avg = (avg*(period-1) + v) / period. Returns a
// single trailing value in [0,100], or nil when fewer than period+1
// prices are available.
func RSI(prices []float64, period int) *float64 {
	if period <= 0 || len(prices) < period+1 {
		return nil
	}

	deltas := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		deltas[i-1] = prices[i] - prices[i-1]
	}

	var avgGain, avgLoss float64
	for _, d := range deltas[:period] {
		if d > 0 {
			avgGain += d
		} else {
			avgLoss -= d
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	for _, d := range deltas[period:] {
		gain, loss := 0.0, 0.0
		if d > 0 {
			gain = d
		} else {
			loss = -d
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		v := 100.0
		return &v
	}
	rs := avgGain / avgLoss
	v := 100.0 - 100.0/(1.0+rs)
	return &v
}
