package indicator

// Default MACD spans.
const (
	DefaultMACDFast   = 12
	DefaultMACDSlow   = 26
	DefaultMACDSignal = 9
)

// MACD computes the MACD line and signal line over prices in
// oldest-to-newest order.
//
// The line is EMASpan(fast) - EMASpan(slow) over the full series,
// evaluated at the most recent point; nil when fewer than `slow` prices
// exist. The signal line is EMASpan(signal) of a MACD value recomputed
// over every sliding window of width `slow`, nil when fewer than
// `signal` window values exist. Either side may be nil independently.
func MACD(prices []float64, fast, slow, signal int) (line, signalLine *float64) {
	if len(prices) < slow {
		return nil, nil
	}

	emaFast := EMASpan(prices, fast)
	emaSlow := EMASpan(prices, slow)
	v := *emaFast - *emaSlow
	line = &v

	windows := len(prices) - slow + 1
	macdValues := make([]float64, 0, windows)
	for i := 0; i < windows; i++ {
		win := prices[i : i+slow]
		f := EMASpan(win, fast)
		s := EMASpan(win, slow)
		macdValues = append(macdValues, *f-*s)
	}

	if len(macdValues) >= signal {
		signalLine = EMASpan(macdValues, signal)
	}
	return line, signalLine
}
