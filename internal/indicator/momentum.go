package indicator

// Lookbacks in trading days.
const (
	Lookback3M  = 62  // needs >= 63 points
	Lookback12M = 251 // needs >= 252 points

	// BenchmarkReturn is the assumed annual market return relative
	// strength is measured against.
	BenchmarkReturn = 0.10
)

// Momentum computes the fractional price change between the latest
// close and the close `lookback` bars earlier, over prices in
// oldest-to-newest order. Returns nil when the series is too short. A
// zero reference price yields 0 rather than a division fault.
func Momentum(prices []float64, lookback int) *float64 {
	if lookback <= 0 || len(prices) < lookback+1 {
		return nil
	}
	latest := prices[len(prices)-1]
	ref := prices[len(prices)-1-lookback]
	v := 0.0
	if ref != 0 {
		v = (latest - ref) / ref
	}
	return &v
}

// RelativeStrength is the 12-month momentum in excess of the assumed
// benchmark return. Nil when momentum is undefined.
func RelativeStrength(momentum12M *float64) *float64 {
	if momentum12M == nil {
		return nil
	}
	v := *momentum12M - BenchmarkReturn
	return &v
}
