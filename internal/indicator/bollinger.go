package indicator

import "math"

// Bollinger calculates Bollinger Bands: a middle SMA with upper and
// lower bands stdDev sample standard deviations away. All three slices
// have length len(prices) - period + 1, aligned with SMA output.
func Bollinger(prices []float64, period int, stdDev float64) (middle, upper, lower []float64) {
	if period < 2 || len(prices) < period {
		return []float64{}, []float64{}, []float64{}
	}

	middle = SMA(prices, period)
	upper = make([]float64, len(middle))
	lower = make([]float64, len(middle))

	for i := range middle {
		window := prices[i : i+period]

		// Sample standard deviation around the window mean
		var variance float64
		for _, p := range window {
			variance += (p - middle[i]) * (p - middle[i])
		}
		sd := math.Sqrt(variance / float64(period-1))

		upper[i] = middle[i] + sd*stdDev
		lower[i] = middle[i] - sd*stdDev
	}

	return middle, upper, lower
}
