package indicator

// SMA calculates Simple Moving Average.
// Returns slice of length: len(prices) - period + 1, where result[0]
// corresponds to price index period-1.
func SMA(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period {
		return []float64{}
	}

	result := make([]float64, 0, len(prices)-period+1)

	var sum float64
	for i := 0; i < period; i++ {
		sum += prices[i]
	}
	result = append(result, sum/float64(period))

	// Rolling calculation
	for i := period; i < len(prices); i++ {
		sum = sum - prices[i-period] + prices[i]
		result = append(result, sum/float64(period))
	}

	return result
}

// EMA calculates Exponential Moving Average with smoothing 2/(period+1),
// seeded at the first price. Returns one value per input price.
func EMA(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) == 0 {
		return []float64{}
	}

	multiplier := 2.0 / float64(period+1)
	result := make([]float64, len(prices))
	result[0] = prices[0]

	for i := 1; i < len(prices); i++ {
		result[i] = (prices[i]-result[i-1])*multiplier + result[i-1]
	}

	return result
}
