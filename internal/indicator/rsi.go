package indicator

// RSI calculates the Relative Strength Index using rolling-mean
// averages of gains and losses over the period.
// Returns slice of length: len(prices) - period, where result[0]
// corresponds to price index period. An average loss of zero maps
// to RSI 100.
func RSI(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) <= period {
		return []float64{}
	}

	gains := make([]float64, len(prices)-1)
	losses := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			gains[i-1] = delta
		} else {
			losses[i-1] = -delta
		}
	}

	result := make([]float64, 0, len(prices)-period)
	for i := period - 1; i < len(gains); i++ {
		var gainSum, lossSum float64
		for j := i - period + 1; j <= i; j++ {
			gainSum += gains[j]
			lossSum += losses[j]
		}
		avgGain := gainSum / float64(period)
		avgLoss := lossSum / float64(period)

		if avgLoss == 0 {
			result = append(result, 100)
			continue
		}
		rs := avgGain / avgLoss
		result = append(result, 100-(100/(1+rs)))
	}

	return result
}
