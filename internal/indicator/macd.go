package indicator

// MACD calculates the Moving Average Convergence Divergence line and
// its signal line. Both slices have one value per input price; values
// before the slow period has filled are still converging and callers
// should respect their own warm-up before acting on them.
func MACD(prices []float64, fast, slow, signal int) (macd, signalLine []float64) {
	if len(prices) == 0 {
		return []float64{}, []float64{}
	}

	fastEMA := EMA(prices, fast)
	slowEMA := EMA(prices, slow)

	macd = make([]float64, len(prices))
	for i := range prices {
		macd[i] = fastEMA[i] - slowEMA[i]
	}

	signalLine = EMA(macd, signal)
	return macd, signalLine
}
