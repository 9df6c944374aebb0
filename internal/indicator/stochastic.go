package indicator

// Stochastic calculates the stochastic oscillator %K and %D lines.
// %K has length len(close) - kPeriod + 1 (first value at bar kPeriod-1);
// %D is the dPeriod SMA of %K with length len(%K) - dPeriod + 1.
// A flat kPeriod window (high == low) maps %K to the neutral 50.
func Stochastic(high, low, close []float64, kPeriod, dPeriod int) (k, d []float64) {
	if kPeriod <= 0 || dPeriod <= 0 || len(close) < kPeriod || len(high) != len(close) || len(low) != len(close) {
		return []float64{}, []float64{}
	}

	k = make([]float64, 0, len(close)-kPeriod+1)
	for i := kPeriod - 1; i < len(close); i++ {
		lowest := low[i-kPeriod+1]
		highest := high[i-kPeriod+1]
		for j := i - kPeriod + 2; j <= i; j++ {
			if low[j] < lowest {
				lowest = low[j]
			}
			if high[j] > highest {
				highest = high[j]
			}
		}

		if highest == lowest {
			k = append(k, 50)
			continue
		}
		k = append(k, 100*(close[i]-lowest)/(highest-lowest))
	}

	d = SMA(k, dPeriod)
	return k, d
}
