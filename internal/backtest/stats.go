package backtest

import (
	"math"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
)

// FinalEquity returns the equity of the last curve sample, or the
// initial capital when the curve is empty.
func FinalEquity(initialCapital float64, curve []EquitySample) float64 {
	if len(curve) == 0 {
		return initialCapital
	}
	return curve[len(curve)-1].Equity
}

// Summarize computes aggregate statistics from the completed trade
// list and equity curve. All divisors are guarded: no trades means a
// zero win rate and zero averages, a short curve means zero drawdown.
func Summarize(initialCapital float64, trades []core.Position, curve []EquitySample) Stats {
	stats := Stats{TotalTrades: len(trades)}

	var winSum, lossSum float64
	for _, t := range trades {
		if t.IsWin() {
			stats.WinningTrades++
			winSum += t.RealizedPnL
		} else {
			stats.LosingTrades++
			lossSum += t.RealizedPnL
		}
	}

	if stats.TotalTrades > 0 {
		stats.WinRatePct = float64(stats.WinningTrades) / float64(stats.TotalTrades) * 100
	}
	if stats.WinningTrades > 0 {
		stats.AvgWin = winSum / float64(stats.WinningTrades)
	}
	if stats.LosingTrades > 0 {
		stats.AvgLoss = lossSum / float64(stats.LosingTrades)
	}

	stats.MaxDrawdownPct = maxDrawdown(curve)
	return stats
}

// maxDrawdown returns the most negative percentage decline from the
// running equity peak, 0 for curves that never dip below their peak
// or have at most one point.
func maxDrawdown(curve []EquitySample) float64 {
	if len(curve) <= 1 {
		return 0
	}

	var maxDD float64
	runningMax := curve[0].Equity
	for _, sample := range curve {
		if sample.Equity > runningMax {
			runningMax = sample.Equity
		}
		if runningMax <= 0 {
			continue
		}
		dd := (sample.Equity - runningMax) / runningMax * 100
		if dd < maxDD {
			maxDD = dd
		}
	}
	return maxDD
}

// ProfitFactor is a derived, display-only statistic: gross winnings
// over gross losses. Returns 0 with no losing trades.
func ProfitFactor(trades []core.Position) float64 {
	var grossWin, grossLoss float64
	for _, t := range trades {
		if t.IsWin() {
			grossWin += t.RealizedPnL
		} else {
			grossLoss -= t.RealizedPnL
		}
	}
	if grossLoss == 0 {
		return 0
	}
	return grossWin / grossLoss
}

// SharpeRatio is a derived, display-only statistic: annualized mean
// over standard deviation of per-sample equity returns, assuming a
// zero risk-free rate and ~252 trading days. Returns 0 for curves too
// short to estimate variance or with zero variance.
func SharpeRatio(curve []EquitySample) float64 {
	if len(curve) < 3 {
		return 0
	}

	returns := make([]float64, 0, len(curve)-1)
	for i := 1; i < len(curve); i++ {
		prev := curve[i-1].Equity
		if prev == 0 {
			return 0
		}
		returns = append(returns, (curve[i].Equity-prev)/prev)
	}

	var sum float64
	for _, r := range returns {
		sum += r
	}
	mean := sum / float64(len(returns))

	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	stdDev := math.Sqrt(variance / float64(len(returns)-1))
	if stdDev == 0 {
		return 0
	}

	return (mean * 252) / (stdDev * math.Sqrt(252))
}
