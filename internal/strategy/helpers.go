package strategy

import (
	"github.com/bossbossk20/trade-backtest-system/internal/core"
)

// Closes extracts closing prices from a bar sequence.
func Closes(bars []core.Bar) []float64 {
	prices := make([]float64, len(bars))
	for i, bar := range bars {
		prices[i] = bar.Close
	}
	return prices
}

// Highs extracts high prices from a bar sequence.
func Highs(bars []core.Bar) []float64 {
	prices := make([]float64, len(bars))
	for i, bar := range bars {
		prices[i] = bar.High
	}
	return prices
}

// Lows extracts low prices from a bar sequence.
func Lows(bars []core.Bar) []float64 {
	prices := make([]float64, len(bars))
	for i, bar := range bars {
		prices[i] = bar.Low
	}
	return prices
}

// CrossedAbove reports whether series a crossed above series b on the
// latest value: a was at or below b previously and is above it now.
func CrossedAbove(prevA, prevB, currA, currB float64) bool {
	return prevA <= prevB && currA > currB
}

// CrossedBelow reports whether series a crossed below series b on the
// latest value.
func CrossedBelow(prevA, prevB, currA, currB float64) bool {
	return prevA >= prevB && currA < currB
}
