package indicator

import (
	"math"
	"testing"
)

func TestSMA_Calculate(t *testing.T) {
	prices := []float64{10, 11, 12, 13, 14, 15}

	sma := SMA(prices, 3)

	// SMA(3) for [10,11,12,13,14,15]:
	// [0] = (10+11+12)/3 = 11
	// [1] = (11+12+13)/3 = 12
	// [2] = (12+13+14)/3 = 13
	// [3] = (13+14+15)/3 = 14
	expected := []float64{11, 12, 13, 14}

	if len(sma) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(sma))
	}

	for i, v := range expected {
		if sma[i] != v {
			t.Errorf("sma[%d] = %f, want %f", i, sma[i], v)
		}
	}
}

func TestSMA_NotEnoughData(t *testing.T) {
	prices := []float64{10, 11}
	sma := SMA(prices, 5)

	if len(sma) != 0 {
		t.Errorf("expected empty slice, got %d values", len(sma))
	}
}

func TestEMA_Calculate(t *testing.T) {
	prices := []float64{10, 11, 12, 13}
	ema := EMA(prices, 3)

	if len(ema) != len(prices) {
		t.Fatalf("expected %d values, got %d", len(prices), len(ema))
	}

	// multiplier = 2/(3+1) = 0.5, seeded at prices[0]:
	// [10, 10.5, 11.25, 12.125]
	expected := []float64{10, 10.5, 11.25, 12.125}
	for i, v := range expected {
		if !almostEqual(ema[i], v, 1e-9) {
			t.Errorf("ema[%d] = %f, want %f", i, ema[i], v)
		}
	}
}

func TestEMA_Empty(t *testing.T) {
	if got := EMA(nil, 5); len(got) != 0 {
		t.Errorf("expected empty slice, got %d values", len(got))
	}
}

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}
