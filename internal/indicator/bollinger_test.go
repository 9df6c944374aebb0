package indicator

import "testing"

func TestBollinger_Calculate(t *testing.T) {
	prices := []float64{10, 12, 14, 16, 18}

	middle, upper, lower := Bollinger(prices, 3, 2)

	// Every 3-bar window has sample std dev 2, so the bands sit
	// 4 away from the middle SMA [12, 14, 16].
	expMiddle := []float64{12, 14, 16}
	expUpper := []float64{16, 18, 20}
	expLower := []float64{8, 10, 12}

	if len(middle) != 3 {
		t.Fatalf("expected 3 values, got %d", len(middle))
	}

	for i := range expMiddle {
		if !almostEqual(middle[i], expMiddle[i], 1e-9) {
			t.Errorf("middle[%d] = %f, want %f", i, middle[i], expMiddle[i])
		}
		if !almostEqual(upper[i], expUpper[i], 1e-9) {
			t.Errorf("upper[%d] = %f, want %f", i, upper[i], expUpper[i])
		}
		if !almostEqual(lower[i], expLower[i], 1e-9) {
			t.Errorf("lower[%d] = %f, want %f", i, lower[i], expLower[i])
		}
	}
}

func TestBollinger_NotEnoughData(t *testing.T) {
	middle, upper, lower := Bollinger([]float64{10}, 20, 2)
	if len(middle) != 0 || len(upper) != 0 || len(lower) != 0 {
		t.Error("expected empty bands for short input")
	}
}
