package ema_cross

import (
	"testing"
	"time"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy"
)

func barsFromCloses(closes []float64) []core.Bar {
	bars := make([]core.Bar, len(closes))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = core.Bar{Symbol: "TEST", Close: c, Time: base.AddDate(0, 0, i)}
	}
	return bars
}

func TestEMACross_ImplementsStrategy(t *testing.T) {
	var _ strategy.Strategy = (*EMACross)(nil)
}

func TestEMACross_CrossUp(t *testing.T) {
	s := New(2, 4)

	// Decline then spike: EMA(2) 82.47 -> 107.49 vs EMA(4) 86.53 -> 99.92,
	// short crosses above long on the final bar.
	bars := barsFromCloses([]float64{100, 95, 90, 85, 80, 120})

	if got := s.Evaluate(bars, nil); got != core.ActionBuy {
		t.Errorf("Evaluate() = %s, want buy on cross up", got)
	}
}

func TestEMACross_CrossDown(t *testing.T) {
	s := New(2, 4)

	bars := barsFromCloses([]float64{100, 105, 110, 115, 120, 80})

	pos := &core.Position{Side: core.SideLong, Size: 1, EntryPrice: 100}
	if got := s.Evaluate(bars, pos); got != core.ActionSell {
		t.Errorf("Evaluate() = %s, want sell on cross down", got)
	}
	if got := s.Evaluate(bars, nil); got != core.ActionHold {
		t.Errorf("Evaluate() = %s, want hold when flat", got)
	}
}

func TestEMACross_WarmUp(t *testing.T) {
	s := New(9, 21)
	if s.WarmUp() != 21 {
		t.Errorf("WarmUp() = %d, want 21", s.WarmUp())
	}

	bars := barsFromCloses([]float64{100, 101, 102})
	if got := s.Evaluate(bars, nil); got != core.ActionHold {
		t.Errorf("Evaluate() = %s, want hold during warm-up", got)
	}
}

func TestEMACross_Init(t *testing.T) {
	s := New(9, 21)
	if err := s.Init(strategy.Config{Params: map[string]any{"short_period": 21, "long_period": 9}}); err == nil {
		t.Error("Init() should reject short >= long")
	}
}
