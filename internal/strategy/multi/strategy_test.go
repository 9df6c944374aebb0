package multi

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

func TestMulti_ImplementsStrategy(t *testing.T) {
	var _ strategy.Strategy = (*Multi)(nil)
}

func TestMulti_BuyOnPullbackInUptrend(t *testing.T) {
	s := New()

	// 60 rising bars then a sharp one-bar drop: RSI falls to ~21
	// while EMA(9) still sits above EMA(21), satisfying the
	// "depressed RSI plus bullish trend" entry.
	closes := make([]float64, 61)
	for i := 0; i < 60; i++ {
		closes[i] = 100 + float64(i)
	}
	closes[60] = 109

	if got := s.Evaluate(barsFromCloses(closes), nil); got != core.ActionBuy {
		t.Errorf("Evaluate() = %s, want buy on pullback", got)
	}
}

func TestMulti_SellOnOverboughtRSI(t *testing.T) {
	s := New()

	// A pure uptrend pins RSI at 100, which alone forces an exit.
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}

	pos := &core.Position{Side: core.SideLong, Size: 1, EntryPrice: 100}
	if got := s.Evaluate(barsFromCloses(closes), pos); got != core.ActionSell {
		t.Errorf("Evaluate() = %s, want sell on overbought RSI", got)
	}

	// The same overbought reading is not an entry while flat.
	if got := s.Evaluate(barsFromCloses(closes), nil); got != core.ActionHold {
		t.Errorf("Evaluate() = %s, want hold when flat", got)
	}
}

func TestMulti_WarmUp(t *testing.T) {
	s := New()
	if s.WarmUp() != 50 {
		t.Errorf("WarmUp() = %d, want 50", s.WarmUp())
	}

	bars := barsFromCloses([]float64{100, 101, 102})
	if got := s.Evaluate(bars, nil); got != core.ActionHold {
		t.Errorf("Evaluate() = %s, want hold during warm-up", got)
	}
}

func TestMulti_Init(t *testing.T) {
	s := New()
	if err := s.Init(strategy.Config{}); err != nil {
		t.Errorf("Init() error = %v", err)
	}
}
