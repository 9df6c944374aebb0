package buyhold

import (
	"testing"
	"time"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy"
)

func TestBuyHold_ImplementsStrategy(t *testing.T) {
	var _ strategy.Strategy = (*BuyHold)(nil)
}

func TestBuyHold_BuysFirstBarOnly(t *testing.T) {
	s := New()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	first := []core.Bar{{Symbol: "TEST", Close: 100, Time: base}}
	if got := s.Evaluate(first, nil); got != core.ActionBuy {
		t.Errorf("Evaluate(first bar) = %s, want buy", got)
	}

	later := append(first, core.Bar{Symbol: "TEST", Close: 110, Time: base.AddDate(0, 0, 1)})
	pos := &core.Position{Side: core.SideLong, Size: 1, EntryPrice: 100}
	if got := s.Evaluate(later, pos); got != core.ActionHold {
		t.Errorf("Evaluate(later, positioned) = %s, want hold", got)
	}
	if got := s.Evaluate(later, nil); got != core.ActionHold {
		t.Errorf("Evaluate(later, flat) = %s, want hold", got)
	}
}
