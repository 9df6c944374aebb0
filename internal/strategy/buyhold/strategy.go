package buyhold

import (
	"github.com/bossbossk20/trade-backtest-system/internal/core"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy"
)

// BuyHold buys on the first bar and never sells. Useful as a baseline
// for comparing active strategies.
type BuyHold struct{}

// New creates a buy-and-hold strategy.
func New() *BuyHold {
	return &BuyHold{}
}

func (b *BuyHold) Name() string {
	return "buy_hold"
}

func (b *BuyHold) Description() string {
	return "Buy on the first bar and hold"
}

func (b *BuyHold) WarmUp() int {
	return 0
}

func (b *BuyHold) Init(cfg strategy.Config) error {
	return nil
}

func (b *BuyHold) Evaluate(bars []core.Bar, pos *core.Position) core.Action {
	if len(bars) == 1 && pos == nil {
		return core.ActionBuy
	}
	return core.ActionHold
}
