package pinescript

import (
	"fmt"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy"
)

// buyOnce enters once at a fixed bar index and never exits. It is the
// conservative substitute for scripts the converter cannot classify.
type buyOnce struct {
	startBar int
}

func newBuyOnce(startBar int) *buyOnce {
	return &buyOnce{startBar: startBar}
}

func (b *buyOnce) Name() string {
	return "buy_once"
}

func (b *buyOnce) Description() string {
	return fmt.Sprintf("Buy once at bar %d (converter fallback)", b.startBar)
}

func (b *buyOnce) WarmUp() int {
	return b.startBar
}

func (b *buyOnce) Init(cfg strategy.Config) error {
	return nil
}

func (b *buyOnce) Evaluate(bars []core.Bar, pos *core.Position) core.Action {
	if pos == nil && len(bars)-1 == b.startBar {
		return core.ActionBuy
	}
	return core.ActionHold
}
