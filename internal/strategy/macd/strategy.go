package macd

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
	"github.com/bossbossk20/trade-backtest-system/internal/indicator"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy"
)

// MACD buys when the MACD line crosses above its signal line and
// sells on the opposite cross.
type MACD struct {
	fast   int
	slow   int
	signal int
}

// New creates a MACD strategy, defaulting to 12/26/9.
func New(fast, slow, signal int) *MACD {
	if fast <= 0 {
		fast = 12
	}
	if slow <= 0 {
		slow = 26
	}
	if signal <= 0 {
		signal = 9
	}
	return &MACD{fast: fast, slow: slow, signal: signal}
}

func (m *MACD) Name() string {
	return "macd"
}

func (m *MACD) Description() string {
	return fmt.Sprintf("MACD (%d/%d/%d)", m.fast, m.slow, m.signal)
}

func (m *MACD) WarmUp() int {
	return m.slow + m.signal
}

func (m *MACD) Init(cfg strategy.Config) error {
	if v, ok := cfg.Params["fast"]; ok {
		m.fast = cast.ToInt(v)
	}
	if v, ok := cfg.Params["slow"]; ok {
		m.slow = cast.ToInt(v)
	}
	if v, ok := cfg.Params["signal"]; ok {
		m.signal = cast.ToInt(v)
	}
	if m.fast <= 0 || m.slow <= 0 || m.signal <= 0 || m.fast >= m.slow {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("macd needs 0 < fast < slow and signal > 0, got %d/%d/%d", m.fast, m.slow, m.signal))
	}
	return nil
}

func (m *MACD) Evaluate(bars []core.Bar, pos *core.Position) core.Action {
	if len(bars)-1 < m.slow+m.signal {
		return core.ActionHold
	}

	line, signalLine := indicator.MACD(strategy.Closes(bars), m.fast, m.slow, m.signal)

	n := len(line)
	currMACD, prevMACD := line[n-1], line[n-2]
	currSignal, prevSignal := signalLine[n-1], signalLine[n-2]

	if pos == nil {
		if strategy.CrossedAbove(prevMACD, prevSignal, currMACD, currSignal) {
			return core.ActionBuy
		}
	} else {
		if strategy.CrossedBelow(prevMACD, prevSignal, currMACD, currSignal) {
			return core.ActionSell
		}
	}

	return core.ActionHold
}
