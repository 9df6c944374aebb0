package stochastic

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
	"github.com/bossbossk20/trade-backtest-system/internal/indicator"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy"
)

// Stochastic trades %K/%D crosses inside the extreme zones: buy when
// %K crosses above %D while oversold, sell when %K crosses below %D
// while overbought.
type Stochastic struct {
	kPeriod    int
	dPeriod    int
	overbought float64
	oversold   float64
}

// New creates a stochastic oscillator strategy, defaulting to
// 14/3 with 80/20 zones.
func New(kPeriod, dPeriod int, overbought, oversold float64) *Stochastic {
	if kPeriod <= 0 {
		kPeriod = 14
	}
	if dPeriod <= 0 {
		dPeriod = 3
	}
	if overbought <= 0 {
		overbought = 80
	}
	if oversold <= 0 {
		oversold = 20
	}
	return &Stochastic{kPeriod: kPeriod, dPeriod: dPeriod, overbought: overbought, oversold: oversold}
}

func (s *Stochastic) Name() string {
	return "stochastic"
}

func (s *Stochastic) Description() string {
	return fmt.Sprintf("Stochastic (%d/%d, %.0f/%.0f)", s.kPeriod, s.dPeriod, s.overbought, s.oversold)
}

func (s *Stochastic) WarmUp() int {
	return s.kPeriod + s.dPeriod
}

func (s *Stochastic) Init(cfg strategy.Config) error {
	if v, ok := cfg.Params["k_period"]; ok {
		s.kPeriod = cast.ToInt(v)
	}
	if v, ok := cfg.Params["d_period"]; ok {
		s.dPeriod = cast.ToInt(v)
	}
	if v, ok := cfg.Params["overbought"]; ok {
		s.overbought = cast.ToFloat64(v)
	}
	if v, ok := cfg.Params["oversold"]; ok {
		s.oversold = cast.ToFloat64(v)
	}
	if s.kPeriod <= 0 || s.dPeriod <= 0 || s.oversold >= s.overbought {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("stochastic needs positive periods and oversold < overbought"))
	}
	return nil
}

func (s *Stochastic) Evaluate(bars []core.Bar, pos *core.Position) core.Action {
	if len(bars)-1 < s.kPeriod+s.dPeriod {
		return core.ActionHold
	}

	k, d := indicator.Stochastic(
		strategy.Highs(bars),
		strategy.Lows(bars),
		strategy.Closes(bars),
		s.kPeriod, s.dPeriod,
	)
	if len(k) < 2 || len(d) < 2 {
		return core.ActionHold
	}

	currK, prevK := k[len(k)-1], k[len(k)-2]
	currD, prevD := d[len(d)-1], d[len(d)-2]

	if pos == nil {
		if currK < s.oversold && strategy.CrossedAbove(prevK, prevD, currK, currD) {
			return core.ActionBuy
		}
	} else {
		if currK > s.overbought && strategy.CrossedBelow(prevK, prevD, currK, currD) {
			return core.ActionSell
		}
	}

	return core.ActionHold
}
