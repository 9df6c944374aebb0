package rsi

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
	"github.com/bossbossk20/trade-backtest-system/internal/indicator"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy"
)

// RSI trades the Relative Strength Index against oversold/overbought
// levels. In crossover mode (the default) it buys when the RSI crosses
// up through the oversold level and sells when it crosses down through
// the overbought level; in threshold mode it acts as soon as the RSI
// sits beyond a level, the behavior strategy scripts usually encode.
type RSI struct {
	period     int
	oversold   float64
	overbought float64
	threshold  bool
}

// New creates a crossover-mode RSI strategy, defaulting to 14/30/70.
func New(period int, oversold, overbought float64) *RSI {
	if period <= 0 {
		period = 14
	}
	if oversold <= 0 {
		oversold = 30
	}
	if overbought <= 0 {
		overbought = 70
	}
	return &RSI{period: period, oversold: oversold, overbought: overbought}
}

// NewThreshold creates a threshold-mode RSI strategy.
func NewThreshold(period int, oversold, overbought float64) *RSI {
	s := New(period, oversold, overbought)
	s.threshold = true
	return s
}

func (r *RSI) Name() string {
	return "rsi"
}

func (r *RSI) Description() string {
	mode := "cross"
	if r.threshold {
		mode = "threshold"
	}
	return fmt.Sprintf("RSI %d (%s %.0f/%.0f)", r.period, mode, r.oversold, r.overbought)
}

func (r *RSI) WarmUp() int {
	return r.period + 1
}

func (r *RSI) Init(cfg strategy.Config) error {
	if v, ok := cfg.Params["period"]; ok {
		r.period = cast.ToInt(v)
	}
	if v, ok := cfg.Params["oversold"]; ok {
		r.oversold = cast.ToFloat64(v)
	}
	if v, ok := cfg.Params["overbought"]; ok {
		r.overbought = cast.ToFloat64(v)
	}
	if v, ok := cfg.Params["threshold"]; ok {
		r.threshold = cast.ToBool(v)
	}
	if r.period <= 0 || r.oversold >= r.overbought {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("rsi needs period > 0 and oversold < overbought, got %d %.0f/%.0f", r.period, r.oversold, r.overbought))
	}
	return nil
}

func (r *RSI) Evaluate(bars []core.Bar, pos *core.Position) core.Action {
	if len(bars)-1 < r.period+1 {
		return core.ActionHold
	}

	values := indicator.RSI(strategy.Closes(bars), r.period)
	if len(values) < 2 {
		return core.ActionHold
	}

	curr := values[len(values)-1]
	prev := values[len(values)-2]

	if r.threshold {
		if pos == nil && curr < r.oversold {
			return core.ActionBuy
		}
		if pos != nil && curr > r.overbought {
			return core.ActionSell
		}
		return core.ActionHold
	}

	if pos == nil {
		if prev <= r.oversold && curr > r.oversold {
			return core.ActionBuy
		}
	} else {
		if prev >= r.overbought && curr < r.overbought {
			return core.ActionSell
		}
	}

	return core.ActionHold
}
