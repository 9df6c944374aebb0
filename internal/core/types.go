package core

import "time"

// Interval identifies the bar duration, e.g. "1m", "1h", "1d".
type Interval string

const (
	Interval1m Interval = "1m"
	Interval5m Interval = "5m"
	Interval1h Interval = "1h"
	Interval1d Interval = "1d"
)

// Bar represents one OHLCV candlestick. Bars are produced by a data
// source and are read-only for the rest of the system.
type Bar struct {
	Symbol   string
	Interval Interval
	Open     float64
	High     float64
	Low      float64
	Close    float64
	Volume   int64
	Time     time.Time
}

// IsValid checks that the bar carries a complete OHLC set.
func (b Bar) IsValid() bool {
	return b.Open > 0 && b.High > 0 && b.Low > 0 && b.Close > 0 && !b.Time.IsZero()
}

// Action represents a trading decision for the current bar.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
	ActionHold Action = "hold"
)

// Side represents the direction of a position.
type Side string

const (
	SideLong  Side = "long"
	SideShort Side = "short"
)

// Position tracks a single trade from entry to exit. The backtest
// engine creates it on a Buy, mutates it exactly once via Close, and
// then appends it to the immutable trade list. ExitPrice and ExitTime
// are either both zero (open) or both set (closed); RealizedPnL is 0
// while the position is open.
type Position struct {
	Symbol      string
	Side        Side
	Size        float64
	EntryPrice  float64
	EntryTime   time.Time
	ExitPrice   float64
	ExitTime    time.Time
	RealizedPnL float64
}

// Close sets the exit fields and computes the realized P&L.
// Returns the realized P&L for convenience.
func (p *Position) Close(exitPrice float64, exitTime time.Time) float64 {
	p.ExitPrice = exitPrice
	p.ExitTime = exitTime

	if p.Side == SideShort {
		p.RealizedPnL = (p.EntryPrice - exitPrice) * p.Size
	} else {
		p.RealizedPnL = (exitPrice - p.EntryPrice) * p.Size
	}
	return p.RealizedPnL
}

// IsClosed returns true once the position has exit fields set.
func (p *Position) IsClosed() bool {
	return !p.ExitTime.IsZero()
}

// IsWin returns true if the closed position was profitable.
func (p *Position) IsWin() bool {
	return p.RealizedPnL > 0
}

// MarketValue returns the position's notional at the given mark price.
func (p *Position) MarketValue(markPrice float64) float64 {
	return p.Size * markPrice
}
