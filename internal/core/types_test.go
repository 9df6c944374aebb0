package core

import (
	"testing"
	"time"
)

func TestBar_IsValid(t *testing.T) {
	now := time.Now()

	valid := Bar{Symbol: "AAPL", Open: 100, High: 105, Low: 99, Close: 102, Volume: 1000, Time: now}
	if !valid.IsValid() {
		t.Error("expected bar to be valid")
	}

	missingClose := Bar{Symbol: "AAPL", Open: 100, High: 105, Low: 99, Time: now}
	if missingClose.IsValid() {
		t.Error("bar without close should be invalid")
	}

	missingTime := Bar{Symbol: "AAPL", Open: 100, High: 105, Low: 99, Close: 102}
	if missingTime.IsValid() {
		t.Error("bar without timestamp should be invalid")
	}
}

func TestPosition_Close_Long(t *testing.T) {
	entry := time.Now()
	exit := entry.AddDate(0, 0, 5)

	pos := &Position{
		Symbol:     "AAPL",
		Side:       SideLong,
		Size:       9.5,
		EntryPrice: 100,
		EntryTime:  entry,
	}

	if pos.IsClosed() {
		t.Fatal("fresh position should be open")
	}
	if pos.RealizedPnL != 0 {
		t.Errorf("open position RealizedPnL = %v, want 0", pos.RealizedPnL)
	}

	pnl := pos.Close(90, exit)

	// (90 - 100) * 9.5 = -95
	if pnl != -95 {
		t.Errorf("pnl = %v, want -95", pnl)
	}
	if !pos.IsClosed() {
		t.Error("position should be closed after Close")
	}
	if pos.ExitPrice != 90 || !pos.ExitTime.Equal(exit) {
		t.Errorf("exit fields not set: price=%v time=%v", pos.ExitPrice, pos.ExitTime)
	}
	if pos.IsWin() {
		t.Error("losing trade reported as win")
	}
}

func TestPosition_Close_Short(t *testing.T) {
	pos := &Position{Side: SideShort, Size: 2, EntryPrice: 50, EntryTime: time.Now()}

	pnl := pos.Close(40, time.Now())

	// (50 - 40) * 2 = 20
	if pnl != 20 {
		t.Errorf("pnl = %v, want 20", pnl)
	}
	if !pos.IsWin() {
		t.Error("profitable short reported as loss")
	}
}

func TestPosition_MarketValue(t *testing.T) {
	pos := &Position{Side: SideLong, Size: 9.5, EntryPrice: 100}

	if got := pos.MarketValue(110); got != 1045 {
		t.Errorf("MarketValue(110) = %v, want 1045", got)
	}
}
