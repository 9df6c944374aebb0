package archive

import (
	"context"
	"testing"
	"time"

	"github.com/bossbossk20/trade-backtest-system/internal/backtest"
	"github.com/bossbossk20/trade-backtest-system/internal/core"
)

func sampleResult(id string) *backtest.Result {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &backtest.Result{
		ID:             id,
		Strategy:       "sma_cross",
		Symbol:         "AAPL",
		InitialCapital: 10000,
		FinalEquity:    11000,
		TotalReturnPct: 10,
		Trades: []core.Position{
			{
				Symbol:      "AAPL",
				Side:        core.SideLong,
				Size:        50,
				EntryPrice:  100,
				EntryTime:   now.Add(-48 * time.Hour),
				ExitPrice:   120,
				ExitTime:    now.Add(-24 * time.Hour),
				RealizedPnL: 1000,
			},
		},
		Stats: backtest.Stats{
			TotalTrades:   1,
			WinningTrades: 1,
			WinRatePct:    100,
			AvgWin:        1000,
		},
		StartedAt:  now,
		FinishedAt: now.Add(time.Second),
	}
}

func TestResultStore_SaveLoad(t *testing.T) {
	fs, err := NewLocalFS(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	store := NewResultStore(fs)
	ctx := context.Background()

	want := sampleResult("run-1")
	p, err := store.Save(ctx, want)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if p != "backtests/sma_cross/AAPL/run-1.json" {
		t.Errorf("unexpected path: %s", p)
	}

	got, err := store.Load(ctx, "sma_cross", "AAPL", "run-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.ID != want.ID || got.FinalEquity != want.FinalEquity {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if len(got.Trades) != 1 || got.Trades[0].RealizedPnL != 1000 {
		t.Errorf("trades not preserved: %+v", got.Trades)
	}
	if !got.Trades[0].EntryTime.Equal(want.Trades[0].EntryTime) {
		t.Errorf("entry time mismatch: %v vs %v", got.Trades[0].EntryTime, want.Trades[0].EntryTime)
	}
}

func TestResultStore_SaveWithoutID(t *testing.T) {
	fs, _ := NewLocalFS(t.TempDir())
	store := NewResultStore(fs)

	r := sampleResult("")
	if _, err := store.Save(context.Background(), r); err == nil {
		t.Error("expected error for result without ID")
	}
}

func TestResultStore_List(t *testing.T) {
	fs, _ := NewLocalFS(t.TempDir())
	store := NewResultStore(fs)
	ctx := context.Background()

	for _, id := range []string{"run-1", "run-2"} {
		if _, err := store.Save(ctx, sampleResult(id)); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := store.List(ctx, "sma_cross", "AAPL")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(ids))
	}
	for _, id := range ids {
		if id != "run-1" && id != "run-2" {
			t.Errorf("unexpected id: %s", id)
		}
	}
}

func TestResultStore_LoadMissing(t *testing.T) {
	fs, _ := NewLocalFS(t.TempDir())
	store := NewResultStore(fs)

	_, err := store.Load(context.Background(), "sma_cross", "AAPL", "nope")
	if err == nil {
		t.Error("expected error for missing result")
	}
}
