package backtest

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
)

func TestWriteTradesCSV(t *testing.T) {
	engine, _ := New(Options{InitialCapital: 1000, CommissionRate: 0.01}, nil)
	bars := testBars(100, 110, 90)
	strat := &scriptStrategy{actions: []core.Action{core.ActionBuy, core.ActionHold, core.ActionSell}}

	result, err := engine.Run(context.Background(), bars, strat)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "trades.csv")
	if err := WriteTradesCSV(result, path); err != nil {
		t.Fatalf("WriteTradesCSV() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	if len(records) != 2 { // header + one trade
		t.Fatalf("rows = %d, want 2", len(records))
	}
	if records[0][0] != "symbol" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][0] != "TEST" || records[1][1] != "long" {
		t.Errorf("trade row = %v", records[1])
	}
}

func TestWriteEquityCSV(t *testing.T) {
	engine, _ := New(Options{InitialCapital: 1000, CommissionRate: 0.01}, nil)
	bars := testBars(100, 110, 90)

	result, err := engine.Run(context.Background(), bars, &alwaysStrategy{action: core.ActionHold})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "equity.csv")
	if err := WriteEquityCSV(result, path); err != nil {
		t.Fatalf("WriteEquityCSV() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	if len(records) != 4 { // header + 3 samples
		t.Fatalf("rows = %d, want 4", len(records))
	}
	if records[1][3] != "1000" {
		t.Errorf("first equity = %s, want 1000", records[1][3])
	}
}
