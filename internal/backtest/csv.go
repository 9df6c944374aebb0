package backtest

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// WriteTradesCSV writes the closed trade list of a result to path.
func WriteTradesCSV(result *Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"symbol", "side", "entry_time", "exit_time", "entry_price", "exit_price", "size", "pnl",
	}); err != nil {
		return err
	}
	for _, t := range result.Trades {
		if err := w.Write([]string{
			t.Symbol, string(t.Side),
			t.EntryTime.Format(time.RFC3339),
			t.ExitTime.Format(time.RFC3339),
			formatF(t.EntryPrice), formatF(t.ExitPrice), formatF(t.Size), formatF(t.RealizedPnL),
		}); err != nil {
			return err
		}
	}
	return nil
}

// WriteEquityCSV writes the per-bar equity curve of a result to path.
func WriteEquityCSV(result *Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time", "cash", "position_value", "equity"}); err != nil {
		return err
	}
	for _, s := range result.EquityCurve {
		if err := w.Write([]string{
			s.Time.Format(time.RFC3339),
			formatF(s.Cash), formatF(s.PositionValue), formatF(s.Equity),
		}); err != nil {
			return err
		}
	}
	return nil
}

func formatF(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
