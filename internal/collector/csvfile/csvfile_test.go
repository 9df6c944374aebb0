package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bossbossk20/trade-backtest-system/internal/collector"
	"github.com/bossbossk20/trade-backtest-system/internal/core"
)

const sampleCSV = `time,open,high,low,close,volume
2024-01-02,100.0,105.0,99.0,104.0,1000
2024-01-03,104.0,110.0,103.0,108.0,1500
2024-01-04,108.0,112.0,107.0,110.0,1200
`

func writeSample(t *testing.T, symbol string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, symbol+".csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestCSVFile_ImplementsCollector(t *testing.T) {
	var _ collector.Collector = (*CSVFile)(nil)
}

func TestCSVFile_FetchHistory(t *testing.T) {
	dir := writeSample(t, "AAPL")
	c := New(dir)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	bars, err := c.FetchHistory(context.Background(), "AAPL", start, end, "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(bars))
	}
	if bars[0].Close != 104.0 || bars[2].Close != 110.0 {
		t.Errorf("unexpected closes: %f, %f", bars[0].Close, bars[2].Close)
	}
	if bars[1].Volume != 1500 {
		t.Errorf("expected volume 1500, got %d", bars[1].Volume)
	}
	if bars[0].Symbol != "AAPL" || bars[0].Interval != "1d" {
		t.Errorf("bar metadata not set: %+v", bars[0])
	}
}

func TestCSVFile_FetchHistory_RangeFilter(t *testing.T) {
	dir := writeSample(t, "AAPL")
	c := New(dir)

	start := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 23, 0, 0, 0, time.UTC)

	bars, err := c.FetchHistory(context.Background(), "AAPL", start, end, "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 1 {
		t.Fatalf("expected 1 bar in range, got %d", len(bars))
	}
	if bars[0].Close != 108.0 {
		t.Errorf("expected close 108.0, got %f", bars[0].Close)
	}
}

func TestCSVFile_FetchHistory_MissingFile(t *testing.T) {
	c := New(t.TempDir())
	_, err := c.FetchHistory(context.Background(), "MSFT", time.Now().Add(-time.Hour), time.Now(), "1d")
	if !errors.Is(err, core.ErrSymbolNotFound) {
		t.Errorf("expected ErrSymbolNotFound, got %v", err)
	}
}

func TestCSVFile_FetchHistory_EmptyRange(t *testing.T) {
	dir := writeSample(t, "AAPL")
	c := New(dir)

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)

	_, err := c.FetchHistory(context.Background(), "AAPL", start, end, "1d")
	if !errors.Is(err, core.ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

func TestCSVFile_FetchHistory_BadRecord(t *testing.T) {
	dir := t.TempDir()
	bad := "time,open,high,low,close,volume\n2024-01-02,abc,105.0,99.0,104.0,1000\n"
	if err := os.WriteFile(filepath.Join(dir, "BAD.csv"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(dir)
	_, err := c.FetchHistory(context.Background(), "BAD", time.Now().Add(-24*365*10*time.Hour), time.Now(), "1d")
	if !errors.Is(err, core.ErrCollectorFailed) {
		t.Errorf("expected ErrCollectorFailed, got %v", err)
	}
}

func TestCSVFile_Init(t *testing.T) {
	c := New("")
	if err := c.Init(collector.Config{}); !errors.Is(err, core.ErrConfigMissing) {
		t.Errorf("expected ErrConfigMissing, got %v", err)
	}
	if err := c.Init(collector.Config{Path: t.TempDir()}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
