// Package csvfile loads historical bars from local CSV files.
//
// Files are expected to contain a header row followed by
// time,open,high,low,close,volume records, one bar per row in
// ascending time order. Timestamps may be RFC 3339 or plain dates
// (2006-01-02).
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bossbossk20/trade-backtest-system/internal/collector"
	"github.com/bossbossk20/trade-backtest-system/internal/core"
)

// CSVFile reads bars from files named <symbol>.csv under a base directory
type CSVFile struct {
	dir string
}

// New creates a CSV file collector rooted at dir
func New(dir string) *CSVFile {
	return &CSVFile{dir: dir}
}

func (c *CSVFile) Name() string {
	return "csvfile"
}

func (c *CSVFile) Init(cfg collector.Config) error {
	if cfg.Path != "" {
		c.dir = cfg.Path
	}
	if c.dir == "" {
		return core.WrapError(core.ErrConfigMissing, fmt.Errorf("csvfile: data directory not set"))
	}
	return nil
}

// FetchHistory reads <symbol>.csv and returns bars within [start, end]
func (c *CSVFile) FetchHistory(ctx context.Context, symbol string, start, end time.Time, interval string) ([]core.Bar, error) {
	path := filepath.Join(c.dir, symbol+".csv")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.WrapError(core.ErrSymbolNotFound, fmt.Errorf("no data file for %s", symbol))
		}
		return nil, core.WrapError(core.ErrCollectorFailed, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 6

	// Header row
	if _, err := r.Read(); err != nil {
		return nil, core.WrapError(core.ErrCollectorFailed, fmt.Errorf("reading header of %s: %w", path, err))
	}

	var bars []core.Bar
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, core.WrapError(core.ErrCollectorFailed, fmt.Errorf("reading %s: %w", path, err))
		}

		bar, err := parseRecord(symbol, interval, rec)
		if err != nil {
			return nil, core.WrapError(core.ErrCollectorFailed, fmt.Errorf("parsing %s: %w", path, err))
		}

		if bar.Time.Before(start) || bar.Time.After(end) {
			continue
		}
		bars = append(bars, bar)
	}

	if len(bars) == 0 {
		return nil, core.WrapError(core.ErrNoData, fmt.Errorf("symbol: %s", symbol))
	}
	return bars, nil
}

func parseRecord(symbol, interval string, rec []string) (core.Bar, error) {
	ts, err := parseTime(rec[0])
	if err != nil {
		return core.Bar{}, err
	}

	fields := make([]float64, 4)
	for i, raw := range rec[1:5] {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return core.Bar{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		fields[i] = v
	}

	volume, err := strconv.ParseInt(rec[5], 10, 64)
	if err != nil {
		return core.Bar{}, fmt.Errorf("volume: %w", err)
	}

	bar := core.Bar{
		Symbol:   symbol,
		Interval: core.Interval(interval),
		Open:     fields[0],
		High:     fields[1],
		Low:      fields[2],
		Close:    fields[3],
		Volume:   volume,
		Time:     ts,
	}
	if !bar.IsValid() {
		return core.Bar{}, fmt.Errorf("invalid bar at %s", rec[0])
	}
	return bar, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp: %s", s)
}
