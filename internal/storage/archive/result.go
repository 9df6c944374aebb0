package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/bossbossk20/trade-backtest-system/internal/backtest"
	"github.com/bossbossk20/trade-backtest-system/internal/core"
)

// ResultStore archives completed backtest results as JSON documents,
// keyed by strategy, symbol and run ID.
type ResultStore struct {
	storage Storage
}

// NewResultStore creates a result store on top of a storage backend
func NewResultStore(storage Storage) *ResultStore {
	return &ResultStore{storage: storage}
}

func resultPath(strategy, symbol, id string) string {
	return path.Join("backtests", strategy, symbol, id+".json")
}

// Save archives one backtest result and returns the storage path
func (r *ResultStore) Save(ctx context.Context, result *backtest.Result) (string, error) {
	if result.ID == "" {
		return "", core.WrapError(core.ErrArchiveFailed, fmt.Errorf("result has no ID"))
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", core.WrapError(core.ErrArchiveFailed, err)
	}

	p := resultPath(result.Strategy, result.Symbol, result.ID)
	if err := r.storage.Write(ctx, p, data); err != nil {
		return "", core.WrapError(core.ErrArchiveFailed, fmt.Errorf("writing %s: %w", p, err))
	}
	return p, nil
}

// Load reads back an archived result by strategy, symbol and run ID
func (r *ResultStore) Load(ctx context.Context, strategy, symbol, id string) (*backtest.Result, error) {
	p := resultPath(strategy, symbol, id)
	data, err := r.storage.Read(ctx, p)
	if err != nil {
		return nil, core.WrapError(core.ErrArchiveFailed, fmt.Errorf("reading %s: %w", p, err))
	}

	var result backtest.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, core.WrapError(core.ErrArchiveFailed, fmt.Errorf("decoding %s: %w", p, err))
	}
	return &result, nil
}

// List returns the run IDs archived for a strategy/symbol pair
func (r *ResultStore) List(ctx context.Context, strategy, symbol string) ([]string, error) {
	prefix := path.Join("backtests", strategy, symbol)
	paths, err := r.storage.List(ctx, prefix)
	if err != nil {
		return nil, core.WrapError(core.ErrArchiveFailed, err)
	}

	ids := make([]string, 0, len(paths))
	for _, p := range paths {
		name := path.Base(p)
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}
