package strategy

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
)

// Registry holds the named strategies available to the backtester.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
	logger     *zap.Logger
}

// NewRegistry creates an empty strategy registry.
func NewRegistry(logger ...*zap.Logger) *Registry {
	var l *zap.Logger
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	} else {
		l = zap.NewNop()
	}
	return &Registry{
		strategies: make(map[string]Strategy),
		logger:     l,
	}
}

// Register adds a strategy to the registry, replacing any previous
// strategy with the same name.
func (r *Registry) Register(s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[s.Name()]; exists {
		r.logger.Warn("replacing registered strategy", zap.String("strategy", s.Name()))
	}
	r.strategies[s.Name()] = s
}

// Get retrieves a strategy by name.
func (r *Registry) Get(name string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.strategies[name]
	if !ok {
		return nil, core.ErrUnknownStrategy
	}
	return s, nil
}

// All returns every registered strategy, ordered by name.
func (r *Registry) All() []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Strategy, 0, len(r.strategies))
	for _, s := range r.strategies {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result
}

// Names returns the sorted names of all registered strategies.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
