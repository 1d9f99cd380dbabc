package strategy

import (
	"sort"
	"strings"
	"sync"

	"github.com/pricepulse/pricepulse-api/internal/domain/model"
	apperrors "github.com/pricepulse/pricepulse-api/internal/errors"
)

// Registry maps strategy type tags to registered implementations. It
// decouples the orchestrator from concrete strategies: new acquisition
// methods are added by registering them at process start, without
// orchestrator changes.
type Registry struct {
	mu         sync.RWMutex
	strategies map[model.StrategyType]Strategy
}

// NewRegistry creates an empty strategy registry.
func NewRegistry() *Registry {
	return &Registry{
		strategies: make(map[model.StrategyType]Strategy),
	}
}

// Register stores the strategy keyed by its type tag. A later
// registration for the same tag overwrites the earlier one, so
// registration should happen once during process startup.
func (r *Registry) Register(s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strategies[s.Type()] = s
}

// Resolve returns the implementation registered for tag. When no
// implementation is registered it fails with an UnsupportedStrategy
// error whose message enumerates the currently supported tags.
func (r *Registry) Resolve(tag model.StrategyType) (Strategy, error) {
	r.mu.RLock()
	s, ok := r.strategies[tag]
	r.mu.RUnlock()
	if !ok {
		supported := r.Supported()
		names := make([]string, len(supported))
		for i, t := range supported {
			names[i] = string(t)
		}
		return nil, apperrors.UnsupportedStrategyf(
			"unsupported ingestion strategy: %s. Supported strategies: %s",
			tag, strings.Join(names, ", "))
	}
	return s, nil
}

// IsSupported reports whether an implementation is registered for tag.
func (r *Registry) IsSupported(tag model.StrategyType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.strategies[tag]
	return ok
}

// Supported returns the registered tags in stable sorted order.
func (r *Registry) Supported() []model.StrategyType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]model.StrategyType, 0, len(r.strategies))
	for tag := range r.strategies {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
