package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricepulse/pricepulse-api/internal/domain/model"
	apperrors "github.com/pricepulse/pricepulse-api/internal/errors"
)

// stubStrategy is a minimal Strategy for registry tests.
type stubStrategy struct {
	tag model.StrategyType
}

func (s *stubStrategy) Type() model.StrategyType              { return s.tag }
func (s *stubStrategy) Validate(model.Settings) bool          { return true }
func (s *stubStrategy) Describe() string                      { return "stub" }
func (s *stubStrategy) Execute(context.Context, model.Settings, string) (*model.IngestionResult, error) {
	return model.NewIngestionResult().Finish(testTime()), nil
}

func TestRegistry_RegisterAndResolve(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	scraper := &stubStrategy{tag: model.StrategyTypeScraper}
	reg.Register(scraper)

	resolved, err := reg.Resolve(model.StrategyTypeScraper)
	require.NoError(t, err)
	// resolve returns the exact registered instance
	assert.Same(t, scraper, resolved)
}

func TestRegistry_Resolve_Unsupported(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(&stubStrategy{tag: model.StrategyTypeScraper})
	reg.Register(&stubStrategy{tag: model.StrategyTypeAPI})

	_, err := reg.Resolve(model.StrategyType("FEED"))
	require.Error(t, err)
	assert.True(t, apperrors.IsUnsupportedStrategy(err))
	// the message names the tag and enumerates supported tags for operators
	assert.Contains(t, err.Error(), "FEED")
	assert.Contains(t, err.Error(), "API, SCRAPER")
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	first := &stubStrategy{tag: model.StrategyTypeScraper}
	second := &stubStrategy{tag: model.StrategyTypeScraper}
	reg.Register(first)
	reg.Register(second)

	resolved, err := reg.Resolve(model.StrategyTypeScraper)
	require.NoError(t, err)
	assert.Same(t, second, resolved)
}

func TestRegistry_Introspection(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	assert.False(t, reg.IsSupported(model.StrategyTypeScraper))
	assert.Empty(t, reg.Supported())

	reg.Register(&stubStrategy{tag: model.StrategyTypeScraper})
	reg.Register(&stubStrategy{tag: model.StrategyTypeAPI})

	assert.True(t, reg.IsSupported(model.StrategyTypeScraper))
	assert.True(t, reg.IsSupported(model.StrategyTypeAPI))
	assert.Equal(t,
		[]model.StrategyType{model.StrategyTypeAPI, model.StrategyTypeScraper},
		reg.Supported())
}
