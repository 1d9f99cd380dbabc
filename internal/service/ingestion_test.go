package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pricepulse/pricepulse-api/internal/core"
	"github.com/pricepulse/pricepulse-api/internal/data"
	"github.com/pricepulse/pricepulse-api/internal/domain/model"
	apperrors "github.com/pricepulse/pricepulse-api/internal/errors"
	"github.com/pricepulse/pricepulse-api/internal/mocks"
	"github.com/pricepulse/pricepulse-api/internal/strategy"
)

var fixedNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

type serviceFixture struct {
	configs   *mocks.MockIngestionConfigRepository
	retailers *mocks.MockRetailerRepository
	locks     *mocks.MockRunLockRepository
	registry  *strategy.Registry
	svc       *IngestionService
}

type fixtureOptions struct {
	withLocks bool
}

func newFixture(t *testing.T, opts fixtureOptions) *serviceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &serviceFixture{
		configs:   mocks.NewMockIngestionConfigRepository(ctrl),
		retailers: mocks.NewMockRetailerRepository(ctrl),
		registry:  strategy.NewRegistry(),
	}
	svcOpts := IngestionServiceOptions{
		Configs:    f.configs,
		Retailers:  f.retailers,
		Strategies: f.registry,
	}
	if opts.withLocks {
		f.locks = mocks.NewMockRunLockRepository(ctrl)
		svcOpts.Locks = f.locks
	}
	f.svc = NewIngestionService(svcOpts)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

// registerStrategy wires a MockStrategy into the fixture registry under tag.
func (f *serviceFixture) registerStrategy(ctrl *gomock.Controller, tag model.StrategyType) *mocks.MockStrategy {
	strat := mocks.NewMockStrategy(ctrl)
	strat.EXPECT().Type().Return(tag).AnyTimes()
	f.registry.Register(strat)
	return strat
}

func scraperConfig() *model.IngestionConfig {
	return &model.IngestionConfig{
		ID:         "cfg-1",
		RetailerID: "retailer-1",
		Name:       "daily scrape",
		Strategy:   model.StrategyTypeScraper,
		Settings:   model.Settings{"url": "https://shop.test"},
	}
}

func TestTrigger_SuccessRecordsSuccess(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newFixture(t, fixtureOptions{})
	strat := f.registerStrategy(ctrl, model.StrategyTypeScraper)

	cfg := scraperConfig()
	result := model.NewIngestionResult()
	result.ItemsIngested = 4
	result.Finish(fixedNow)

	f.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(cfg, nil)
	strat.EXPECT().Execute(gomock.Any(), cfg.Settings, "retailer-1").Return(result, nil)
	f.configs.EXPECT().RecordRun(gomock.Any(), core.RecordRunParams{
		ConfigID:  "cfg-1",
		RanAt:     fixedNow,
		Succeeded: true,
	}).Return(nil)

	got, err := f.svc.Trigger(context.Background(), "cfg-1")
	require.NoError(t, err)
	assert.Same(t, result, got)
}

func TestTrigger_PartialFailureRecordsFailureButReturnsResult(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newFixture(t, fixtureOptions{})
	strat := f.registerStrategy(ctrl, model.StrategyTypeScraper)

	cfg := scraperConfig()
	result := model.NewIngestionResult()
	result.ItemsIngested = 2
	result.AddError("Failed to store product Milk: disk full")
	result.Finish(fixedNow)

	f.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(cfg, nil)
	strat.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(result, nil)
	f.configs.EXPECT().RecordRun(gomock.Any(), core.RecordRunParams{
		ConfigID:  "cfg-1",
		RanAt:     fixedNow,
		Succeeded: false,
	}).Return(nil)

	got, err := f.svc.Trigger(context.Background(), "cfg-1")
	require.NoError(t, err)
	assert.False(t, got.Success)
	assert.Equal(t, 2, got.ItemsIngested)
}

func TestTrigger_UnsupportedStrategyRecordsFailure(t *testing.T) {
	t.Parallel()
	f := newFixture(t, fixtureOptions{})

	cfg := scraperConfig()
	cfg.Strategy = model.StrategyType("FEED")

	f.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(cfg, nil)
	f.configs.EXPECT().RecordRun(gomock.Any(), core.RecordRunParams{
		ConfigID:  "cfg-1",
		RanAt:     fixedNow,
		Succeeded: false,
	}).Return(nil)

	_, err := f.svc.Trigger(context.Background(), "cfg-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnsupportedStrategy(err))
	assert.Contains(t, err.Error(), "FEED")
}

func TestTrigger_StrategyFaultRecordsFailureAndPropagates(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newFixture(t, fixtureOptions{})
	strat := f.registerStrategy(ctrl, model.StrategyTypeScraper)

	cfg := scraperConfig()
	fault := errors.New("browser process crashed")

	f.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(cfg, nil)
	strat.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fault)
	f.configs.EXPECT().RecordRun(gomock.Any(), core.RecordRunParams{
		ConfigID:  "cfg-1",
		RanAt:     fixedNow,
		Succeeded: false,
	}).Return(nil)

	_, err := f.svc.Trigger(context.Background(), "cfg-1")
	require.Error(t, err)
	// the original fault reaches the caller, not a wrapper invented here
	assert.ErrorIs(t, err, fault)
}

func TestTrigger_ConfigNotFoundLeavesCountersUntouched(t *testing.T) {
	t.Parallel()
	f := newFixture(t, fixtureOptions{})

	f.configs.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, data.ErrIngestionConfigNotFound)
	// no RecordRun expectation: any call would fail the test

	_, err := f.svc.Trigger(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestTrigger_LockBusyReturnsConflictWithoutCounters(t *testing.T) {
	t.Parallel()
	f := newFixture(t, fixtureOptions{withLocks: true})

	cfg := scraperConfig()
	f.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(cfg, nil)
	f.locks.EXPECT().Acquire(gomock.Any(), "cfg-1", gomock.Any()).Return(false, nil)

	_, err := f.svc.Trigger(context.Background(), "cfg-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestTrigger_LockOutageDegradesToLocklessRun(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newFixture(t, fixtureOptions{withLocks: true})
	strat := f.registerStrategy(ctrl, model.StrategyTypeScraper)

	cfg := scraperConfig()
	result := model.NewIngestionResult()
	result.Finish(fixedNow)

	f.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(cfg, nil)
	f.locks.EXPECT().Acquire(gomock.Any(), "cfg-1", gomock.Any()).Return(false, errors.New("redis down"))
	strat.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(result, nil)
	f.configs.EXPECT().RecordRun(gomock.Any(), gomock.Any()).Return(nil)

	got, err := f.svc.Trigger(context.Background(), "cfg-1")
	require.NoError(t, err)
	assert.Same(t, result, got)
}

func TestTrigger_LockReleasedAfterRun(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newFixture(t, fixtureOptions{withLocks: true})
	strat := f.registerStrategy(ctrl, model.StrategyTypeScraper)

	cfg := scraperConfig()
	result := model.NewIngestionResult()
	result.Finish(fixedNow)

	f.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(cfg, nil)
	f.locks.EXPECT().Acquire(gomock.Any(), "cfg-1", gomock.Any()).Return(true, nil)
	strat.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(result, nil)
	f.configs.EXPECT().RecordRun(gomock.Any(), gomock.Any()).Return(nil)
	f.locks.EXPECT().Release(gomock.Any(), "cfg-1").Return(nil)

	_, err := f.svc.Trigger(context.Background(), "cfg-1")
	require.NoError(t, err)
}

func TestTrigger_RecordRunFailureStillReturnsResult(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newFixture(t, fixtureOptions{})
	strat := f.registerStrategy(ctrl, model.StrategyTypeScraper)

	cfg := scraperConfig()
	result := model.NewIngestionResult()
	result.ItemsIngested = 1
	result.Finish(fixedNow)

	f.configs.EXPECT().GetByID(gomock.Any(), "cfg-1").Return(cfg, nil)
	strat.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(result, nil)
	f.configs.EXPECT().RecordRun(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	got, err := f.svc.Trigger(context.Background(), "cfg-1")
	require.NoError(t, err)
	assert.Same(t, result, got)
}

func TestCreate_UnknownRetailer(t *testing.T) {
	t.Parallel()
	f := newFixture(t, fixtureOptions{})

	f.retailers.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, data.ErrRetailerNotFound)

	_, err := f.svc.Create(context.Background(), "nope", &model.CreateIngestionConfigRequest{
		Name:     "daily scrape",
		Strategy: model.StrategyTypeScraper,
		Settings: model.Settings{"url": "https://shop.test"},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreate_ValidationFailure(t *testing.T) {
	t.Parallel()
	f := newFixture(t, fixtureOptions{})

	_, err := f.svc.Create(context.Background(), "retailer-1", &model.CreateIngestionConfigRequest{
		Strategy: model.StrategyTypeScraper,
		Settings: model.Settings{},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreate_StoresUnknownStrategyTag(t *testing.T) {
	t.Parallel()
	f := newFixture(t, fixtureOptions{})

	req := &model.CreateIngestionConfigRequest{
		Name:     "future feed",
		Strategy: model.StrategyType("FEED"),
		Settings: model.Settings{"url": "https://shop.test/feed"},
	}
	retailer := &model.Retailer{ID: "retailer-1", Slug: "checkers", Name: "Checkers"}
	created := &model.IngestionConfig{ID: "cfg-9", RetailerID: "retailer-1", Strategy: "FEED"}

	f.retailers.EXPECT().GetByID(gomock.Any(), "retailer-1").Return(retailer, nil)
	f.configs.EXPECT().Create(gomock.Any(), "retailer-1", req).Return(created, nil)

	// unknown tags are storable; rejection happens at trigger time
	got, err := f.svc.Create(context.Background(), "retailer-1", req)
	require.NoError(t, err)
	assert.Same(t, created, got)
}

func TestGetByID_MapsNotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t, fixtureOptions{})

	f.configs.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, data.ErrIngestionConfigNotFound)

	_, err := f.svc.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdate_MapsNotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t, fixtureOptions{})

	name := "renamed"
	req := model.UpdateIngestionConfigRequest{Name: &name}
	f.configs.EXPECT().Update(gomock.Any(), "missing", req).Return(nil, data.ErrIngestionConfigNotFound)

	_, err := f.svc.Update(context.Background(), "missing", req)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStrategies_ListsRegisteredTags(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	f := newFixture(t, fixtureOptions{})

	scraper := f.registerStrategy(ctrl, model.StrategyTypeScraper)
	scraper.EXPECT().Describe().Return("headless browser scraper").AnyTimes()
	api := f.registerStrategy(ctrl, model.StrategyTypeAPI)
	api.EXPECT().Describe().Return("retailer API client").AnyTimes()

	assert.Equal(t,
		[]model.StrategyType{model.StrategyTypeAPI, model.StrategyTypeScraper},
		f.svc.SupportedStrategies())

	infos := f.svc.Strategies()
	require.Len(t, infos, 2)
	assert.Equal(t, model.StrategyTypeAPI, infos[0].Type)
	assert.Equal(t, "retailer API client", infos[0].Description)
	assert.Equal(t, model.StrategyTypeScraper, infos[1].Type)
}
