// Package service contains the orchestration layer between the HTTP API
// and the data/strategy layers.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pricepulse/pricepulse-api/internal/core"
	"github.com/pricepulse/pricepulse-api/internal/data"
	"github.com/pricepulse/pricepulse-api/internal/domain/model"
	apperrors "github.com/pricepulse/pricepulse-api/internal/errors"
	"github.com/pricepulse/pricepulse-api/internal/strategy"
)

const defaultRunLockTTL = 5 * time.Minute

// IngestionServiceOptions groups dependencies for IngestionService.
type IngestionServiceOptions struct {
	Configs    core.IngestionConfigRepository
	Retailers  core.RetailerRepository
	Strategies *strategy.Registry
	Locks      core.RunLockRepository // optional; without it triggers lose per-config exclusivity
	Logger     *slog.Logger           // optional
	RunLockTTL time.Duration          // optional
}

// IngestionService owns ingestion configuration CRUD and the
// execute-and-record transaction behind every trigger.
type IngestionService struct {
	configs   core.IngestionConfigRepository
	retailers core.RetailerRepository
	registry  *strategy.Registry
	locks     core.RunLockRepository
	log       *slog.Logger
	lockTTL   time.Duration
	now       func() time.Time
}

// NewIngestionService constructs a new IngestionService.
func NewIngestionService(opts IngestionServiceOptions) *IngestionService {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	ttl := opts.RunLockTTL
	if ttl <= 0 {
		ttl = defaultRunLockTTL
	}
	return &IngestionService{
		configs:   opts.Configs,
		retailers: opts.Retailers,
		registry:  opts.Strategies,
		locks:     opts.Locks,
		log:       log,
		lockTTL:   ttl,
		now:       time.Now,
	}
}

// Create creates an ingestion configuration for a retailer after
// verifying the retailer exists.
func (s *IngestionService) Create(
	ctx context.Context,
	retailerID string,
	req *model.CreateIngestionConfigRequest,
) (*model.IngestionConfig, error) {
	if req == nil {
		return nil, apperrors.Validation("create ingestion config request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if _, err := s.retailers.GetByID(ctx, retailerID); err != nil {
		if errors.Is(err, data.ErrRetailerNotFound) {
			return nil, apperrors.NotFoundf("retailer %s not found", retailerID)
		}
		return nil, fmt.Errorf("verify retailer: %w", err)
	}
	cfg, err := s.configs.Create(ctx, retailerID, req)
	if err != nil {
		return nil, fmt.Errorf("create ingestion config: %w", err)
	}
	return cfg, nil
}

// GetByID returns an ingestion configuration by id.
func (s *IngestionService) GetByID(ctx context.Context, id string) (*model.IngestionConfig, error) {
	cfg, err := s.configs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrIngestionConfigNotFound) {
			return nil, apperrors.NotFoundf("ingestion config %s not found", id)
		}
		return nil, fmt.Errorf("get ingestion config: %w", err)
	}
	return cfg, nil
}

// ListByRetailer returns the retailer's ingestion configurations.
func (s *IngestionService) ListByRetailer(
	ctx context.Context,
	opts core.IngestionConfigListOptions,
) ([]*model.IngestionConfig, error) {
	return s.configs.ListByRetailer(ctx, opts)
}

// Update updates an ingestion configuration.
func (s *IngestionService) Update(
	ctx context.Context,
	id string,
	req model.UpdateIngestionConfigRequest,
) (*model.IngestionConfig, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	cfg, err := s.configs.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, data.ErrIngestionConfigNotFound) {
			return nil, apperrors.NotFoundf("ingestion config %s not found", id)
		}
		return nil, fmt.Errorf("update ingestion config: %w", err)
	}
	return cfg, nil
}

// Delete deletes an ingestion configuration by id.
func (s *IngestionService) Delete(ctx context.Context, id string) (bool, error) {
	return s.configs.Delete(ctx, id)
}

// StrategyInfo describes one registered acquisition strategy.
type StrategyInfo struct {
	Type        model.StrategyType `json:"type"`
	Description string             `json:"description"`
}

// SupportedStrategies returns the registered strategy tags.
func (s *IngestionService) SupportedStrategies() []model.StrategyType {
	return s.registry.Supported()
}

// IsStrategySupported reports whether a tag has a registered implementation.
func (s *IngestionService) IsStrategySupported(tag model.StrategyType) bool {
	return s.registry.IsSupported(tag)
}

// Strategies returns tag and description for every registered strategy.
func (s *IngestionService) Strategies() []StrategyInfo {
	tags := s.registry.Supported()
	infos := make([]StrategyInfo, 0, len(tags))
	for _, tag := range tags {
		strat, err := s.registry.Resolve(tag)
		if err != nil {
			continue
		}
		infos = append(infos, StrategyInfo{Type: tag, Description: strat.Describe()})
	}
	return infos
}

// Trigger runs the full execute-and-record transaction for one
// configuration:
//
//	load -> resolve strategy -> execute -> record run -> return/re-raise
//
// Every attempt that gets past loading records exactly one counter
// increment, including the unsupported-strategy and unanticipated-fault
// paths. A missing configuration is the only fatal outcome that leaves
// counters untouched.
func (s *IngestionService) Trigger(ctx context.Context, configID string) (*model.IngestionResult, error) {
	cfg, err := s.GetByID(ctx, configID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "triggering ingestion",
		"config_id", configID, "retailer_id", cfg.RetailerID, "strategy", cfg.Strategy)

	release, err := s.acquireRunLock(ctx, configID)
	if err != nil {
		return nil, err
	}
	defer release()

	strat, err := s.registry.Resolve(cfg.Strategy)
	if err != nil {
		// A configuration exists, so this counts as a failed attempt.
		s.recordRun(ctx, configID, false)
		return nil, err
	}

	result, execErr := strat.Execute(ctx, cfg.Settings, cfg.RetailerID)
	if execErr != nil {
		// Unanticipated fault: record the attempt, then surface the
		// original fault. The caller must not receive a fabricated result.
		s.log.ErrorContext(ctx, "ingestion strategy fault",
			"config_id", configID, "strategy", cfg.Strategy, "error", execErr)
		s.recordRun(ctx, configID, false)
		return nil, execErr
	}

	s.recordRun(ctx, configID, result.Success)

	s.log.InfoContext(ctx, "ingestion completed",
		"config_id", configID,
		"success", result.Success,
		"items_ingested", result.ItemsIngested,
		"errors", len(result.Errors))

	return result, nil
}

// acquireRunLock enforces per-configuration exclusivity when a lock
// repository is configured. Lock store outages degrade to lockless
// execution rather than blocking ingestion.
func (s *IngestionService) acquireRunLock(ctx context.Context, configID string) (func(), error) {
	if s.locks == nil {
		return func() {}, nil
	}
	ok, err := s.locks.Acquire(ctx, configID, s.lockTTL)
	if err != nil {
		s.log.WarnContext(ctx, "run lock unavailable, continuing without exclusivity",
			"config_id", configID, "error", err)
		return func() {}, nil
	}
	if !ok {
		return nil, apperrors.Conflictf("ingestion already running for config %s", configID)
	}
	return func() {
		if rerr := s.locks.Release(ctx, configID); rerr != nil {
			s.log.WarnContext(ctx, "release run lock failed", "config_id", configID, "error", rerr)
		}
	}, nil
}

// recordRun durably stamps last_run and bumps exactly one health
// counter. Failures are logged, not raised: by this point the run
// outcome is already decided and must reach the caller.
func (s *IngestionService) recordRun(ctx context.Context, configID string, succeeded bool) {
	err := s.configs.RecordRun(ctx, core.RecordRunParams{
		ConfigID:  configID,
		RanAt:     s.now(),
		Succeeded: succeeded,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "record ingestion run failed",
			"config_id", configID, "succeeded", succeeded, "error", err)
	}
}
