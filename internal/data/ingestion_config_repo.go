package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pricepulse/pricepulse-api/internal/core"
	"github.com/pricepulse/pricepulse-api/internal/data/pgxutil"
	"github.com/pricepulse/pricepulse-api/internal/domain/model"
)

const ingestionConfigColumns = `
	id, retailer_id, name, strategy, settings, priority, cadence,
	is_active, last_run, success_count, failure_count, created_at, updated_at`

// IngestionConfigRepo provides database operations for ingestion
// configuration management, including the atomic run bookkeeping the
// orchestrator relies on.
type IngestionConfigRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewIngestionConfigRepo creates a new IngestionConfigRepo instance with the given database connection.
func NewIngestionConfigRepo(db *sql.DB) *IngestionConfigRepo {
	return &IngestionConfigRepo{
		DB:           db,
		timeProvider: &RealTimeProvider{},
	}
}

// NewIngestionConfigRepoWithTimeProvider creates an IngestionConfigRepo with a custom TimeProvider (useful for testing).
func NewIngestionConfigRepoWithTimeProvider(db *sql.DB, timeProvider TimeProvider) *IngestionConfigRepo {
	return &IngestionConfigRepo{
		DB:           db,
		timeProvider: timeProvider,
	}
}

// Create creates a new ingestion configuration for a retailer.
func (r *IngestionConfigRepo) Create(
	ctx context.Context,
	retailerID string,
	req *model.CreateIngestionConfigRequest,
) (*model.IngestionConfig, error) {
	if req == nil {
		return nil, errors.New("create ingestion config request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	now := r.timeProvider.Now()

	var out model.IngestionConfig
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO retailer_ingestion_configs
				(retailer_id, name, strategy, settings, priority, cadence, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
			RETURNING `+ingestionConfigColumns,
			retailerID, req.Name, req.Strategy, req.Settings,
			req.Priority, req.Cadence, isActive, now)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.IngestionConfig])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ingestion config: %w", mapConfigWriteErr(err, false))
	}
	return &out, nil
}

// getConfigByQuery executes a query expected to return a single configuration.
func (r *IngestionConfigRepo) getConfigByQuery(
	ctx context.Context,
	q string,
	errMsg string,
	args ...any,
) (*model.IngestionConfig, error) {
	var cfg model.IngestionConfig
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		cfg, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.IngestionConfig])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIngestionConfigNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &cfg, nil
}

// GetByID retrieves an ingestion configuration by its ID.
func (r *IngestionConfigRepo) GetByID(ctx context.Context, id string) (*model.IngestionConfig, error) {
	return r.getConfigByQuery(ctx,
		`SELECT `+ingestionConfigColumns+` FROM retailer_ingestion_configs WHERE id = $1`,
		"failed to get ingestion config by ID", id)
}

// ListByRetailer retrieves a retailer's ingestion configurations ordered
// by priority, then recency.
func (r *IngestionConfigRepo) ListByRetailer(
	ctx context.Context,
	opts core.IngestionConfigListOptions,
) ([]*model.IngestionConfig, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	var configs []model.IngestionConfig
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+ingestionConfigColumns+`
			FROM retailer_ingestion_configs
			WHERE retailer_id = $1
			ORDER BY priority DESC, created_at DESC, id DESC
			LIMIT $2 OFFSET $3`,
			opts.RetailerID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		configs, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.IngestionConfig])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list ingestion configs: %w", err)
	}

	result := make([]*model.IngestionConfig, len(configs))
	for i := range configs {
		result[i] = &configs[i]
	}
	return result, nil
}

// Update updates the provided fields of an existing ingestion configuration.
func (r *IngestionConfigRepo) Update(
	ctx context.Context,
	id string,
	req model.UpdateIngestionConfigRequest,
) (*model.IngestionConfig, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 6)
	args := make([]any, 0, 8)
	argIdx := 1
	addSet := func(column string, value any) {
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}
	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Strategy != nil {
		addSet("strategy", *req.Strategy)
	}
	if req.Settings != nil {
		addSet("settings", req.Settings)
	}
	if req.Priority != nil {
		addSet("priority", *req.Priority)
	}
	if req.Cadence != nil {
		addSet("cadence", *req.Cadence)
	}
	if req.IsActive != nil {
		addSet("is_active", *req.IsActive)
	}
	addSet("updated_at", r.timeProvider.Now())

	query := "UPDATE retailer_ingestion_configs SET " + strings.Join(setParts, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", argIdx) + ingestionConfigColumns
	args = append(args, id)

	var out model.IngestionConfig
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.IngestionConfig])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update ingestion config: %w", mapConfigWriteErr(err, true))
	}
	return &out, nil
}

// Delete deletes an ingestion configuration by its ID.
func (r *IngestionConfigRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM retailer_ingestion_configs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete ingestion config: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// RecordRun stamps last_run and bumps exactly one health counter in a
// single statement, so a crash between two writes can never record a
// run without its counter or vice versa.
func (r *IngestionConfigRepo) RecordRun(ctx context.Context, params core.RecordRunParams) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE retailer_ingestion_configs
		SET last_run = $2,
		    success_count = success_count + CASE WHEN $3 THEN 1 ELSE 0 END,
		    failure_count = failure_count + CASE WHEN $3 THEN 0 ELSE 1 END,
		    updated_at = $2
		WHERE id = $1`,
		params.ConfigID, params.RanAt, params.Succeeded)
	if err != nil {
		return fmt.Errorf("failed to record ingestion run: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrIngestionConfigNotFound
	}
	return nil
}

// mapConfigWriteErr maps database errors on writes to repository sentinels.
func mapConfigWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrIngestionConfigNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrIngestionConfigNameExists
		case pgerrcode.ForeignKeyViolation:
			return ErrRetailerNotFound
		}
	}
	return err
}
