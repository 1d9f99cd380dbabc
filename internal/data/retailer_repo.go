package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pricepulse/pricepulse-api/internal/data/pgxutil"
	"github.com/pricepulse/pricepulse-api/internal/domain/model"
)

const retailerColumns = `
	id, slug, name, display_name, website_url, is_active, created_at`

// RetailerRepo provides read access to the retailer catalog. Retailers
// are seeded by migration; the API exposes no write path for them.
type RetailerRepo struct {
	DB *sql.DB
}

// NewRetailerRepo creates a new RetailerRepo instance with the given database connection.
func NewRetailerRepo(db *sql.DB) *RetailerRepo {
	return &RetailerRepo{DB: db}
}

// getRetailerByQuery executes a query expected to return a single retailer.
func (r *RetailerRepo) getRetailerByQuery(
	ctx context.Context,
	q string,
	errMsg string,
	args ...any,
) (*model.Retailer, error) {
	var retailer model.Retailer
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		retailer, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Retailer])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRetailerNotFound
		}
		return nil, fmt.Errorf("%s: %w", errMsg, err)
	}
	return &retailer, nil
}

// GetByID retrieves a retailer by its ID.
func (r *RetailerRepo) GetByID(ctx context.Context, id string) (*model.Retailer, error) {
	return r.getRetailerByQuery(ctx,
		`SELECT `+retailerColumns+` FROM retailers WHERE id = $1`,
		"failed to get retailer by ID", id)
}

// GetBySlug retrieves a retailer by its URL-safe slug.
func (r *RetailerRepo) GetBySlug(ctx context.Context, slug string) (*model.Retailer, error) {
	return r.getRetailerByQuery(ctx,
		`SELECT `+retailerColumns+` FROM retailers WHERE slug = $1`,
		"failed to get retailer by slug", slug)
}

// List retrieves retailers with pagination.
func (r *RetailerRepo) List(ctx context.Context, limit, offset int) ([]*model.Retailer, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var retailers []model.Retailer
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+retailerColumns+`
			FROM retailers
			ORDER BY name ASC, id ASC
			LIMIT $1 OFFSET $2`,
			limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		retailers, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Retailer])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list retailers: %w", err)
	}

	result := make([]*model.Retailer, len(retailers))
	for i := range retailers {
		result[i] = &retailers[i]
	}
	return result, nil
}
