package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pricepulse/pricepulse-api/internal/core"
	"github.com/pricepulse/pricepulse-api/internal/data/pgxutil"
	"github.com/pricepulse/pricepulse-api/internal/domain/model"
)

const retailerItemColumns = `
	id, retailer_id, sku, name, price, in_stock, image_url,
	last_scraped, created_at, updated_at`

// RetailerItemRepo provides durable catalog item storage keyed on
// (retailer_id, sku).
type RetailerItemRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewRetailerItemRepo creates a new RetailerItemRepo instance with the given database connection.
func NewRetailerItemRepo(db *sql.DB) *RetailerItemRepo {
	return &RetailerItemRepo{
		DB:           db,
		timeProvider: &RealTimeProvider{},
	}
}

// NewRetailerItemRepoWithTimeProvider creates a RetailerItemRepo with a custom TimeProvider (useful for testing).
func NewRetailerItemRepoWithTimeProvider(db *sql.DB, timeProvider TimeProvider) *RetailerItemRepo {
	return &RetailerItemRepo{
		DB:           db,
		timeProvider: timeProvider,
	}
}

// Upsert inserts the item or refreshes the existing row for the same
// (retailer_id, sku). Re-running an identical ingestion converges on one
// row per item rather than appending duplicates.
func (r *RetailerItemRepo) Upsert(ctx context.Context, params core.UpsertRetailerItemParams) error {
	now := r.timeProvider.Now()
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO retailer_items
			(retailer_id, sku, name, price, in_stock, image_url, last_scraped, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (retailer_id, sku) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			in_stock = EXCLUDED.in_stock,
			image_url = EXCLUDED.image_url,
			last_scraped = EXCLUDED.last_scraped,
			updated_at = EXCLUDED.updated_at`,
		params.RetailerID, params.SKU, params.Name, params.Price,
		params.InStock, params.ImageURL, params.LastScraped, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrRetailerNotFound
		}
		return fmt.Errorf("failed to upsert retailer item: %w", err)
	}
	return nil
}

// GetBySKU retrieves one item by its natural key.
func (r *RetailerItemRepo) GetBySKU(ctx context.Context, retailerID, sku string) (*model.RetailerItem, error) {
	var item model.RetailerItem
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+retailerItemColumns+`
			FROM retailer_items
			WHERE retailer_id = $1 AND sku = $2`,
			retailerID, sku)
		if err != nil {
			return err
		}
		defer rows.Close()
		item, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RetailerItem])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRetailerItemNotFound
		}
		return nil, fmt.Errorf("failed to get retailer item: %w", err)
	}
	return &item, nil
}

// ListByRetailer retrieves a retailer's items with pagination, most
// recently scraped first.
func (r *RetailerItemRepo) ListByRetailer(
	ctx context.Context,
	opts core.RetailerItemListOptions,
) ([]*model.RetailerItem, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	var items []model.RetailerItem
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+retailerItemColumns+`
			FROM retailer_items
			WHERE retailer_id = $1
			ORDER BY last_scraped DESC, id DESC
			LIMIT $2 OFFSET $3`,
			opts.RetailerID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		items, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.RetailerItem])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list retailer items: %w", err)
	}

	result := make([]*model.RetailerItem, len(items))
	for i := range items {
		result[i] = &items[i]
	}
	return result, nil
}
