package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricepulse/pricepulse-api/internal/core"
	"github.com/pricepulse/pricepulse-api/internal/testutil"
)

func milkUpsert(retailerID string, scrapedAt time.Time) core.UpsertRetailerItemParams {
	return core.UpsertRetailerItemParams{
		RetailerID:  retailerID,
		SKU:         "M-2L",
		Name:        "Full Cream Milk 2L",
		Price:       32.99,
		InStock:     true,
		LastScraped: scrapedAt,
	}
}

func TestRetailerItemRepo_UpsertConvergesOnOneRow(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewRetailerItemRepo(db)
		ctx := context.Background()
		retailerID := seededRetailerID(t, db, "checkers")

		first := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
		require.NoError(t, repo.Upsert(ctx, milkUpsert(retailerID, first)))

		// second scrape of the same item refreshes the row in place
		update := milkUpsert(retailerID, first.Add(time.Hour))
		update.Price = 29.99
		update.InStock = false
		require.NoError(t, repo.Upsert(ctx, update))

		items, err := repo.ListByRetailer(ctx, core.RetailerItemListOptions{RetailerID: retailerID})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.InDelta(t, 29.99, items[0].Price, 0.001)
		assert.False(t, items[0].InStock)
		assert.True(t, items[0].LastScraped.Equal(first.Add(time.Hour)))
	})
}

func TestRetailerItemRepo_SameSKUDifferentRetailers(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewRetailerItemRepo(db)
		ctx := context.Background()
		checkers := seededRetailerID(t, db, "checkers")
		woolworths := seededRetailerID(t, db, "woolworths")

		now := time.Now().UTC().Truncate(time.Millisecond)
		require.NoError(t, repo.Upsert(ctx, milkUpsert(checkers, now)))
		require.NoError(t, repo.Upsert(ctx, milkUpsert(woolworths, now)))

		a, err := repo.GetBySKU(ctx, checkers, "M-2L")
		require.NoError(t, err)
		b, err := repo.GetBySKU(ctx, woolworths, "M-2L")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestRetailerItemRepo_GetBySKU_NotFound(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewRetailerItemRepo(db)
		retailerID := seededRetailerID(t, db, "checkers")

		_, err := repo.GetBySKU(context.Background(), retailerID, "missing-sku")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRetailerItemNotFound)
	})
}

func TestRetailerItemRepo_Upsert_UnknownRetailer(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewRetailerItemRepo(db)

		err := repo.Upsert(context.Background(),
			milkUpsert("00000000-0000-0000-0000-000000000000", time.Now()))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRetailerNotFound)
	})
}

func TestRetailerItemRepo_ListByRetailer_RecencyOrder(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewRetailerItemRepo(db)
		ctx := context.Background()
		retailerID := seededRetailerID(t, db, "checkers")

		base := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
		older := milkUpsert(retailerID, base)
		older.SKU = "B-700"
		older.Name = "Brown Bread"
		require.NoError(t, repo.Upsert(ctx, older))
		require.NoError(t, repo.Upsert(ctx, milkUpsert(retailerID, base.Add(time.Hour))))

		items, err := repo.ListByRetailer(ctx, core.RetailerItemListOptions{RetailerID: retailerID})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "M-2L", items[0].SKU)
		assert.Equal(t, "B-700", items[1].SKU)
	})
}
