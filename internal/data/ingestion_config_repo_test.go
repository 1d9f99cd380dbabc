package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricepulse/pricepulse-api/internal/core"
	"github.com/pricepulse/pricepulse-api/internal/domain/model"
	"github.com/pricepulse/pricepulse-api/internal/testutil"
)

// seededRetailerID returns the id of a retailer created by the seed migration.
func seededRetailerID(t *testing.T, db *sql.DB, slug string) string {
	t.Helper()
	var id string
	err := db.QueryRowContext(context.Background(),
		`SELECT id FROM retailers WHERE slug = $1`, slug).Scan(&id)
	require.NoError(t, err)
	return id
}

func scraperCreateRequest() *model.CreateIngestionConfigRequest {
	return &model.CreateIngestionConfigRequest{
		Name:     "daily scrape",
		Strategy: model.StrategyTypeScraper,
		Settings: model.Settings{
			"url": "https://shop.test/products",
			"selectors": map[string]any{
				"productContainer": ".product-card",
			},
		},
		Priority: 10,
	}
}

func TestIngestionConfigRepo_CreateAndGet(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIngestionConfigRepo(db)
		ctx := context.Background()
		retailerID := seededRetailerID(t, db, "checkers")

		created, err := repo.Create(ctx, retailerID, scraperCreateRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, retailerID, created.RetailerID)
		assert.Equal(t, "daily scrape", created.Name)
		assert.Equal(t, model.StrategyTypeScraper, created.Strategy)
		assert.Equal(t, 10, created.Priority)
		assert.True(t, created.IsActive)
		assert.Nil(t, created.LastRun)
		assert.Zero(t, created.SuccessCount)
		assert.Zero(t, created.FailureCount)

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)

		url, ok := got.Settings.String("url")
		require.True(t, ok)
		assert.Equal(t, "https://shop.test/products", url)
		assert.Equal(t, ".product-card", got.Settings.StringMap("selectors")["productContainer"])
	})
}

func TestIngestionConfigRepo_Create_UnknownRetailer(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIngestionConfigRepo(db)

		_, err := repo.Create(context.Background(),
			"00000000-0000-0000-0000-000000000000", scraperCreateRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRetailerNotFound)
	})
}

func TestIngestionConfigRepo_Create_DuplicateNamePerRetailer(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIngestionConfigRepo(db)
		ctx := context.Background()
		retailerID := seededRetailerID(t, db, "checkers")

		_, err := repo.Create(ctx, retailerID, scraperCreateRequest())
		require.NoError(t, err)

		_, err = repo.Create(ctx, retailerID, scraperCreateRequest())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIngestionConfigNameExists)

		// the same name under another retailer is fine
		otherID := seededRetailerID(t, db, "woolworths")
		_, err = repo.Create(ctx, otherID, scraperCreateRequest())
		require.NoError(t, err)
	})
}

func TestIngestionConfigRepo_Update(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIngestionConfigRepo(db)
		ctx := context.Background()
		retailerID := seededRetailerID(t, db, "checkers")

		created, err := repo.Create(ctx, retailerID, scraperCreateRequest())
		require.NoError(t, err)

		name := "nightly scrape"
		active := false
		updated, err := repo.Update(ctx, created.ID, model.UpdateIngestionConfigRequest{
			Name:     &name,
			IsActive: &active,
			Settings: model.Settings{"url": "https://shop.test/specials"},
		})
		require.NoError(t, err)

		assert.Equal(t, "nightly scrape", updated.Name)
		assert.False(t, updated.IsActive)
		url, _ := updated.Settings.String("url")
		assert.Equal(t, "https://shop.test/specials", url)
		// untouched fields survive
		assert.Equal(t, 10, updated.Priority)
	})
}

func TestIngestionConfigRepo_Update_NotFound(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIngestionConfigRepo(db)

		name := "renamed"
		_, err := repo.Update(context.Background(),
			"00000000-0000-0000-0000-000000000000",
			model.UpdateIngestionConfigRequest{Name: &name})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIngestionConfigNotFound)
	})
}

func TestIngestionConfigRepo_ListByRetailer_PriorityOrder(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIngestionConfigRepo(db)
		ctx := context.Background()
		retailerID := seededRetailerID(t, db, "checkers")

		low := scraperCreateRequest()
		low.Name = "low priority"
		low.Priority = 1
		_, err := repo.Create(ctx, retailerID, low)
		require.NoError(t, err)

		high := scraperCreateRequest()
		high.Name = "high priority"
		high.Priority = 99
		_, err = repo.Create(ctx, retailerID, high)
		require.NoError(t, err)

		configs, err := repo.ListByRetailer(ctx, core.IngestionConfigListOptions{RetailerID: retailerID})
		require.NoError(t, err)
		require.Len(t, configs, 2)
		assert.Equal(t, "high priority", configs[0].Name)
		assert.Equal(t, "low priority", configs[1].Name)
	})
}

func TestIngestionConfigRepo_Delete(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIngestionConfigRepo(db)
		ctx := context.Background()
		retailerID := seededRetailerID(t, db, "checkers")

		created, err := repo.Create(ctx, retailerID, scraperCreateRequest())
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestIngestionConfigRepo_RecordRun(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIngestionConfigRepo(db)
		ctx := context.Background()
		retailerID := seededRetailerID(t, db, "checkers")

		created, err := repo.Create(ctx, retailerID, scraperCreateRequest())
		require.NoError(t, err)

		ranAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
		require.NoError(t, repo.RecordRun(ctx, core.RecordRunParams{
			ConfigID:  created.ID,
			RanAt:     ranAt,
			Succeeded: true,
		}))
		require.NoError(t, repo.RecordRun(ctx, core.RecordRunParams{
			ConfigID:  created.ID,
			RanAt:     ranAt.Add(time.Hour),
			Succeeded: false,
		}))

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.SuccessCount)
		assert.Equal(t, 1, got.FailureCount)
		require.NotNil(t, got.LastRun)
		assert.True(t, got.LastRun.Equal(ranAt.Add(time.Hour)))
	})
}

func TestIngestionConfigRepo_RecordRun_NotFound(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewIngestionConfigRepo(db)

		err := repo.RecordRun(context.Background(), core.RecordRunParams{
			ConfigID:  "00000000-0000-0000-0000-000000000000",
			RanAt:     time.Now(),
			Succeeded: true,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIngestionConfigNotFound)
	})
}
