package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricepulse/pricepulse-api/internal/testutil"
)

func TestRetailerRepo_SeededCatalog(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewRetailerRepo(db)
		ctx := context.Background()

		retailers, err := repo.List(ctx, 50, 0)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(retailers), 5)

		slugs := make(map[string]bool, len(retailers))
		for _, r := range retailers {
			slugs[r.Slug] = true
		}
		for _, want := range []string{"checkers", "pick-n-pay", "shoprite", "woolworths", "makro"} {
			assert.True(t, slugs[want], "missing seeded retailer %s", want)
		}
	})
}

func TestRetailerRepo_GetBySlug(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewRetailerRepo(db)

		retailer, err := repo.GetBySlug(context.Background(), "woolworths")
		require.NoError(t, err)
		assert.Equal(t, "Woolworths", retailer.Name)
		assert.True(t, retailer.IsActive)

		got, err := repo.GetByID(context.Background(), retailer.ID)
		require.NoError(t, err)
		assert.Equal(t, retailer.Slug, got.Slug)
	})
}

func TestRetailerRepo_NotFound(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewRetailerRepo(db)

		_, err := repo.GetBySlug(context.Background(), "no-such-shop")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRetailerNotFound)

		_, err = repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRetailerNotFound)
	})
}
