package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_String(t *testing.T) {
	t.Parallel()

	s := Settings{"url": "https://shop.test/p", "priority": 3}

	url, ok := s.String("url")
	assert.True(t, ok)
	assert.Equal(t, "https://shop.test/p", url)

	_, ok = s.String("missing")
	assert.False(t, ok)

	// present but not a string
	_, ok = s.String("priority")
	assert.False(t, ok)
}

func TestSettings_StringMap(t *testing.T) {
	t.Parallel()

	t.Run("typed map", func(t *testing.T) {
		t.Parallel()
		s := Settings{"selectors": map[string]string{"name": ".title"}}
		assert.Equal(t, map[string]string{"name": ".title"}, s.StringMap("selectors"))
	})

	t.Run("json decoded map", func(t *testing.T) {
		t.Parallel()
		var s Settings
		require.NoError(t, json.Unmarshal([]byte(`{"selectors":{"name":".title","depth":2}}`), &s))
		// non-string values are skipped
		assert.Equal(t, map[string]string{"name": ".title"}, s.StringMap("selectors"))
	})

	t.Run("absent key", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, Settings{}.StringMap("selectors"))
	})
}

func TestCreateIngestionConfigRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *CreateIngestionConfigRequest {
		return &CreateIngestionConfigRequest{
			Name:     "checkers-specials",
			Strategy: StrategyTypeScraper,
			Settings: Settings{"url": "https://shop.test/p"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, valid().Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()
		req := valid()
		req.Name = "  "
		assert.Error(t, req.Validate())
	})

	t.Run("name too long", func(t *testing.T) {
		t.Parallel()
		req := valid()
		req.Name = strings.Repeat("x", 256)
		assert.Error(t, req.Validate())
	})

	t.Run("missing strategy", func(t *testing.T) {
		t.Parallel()
		req := valid()
		req.Strategy = ""
		assert.Error(t, req.Validate())
	})

	t.Run("missing settings", func(t *testing.T) {
		t.Parallel()
		req := valid()
		req.Settings = nil
		assert.Error(t, req.Validate())
	})
}

func TestUpdateIngestionConfigRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("no updates", func(t *testing.T) {
		t.Parallel()
		req := &UpdateIngestionConfigRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()
		empty := ""
		req := &UpdateIngestionConfigRequest{Name: &empty}
		assert.Error(t, req.Validate())
	})

	t.Run("settings only", func(t *testing.T) {
		t.Parallel()
		req := &UpdateIngestionConfigRequest{Settings: Settings{"url": "https://shop.test"}}
		require.NoError(t, req.Validate())
		assert.True(t, req.HasUpdates())
	})
}

func TestIngestionResult_Finish(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no errors means success", func(t *testing.T) {
		t.Parallel()
		res := NewIngestionResult()
		res.ItemsIngested = 2
		res.Finish(now)
		assert.True(t, res.Success)
		assert.Equal(t, now, res.Timestamp)
		assert.Empty(t, res.Errors)
	})

	t.Run("any error means failure", func(t *testing.T) {
		t.Parallel()
		res := NewIngestionResult()
		res.ItemsIngested = 1
		res.AddError("Failed to store product Milk: disk full")
		res.Finish(now)
		assert.False(t, res.Success)
		assert.Len(t, res.Errors, 1)
	})
}
