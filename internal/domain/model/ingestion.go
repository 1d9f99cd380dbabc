// Package model defines the core data types and structures used throughout the pricepulse ingestion system.
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// maxNameLen is the maximum allowed length for configuration names in characters.
	maxNameLen = 255
)

// StrategyType identifies a registered data-acquisition strategy.
// It is an open string enum: unknown tags are storable and only rejected
// at trigger time, when the registry fails to resolve them.
type StrategyType string

const (
	// StrategyTypeScraper drives a headless browser against a retailer page.
	StrategyTypeScraper StrategyType = "SCRAPER"
	// StrategyTypeAPI pulls structured product data from a retailer API.
	StrategyTypeAPI StrategyType = "API"
)

// Settings is the strategy-specific configuration blob attached to an
// ingestion configuration. The orchestrator and registry treat it as
// opaque; each strategy performs its own typed parsing at entry.
type Settings map[string]any

// String returns the string value for key, if present and a string.
func (s Settings) String(key string) (string, bool) {
	v, ok := s[key]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// StringMap returns the nested string map for key. JSON decoding yields
// map[string]any, so both map shapes are accepted; non-string values are
// skipped.
func (s Settings) StringMap(key string) map[string]string {
	v, ok := s[key]
	if !ok {
		return nil
	}
	switch m := v.(type) {
	case map[string]string:
		return m
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, val := range m {
			if str, isStr := val.(string); isStr {
				out[k] = str
			}
		}
		return out
	default:
		return nil
	}
}

// IngestionConfig is a persisted record describing which acquisition
// strategy to run, with what settings, for which retailer, plus health
// counters maintained by the orchestrator.
type IngestionConfig struct {
	ID           string       `json:"id"            db:"id"`
	RetailerID   string       `json:"retailer_id"   db:"retailer_id"`
	Name         string       `json:"name"          db:"name"`
	Strategy     StrategyType `json:"strategy"      db:"strategy"`
	Settings     Settings     `json:"settings"      db:"settings"`
	Priority     int          `json:"priority"      db:"priority"`
	Cadence      *string      `json:"cadence"       db:"cadence"`
	IsActive     bool         `json:"is_active"     db:"is_active"`
	LastRun      *time.Time   `json:"last_run"      db:"last_run"`
	SuccessCount int          `json:"success_count" db:"success_count"`
	FailureCount int          `json:"failure_count" db:"failure_count"`
	CreatedAt    time.Time    `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"    db:"updated_at"`
}

// CreateIngestionConfigRequest represents a request to create a new ingestion configuration.
type CreateIngestionConfigRequest struct {
	Name     string       `json:"name"`
	Strategy StrategyType `json:"strategy"`
	Settings Settings     `json:"settings"`
	Priority int          `json:"priority,omitempty"`
	Cadence  *string      `json:"cadence,omitempty"`
	IsActive *bool        `json:"is_active,omitempty"`
}

// Validate validates the CreateIngestionConfigRequest fields.
func (r *CreateIngestionConfigRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Name) > maxNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if strings.TrimSpace(string(r.Strategy)) == "" {
		return errors.New("strategy is required and cannot be empty")
	}
	if r.Settings == nil {
		return errors.New("settings are required")
	}
	return nil
}

// UpdateIngestionConfigRequest represents a request to update an existing ingestion configuration.
type UpdateIngestionConfigRequest struct {
	Name     *string       `json:"name,omitempty"`
	Strategy *StrategyType `json:"strategy,omitempty"`
	Settings Settings      `json:"settings,omitempty"`
	Priority *int          `json:"priority,omitempty"`
	Cadence  *string       `json:"cadence,omitempty"`
	IsActive *bool         `json:"is_active,omitempty"`
}

// Validate validates the UpdateIngestionConfigRequest fields and ensures at least one field is being updated.
func (r *UpdateIngestionConfigRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(*r.Name) > maxNameLen {
			return errors.New("name cannot exceed 255 characters")
		}
	}
	if r.Strategy != nil && strings.TrimSpace(string(*r.Strategy)) == "" {
		return errors.New("strategy cannot be empty")
	}
	return nil
}

// HasUpdates returns true if the UpdateIngestionConfigRequest has any fields to update.
func (r *UpdateIngestionConfigRequest) HasUpdates() bool {
	return r.Name != nil || r.Strategy != nil || r.Settings != nil ||
		r.Priority != nil || r.Cadence != nil || r.IsActive != nil
}
