package model

import "time"

// Metadata keys every strategy is expected to populate on its result.
const (
	MetadataURL           = "url"
	MetadataProductsFound = "productsFound"
	MetadataDurationMS    = "duration"
)

// IngestionResult is the outcome of a single ingestion run. It is
// returned to the caller and never persisted beyond deriving the
// configuration's health counter updates.
type IngestionResult struct {
	// Success is true iff the strategy completed with zero per-item errors.
	Success bool `json:"success"`
	// ItemsIngested counts records successfully reconciled into storage.
	// Partial success is possible: ItemsIngested > 0 with Errors non-empty.
	ItemsIngested int `json:"items_ingested"`
	// Errors holds human-readable per-item or whole-run failure descriptions.
	Errors []string `json:"errors"`
	// Timestamp is the completion time of the run.
	Timestamp time.Time `json:"timestamp"`
	// Metadata carries strategy-specific diagnostics (source URL, record
	// count, duration).
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewIngestionResult returns an empty result with initialized slices so
// JSON output always carries an errors array.
func NewIngestionResult() *IngestionResult {
	return &IngestionResult{
		Errors:   []string{},
		Metadata: map[string]any{},
	}
}

// AddError appends a failure description. Success is recomputed on Finish.
func (r *IngestionResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// Finish stamps the completion time and derives Success from the
// accumulated error list.
func (r *IngestionResult) Finish(now time.Time) *IngestionResult {
	r.Timestamp = now
	r.Success = len(r.Errors) == 0
	return r
}

// ScrapedProduct is an extracted source record. It exists only within
// one execution's memory and is mapped into a RetailerItem on
// reconciliation, never persisted directly.
type ScrapedProduct struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	InStock     bool    `json:"in_stock"`
	ImageURL    string  `json:"image_url,omitempty"`
	SKU         string  `json:"sku,omitempty"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}
