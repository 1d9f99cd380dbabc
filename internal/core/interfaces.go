package core

import (
	"context"
	"time"

	"github.com/pricepulse/pricepulse-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// RecordRunParams groups parameters for IngestionConfigRepository.RecordRun.
type RecordRunParams struct {
	ConfigID  string
	RanAt     time.Time
	Succeeded bool
}

// IngestionConfigListOptions groups listing parameters for ingestion configurations.
type IngestionConfigListOptions struct {
	RetailerID string
	Limit      int
	Offset     int
}

// IngestionConfigRepository defines the interface for ingestion configuration data operations.
type IngestionConfigRepository interface {
	Create(ctx context.Context, retailerID string, req *model.CreateIngestionConfigRequest) (*model.IngestionConfig, error)
	GetByID(ctx context.Context, id string) (*model.IngestionConfig, error)
	ListByRetailer(ctx context.Context, opts IngestionConfigListOptions) ([]*model.IngestionConfig, error)
	Update(ctx context.Context, id string, req model.UpdateIngestionConfigRequest) (*model.IngestionConfig, error)
	Delete(ctx context.Context, id string) (bool, error)

	// RecordRun durably stamps last_run and increments exactly one of
	// success_count/failure_count as a single atomic update. It is called
	// once per trigger attempt, on every outcome.
	RecordRun(ctx context.Context, params RecordRunParams) error
}

// UpsertRetailerItemParams groups parameters for RetailerItemRepository.Upsert.
type UpsertRetailerItemParams struct {
	RetailerID  string
	SKU         string
	Name        string
	Price       float64
	InStock     bool
	ImageURL    *string
	LastScraped time.Time
}

// RetailerItemListOptions groups listing parameters for retailer items.
type RetailerItemListOptions struct {
	RetailerID string
	Limit      int
	Offset     int
}

// RetailerItemRepository defines the interface for durable catalog item storage.
type RetailerItemRepository interface {
	// Upsert inserts or updates the item keyed on (retailer_id, sku).
	Upsert(ctx context.Context, params UpsertRetailerItemParams) error
	GetBySKU(ctx context.Context, retailerID, sku string) (*model.RetailerItem, error)
	ListByRetailer(ctx context.Context, opts RetailerItemListOptions) ([]*model.RetailerItem, error)
}

// RetailerRepository defines the interface for retailer data operations.
type RetailerRepository interface {
	GetByID(ctx context.Context, id string) (*model.Retailer, error)
	GetBySlug(ctx context.Context, slug string) (*model.Retailer, error)
	List(ctx context.Context, limit, offset int) ([]*model.Retailer, error)
}

// RunLockRepository defines the interface for per-configuration trigger
// exclusivity. Acquire is a lease, not a mutex: a crashed holder frees
// the configuration when the TTL expires.
type RunLockRepository interface {
	// Acquire returns true when the lock was obtained, false when another
	// run currently holds it.
	Acquire(ctx context.Context, configID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, configID string) error
}
