// Package mocks provides mock implementations for testing the pricepulse ingestion system.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository
// and strategy interfaces. The mocks are generated using go:generate directives and provide a
// fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockIngestionConfigRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(cfg, nil)
package mocks

// Generate mock for IngestionConfigRepository interface from internal/core package.
// This creates MockIngestionConfigRepository with methods for all interface methods:
// Create, GetByID, ListByRetailer, Update, Delete, RecordRun
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=ingestion_config_repository_mock.go github.com/pricepulse/pricepulse-api/internal/core IngestionConfigRepository

// Generate mock for RetailerItemRepository interface from internal/core package.
// This creates MockRetailerItemRepository with methods for all interface methods:
// Upsert, GetBySKU, ListByRetailer
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=retailer_item_repository_mock.go github.com/pricepulse/pricepulse-api/internal/core RetailerItemRepository

// Generate mock for RetailerRepository interface from internal/core package.
// This creates MockRetailerRepository with methods for all interface methods:
// GetByID, GetBySlug, List
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=retailer_repository_mock.go github.com/pricepulse/pricepulse-api/internal/core RetailerRepository

// Generate mock for RunLockRepository interface from internal/core package.
// This creates MockRunLockRepository with methods for all interface methods:
// Acquire, Release
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=run_lock_repository_mock.go github.com/pricepulse/pricepulse-api/internal/core RunLockRepository

// Generate mock for Strategy interface from internal/strategy package.
// This creates MockStrategy with methods for all interface methods:
// Type, Validate, Execute, Describe
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=strategy_mock.go github.com/pricepulse/pricepulse-api/internal/strategy Strategy
