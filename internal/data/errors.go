package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// Retailer repository sentinels.
	ErrRetailerNotFound = errors.New("retailer not found")

	// Ingestion config repository sentinels.
	ErrIngestionConfigNotFound   = errors.New("ingestion config not found")
	ErrIngestionConfigNameExists = errors.New("ingestion config name already exists for retailer")

	// Retailer item repository sentinels.
	ErrRetailerItemNotFound = errors.New("retailer item not found")
)
