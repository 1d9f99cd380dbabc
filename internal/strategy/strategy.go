// Package strategy implements pluggable data-acquisition strategies and
// the registry the ingestion orchestrator resolves them from.
//
// A Strategy owns the full acquisition of one configuration's data:
// validation of its opaque settings blob, the acquisition itself, and
// the idempotent reconciliation of extracted records into item storage.
// Anticipated failure modes (bad settings, network failure, per-item
// storage failure) are folded into the returned IngestionResult; the
// error return is reserved for faults a strategy could not anticipate.
package strategy

import (
	"context"

	"github.com/pricepulse/pricepulse-api/internal/domain/model"
)

// Strategy is the contract every acquisition method implements.
type Strategy interface {
	// Type returns the stable identifying tag for this implementation.
	Type() model.StrategyType

	// Validate checks that the opaque settings blob contains what this
	// strategy needs. It is pure: no I/O, no side effects beyond logging.
	Validate(settings model.Settings) bool

	// Execute performs the acquisition for one retailer. Anticipated
	// failures are reported through the result; a non-nil error means an
	// unanticipated fault and the result is nil.
	Execute(ctx context.Context, settings model.Settings, retailerID string) (*model.IngestionResult, error)

	// Describe returns a static human-readable description.
	Describe() string
}
