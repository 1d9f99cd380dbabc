package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pricepulse/pricepulse-api/internal/core"
	"github.com/pricepulse/pricepulse-api/internal/data"
	"github.com/pricepulse/pricepulse-api/internal/domain/model"
	apperrors "github.com/pricepulse/pricepulse-api/internal/errors"
)

// RetailerService exposes the read model for retailers and their
// ingested catalog items.
type RetailerService struct {
	retailers core.RetailerRepository
	items     core.RetailerItemRepository
}

// RetailerServiceOptions groups dependencies for RetailerService.
type RetailerServiceOptions struct {
	Retailers core.RetailerRepository
	Items     core.RetailerItemRepository
}

// NewRetailerService constructs a new RetailerService.
func NewRetailerService(opts RetailerServiceOptions) *RetailerService {
	return &RetailerService{
		retailers: opts.Retailers,
		items:     opts.Items,
	}
}

// GetByID returns a retailer by id.
func (s *RetailerService) GetByID(ctx context.Context, id string) (*model.Retailer, error) {
	retailer, err := s.retailers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrRetailerNotFound) {
			return nil, apperrors.NotFoundf("retailer %s not found", id)
		}
		return nil, fmt.Errorf("get retailer: %w", err)
	}
	return retailer, nil
}

// GetBySlug returns a retailer by its URL-safe slug.
func (s *RetailerService) GetBySlug(ctx context.Context, slug string) (*model.Retailer, error) {
	retailer, err := s.retailers.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, data.ErrRetailerNotFound) {
			return nil, apperrors.NotFoundf("retailer %s not found", slug)
		}
		return nil, fmt.Errorf("get retailer by slug: %w", err)
	}
	return retailer, nil
}

// List returns retailers with pagination.
func (s *RetailerService) List(ctx context.Context, limit, offset int) ([]*model.Retailer, error) {
	return s.retailers.List(ctx, limit, offset)
}

// ListItems returns a retailer's ingested catalog items.
func (s *RetailerService) ListItems(
	ctx context.Context,
	opts core.RetailerItemListOptions,
) ([]*model.RetailerItem, error) {
	if _, err := s.GetByID(ctx, opts.RetailerID); err != nil {
		return nil, err
	}
	return s.items.ListByRetailer(ctx, opts)
}
