package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pricepulse/pricepulse-api/internal/core"
	"github.com/pricepulse/pricepulse-api/internal/domain/model"
)

// generatedSKUPrefix keeps derived SKUs from colliding with natural SKUs
// a retailer might also use.
const generatedSKUPrefix = "generated-"

// generatedSKU derives a stable SKU from a product name: lowercase,
// whitespace collapsed to hyphens, prefixed.
func generatedSKU(name string) string {
	return generatedSKUPrefix + strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// reconcileParams groups inputs for reconcileProducts.
type reconcileParams struct {
	RetailerID string
	Products   []model.ScrapedProduct
	ScrapedAt  time.Time
}

// reconcileProducts upserts each extracted product into durable item
// storage keyed on (retailer_id, sku). Each record's upsert is isolated:
// a failure on one record is captured as an error string on the result
// and reconciliation continues with the remaining records. The result's
// ItemsIngested counts successful upserts only.
func reconcileProducts(
	ctx context.Context,
	items core.RetailerItemRepository,
	params reconcileParams,
	res *model.IngestionResult,
	log *slog.Logger,
) {
	for _, p := range params.Products {
		sku := p.SKU
		if sku == "" {
			sku = generatedSKU(p.Name)
		}
		var imageURL *string
		if p.ImageURL != "" {
			u := p.ImageURL
			imageURL = &u
		}
		err := items.Upsert(ctx, core.UpsertRetailerItemParams{
			RetailerID:  params.RetailerID,
			SKU:         sku,
			Name:        p.Name,
			Price:       p.Price,
			InStock:     p.InStock,
			ImageURL:    imageURL,
			LastScraped: params.ScrapedAt,
		})
		if err != nil {
			msg := fmt.Sprintf("Failed to store product %s: %v", p.Name, err)
			log.ErrorContext(ctx, "store product failed",
				"retailer_id", params.RetailerID, "sku", sku, "error", err)
			res.AddError(msg)
			continue
		}
		res.ItemsIngested++
	}
}
