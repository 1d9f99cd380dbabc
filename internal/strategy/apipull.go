package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	jmespath "github.com/jmespath-community/go-jmespath"
	"github.com/pricepulse/pricepulse-api/internal/core"
	"github.com/pricepulse/pricepulse-api/internal/domain/model"
)

// Default JMESPath expressions used to locate and map items in an API
// payload when the configuration does not override them.
const (
	defaultItemsPath     = "items"
	defaultNameField     = "name"
	defaultPriceField    = "price"
	defaultSKUField      = "sku"
	defaultInStockField  = "in_stock"
	defaultImageURLField = "image_url"
)

// APIStrategyOptions groups dependencies for APIStrategy.
type APIStrategyOptions struct {
	Items  core.RetailerItemRepository
	Client *resty.Client // optional
	Logger *slog.Logger  // optional
}

// APIStrategy acquires product data by pulling a JSON feed from a
// retailer API and mapping fields with configurable JMESPath
// expressions. Extracted records flow through the same reconciliation
// path as the scraper, with identical drop and partial-failure rules.
type APIStrategy struct {
	items  core.RetailerItemRepository
	client *resty.Client
	log    *slog.Logger
	now    func() time.Time
}

// NewAPIStrategy constructs a new APIStrategy.
func NewAPIStrategy(opts APIStrategyOptions) *APIStrategy {
	client := opts.Client
	if client == nil {
		client = resty.New()
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &APIStrategy{
		items:  opts.Items,
		client: client,
		log:    log,
		now:    time.Now,
	}
}

// Type returns the API strategy tag.
func (s *APIStrategy) Type() model.StrategyType {
	return model.StrategyTypeAPI
}

// Describe returns a static description of the strategy.
func (s *APIStrategy) Describe() string {
	return "Retailer API client pulling structured JSON product feeds"
}

// Validate checks that the settings blob carries a url with an accepted
// network scheme. It performs no I/O.
func (s *APIStrategy) Validate(settings model.Settings) bool {
	url, ok := settings.String("url")
	if !ok || url == "" {
		s.log.Error("api settings missing required field: url")
		return false
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		s.log.Error("api settings url must be a valid HTTP/HTTPS URL", "url", url)
		return false
	}
	return true
}

// Execute pulls and reconciles the feed. Anticipated failures (request
// errors, bad payloads, per-item storage failures) are folded into the
// result.
func (s *APIStrategy) Execute(
	ctx context.Context,
	settings model.Settings,
	retailerID string,
) (*model.IngestionResult, error) {
	start := s.now()
	res := model.NewIngestionResult()
	url, _ := settings.String("url")
	if url != "" {
		res.Metadata[model.MetadataURL] = url
	}

	if !s.Validate(settings) {
		res.AddError("Invalid API configuration")
		s.finish(res, start)
		return res, nil
	}

	s.log.InfoContext(ctx, "starting api pull", "retailer_id", retailerID, "url", url)

	items, err := s.fetchItems(ctx, settings, url)
	if err != nil {
		res.AddError(fmt.Sprintf("API pull failed: %v", err))
		s.finish(res, start)
		return res, nil
	}
	res.Metadata[model.MetadataProductsFound] = len(items)

	products := s.mapItems(settings, items)
	s.log.InfoContext(ctx, "mapped api items",
		"url", url, "matched", len(items), "kept", len(products))

	reconcileProducts(ctx, s.items, reconcileParams{
		RetailerID: retailerID,
		Products:   products,
		ScrapedAt:  s.now(),
	}, res, s.log)

	s.finish(res, start)
	return res, nil
}

func (s *APIStrategy) finish(res *model.IngestionResult, start time.Time) {
	now := s.now()
	res.Metadata[model.MetadataDurationMS] = now.Sub(start).Milliseconds()
	res.Finish(now)
}

// fetchItems performs the request and selects the item list from the
// payload using the configured items path.
func (s *APIStrategy) fetchItems(
	ctx context.Context,
	settings model.Settings,
	url string,
) ([]any, error) {
	req := s.client.R().SetContext(ctx)
	for k, v := range settings.StringMap("headers") {
		req.SetHeader(k, v)
	}
	if apiKey, ok := settings.String("apiKey"); ok && apiKey != "" {
		req.SetAuthToken(apiKey)
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("request %s: unexpected status %s", url, resp.Status())
	}

	var doc any
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	itemsPath := defaultItemsPath
	if p, ok := settings.String("itemsPath"); ok && p != "" {
		itemsPath = p
	}
	selected, err := jmespath.Search(itemsPath, doc)
	if err != nil {
		return nil, fmt.Errorf("items path %q: %w", itemsPath, err)
	}
	list, ok := selected.([]any)
	if !ok {
		return nil, fmt.Errorf("items path %q did not select a list", itemsPath)
	}
	return list, nil
}

// mapItems applies per-field JMESPath expressions to each item. The drop
// rules match the scraper: records with an empty name or a price that
// does not resolve to a number are skipped silently.
func (s *APIStrategy) mapItems(settings model.Settings, items []any) []model.ScrapedProduct {
	fields := settings.StringMap("fields")
	expr := func(key, fallback string) string {
		if v := fields[key]; v != "" {
			return v
		}
		return fallback
	}
	nameExpr := expr("name", defaultNameField)
	priceExpr := expr("price", defaultPriceField)
	skuExpr := expr("sku", defaultSKUField)
	inStockExpr := expr("inStock", defaultInStockField)
	imageExpr := expr("imageUrl", defaultImageURLField)

	products := make([]model.ScrapedProduct, 0, len(items))
	for _, item := range items {
		name := fieldString(nameExpr, item)
		if name == "" {
			continue
		}
		price, ok := fieldNumber(priceExpr, item)
		if !ok {
			continue
		}
		products = append(products, model.ScrapedProduct{
			Name:     name,
			Price:    price,
			InStock:  fieldInStock(inStockExpr, item),
			SKU:      fieldString(skuExpr, item),
			ImageURL: fieldString(imageExpr, item),
		})
	}
	return products
}

func fieldString(expr string, item any) string {
	v, err := jmespath.Search(expr, item)
	if err != nil {
		return ""
	}
	str, _ := v.(string)
	return str
}

// fieldNumber resolves a price field that may arrive as a JSON number or
// a formatted string ("R 12.99").
func fieldNumber(expr string, item any) (float64, bool) {
	v, err := jmespath.Search(expr, item)
	if err != nil || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		return parsePrice(n)
	default:
		return 0, false
	}
}

// fieldInStock interprets a stock field that may be a boolean or a
// status string; a missing field defaults to in-stock.
func fieldInStock(expr string, item any) bool {
	v, err := jmespath.Search(expr, item)
	if err != nil || v == nil {
		return true
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return inferInStock(b)
	default:
		return true
	}
}
