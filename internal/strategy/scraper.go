package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/pricepulse/pricepulse-api/internal/core"
	"github.com/pricepulse/pricepulse-api/internal/domain/model"
)

// Default sub-selectors applied when a configuration does not override
// them. Container elements are matched first; the remaining selectors
// are applied within each container.
const (
	defaultContainerSelector = ".product"
	defaultNameSelector      = ".product-name"
	defaultPriceSelector     = ".product-price"
	defaultStockSelector     = ".product-stock"
	defaultImageSelector     = ".product-image"
)

const defaultSelectorTimeout = 10 * time.Second

// outOfStockMarker is the case-insensitive substring that marks a stock
// element as out-of-stock. Absence of a stock element means in-stock.
const outOfStockMarker = "out of stock"

// ScraperStrategyOptions groups dependencies for ScraperStrategy.
type ScraperStrategyOptions struct {
	Browser BrowserProvider
	Items   core.RetailerItemRepository
	Logger  *slog.Logger // optional
	// SelectorTimeout bounds the wait for an explicitly configured
	// container selector. Zero means the default of 10s.
	SelectorTimeout time.Duration
}

// ScraperStrategy acquires product data by driving a headless browser
// session against a retailer page and reconciling the extracted records
// into durable item storage.
type ScraperStrategy struct {
	browser         BrowserProvider
	items           core.RetailerItemRepository
	log             *slog.Logger
	selectorTimeout time.Duration
	now             func() time.Time
}

// NewScraperStrategy constructs a new ScraperStrategy.
func NewScraperStrategy(opts ScraperStrategyOptions) *ScraperStrategy {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	timeout := opts.SelectorTimeout
	if timeout <= 0 {
		timeout = defaultSelectorTimeout
	}
	return &ScraperStrategy{
		browser:         opts.Browser,
		items:           opts.Items,
		log:             log,
		selectorTimeout: timeout,
		now:             time.Now,
	}
}

// Type returns the scraper strategy tag.
func (s *ScraperStrategy) Type() model.StrategyType {
	return model.StrategyTypeScraper
}

// Describe returns a static description of the strategy.
func (s *ScraperStrategy) Describe() string {
	return "Web scraper using headless browser automation"
}

// Validate checks that the settings blob carries a url with an accepted
// network scheme. It performs no I/O; failures are logged, not raised.
func (s *ScraperStrategy) Validate(settings model.Settings) bool {
	url, ok := settings.String("url")
	if !ok || url == "" {
		s.log.Error("scraper settings missing required field: url")
		return false
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		s.log.Error("scraper settings url must be a valid HTTP/HTTPS URL", "url", url)
		return false
	}
	return true
}

// Execute scrapes the configured page and reconciles extracted products
// for the retailer. All anticipated failures are folded into the result;
// Execute itself does not return an error under normal operation.
func (s *ScraperStrategy) Execute(
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

	// Short-circuit before any session is opened.
	if !s.Validate(settings) {
		res.AddError("Invalid scraper configuration")
		s.finish(res, start)
		return res, nil
	}

	s.log.InfoContext(ctx, "starting scrape", "retailer_id", retailerID, "url", url)

	session, err := s.browser.OpenSession(ctx)
	if err != nil {
		res.AddError(fmt.Sprintf("Scraping failed: %v", err))
		s.finish(res, start)
		return res, nil
	}
	// The session is exclusively owned by this call and must never leak,
	// whichever path exits Execute.
	defer func() {
		if cerr := session.Close(ctx); cerr != nil {
			s.log.ErrorContext(ctx, "close browser session failed", "error", cerr)
		}
	}()

	rows, err := s.extract(ctx, session, settings)
	if err != nil {
		res.AddError(fmt.Sprintf("Scraping failed: %v", err))
		s.finish(res, start)
		return res, nil
	}
	res.Metadata[model.MetadataProductsFound] = len(rows)

	products := parseRows(rows)
	s.log.InfoContext(ctx, "extracted products",
		"url", url, "matched", len(rows), "kept", len(products))

	reconcileProducts(ctx, s.items, reconcileParams{
		RetailerID: retailerID,
		Products:   products,
		ScrapedAt:  s.now(),
	}, res, s.log)

	s.finish(res, start)
	return res, nil
}

func (s *ScraperStrategy) finish(res *model.IngestionResult, start time.Time) {
	now := s.now()
	res.Metadata[model.MetadataDurationMS] = now.Sub(start).Milliseconds()
	res.Finish(now)
}

// extract navigates the session and evaluates the extraction script.
func (s *ScraperStrategy) extract(
	ctx context.Context,
	session Session,
	settings model.Settings,
) ([]extractedRow, error) {
	url, _ := settings.String("url")
	sel := resolveSelectors(settings)

	if err := session.Navigate(ctx, url); err != nil {
		return nil, fmt.Errorf("navigate to %s: %w", url, err)
	}

	// An explicitly configured container selector doubles as a readiness
	// gate: absence after the timeout fails the run rather than silently
	// extracting nothing.
	if explicit, ok := settings.StringMap("selectors")["productContainer"]; ok && explicit != "" {
		if err := session.WaitForSelector(ctx, explicit, s.selectorTimeout); err != nil {
			return nil, fmt.Errorf("wait for selector %q: %w", explicit, err)
		}
	}

	var rows []extractedRow
	if err := session.Extract(ctx, buildExtractionScript(sel), &rows); err != nil {
		return nil, fmt.Errorf("extract products: %w", err)
	}
	return rows, nil
}

// scraperSelectors holds the resolved selector set for one run.
type scraperSelectors struct {
	Container string
	Name      string
	Price     string
	Stock     string
	Image     string
}

func resolveSelectors(settings model.Settings) scraperSelectors {
	sel := scraperSelectors{
		Container: defaultContainerSelector,
		Name:      defaultNameSelector,
		Price:     defaultPriceSelector,
		Stock:     defaultStockSelector,
		Image:     defaultImageSelector,
	}
	overrides := settings.StringMap("selectors")
	if v := overrides["productContainer"]; v != "" {
		sel.Container = v
	}
	if v := overrides["name"]; v != "" {
		sel.Name = v
	}
	if v := overrides["price"]; v != "" {
		sel.Price = v
	}
	if v := overrides["inStock"]; v != "" {
		sel.Stock = v
	}
	if v := overrides["image"]; v != "" {
		sel.Image = v
	}
	return sel
}

// extractedRow is the raw per-container readout produced in the page.
// Parsing and filtering happen in Go so the drop rules stay testable.
type extractedRow struct {
	Name      string `json:"name"`
	PriceText string `json:"price_text"`
	StockText string `json:"stock_text"`
	ImageURL  string `json:"image_url"`
	SKU       string `json:"sku"`
}

// buildExtractionScript renders the in-page readout for the selector
// set. It returns one row per matched container element.
func buildExtractionScript(sel scraperSelectors) string {
	return fmt.Sprintf(`(() => {
	const rows = [];
	document.querySelectorAll(%q).forEach((el) => {
		const text = (s) => {
			const m = el.querySelector(s);
			return m && m.textContent ? m.textContent.trim() : '';
		};
		const img = el.querySelector(%q);
		rows.push({
			name: text(%q),
			price_text: text(%q),
			stock_text: text(%q),
			image_url: img && img.src ? img.src : '',
			sku: el.dataset && el.dataset.sku ? el.dataset.sku : '',
		});
	});
	return rows;
})()`, sel.Container, sel.Image, sel.Name, sel.Price, sel.Stock)
}

// parseRows converts raw rows into products, applying the drop rules: a
// record is kept only if its name is non-empty and its price parses.
// Dropped rows are not errors; container selectors routinely match
// decorative or partial DOM nodes.
func parseRows(rows []extractedRow) []model.ScrapedProduct {
	products := make([]model.ScrapedProduct, 0, len(rows))
	for _, row := range rows {
		if row.Name == "" {
			continue
		}
		price, ok := parsePrice(row.PriceText)
		if !ok {
			continue
		}
		products = append(products, model.ScrapedProduct{
			Name:     row.Name,
			Price:    price,
			InStock:  inferInStock(row.StockText),
			ImageURL: row.ImageURL,
			SKU:      row.SKU,
		})
	}
	return products
}

// parsePrice strips all non-numeric, non-decimal-point characters and
// converts the remainder. An empty price text parses as zero, matching
// pages that render price-less placeholders.
func parsePrice(text string) (float64, bool) {
	if text == "" {
		text = "0"
	}
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, text)
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

// inferInStock treats a record as out-of-stock only when its stock
// element text contains the out-of-stock marker; no stock element means
// in-stock.
func inferInStock(stockText string) bool {
	if stockText == "" {
		return true
	}
	return !strings.Contains(strings.ToLower(stockText), outOfStockMarker)
}
