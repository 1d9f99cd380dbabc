package model

import "time"

// Retailer is an external data source whose product and price data is
// being acquired.
type Retailer struct {
	ID          string    `json:"id"           db:"id"`
	Slug        string    `json:"slug"         db:"slug"`
	Name        string    `json:"name"         db:"name"`
	DisplayName string    `json:"display_name" db:"display_name"`
	WebsiteURL  *string   `json:"website_url"  db:"website_url"`
	IsActive    bool      `json:"is_active"    db:"is_active"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
}

// RetailerItem is a durable catalog row, keyed uniquely on
// (retailer_id, sku) and maintained by idempotent upserts from
// acquisition strategies.
type RetailerItem struct {
	ID          string    `json:"id"           db:"id"`
	RetailerID  string    `json:"retailer_id"  db:"retailer_id"`
	SKU         string    `json:"sku"          db:"sku"`
	Name        string    `json:"name"         db:"name"`
	Price       float64   `json:"price"        db:"price"`
	InStock     bool      `json:"in_stock"     db:"in_stock"`
	ImageURL    *string   `json:"image_url"    db:"image_url"`
	LastScraped time.Time `json:"last_scraped" db:"last_scraped"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"   db:"updated_at"`
}
