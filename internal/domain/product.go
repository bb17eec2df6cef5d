// internal/domain/product.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise price arithmetic
)

func init() {
	// Prices render as JSON numbers, matching the rest of the API surface.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a catalog item tracked by the inventory system.
type Product struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Type        string          `db:"type" json:"type"`
	SKU         string          `db:"sku" json:"sku"`
	ImageURL    *string         `db:"image_url" json:"image_url"`
	Description *string         `db:"description" json:"description"`
	Quantity    int             `db:"quantity" json:"quantity"`
	Price       decimal.Decimal `db:"price" json:"price"` // NUMERIC(12, 2) in DB
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// NewProduct creates a new Product instance. Optional fields stay nil when
// empty so they persist as SQL NULLs.
func NewProduct(name, ptype, sku, imageURL, description string, quantity int, price decimal.Decimal) *Product {
	now := time.Now().UTC()
	p := &Product{
		Name:      name,
		Type:      ptype,
		SKU:       sku,
		Quantity:  quantity,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if imageURL != "" {
		p.ImageURL = &imageURL
	}
	if description != "" {
		p.Description = &description
	}
	return p
}
