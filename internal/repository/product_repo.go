// internal/repository/product_repo.go
package repository

import (
	"context"

	"inventory-api/internal/domain"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	// CreateProduct adds a new product using the provided DBExecutor.
	// Returns util.ErrDuplicateSKU when the SKU already exists.
	CreateProduct(ctx context.Context, q DBExecutor, product *domain.Product) error
	// GetProductByID retrieves a product by its ID.
	GetProductByID(ctx context.Context, q DBExecutor, id int64) (*domain.Product, error)
	// CountProducts returns the total number of products.
	CountProducts(ctx context.Context, q DBExecutor) (int64, error)
	// ListProducts returns products ordered by creation time, newest first.
	ListProducts(ctx context.Context, q DBExecutor, limit, offset int) ([]domain.Product, error)
	// UpdateProductQuantity sets the quantity of a product and refreshes its
	// updated_at timestamp. Returns the number of rows affected (0 or 1).
	UpdateProductQuantity(ctx context.Context, q DBExecutor, id int64, quantity int) (int64, error)
}
