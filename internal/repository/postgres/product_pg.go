// internal/repository/postgres/product_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"inventory-api/internal/domain"
	"inventory-api/internal/repository"
	"inventory-api/internal/util"

	"github.com/jmoiron/sqlx"
)

// ProductRepository implements repository.ProductRepository for PostgreSQL.
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) repository.ProductRepository {
	return &ProductRepository{}
}

// CreateProduct inserts a new product into the database.
func (r *ProductRepository) CreateProduct(ctx context.Context, q repository.DBExecutor, product *domain.Product) error {
	query := `INSERT INTO products (name, type, sku, image_url, description, quantity, price, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		product.Name, product.Type, product.SKU, product.ImageURL, product.Description,
		product.Quantity, product.Price, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrDuplicateSKU
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetProductByID retrieves a product by its ID.
func (r *ProductRepository) GetProductByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Product, error) {
	var product domain.Product
	query := `SELECT id, name, type, sku, image_url, description, quantity, price, created_at, updated_at
              FROM products WHERE id = $1`
	err := q.GetContext(ctx, &product, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// CountProducts returns the total number of products.
func (r *ProductRepository) CountProducts(ctx context.Context, q repository.DBExecutor) (int64, error) {
	var total int64
	query := `SELECT COUNT(*) FROM products`
	if err := q.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

// ListProducts returns a page of products, newest first. Ties on created_at
// break on id so the ordering stays stable across pages.
func (r *ProductRepository) ListProducts(ctx context.Context, q repository.DBExecutor, limit, offset int) ([]domain.Product, error) {
	products := []domain.Product{}
	query := `SELECT id, name, type, sku, image_url, description, quantity, price, created_at, updated_at
              FROM products
              ORDER BY created_at DESC, id DESC
              LIMIT $1 OFFSET $2`
	if err := q.SelectContext(ctx, &products, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// UpdateProductQuantity sets the quantity of a product and refreshes updated_at.
func (r *ProductRepository) UpdateProductQuantity(ctx context.Context, q repository.DBExecutor, id int64, quantity int) (int64, error) {
	query := `UPDATE products SET quantity = $1, updated_at = $2 WHERE id = $3`
	result, err := q.ExecContext(ctx, query, quantity, time.Now().UTC(), id)
	if err != nil {
		return 0, fmt.Errorf("failed to update quantity for product %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected for product %d: %w", id, err)
	}
	return rowsAffected, nil
}
