// internal/service/product_service.go
package service

import (
	"context"
	"fmt"

	"inventory-api/internal/domain"
	"inventory-api/internal/repository"
	"inventory-api/internal/util"

	"github.com/shopspring/decimal"
)

// CreateProductInput carries the validated fields for a new product.
type CreateProductInput struct {
	Name        string
	Type        string
	SKU         string
	ImageURL    string
	Description string
	Quantity    int
	Price       decimal.Decimal
}

// ProductService defines the interface for product catalog logic.
type ProductService interface {
	// Create inserts a new product. Returns util.ErrDuplicateSKU on an SKU
	// collision.
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	// GetByID retrieves a product. Returns util.ErrNotFound when absent.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	// List returns one page of products (newest first) plus the total count.
	List(ctx context.Context, page, limit int) ([]domain.Product, int64, error)
	// UpdateQuantity sets the quantity of a product, then re-fetches and
	// returns the updated row. Returns util.ErrNotFound when no row matched.
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.Product, error)
}

type productService struct {
	dbExecutor  repository.DBExecutor
	productRepo repository.ProductRepository
}

// NewProductService creates a new instance of ProductService.
func NewProductService(dbExecutor repository.DBExecutor, productRepo repository.ProductRepository) ProductService {
	return &productService{
		dbExecutor:  dbExecutor,
		productRepo: productRepo,
	}
}

// Create inserts a new product into the catalog.
func (s *productService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	product := domain.NewProduct(
		input.Name, input.Type, input.SKU,
		input.ImageURL, input.Description,
		input.Quantity, input.Price,
	)
	if err := s.productRepo.CreateProduct(ctx, s.dbExecutor, product); err != nil {
		if util.IsError(err, util.ErrDuplicateSKU) {
			return nil, util.ErrDuplicateSKU
		}
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// GetByID retrieves a single product.
func (s *productService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return product, nil
}

// List returns the requested page and the total product count.
func (s *productService) List(ctx context.Context, page, limit int) ([]domain.Product, int64, error) {
	total, err := s.productRepo.CountProducts(ctx, s.dbExecutor)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	offset := (page - 1) * limit
	products, err := s.productRepo.ListProducts(ctx, s.dbExecutor, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, total, nil
}

// UpdateQuantity applies the update and re-fetches the row so callers get
// the refreshed updated_at.
func (s *productService) UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.Product, error) {
	rowsAffected, err := s.productRepo.UpdateProductQuantity(ctx, s.dbExecutor, id, quantity)
	if err != nil {
		return nil, fmt.Errorf("update quantity for product %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return nil, util.ErrNotFound
	}

	product, err := s.productRepo.GetProductByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("re-fetch product %d after update: %w", id, err)
	}
	return product, nil
}
