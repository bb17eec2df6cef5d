// internal/service/product_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventory-api/internal/domain"
	"inventory-api/internal/repository"
	"inventory-api/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) CreateProduct(ctx context.Context, q repository.DBExecutor, product *domain.Product) error {
	args := m.Called(ctx, q, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetProductByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Product, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) CountProducts(ctx context.Context, q repository.DBExecutor) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, q repository.DBExecutor, limit, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, q, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProductQuantity(ctx context.Context, q repository.DBExecutor, id int64, quantity int) (int64, error) {
	args := m.Called(ctx, q, id, quantity)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateProduct_Success(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewProductService(&MockDBExecutor{}, productRepo)

	productRepo.On("CreateProduct", mock.Anything, mock.Anything, mock.AnythingOfType("*domain.Product")).
		Run(func(args mock.Arguments) {
			args.Get(2).(*domain.Product).ID = 11
		}).
		Return(nil)

	product, err := svc.Create(context.Background(), CreateProductInput{
		Name:     "Laptop",
		Type:     "Electronics",
		SKU:      "LAP-002",
		Quantity: 3,
		Price:    decimal.RequireFromString("1299.99"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), product.ID)
	assert.Equal(t, "LAP-002", product.SKU)
	assert.Nil(t, product.ImageURL)
	assert.Nil(t, product.Description)
}

func TestCreateProduct_DuplicateSKU(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewProductService(&MockDBExecutor{}, productRepo)

	productRepo.On("CreateProduct", mock.Anything, mock.Anything, mock.Anything).
		Return(util.ErrDuplicateSKU)

	_, err := svc.Create(context.Background(), CreateProductInput{
		Name:     "Laptop",
		Type:     "Electronics",
		SKU:      "LAP-001",
		Quantity: 3,
		Price:    decimal.RequireFromString("1299.99"),
	})
	assert.ErrorIs(t, err, util.ErrDuplicateSKU)
}

func TestUpdateQuantity_NotFound(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewProductService(&MockDBExecutor{}, productRepo)

	productRepo.On("UpdateProductQuantity", mock.Anything, mock.Anything, int64(999), 5).
		Return(int64(0), nil)

	_, err := svc.UpdateQuantity(context.Background(), 999, 5)
	assert.ErrorIs(t, err, util.ErrNotFound)
	productRepo.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateQuantity_RefetchesUpdatedRow(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewProductService(&MockDBExecutor{}, productRepo)

	updated := &domain.Product{
		ID:        5,
		Name:      "Phone",
		SKU:       "PHN-001",
		Quantity:  15,
		UpdatedAt: time.Now().UTC(),
	}
	productRepo.On("UpdateProductQuantity", mock.Anything, mock.Anything, int64(5), 15).
		Return(int64(1), nil)
	productRepo.On("GetProductByID", mock.Anything, mock.Anything, int64(5)).
		Return(updated, nil)

	product, err := svc.UpdateQuantity(context.Background(), 5, 15)
	require.NoError(t, err)
	assert.Equal(t, 15, product.Quantity)
	productRepo.AssertExpectations(t)
}

func TestList_ComputesOffsetFromPage(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewProductService(&MockDBExecutor{}, productRepo)

	productRepo.On("CountProducts", mock.Anything, mock.Anything).Return(int64(25), nil)
	// page 3 with limit 10 translates to offset 20
	productRepo.On("ListProducts", mock.Anything, mock.Anything, 10, 20).
		Return([]domain.Product{{ID: 21}}, nil)

	products, total, err := svc.List(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, products, 1)
	productRepo.AssertExpectations(t)
}

func TestList_PropagatesStorageFault(t *testing.T) {
	productRepo := new(MockProductRepository)
	svc := NewProductService(&MockDBExecutor{}, productRepo)

	boom := errors.New("connection reset")
	productRepo.On("CountProducts", mock.Anything, mock.Anything).Return(int64(0), boom)

	_, _, err := svc.List(context.Background(), 1, 10)
	assert.ErrorIs(t, err, boom)
}
