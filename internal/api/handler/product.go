// internal/api/handler/product.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"inventory-api/internal/api/types"
	"inventory-api/internal/service"
	"inventory-api/internal/util"
)

// DefaultTimeout bounds request handling across all routes.
const DefaultTimeout = 60 * time.Second

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ProductHandler handles HTTP requests for the product catalog. All routes
// it serves sit behind the bearer-token middleware.
type ProductHandler struct {
	service service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(svc service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateProductRequest represents the request body for creating a product.
// Quantity uses required (which rejects zero) to mirror the presence rule:
// a product enters the catalog with stock on hand and a real price.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Type        string          `json:"type" validate:"required"`
	SKU         string          `json:"sku" validate:"required"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity" validate:"required,gte=0"`
	Price       decimal.Decimal `json:"price"`
}

// Create handles the add-product request.
// POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(h.logger, w, "Invalid request body", "Request body must be valid JSON")
		return
	}

	verr := validate.Struct(req)
	if hasRequiredFailure(verr) || req.Price.IsZero() {
		badRequest(h.logger, w, "Missing required fields", "Name, type, SKU, quantity, and price are required")
		return
	}
	if verr != nil || req.Quantity < 0 {
		badRequest(h.logger, w, "Invalid quantity", "Quantity must be a non-negative number")
		return
	}
	if req.Price.IsNegative() {
		badRequest(h.logger, w, "Invalid price", "Price must be a non-negative number")
		return
	}

	product, err := h.service.Create(r.Context(), service.CreateProductInput{
		Name:        req.Name,
		Type:        req.Type,
		SKU:         req.SKU,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
	})
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, map[string]interface{}{
		"message":    "Product created successfully",
		"product_id": product.ID,
	})
}

// UpdateQuantityRequest represents the request body for a quantity update.
// A pointer distinguishes an absent quantity from an explicit zero.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// UpdateQuantity handles the update-quantity request.
// PUT /products/{productID}/quantity
func (h *ProductHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := parseProductID(r)
	if err != nil {
		badRequest(h.logger, w, "Invalid product ID", "Product ID must be an integer")
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(h.logger, w, "Invalid request body", "Request body must be valid JSON")
		return
	}
	if req.Quantity == nil || *req.Quantity < 0 {
		badRequest(h.logger, w, "Invalid quantity", "Quantity must be a non-negative number")
		return
	}

	product, err := h.service.UpdateQuantity(r.Context(), productID, *req.Quantity)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"message": "Product quantity updated successfully",
		"product": product,
	})
}

// List handles the paginated list request.
// GET /products?page=&limit=
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		badRequest(h.logger, w, "Invalid pagination parameters", "Page must be >= 1, limit must be between 1 and 100")
		return
	}

	products, total, err := h.service.List(r.Context(), page, limit)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"products":   products,
		"pagination": types.NewPagination(page, limit, total),
	})
}

// GetByID handles the fetch-by-id request.
// GET /products/{productID}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID, err := parseProductID(r)
	if err != nil {
		badRequest(h.logger, w, "Invalid product ID", "Product ID must be an integer")
		return
	}

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"product": product,
	})
}

func parseProductID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
}

// parsePagination applies defaults for absent parameters and rejects
// out-of-range values for present ones.
func parsePagination(r *http.Request) (page, limit int, err error) {
	page, limit = defaultPage, defaultLimit

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return 0, 0, util.ErrInvalidInput
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > maxLimit {
			return 0, 0, util.ErrInvalidInput
		}
	}
	return page, limit, nil
}

func hasRequiredFailure(err error) bool {
	if err == nil {
		return false
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return true
	}
	for _, ve := range verrs {
		if ve.Tag() == "required" {
			return true
		}
	}
	return false
}
