package api

import (
	"net/http"

	"github.com/phrazzld/hunterprice/internal/api/shared"
	"github.com/phrazzld/hunterprice/internal/service"
)

// ProductHandler serves the product catalog.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil") // ALLOW-PANIC
	}
	return &ProductHandler{productService: productService}
}

// ListProducts handles GET /products.
func (h *ProductHandler) ListProducts(r *http.Request, rc *shared.RequestContext) error {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		return err
	}
	rc.SetResult(http.StatusOK, NewProductResponses(products))
	return nil
}

// CreateProduct handles POST /products.
func (h *ProductHandler) CreateProduct(r *http.Request, rc *shared.RequestContext) error {
	var req CreateProductRequest
	if err := decodeBody(rc, &req); err != nil {
		return err
	}

	input := service.NewProductInput{
		Name:        deref(req.Name),
		Description: deref(req.Description),
		Unit:        deref(req.Unit),
	}
	if req.Amount != nil {
		input.Amount = *req.Amount
	}

	product, err := h.productService.CreateProduct(r.Context(), input)
	if err != nil {
		return err
	}
	rc.SetResult(http.StatusCreated, NewProductResponse(product))
	return nil
}
