package webserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopquanao/storefront/internal/catalog"
	"github.com/shopquanao/storefront/internal/domain"
)

// CatalogProvider is the catalog surface the handlers need.
type CatalogProvider interface {
	ListProducts(ctx context.Context) ([]byte, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateProduct(ctx context.Context, p *domain.Product) error
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

type CatalogHandler struct {
	svc CatalogProvider
}

func NewCatalogHandler(svc CatalogProvider) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

type productPayload struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (pl *productPayload) validate() string {
	pl.Name = strings.TrimSpace(pl.Name)
	if pl.Name == "" {
		return "Product name is required"
	}
	if pl.Price <= 0 {
		return "Product price must be a positive integer"
	}
	return ""
}

// ListProducts serves the whole catalog. The service hands back the
// serialized list (cached or fresh) and it is written out verbatim.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	data, err := h.svc.ListProducts(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to load products", err)
	}
	return c.JSONBlob(http.StatusOK, data)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid product ID", nil)
	}
	p, err := h.svc.GetProduct(c.Request().Context(), id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		return fail(c, http.StatusNotFound, "Product not found", nil)
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to load product", err)
	}
	return ok(c, p)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	rows, err := h.svc.ListCategories(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to load categories", err)
	}
	return ok(c, rows)
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse product", err)
	}
	if msg := payload.validate(); msg != "" {
		return fail(c, http.StatusBadRequest, msg, nil)
	}

	p := domain.Product{
		Name:        payload.Name,
		Price:       payload.Price,
		Image:       strings.TrimSpace(payload.Image),
		Category:    strings.TrimSpace(payload.Category),
		Description: payload.Description,
	}
	if err := h.svc.CreateProduct(c.Request().Context(), &p); err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to create product", err)
	}
	return ok(c, p)
}

// UpdateProduct replaces every stored field with the submitted payload;
// there is no partial patch.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid product ID", nil)
	}
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse product", err)
	}
	if msg := payload.validate(); msg != "" {
		return fail(c, http.StatusBadRequest, msg, nil)
	}

	p := domain.Product{
		ID:          id,
		Name:        payload.Name,
		Price:       payload.Price,
		Image:       strings.TrimSpace(payload.Image),
		Category:    strings.TrimSpace(payload.Category),
		Description: payload.Description,
	}
	err = h.svc.UpdateProduct(c.Request().Context(), &p)
	if errors.Is(err, catalog.ErrProductNotFound) {
		return fail(c, http.StatusNotFound, "Product not found", nil)
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to update product", err)
	}
	return ok(c, p)
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid product ID", nil)
	}
	err = h.svc.DeleteProduct(c.Request().Context(), id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		return fail(c, http.StatusNotFound, "Product not found", nil)
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to delete product", err)
	}
	return ok(c, echo.Map{"message": "Product deleted", "id": id})
}
