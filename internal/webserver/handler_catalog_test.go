package webserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopquanao/storefront/internal/catalog"
	"github.com/shopquanao/storefront/internal/domain"
)

// mockCatalog is a stateful in-memory CatalogProvider.
type mockCatalog struct {
	products   map[int64]domain.Product
	categories []domain.Category
	nextID     int64
	listErr    error
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{products: map[int64]domain.Product{}, nextID: 1}
}

func (m *mockCatalog) ListProducts(ctx context.Context) ([]byte, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	rows := make([]domain.Product, 0, len(m.products))
	for id := int64(1); id < m.nextID; id++ {
		if p, found := m.products[id]; found {
			rows = append(rows, p)
		}
	}
	return json.Marshal(rows)
}

func (m *mockCatalog) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p, found := m.products[id]
	if !found {
		return nil, catalog.ErrProductNotFound
	}
	return &p, nil
}

func (m *mockCatalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return m.categories, nil
}

func (m *mockCatalog) CreateProduct(ctx context.Context, p *domain.Product) error {
	p.ID = m.nextID
	m.nextID++
	m.products[p.ID] = *p
	return nil
}

func (m *mockCatalog) UpdateProduct(ctx context.Context, p *domain.Product) error {
	if _, found := m.products[p.ID]; !found {
		return catalog.ErrProductNotFound
	}
	m.products[p.ID] = *p
	return nil
}

func (m *mockCatalog) DeleteProduct(ctx context.Context, id int64) error {
	if _, found := m.products[id]; !found {
		return catalog.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func newCatalogTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListProductsHandler(t *testing.T) {
	mock := newMockCatalog()
	mock.products[1] = domain.Product{ID: 1, Name: "Áo thun nam basic", Price: 299000}
	mock.nextID = 2
	h := NewCatalogHandler(mock)

	c, rec := newCatalogTestContext(http.MethodGet, "/api/products", "")
	require.NoError(t, h.ListProducts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var rows []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Áo thun nam basic", rows[0].Name)
}

func TestListProductsHandlerServerError(t *testing.T) {
	mock := newMockCatalog()
	mock.listErr = assert.AnError
	h := NewCatalogHandler(mock)

	c, rec := newCatalogTestContext(http.MethodGet, "/api/products", "")
	require.NoError(t, h.ListProducts(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to load products", body["message"])
	assert.NotEmpty(t, body["error"], "server errors echo the underlying message")
}

func TestProductLifecycle(t *testing.T) {
	mock := newMockCatalog()
	h := NewCatalogHandler(mock)

	// create
	c, rec := newCatalogTestContext(http.MethodPost, "/api/products",
		`{"name":"T-Shirt","price":100000,"category":"ao-nam"}`)
	require.NoError(t, h.CreateProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var created domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID, "create returns a generated id")
	assert.Equal(t, "T-Shirt", created.Name)
	assert.Equal(t, int64(100000), created.Price)
	assert.Equal(t, "ao-nam", created.Category)

	// get returns the same fields
	c, rec = newCatalogTestContext(http.MethodGet, "/api/products/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	// delete
	c, rec = newCatalogTestContext(http.MethodDelete, "/api/products/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// gone
	c, rec = newCatalogTestContext(http.MethodGet, "/api/products/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProductValidation(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "missing name",
			body:    `{"price":100000}`,
			message: "Product name is required",
		},
		{
			name:    "blank name",
			body:    `{"name":"   ","price":100000}`,
			message: "Product name is required",
		},
		{
			name:    "missing price",
			body:    `{"name":"T-Shirt"}`,
			message: "Product price must be a positive integer",
		},
		{
			name:    "negative price",
			body:    `{"name":"T-Shirt","price":-5}`,
			message: "Product price must be a positive integer",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewCatalogHandler(newMockCatalog())
			c, rec := newCatalogTestContext(http.MethodPost, "/api/products", tc.body)
			require.NoError(t, h.CreateProduct(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	h := NewCatalogHandler(newMockCatalog())
	c, rec := newCatalogTestContext(http.MethodPut, "/api/products/99",
		`{"name":"ghost","price":1}`)
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, h.UpdateProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductInvalidID(t *testing.T) {
	h := NewCatalogHandler(newMockCatalog())
	c, rec := newCatalogTestContext(http.MethodGet, "/api/products/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCategoriesHandler(t *testing.T) {
	mock := newMockCatalog()
	mock.categories = []domain.Category{
		{ID: "ao-nam", Name: "Áo Nam"},
		{ID: "ao-nu", Name: "Áo Nữ"},
	}
	h := NewCatalogHandler(mock)

	c, rec := newCatalogTestContext(http.MethodGet, "/api/categories", "")
	require.NoError(t, h.ListCategories(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var rows []domain.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)
}
