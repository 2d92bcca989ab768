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
	"gorm.io/datatypes"

	"github.com/shopquanao/storefront/internal/domain"
	"github.com/shopquanao/storefront/internal/order"
)

type mockOrders struct {
	created []order.CreateInput
	rows    []domain.Order
}

func (m *mockOrders) Create(ctx context.Context, in order.CreateInput) (*domain.Order, error) {
	m.created = append(m.created, in)
	return &domain.Order{
		ID:              int64(len(m.created)),
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		Note:            in.Note,
		Items:           datatypes.JSON(in.Items),
		Total:           in.Total,
		Status:          domain.OrderStatusPending,
		OrderDate:       in.OrderDate,
	}, nil
}

func (m *mockOrders) List(ctx context.Context, page, pageSize int) ([]domain.Order, int64, error) {
	return m.rows, int64(len(m.rows)), nil
}

func newOrderTestContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateOrderHandler(t *testing.T) {
	mock := &mockOrders{}
	h := NewOrderHandler(mock)
	c, rec := newOrderTestContext(`{
		"customer":{"name":"An","phone":"0900000000","address":"1 Lê Lợi, Q1"},
		"items":[{"productId":1,"quantity":2,"price":100000},{"productId":2,"quantity":1,"price":50000}],
		"total":250000
	}`)
	require.NoError(t, h.CreateOrder(c))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Message string       `json:"message"`
		Order   domain.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Order placed successfully", body.Message)
	assert.Equal(t, domain.OrderStatusPending, body.Order.Status)
	assert.Equal(t, int64(250000), body.Order.Total)

	require.Len(t, mock.created, 1)
	assert.JSONEq(t,
		`[{"productId":1,"quantity":2,"price":100000},{"productId":2,"quantity":1,"price":50000}]`,
		string(mock.created[0].Items), "line items are stored exactly as submitted")
}

func TestCreateOrderValidation(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "missing customer name",
			body:    `{"customer":{"phone":"09","address":"x"},"items":[{}],"total":1}`,
			message: "Customer name, phone and address are required",
		},
		{
			name:    "blank phone",
			body:    `{"customer":{"name":"An","phone":"  ","address":"x"},"items":[{}],"total":1}`,
			message: "Customer name, phone and address are required",
		},
		{
			name:    "missing items",
			body:    `{"customer":{"name":"An","phone":"09","address":"x"},"total":1}`,
			message: "Order items are required",
		},
		{
			name:    "null items",
			body:    `{"customer":{"name":"An","phone":"09","address":"x"},"items":null,"total":1}`,
			message: "Order items are required",
		},
		{
			name:    "zero total",
			body:    `{"customer":{"name":"An","phone":"09","address":"x"},"items":[{}],"total":0}`,
			message: "Order total must be a positive integer",
		},
		{
			name:    "bad order date",
			body:    `{"customer":{"name":"An","phone":"09","address":"x"},"items":[{}],"total":1,"orderDate":"yesterday"}`,
			message: "Invalid order date, expected RFC3339",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock := &mockOrders{}
			h := NewOrderHandler(mock)
			c, rec := newOrderTestContext(tc.body)
			require.NoError(t, h.CreateOrder(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body["message"])
			assert.Empty(t, mock.created, "rejected orders never reach the service")
		})
	}
}

func TestListOrdersHandler(t *testing.T) {
	mock := &mockOrders{rows: []domain.Order{
		{ID: 2, CustomerName: "B", Total: 50000, Status: domain.OrderStatusPending},
		{ID: 1, CustomerName: "A", Total: 250000, Status: domain.OrderStatusPending},
	}}
	h := NewOrderHandler(mock)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders?page=1&pageSize=20", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListOrders(e.NewContext(req, rec)))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data     []domain.Order `json:"data"`
		Total    int64          `json:"total"`
		Page     int            `json:"page"`
		PageSize int            `json:"pageSize"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.Total)
	assert.Equal(t, 1, body.Page)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "B", body.Data[0].CustomerName, "newest order comes first")
}
