package webserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopquanao/storefront/internal/domain"
	"github.com/shopquanao/storefront/internal/order"
)

// OrderProvider is the order surface the handlers need.
type OrderProvider interface {
	Create(ctx context.Context, in order.CreateInput) (*domain.Order, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Order, int64, error)
}

type OrderHandler struct {
	svc OrderProvider
}

func NewOrderHandler(svc OrderProvider) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type orderPayload struct {
	Customer struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
		Note    string `json:"note"`
	} `json:"customer"`
	Items     json.RawMessage `json:"items"`
	Total     int64           `json:"total"`
	OrderDate string          `json:"orderDate"`
}

// CreateOrder stores one checkout submission. Line items and total are
// persisted exactly as submitted; see the order package for why.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var payload orderPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse order", err)
	}

	payload.Customer.Name = strings.TrimSpace(payload.Customer.Name)
	payload.Customer.Phone = strings.TrimSpace(payload.Customer.Phone)
	payload.Customer.Address = strings.TrimSpace(payload.Customer.Address)
	if payload.Customer.Name == "" || payload.Customer.Phone == "" || payload.Customer.Address == "" {
		return fail(c, http.StatusBadRequest, "Customer name, phone and address are required", nil)
	}
	if len(payload.Items) == 0 || string(payload.Items) == "null" {
		return fail(c, http.StatusBadRequest, "Order items are required", nil)
	}
	if payload.Total <= 0 {
		return fail(c, http.StatusBadRequest, "Order total must be a positive integer", nil)
	}

	orderDate := time.Now()
	if payload.OrderDate != "" {
		parsed, err := time.Parse(time.RFC3339, payload.OrderDate)
		if err != nil {
			return fail(c, http.StatusBadRequest, "Invalid order date, expected RFC3339", nil)
		}
		orderDate = parsed
	}

	o, err := h.svc.Create(c.Request().Context(), order.CreateInput{
		CustomerName:    payload.Customer.Name,
		CustomerPhone:   payload.Customer.Phone,
		CustomerAddress: payload.Customer.Address,
		Note:            payload.Customer.Note,
		Items:           payload.Items,
		Total:           payload.Total,
		OrderDate:       orderDate,
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to create order", err)
	}
	return ok(c, echo.Map{"message": "Order placed successfully", "order": o})
}

// ListOrders is the admin-only order listing, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	page, pageSize := parsePagination(c)
	rows, total, err := h.svc.List(c.Request().Context(), page, pageSize)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to load orders", err)
	}
	return paged(c, rows, total, page, pageSize)
}
