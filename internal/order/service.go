// Package order persists denormalized order records. Line items and the
// total are stored exactly as the client submitted them; the storefront
// does not recompute the total against live catalog prices, a deliberate
// simplification carried over from the original checkout flow.
package order

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/shopquanao/storefront/internal/domain"
	"github.com/shopquanao/storefront/pkg/common"
)

// TopicOrderCreated is published after every stored order, with the
// order identifier.
const TopicOrderCreated = "order.created"

// CreateInput carries the checkout submission.
type CreateInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Note            string
	Items           []byte
	Total           int64
	OrderDate       time.Time
}

// Service persists orders. There is no idempotency key: resubmitting the
// same checkout creates a duplicate order.
type Service struct {
	orders OrderRepository
	bus    EventBus.Bus
}

func NewService(orders OrderRepository, bus EventBus.Bus) *Service {
	return &Service{orders: orders, bus: bus}
}

// Create stores one order row with status fixed to pending.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	o := domain.Order{
		ID:              common.UUIDint64(),
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		Note:            in.Note,
		Items:           datatypes.JSON(in.Items),
		Total:           in.Total,
		OrderDate:       in.OrderDate,
		Status:          domain.OrderStatusPending,
		CreatedAt:       time.Now(),
	}
	if err := s.orders.Create(ctx, &o); err != nil {
		return nil, err
	}

	if s.bus != nil {
		s.bus.Publish(TopicOrderCreated, o.ID)
	}
	zap.L().Info("order created", zap.Int64("order_id", o.ID), zap.Int64("total", o.Total))
	return &o, nil
}

// List returns orders newest first.
func (s *Service) List(ctx context.Context, page, pageSize int) ([]domain.Order, int64, error) {
	return s.orders.List(ctx, page, pageSize)
}
