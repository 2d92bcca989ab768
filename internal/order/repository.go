package order

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopquanao/storefront/internal/domain"
)

// OrderRepository handles database operations for orders
type OrderRepository interface {
	// Create inserts a new order row
	Create(ctx context.Context, o *domain.Order) error

	// List retrieves orders newest first with pagination
	List(ctx context.Context, page, pageSize int) ([]domain.Order, int64, error)
}

// GormOrderRepository is the GORM implementation of OrderRepository
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Create(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *GormOrderRepository) List(ctx context.Context, page, pageSize int) ([]domain.Order, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.Order{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.Order
	if err := base.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
