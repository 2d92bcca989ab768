package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shopquanao/storefront/internal/domain"
)

// ErrProductNotFound is returned when a product row does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository handles database operations for catalog products
type ProductRepository interface {
	// ListAll retrieves every product ordered by identifier
	ListAll(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a single product
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// Create inserts a new product row
	Create(ctx context.Context, p *domain.Product) error

	// Update replaces an existing product row in full
	Update(ctx context.Context, p *domain.Product) error

	// Delete removes a product row
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository handles database operations for categories
type CategoryRepository interface {
	// ListAll retrieves every category ordered by identifier
	ListAll(ctx context.Context) ([]domain.Category, error)
}

// GormProductRepository is the GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	var rows []domain.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepository) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormProductRepository) Update(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// GormCategoryRepository is the GORM implementation of CategoryRepository
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) ListAll(ctx context.Context) ([]domain.Category, error) {
	var rows []domain.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
