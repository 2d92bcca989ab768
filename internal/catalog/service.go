package catalog

import (
	"context"

	"github.com/asaskevich/EventBus"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/shopquanao/storefront/internal/cache"
	"github.com/shopquanao/storefront/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TopicCatalogChanged is published after every successful catalog
// mutation, with (action string, productID int64).
const TopicCatalogChanged = "catalog.changed"

// Service composes the persistence gateway and the cache layer for the
// product/category read and write surface. Every mutation deletes the
// whole-list cache key so the next listing repopulates from the
// database; the cache is never updated in place, which keeps a writer's
// view from being served before the write is durably committed.
type Service struct {
	products   ProductRepository
	categories CategoryRepository
	cache      cache.Store
	bus        EventBus.Bus
	group      singleflight.Group
}

func NewService(products ProductRepository, categories CategoryRepository, store cache.Store, bus EventBus.Bus) *Service {
	return &Service{
		products:   products,
		categories: categories,
		cache:      store,
		bus:        bus,
	}
}

// ListProducts serves the full product list, cache-aside. A hit returns
// the cached serialized list verbatim; on a miss the database rows are
// serialized, written through with a fixed TTL and returned. Concurrent
// misses are collapsed into a single database read.
func (s *Service) ListProducts(ctx context.Context) ([]byte, error) {
	if data, outcome := s.cache.Get(ctx, cache.ProductsKey); outcome == cache.Hit {
		zap.L().Debug("product list served from cache")
		return data, nil
	}

	v, err, _ := s.group.Do(cache.ProductsKey, func() (interface{}, error) {
		// The result is shared with every collapsed caller, so the
		// leader's cancellation must not fail the whole flight.
		ctx := context.WithoutCancel(ctx)
		rows, err := s.products.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(rows)
		if err != nil {
			return nil, err
		}
		s.cache.Set(ctx, cache.ProductsKey, data, cache.ProductsTTL)
		zap.L().Debug("product list served from database", zap.Int("count", len(rows)))
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// GetProduct fetches one product by id, uncached.
func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// ListCategories fetches all categories ordered by id, uncached.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.ListAll(ctx)
}

// CreateProduct inserts a new product and invalidates the listing cache.
func (s *Service) CreateProduct(ctx context.Context, p *domain.Product) error {
	if err := s.products.Create(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx, "create", p.ID)
	return nil
}

// UpdateProduct replaces an existing product in full.
func (s *Service) UpdateProduct(ctx context.Context, p *domain.Product) error {
	if _, err := s.products.GetByID(ctx, p.ID); err != nil {
		return err
	}
	if err := s.products.Update(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx, "update", p.ID)
	return nil
}

// DeleteProduct removes a product by id.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, "delete", id)
	return nil
}

// WarmCache primes the listing cache by forcing one database read
// through the miss path. Used by the periodic warm job.
func (s *Service) WarmCache(ctx context.Context) error {
	s.cache.Delete(ctx, cache.ProductsKey)
	_, err := s.ListProducts(ctx)
	return err
}

func (s *Service) invalidate(ctx context.Context, action string, id int64) {
	s.cache.Delete(ctx, cache.ProductsKey)
	if s.bus != nil {
		s.bus.Publish(TopicCatalogChanged, action, id)
	}
	zap.L().Info("catalog changed, listing cache invalidated",
		zap.String("action", action), zap.Int64("product_id", id))
}
