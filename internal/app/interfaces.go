package app

import (
	"gorm.io/gorm"

	"github.com/shopquanao/storefront/config"
	"github.com/shopquanao/storefront/internal/account"
	"github.com/shopquanao/storefront/internal/cache"
	"github.com/shopquanao/storefront/internal/catalog"
	"github.com/shopquanao/storefront/internal/news"
	"github.com/shopquanao/storefront/internal/order"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// CacheProvider provides the catalog cache facade
type CacheProvider interface {
	Cache() *cache.RedisCache
}

// ServiceProvider provides the storefront services
type ServiceProvider interface {
	Catalog() *catalog.Service
	Orders() *order.Service
	Accounts() *account.Service
	News() *news.Client
}
