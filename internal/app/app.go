package app

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shopquanao/storefront/config"
	"github.com/shopquanao/storefront/internal/account"
	"github.com/shopquanao/storefront/internal/cache"
	"github.com/shopquanao/storefront/internal/catalog"
	"github.com/shopquanao/storefront/internal/domain"
	"github.com/shopquanao/storefront/internal/news"
	"github.com/shopquanao/storefront/internal/order"
	"github.com/shopquanao/storefront/internal/storage"
)

type Application struct {
	appConfig *config.AppConfig
	gormDB    *gorm.DB
	cache     *cache.RedisCache
	store     *storage.MinioStore
	bus       EventBus.Bus
	sched     *cron.Cron

	catalogSvc *catalog.Service
	orderSvc   *order.Service
	accountSvc *account.Service
	newsClient *news.Client
}

// Ensure Application implements all interfaces
var (
	_ DBProvider      = (*Application)(nil)
	_ ConfigProvider  = (*Application)(nil)
	_ CacheProvider   = (*Application)(nil)
	_ ServiceProvider = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) DB() *gorm.DB {
	return a.gormDB
}

// OverrideDB replaces the application's database handle (used in tests).
func (a *Application) OverrideDB(db *gorm.DB) {
	a.gormDB = db
}

func (a *Application) Cache() *cache.RedisCache {
	return a.cache
}

func (a *Application) Store() *storage.MinioStore {
	return a.store
}

func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

func (a *Application) Catalog() *catalog.Service {
	return a.catalogSvc
}

func (a *Application) Orders() *order.Service {
	return a.orderSvc
}

func (a *Application) Accounts() *account.Service {
	return a.accountSvc
}

func (a *Application) News() *news.Client {
	return a.newsClient
}

func (a *Application) Init(cfg *config.AppConfig) {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	// Database connection and schema
	a.gormDB = getDatabase(cfg.Database)
	zap.S().Info("database connection successful")

	if err := a.MigrateDB(false); err != nil {
		zap.S().Errorf("database migration failed: %v", err)
	}
	a.checkSeedData()

	// Cache layer: an absent Redis degrades to uncached reads
	if cfg.Redis.Enabled {
		a.cache = cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Passwd, cfg.Redis.DB)
	} else {
		a.cache = cache.NewDisabledCache()
	}

	// Object storage
	a.store, err = storage.NewMinioStore(cfg.Minio)
	if err != nil {
		zap.S().Errorf("object storage init failed: %v", err)
	}

	// Event bus and services
	a.bus = EventBus.New()
	a.catalogSvc = catalog.NewService(
		catalog.NewGormProductRepository(a.gormDB),
		catalog.NewGormCategoryRepository(a.gormDB),
		a.cache,
		a.bus,
	)
	a.orderSvc = order.NewService(order.NewGormOrderRepository(a.gormDB), a.bus)
	a.accountSvc = account.NewService(account.NewGormUserRepository(a.gormDB), cfg.Jwt.Secret)
	a.newsClient = news.NewClient(cfg.News.Endpoint, cfg.News.APIKey, cfg.News.Query, cfg.News.Language)

	a.initAuditSubscribers()
	a.initJob()
}

func getDatabase(cfg config.DBConfig) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Passwd, cfg.Name)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	if cfg.MaxConn > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxConn)
	}
	if cfg.IdleConn > 0 {
		sqlDB.SetMaxIdleConns(cfg.IdleConn)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db
}

func (a *Application) MigrateDB(track bool) error {
	if track {
		return a.gormDB.Debug().Migrator().AutoMigrate(domain.Tables...)
	}
	return a.gormDB.Migrator().AutoMigrate(domain.Tables...)
}

func (a *Application) DropAll() {
	_ = a.gormDB.Migrator().DropTable(domain.Tables...)
}

func (a *Application) InitDb() {
	_ = a.gormDB.Migrator().DropTable(domain.Tables...)
	if err := a.gormDB.Migrator().AutoMigrate(domain.Tables...); err != nil {
		zap.S().Error(err)
	}
	a.checkSeedData()
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	_ = zap.L().Sync()
}
