// Package webserver exposes the storefront HTTP/JSON API.
package webserver

import (
	"fmt"
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shopquanao/storefront/config"
	"github.com/shopquanao/storefront/internal/account"
	"github.com/shopquanao/storefront/internal/catalog"
	"github.com/shopquanao/storefront/internal/news"
	"github.com/shopquanao/storefront/internal/order"
	"github.com/shopquanao/storefront/internal/storage"
)

type WebServer struct {
	root     *echo.Echo
	cfg      *config.AppConfig
	db       *gorm.DB
	catalog  *CatalogHandler
	orders   *OrderHandler
	accounts *AccountHandler
	uploads  *UploadHandler
	news     *NewsHandler
}

func NewWebServer(
	cfg *config.AppConfig,
	db *gorm.DB,
	catalogSvc *catalog.Service,
	orderSvc *order.Service,
	accountSvc *account.Service,
	store storage.ObjectStore,
	newsClient *news.Client,
) *WebServer {
	s := &WebServer{
		root:     echo.New(),
		cfg:      cfg,
		db:       db,
		catalog:  NewCatalogHandler(catalogSvc),
		orders:   NewOrderHandler(orderSvc),
		accounts: NewAccountHandler(accountSvc),
		uploads:  NewUploadHandler(store),
		news:     NewNewsHandler(newsClient),
	}

	s.root.Pre(middleware.RemoveTrailingSlash())
	s.root.Use(middleware.Recover())
	s.root.Use(middleware.CORS())
	s.root.Use(middleware.BodyLimit("50M"))
	s.root.Use(ZapLogger())
	s.root.HideBanner = true
	s.root.HidePort = true
	s.root.Debug = cfg.Web.Debug

	s.initRoutes()
	return s
}

func (s *WebServer) initRoutes() {
	api := s.root.Group("/api")

	api.GET("/products", s.catalog.ListProducts)
	api.GET("/products/:id", s.catalog.GetProduct)
	api.POST("/products", s.catalog.CreateProduct)
	api.PUT("/products/:id", s.catalog.UpdateProduct)
	api.DELETE("/products/:id", s.catalog.DeleteProduct)
	api.GET("/categories", s.catalog.ListCategories)

	api.POST("/upload", s.uploads.Upload)
	api.POST("/upload/to-base64", s.uploads.ToBase64)
	api.POST("/upload/from-base64", s.uploads.FromBase64)

	api.POST("/orders", s.orders.CreateOrder)
	api.POST("/register", s.accounts.Register)
	api.POST("/login", s.accounts.Login)

	api.GET("/news", s.news.ListNews)
	api.GET("/news/:id", s.news.GetNews)

	api.GET("/test", s.testDatabase)

	// Authenticated surface. Sessions are bearer tokens issued by the
	// account service; echo-jwt rejects missing or expired tokens with 401.
	authed := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(s.cfg.Jwt.Secret),
	}))
	authed.GET("/profile", s.accounts.Profile)
	authed.GET("/orders", s.orders.ListOrders, adminOnly)
}

// Start runs the HTTP listener until it fails or is shut down.
func (s *WebServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Web.Host, s.cfg.Web.Port)
	zap.L().Info("starting storefront api", zap.String("listen", addr))
	return s.root.Start(addr)
}

// Root exposes the echo instance for tests.
func (s *WebServer) Root() *echo.Echo {
	return s.root
}

// testDatabase probes database connectivity and reports the server time.
func (s *WebServer) testDatabase(c echo.Context) error {
	var now time.Time
	if err := s.db.WithContext(c.Request().Context()).Raw("SELECT NOW()").Scan(&now).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "Database connection failed", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Database connected!", "time": now})
}

// ZapLogger logs every request through the global zap logger.
func ZapLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			zap.L().Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return err
		}
	}
}
