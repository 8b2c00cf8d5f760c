package router

import (
	"time"

	"github.com/Swati-d16/Product-Inventory/internal/config"
	"github.com/Swati-d16/Product-Inventory/internal/handler"
	"github.com/Swati-d16/Product-Inventory/internal/middleware"
	"github.com/Swati-d16/Product-Inventory/internal/repository"
	"github.com/Swati-d16/Product-Inventory/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	logRepo := repository.NewInventoryLogRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	productSvc := service.NewProductService(productRepo, logRepo, rdb, cacheTTL)
	importSvc := service.NewImportService(productRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	csvH := handler.NewCSVHandler(importSvc, cfg.ImportMaxBytes)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", productsH.List)
			products.POST("", productsH.Create)
			products.GET("/search", productsH.Search)
			products.GET("/export", csvH.Export)
			products.POST("/import", csvH.Import)
			products.GET("/:id", productsH.GetByID)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
			products.GET("/:id/history", productsH.History)
		}

		v1.GET("/categories", productsH.Categories)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
