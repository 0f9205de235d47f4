// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parisollie/tienda-backend/internal/config"
	"github.com/parisollie/tienda-backend/internal/handlers"
	"github.com/parisollie/tienda-backend/internal/middleware"
	"github.com/parisollie/tienda-backend/internal/services"
)

func Initialize(cfg *config.Config) (*gin.Engine, *services.SessionService) {
	// Initialize services
	catalogService := services.NewCatalogService()
	sessionService := services.NewSessionService(cfg)
	imageService := services.NewImageService(cfg)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService, sessionService, imageService)
	cartHandler := handlers.NewCartHandler(catalogService, sessionService)
	viewHandler := handlers.NewViewHandler(catalogService, sessionService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.SessionID())

	// Rate limiting is per client IP; in-process test traffic all shares
	// one IP, so it is disabled there.
	mutationLimit := middleware.MutationRateLimit()
	if cfg.Environment == "test" {
		mutationLimit = func(c *gin.Context) { c.Next() }
	} else {
		r.Use(middleware.GeneralRateLimit())
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Product catalog routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/image", productHandler.GetProductImage)
			products.POST("/:id/favorite", mutationLimit, productHandler.ToggleFavorite)
		}

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)

			mutations := cart.Group("")
			mutations.Use(mutationLimit)
			{
				mutations.POST("/items", cartHandler.AddCartItem)
				mutations.DELETE("/items/:index", cartHandler.RemoveCartItem)
			}
		}

		// View-state routes
		view := v1.Group("/view")
		{
			view.GET("", viewHandler.GetView)

			mutations := view.Group("")
			mutations.Use(mutationLimit)
			{
				mutations.POST("/select", viewHandler.SelectProduct)
				mutations.POST("/dismiss", viewHandler.DismissDetail)
				mutations.POST("/cart/open", viewHandler.OpenCartPopup)
				mutations.POST("/cart/close", viewHandler.CloseCartPopup)
				mutations.PUT("/search", viewHandler.UpdateSearch)
			}
		}
	}

	return r, sessionService
}
