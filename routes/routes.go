package routes

import (
	"time"

	"shoply-backend/handlers"
	"shoply-backend/middleware"
	"shoply-backend/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	products := store.NewProductStore(db)
	carts := store.NewCartEngine(db, products)

	authHandler := &handlers.AuthHandler{DB: db}
	productHandler := &handlers.ProductHandler{Store: products}
	cartHandler := &handlers.CartHandler{Engine: carts}

	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		api.POST("/auth/register", authLimiter.Middleware(), authHandler.Register)
		api.POST("/auth/login", authLimiter.Middleware(), authHandler.Login)

		api.GET("/products", productHandler.GetProducts)
		api.GET("/products/:id", productHandler.GetProduct)
	}

	// Protected routes (require a bearer token)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/products", productHandler.CreateProduct)
		protected.DELETE("/products/:id", productHandler.DeleteProduct)

		protected.GET("/cart", cartHandler.GetCart)
		protected.POST("/cart/add", cartHandler.AddToCart)
		protected.POST("/cart/remove", cartHandler.RemoveFromCart)
		protected.POST("/cart/clear", cartHandler.ClearCart)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
