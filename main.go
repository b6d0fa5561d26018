// main.go - Entry point for the Go shop backend server

package main // Declares the package name

import ( // Import required packages
	"go-shop-backend/config"     // Project config management
	"go-shop-backend/database"   // Database connection and setup
	"go-shop-backend/handlers"   // HTTP handlers for API endpoints
	"go-shop-backend/middleware" // Middleware (e.g., authentication)

	"github.com/gin-gonic/gin"  // Gin web framework
	"github.com/rs/zerolog/log" // Structured logging
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	cfg := config.Load() // Load configuration (DB path, JWT secret, seeding flags)

	if err := database.Connect(cfg.DBPath); err != nil { // Connect to the database
		log.Fatal().Err(err).Msg("DB connection error") // If error, log and exit
	}
	if cfg.SeedDemoData { // Seed the demo catalog when configured
		if err := database.SeedDemoData(); err != nil {
			log.Fatal().Err(err).Msg("demo seed error")
		}
	}

	// STEP 2: Create Gin router and configure routes
	r := gin.Default() // Create a new Gin router (web server)

	// Public routes (no authentication required)
	r.POST("/register", handlers.Register) // Public route: user registration
	r.POST("/login", handlers.Login)       // Public route: user login

	// Protected routes (require JWT authentication)
	api := r.Group("/api")               // Create a route group for protected endpoints
	api.Use(middleware.AuthMiddleware()) // Apply JWT authentication middleware
	{
		// Profile
		api.GET("/profile", handlers.GetProfile)
		api.PUT("/profile", handlers.UpdateProfile)

		// Catalog reads
		api.GET("/categories", handlers.GetCategories)
		api.GET("/products", handlers.GetProducts)
		api.GET("/products/:id", handlers.GetProduct)

		// Cart
		api.GET("/cart", handlers.GetCart)
		api.POST("/cart/add", handlers.AddCartItem)
		api.PUT("/cart/update", handlers.UpdateCartItem)
		api.DELETE("/cart/remove/:product_id", handlers.RemoveCartItem)
		api.DELETE("/cart/clear", handlers.ClearCart)

		// Orders
		api.POST("/orders", handlers.CreateOrder)
		api.GET("/orders", handlers.GetOrders)
		api.GET("/orders/:id", handlers.GetOrder)
	}

	// Admin routes (require JWT authentication plus admin role)
	admin := r.Group("/api")
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/categories", handlers.CreateCategory)
		admin.PUT("/categories/:id", handlers.UpdateCategory)
		admin.DELETE("/categories/:id", handlers.DeleteCategory)

		admin.POST("/products", handlers.CreateProduct)
		admin.PUT("/products/:id", handlers.UpdateProduct)
		admin.DELETE("/products/:id", handlers.DeleteProduct)
	}

	// STEP 3: Start the web server
	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
