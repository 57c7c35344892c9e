package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/config"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/database"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/email"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/handlers"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/helper"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/middleware"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/repositories"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/services"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/sessionstore"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Session store: redis keeps logins across restarts, memory otherwise
	var sessions sessionstore.Store
	if cfg.RedisAddr != "" {
		sessions = sessionstore.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		log.Println("Using redis session store at", cfg.RedisAddr)
	} else {
		sessions = sessionstore.NewMemoryStore()
		log.Println("Using in-memory session store")
	}

	// Initialize repositories
	userRepo := repositories.NewAdminUserRepository(db)
	newsRepo := repositories.NewNewsRepository(db)
	leadRepo := repositories.NewLeadRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, sessions, cfg.SessionTTL)
	userService := services.NewAdminUserService(userRepo)
	newsService := services.NewNewsService(newsRepo)
	leadService := services.NewLeadService(leadRepo, email.NewService(cfg))

	if cfg.BootstrapAdminUsername != "" && cfg.BootstrapAdminPassword != "" {
		if err := authService.EnsureBootstrapAdmin(cfg.BootstrapAdminUsername, cfg.BootstrapAdminEmail, cfg.BootstrapAdminPassword); err != nil {
			log.Fatal("Failed to bootstrap admin user:", err)
		}
	}

	// Initialize handlers
	h := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, cfg, h)
	userHandler := handlers.NewAdminUserHandler(userService, h)
	newsHandler := handlers.NewNewsHandler(newsService, h)
	leadHandler := handlers.NewLeadHandler(leadService, h)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	api := router.Group("/api")
	{
		// Public lead capture
		api.POST("/demo-requests", leadHandler.CreateDemoRequest)
		api.POST("/newsletter", leadHandler.Subscribe)

		// Public news feed (published only)
		api.GET("/news", newsHandler.GetPublicArticles)
		api.GET("/news/:id", newsHandler.GetPublicArticle)

		admin := api.Group("/admin")
		{
			admin.POST("/login", authHandler.Login)
			admin.POST("/logout", authHandler.Logout)

			// Session-gated back office
			protected := admin.Group("/")
			protected.Use(middleware.AuthMiddleware(authService))
			{
				protected.GET("/me", authHandler.Me)

				news := protected.Group("/news")
				{
					news.GET("", newsHandler.GetArticles)
					news.POST("", newsHandler.CreateArticle)
					news.GET("/:id", newsHandler.GetArticle)
					news.PUT("/:id", newsHandler.UpdateArticle)
					news.PATCH("/:id/publish", newsHandler.TogglePublish)
					news.DELETE("/:id", newsHandler.DeleteArticle)
				}

				protected.GET("/demo-requests", leadHandler.ListDemoRequests)
				protected.GET("/newsletter", leadHandler.ListSubscriptions)

				users := protected.Group("/users")
				users.Use(middleware.RequireRole(models.RoleSuperadmin))
				{
					users.GET("", userHandler.ListAdminUsers)
					users.POST("", userHandler.CreateAdminUser)
					users.PUT("/:id", userHandler.UpdateAdminUser)
					users.DELETE("/:id", userHandler.DeleteAdminUser)
				}
			}
		}
	}

	log.Printf("Server starting on port %s", cfg.ServerPort)
	log.Fatal(router.Run(":" + cfg.ServerPort))
}
