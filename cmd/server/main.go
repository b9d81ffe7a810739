package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cartapp "github.com/estuaire/backend/internal/application/cart"
	catalogapp "github.com/estuaire/backend/internal/application/catalog"
	identityapp "github.com/estuaire/backend/internal/application/identity"
	locationapp "github.com/estuaire/backend/internal/application/location"
	notificationapp "github.com/estuaire/backend/internal/application/notification"
	orderapp "github.com/estuaire/backend/internal/application/order"
	reviewapp "github.com/estuaire/backend/internal/application/review"
	shippingapp "github.com/estuaire/backend/internal/application/shipping"
	wishlistapp "github.com/estuaire/backend/internal/application/wishlist"
	"github.com/estuaire/backend/internal/domain/identity"
	"github.com/estuaire/backend/internal/infrastructure/auth"
	"github.com/estuaire/backend/internal/infrastructure/cache"
	"github.com/estuaire/backend/internal/infrastructure/config"
	"github.com/estuaire/backend/internal/infrastructure/logger"
	"github.com/estuaire/backend/internal/infrastructure/persistence"
	"github.com/estuaire/backend/internal/infrastructure/storage"
	"github.com/estuaire/backend/internal/interfaces/http/handler"
	"github.com/estuaire/backend/internal/interfaces/http/middleware"
	"github.com/estuaire/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Estuaire Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize Redis for the vendor rating cache
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis client", zap.Error(err))
		}
	}()
	log.Info("Redis connected successfully")

	// Initialize object storage for product images
	objectStorage, err := storage.NewS3ObjectStorage(&cfg.Storage)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	{
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := objectStorage.EnsureBucket(ctx); err != nil {
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		cancel()
	}
	log.Info("Object storage ready", zap.String("bucket", objectStorage.GetBucket()))

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	locationRepo := persistence.NewGormLocationRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	imageRepo := persistence.NewGormProductImageRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	shipmentRepo := persistence.NewGormShipmentRepository(db.DB)
	deliveryOptionRepo := persistence.NewGormDeliveryOptionRepository(db.DB)
	wishlistRepo := persistence.NewGormWishlistRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)

	// Transaction scopes for multi-table writes
	orderScope := persistence.NewGormOrderTransactionScope(db.DB)
	reviewScope := persistence.NewGormReviewTransactionScope(db.DB)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService)
	locationService := locationapp.NewLocationService(locationRepo)
	imageService := catalogapp.NewImageService(productRepo, imageRepo, objectStorage)
	productService := catalogapp.NewProductService(productRepo, imageService)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	cartService := cartapp.NewCartService(cartRepo, productRepo)
	orderService := orderapp.NewOrderService(orderScope, locationRepo, log)
	shipmentService := shippingapp.NewShipmentService(shipmentRepo, orderRepo, notificationRepo, log)
	deliveryOptionService := shippingapp.NewDeliveryOptionService(deliveryOptionRepo)
	ratingCache := cache.NewRedisVendorRatingCache(redisClient)
	reviewService := reviewapp.NewReviewService(reviewScope, productRepo, orderRepo, ratingCache, log)
	wishlistService := wishlistapp.NewWishlistService(wishlistRepo, productRepo)
	notificationService := notificationapp.NewNotificationService(notificationRepo)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	locationHandler := handler.NewLocationHandler(locationService)
	productHandler := handler.NewProductHandler(productService, imageService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	shipmentHandler := handler.NewShipmentHandler(shipmentService, deliveryOptionService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	wishlistHandler := handler.NewWishlistHandler(wishlistService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// 7. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Route guards
	authRequired := middleware.JWTAuthMiddleware(jwtService)
	optionalAuth := middleware.OptionalJWTAuthMiddleware(jwtService)
	vendorOnly := middleware.RequireRole(identity.RoleVendor)

	// Stricter limiter for credential endpoints
	var authLimit gin.HandlerFunc
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authLimit = middleware.RateLimitByKey(authLimiter, func(c *gin.Context) string {
			return c.ClientIP()
		})
	} else {
		authLimit = func(c *gin.Context) { c.Next() }
	}

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Identity: registration, login, own profile
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authLimit, authHandler.Register)
	authRoutes.POST("/login", authLimit, authHandler.Login)
	authRoutes.GET("/me", authRequired, authHandler.GetProfile)
	authRoutes.PUT("/me", authRequired, authHandler.UpdateProfile)
	authRoutes.PUT("/me/password", authRequired, authHandler.ChangePassword)

	// Delivery locations
	locationRoutes := router.NewDomainGroup("locations", "/locations")
	locationRoutes.Use(authRequired)
	locationRoutes.POST("", locationHandler.Create)
	locationRoutes.GET("", locationHandler.List)
	locationRoutes.PUT("/:id", locationHandler.Update)
	locationRoutes.DELETE("/:id", locationHandler.Delete)

	// Catalog: products, images, categories, product reviews
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/products", authRequired, vendorOnly, productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/mine", authRequired, vendorOnly, productHandler.ListMine)
	catalogRoutes.GET("/products/:id", optionalAuth, productHandler.Get)
	catalogRoutes.PUT("/products/:id", authRequired, vendorOnly, productHandler.Update)
	catalogRoutes.DELETE("/products/:id", authRequired, vendorOnly, productHandler.Delete)
	catalogRoutes.POST("/products/:id/images/upload-url", authRequired, vendorOnly, productHandler.RequestImageUpload)
	catalogRoutes.POST("/products/:id/images", authRequired, vendorOnly, productHandler.ConfirmImageUpload)
	catalogRoutes.GET("/products/:id/images", productHandler.ListImages)
	catalogRoutes.DELETE("/images/:image_id", authRequired, vendorOnly, productHandler.DeleteImage)
	catalogRoutes.GET("/products/:id/reviews", reviewHandler.ListForProduct)
	catalogRoutes.GET("/products/:id/reviews/stats", reviewHandler.GetProductStats)
	catalogRoutes.POST("/categories", authRequired, categoryHandler.Create)
	catalogRoutes.GET("/categories", categoryHandler.List)
	catalogRoutes.POST("/categories/:id/subcategories", authRequired, categoryHandler.CreateSub)
	catalogRoutes.GET("/categories/:id/subcategories", categoryHandler.ListSub)

	// Vendor rating aggregates
	vendorRoutes := router.NewDomainGroup("vendors", "/vendors")
	vendorRoutes.GET("/:id/rating", reviewHandler.GetVendorRating)

	// Shopping cart
	cartRoutes := router.NewDomainGroup("cart", "/cart")
	cartRoutes.Use(authRequired)
	cartRoutes.GET("", cartHandler.Get)
	cartRoutes.POST("/items", cartHandler.AddItem)
	cartRoutes.PUT("/items/:item_id", cartHandler.UpdateItem)
	cartRoutes.DELETE("/items/:item_id", cartHandler.RemoveItem)
	cartRoutes.DELETE("", cartHandler.Clear)

	// Orders and shipments tied to an order
	orderRoutes := router.NewDomainGroup("orders", "/orders")
	orderRoutes.Use(authRequired)
	orderRoutes.POST("", orderHandler.Place)
	orderRoutes.GET("", orderHandler.List)
	orderRoutes.GET("/my-sales", vendorOnly, orderHandler.MySales)
	orderRoutes.GET("/:id", orderHandler.Get)
	orderRoutes.PUT("/:id/status", orderHandler.UpdateStatus)
	orderRoutes.POST("/:id/shipment", vendorOnly, shipmentHandler.Create)
	orderRoutes.GET("/:id/shipment", shipmentHandler.GetForOrder)

	// Shipment lifecycle and public tracking
	shipmentRoutes := router.NewDomainGroup("shipments", "/shipments")
	shipmentRoutes.PUT("/:id/status", authRequired, vendorOnly, shipmentHandler.UpdateStatus)
	shipmentRoutes.GET("/track/:tracking_number", shipmentHandler.Track)

	// Delivery options
	deliveryRoutes := router.NewDomainGroup("delivery-options", "/delivery-options")
	deliveryRoutes.GET("", shipmentHandler.ListDeliveryOptions)
	deliveryRoutes.POST("", authRequired, vendorOnly, shipmentHandler.CreateDeliveryOption)
	deliveryRoutes.DELETE("/:id", authRequired, vendorOnly, shipmentHandler.DeleteDeliveryOption)

	// Reviews owned by the caller
	reviewRoutes := router.NewDomainGroup("reviews", "/reviews")
	reviewRoutes.Use(authRequired)
	reviewRoutes.POST("", reviewHandler.Create)
	reviewRoutes.GET("/mine", reviewHandler.MyReviews)
	reviewRoutes.GET("/pending", reviewHandler.PendingReviews)
	reviewRoutes.PUT("/:id", reviewHandler.Update)
	reviewRoutes.DELETE("/:id", reviewHandler.Delete)

	// Wishlist
	wishlistRoutes := router.NewDomainGroup("wishlist", "/wishlist")
	wishlistRoutes.Use(authRequired)
	wishlistRoutes.GET("", wishlistHandler.List)
	wishlistRoutes.POST("/items", wishlistHandler.Add)
	wishlistRoutes.GET("/items/:product_id", wishlistHandler.Contains)
	wishlistRoutes.DELETE("/items/:product_id", wishlistHandler.Remove)

	// Notifications
	notificationRoutes := router.NewDomainGroup("notifications", "/notifications")
	notificationRoutes.Use(authRequired)
	notificationRoutes.GET("", notificationHandler.List)
	notificationRoutes.GET("/unread-count", notificationHandler.UnreadCount)
	notificationRoutes.PUT("/read-all", notificationHandler.MarkAllRead)
	notificationRoutes.PUT("/:id/read", notificationHandler.MarkRead)
	notificationRoutes.DELETE("/:id", notificationHandler.Delete)

	// System
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(authRoutes).
		Register(locationRoutes).
		Register(catalogRoutes).
		Register(vendorRoutes).
		Register(cartRoutes).
		Register(orderRoutes).
		Register(shipmentRoutes).
		Register(deliveryRoutes).
		Register(reviewRoutes).
		Register(wishlistRoutes).
		Register(notificationRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
