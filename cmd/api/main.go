package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/merrickdc/cms_api/internal/cache"
	"github.com/merrickdc/cms_api/internal/config"
	"github.com/merrickdc/cms_api/internal/database"
	"github.com/merrickdc/cms_api/internal/handler"
	"github.com/merrickdc/cms_api/internal/middleware"
	"github.com/merrickdc/cms_api/internal/repository"
	"github.com/merrickdc/cms_api/internal/service"
)

// main is the application entrypoint for the consultancy CMS API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting cms api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis if configured; the API runs fine without it.
	var redisClient *cache.RedisClient
	if cfg.Redis.Host != "" {
		redisClient, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis connection failed - analytics caching disabled")
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Info().Msg("redis connected successfully")
		}
	}

	// 4. Initialize repositories
	adminRepo := repository.NewAdminUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	contactRepo := repository.NewContactRepository(db)
	newsletterRepo := repository.NewNewsletterRepository(db)

	// 5. Initialize services
	secret := []byte(cfg.JWTSecret)
	authSvc := service.NewAuthService(adminRepo, secret)
	seedSvc := service.NewSeedService(serviceRepo, testimonialRepo, blogRepo)
	analyticsSvc := service.NewAnalyticsService(contactRepo, testimonialRepo, blogRepo, newsletterRepo, redisClient)

	// 6. Seed default content and the default admin before accepting traffic.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := authSvc.EnsureDefaultAdmin(seedCtx, &cfg.Admin); err != nil {
		seedCancel()
		log.Error().Err(err).Msg("admin bootstrap failed")
		fmt.Fprintf(os.Stderr, "admin bootstrap failed: %v\n", err)
		os.Exit(1)
	}
	if err := seedSvc.Run(seedCtx); err != nil {
		seedCancel()
		log.Error().Err(err).Msg("content seeding failed")
		fmt.Fprintf(os.Stderr, "content seeding failed: %v\n", err)
		os.Exit(1)
	}
	seedCancel()

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:      handler.NewHealthHandler(db),
		Auth:        handler.NewAuthHandler(authSvc),
		Blog:        handler.NewBlogHandler(blogRepo),
		Testimonial: handler.NewTestimonialHandler(testimonialRepo),
		Service:     handler.NewServiceHandler(serviceRepo),
		Contact:     handler.NewContactHandler(contactRepo),
		Newsletter:  handler.NewNewsletterHandler(newsletterRepo),
		Analytics:   handler.NewAnalyticsHandler(analyticsSvc),
	}

	// 8. Initialize middleware
	authMw := middleware.NewAuthMiddleware(adminRepo, secret)

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, authMw)

	// 10. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health      *handler.HealthHandler
	Auth        *handler.AuthHandler
	Blog        *handler.BlogHandler
	Testimonial *handler.TestimonialHandler
	Service     *handler.ServiceHandler
	Contact     *handler.ContactHandler
	Newsletter  *handler.NewsletterHandler
	Analytics   *handler.AnalyticsHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// Public routes
	api.GET("/", handlers.Health.Root)
	api.GET("/health", handlers.Health.GetHealth)
	api.GET("/blog", handlers.Blog.ListPublished)
	api.GET("/blog/:slug", handlers.Blog.GetBySlug)
	api.GET("/testimonials", handlers.Testimonial.ListPublished)
	api.GET("/services", handlers.Service.ListPublished)
	api.POST("/contact", handlers.Contact.Submit)
	api.POST("/newsletter", handlers.Newsletter.Subscribe)

	// Admin routes (login is the only one outside the gate)
	admin := api.Group("/admin")
	admin.POST("/login", handlers.Auth.Login)
	admin.Use(authMiddleware.Handle())
	{
		admin.GET("/me", handlers.Auth.Me)

		// Blog management
		admin.GET("/blog", handlers.Blog.ListAll)
		admin.POST("/blog", handlers.Blog.Create)
		admin.PUT("/blog/:id", handlers.Blog.Update)
		admin.DELETE("/blog/:id", handlers.Blog.Delete)

		// Testimonial management
		admin.GET("/testimonials", handlers.Testimonial.ListAll)
		admin.POST("/testimonials", handlers.Testimonial.Create)
		admin.PUT("/testimonials/:id", handlers.Testimonial.Update)
		admin.DELETE("/testimonials/:id", handlers.Testimonial.Delete)

		// Contact pipeline
		admin.GET("/contacts", handlers.Contact.List)
		admin.PUT("/contacts/:id", handlers.Contact.UpdateStatus)

		// Service management (patch only; services are seeded, never created)
		admin.GET("/services", handlers.Service.ListAll)
		admin.PUT("/services/:id", handlers.Service.Update)

		// Dashboard
		admin.GET("/analytics", handlers.Analytics.GetDashboard)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
