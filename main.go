package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/echocart-api/auth"
	"github.com/junaidrashid-git/echocart-api/config"
	"github.com/junaidrashid-git/echocart-api/events"
	"github.com/junaidrashid-git/echocart-api/logging"
	"github.com/junaidrashid-git/echocart-api/middleware"
	"github.com/junaidrashid-git/echocart-api/repository"
	"github.com/junaidrashid-git/echocart-api/repository/memstore"
	"github.com/junaidrashid-git/echocart-api/routes"
	"github.com/junaidrashid-git/echocart-api/services"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("❌ Invalid logging configuration: %v", err)
	}
	log.Info("✅ Starting application...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := openStore(cfg)

	hasher, err := auth.NewPasswordHasher(cfg.PasswordScheme)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	if !tokens.Enabled() {
		log.Warn("JWT_SECRET not set, login tokens disabled")
	}

	hub := events.NewHub()
	limiter := middleware.NewRateLimiter(cfg.LoginRatePerSec, cfg.LoginRateBurst)
	limiter.StartCleanup(ctx, 10*time.Minute)
	metrics := middleware.NewMetrics()

	deps := routes.Deps{
		Users:        services.NewUserService(store, hasher, tokens, cfg.AdminKey),
		Products:     services.NewProductService(store),
		Carts:        services.NewCartService(store),
		Orders:       services.NewOrderService(store, hub),
		Payments:     services.NewPaymentService(store, services.SimulatedGateway{}),
		Hub:          hub,
		LoginLimiter: limiter,
		Metrics:      metrics,
	}

	// Gin setup
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), metrics.Instrument())

	// CORS settings
	origins := cfg.AllowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: !(len(origins) == 1 && origins[0] == "*"),
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("❌ Graceful shutdown failed: %v", err)
		}
	}()

	log.Infof("🚀 Server running on port %s...", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
	log.Info("👋 Server stopped")
}

// openStore connects and migrates postgres, or builds the in-memory store.
func openStore(cfg *config.Config) repository.Store {
	if cfg.StorageDriver == config.DriverMemory {
		log.Warn("STORAGE_DRIVER=memory, data is lost on restart")
		return memstore.New().Store()
	}

	db, err := config.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}

	// Auto-migrate all tables
	if err := config.Migrate(db); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	return repository.NewGormStore(db)
}
