package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seatwise/backend-events/internal/di"
	"github.com/seatwise/backend-events/pkg/config"
	"github.com/seatwise/backend-events/pkg/database"
	"github.com/seatwise/backend-events/pkg/logger"
	"github.com/seatwise/backend-events/pkg/middleware"
	"github.com/seatwise/backend-events/pkg/redis"
	"github.com/seatwise/backend-events/pkg/telemetry"
)

const serviceName = "events-service"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       cfg.App.Environment,
		ServiceName: serviceName,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting Events Service...")

	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    serviceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}
	if _, err := telemetry.Init(ctx, telemetryCfg); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	} else if telemetryCfg.Enabled {
		appLog.Info(fmt.Sprintf("Telemetry initialized (collector: %s)", telemetryCfg.CollectorAddr))
	}
	defer telemetry.Shutdown(ctx)

	// Initialize database connection
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxOpenConns),
		MinConns:        int32(cfg.Database.MaxIdleConns),
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   1 * time.Second,
		EnableTracing:   cfg.OTel.Enabled,
		ServiceName:     serviceName,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	// Initialize Redis connection (optional - caching and idempotency are
	// skipped without it)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisCfg := &redis.Config{
			Host:          cfg.Redis.Host,
			Port:          cfg.Redis.Port,
			Password:      cfg.Redis.Password,
			DB:            cfg.Redis.DB,
			PoolSize:      cfg.Redis.PoolSize,
			MinIdleConns:  cfg.Redis.MinIdleConns,
			DialTimeout:   cfg.Redis.DialTimeout,
			ReadTimeout:   cfg.Redis.ReadTimeout,
			WriteTimeout:  cfg.Redis.WriteTimeout,
			MaxRetries:    3,
			RetryInterval: time.Second,
		}
		redisClient, err = redis.NewClient(ctx, redisCfg)
		if err != nil {
			appLog.Warn(fmt.Sprintf("Redis connection failed (caching disabled): %v", err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			appLog.Info(fmt.Sprintf("Redis connected (%s)", redisCfg.Addr()))
		}
	}

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
	})

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(serviceName))
	}

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	// JWT middleware configuration
	jwtConfig := &middleware.JWTConfig{
		Secret: cfg.JWT.Secret,
		SkipPaths: []string{
			"/health",
			"/ready",
		},
	}

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Events endpoints - public reads, protected writes
		events := v1.Group("/events")
		{
			events.GET("", container.QueryHandler.UpcomingPublished)
			events.GET("/nearby", container.QueryHandler.Nearby)

			// Admin-only mutations and unpublished-inclusive listings
			admin := events.Group("")
			admin.Use(middleware.JWTMiddleware(jwtConfig))
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.GET("/all", container.QueryHandler.UpcomingAll)
				admin.GET("/every", container.QueryHandler.All)
				admin.GET("/every/full", container.QueryHandler.AllFull)
				admin.POST("", container.EventHandler.Create)
				admin.PATCH("/:id", container.EventHandler.Update)
				admin.DELETE("/:id", container.EventHandler.Delete)
			}

			// Reservations mutate seat inventory; any authenticated holder
			reserve := events.Group("")
			reserve.Use(middleware.JWTMiddleware(jwtConfig))
			if redisClient != nil {
				reserve.Use(middleware.IdempotencyMiddleware(
					middleware.DefaultIdempotencyConfig(redisClient)))
			}
			{
				reserve.PATCH("/:id/seat", container.ReservationHandler.ReserveSeat)
				reserve.PATCH("/:id/place", container.ReservationHandler.CreateAdhocSeat)
				reserve.PATCH("/:id/reservations", container.ReservationHandler.BatchReserve)
			}

			// Keep last so it doesn't shadow /all, /nearby, etc.
			events.GET("/:id", container.QueryHandler.GetByID)
		}

		// Reservation lookups
		reservations := v1.Group("/reservations")
		reservations.Use(middleware.JWTMiddleware(jwtConfig))
		{
			reservations.GET("/:holder", container.ReservationHandler.ListByHolder)
		}

		// Locations endpoints - public reads, admin writes
		locations := v1.Group("/locations")
		{
			locations.GET("", container.LocationHandler.List)
			locations.GET("/:id", container.LocationHandler.Get)
			locations.GET("/:id/address", container.LocationHandler.Address)

			adminLocations := locations.Group("")
			adminLocations.Use(middleware.JWTMiddleware(jwtConfig))
			adminLocations.Use(middleware.RequireRole("admin"))
			{
				adminLocations.POST("", container.LocationHandler.Create)
				adminLocations.PATCH("/:id", container.LocationHandler.Update)
				adminLocations.DELETE("/:id", container.LocationHandler.Delete)
			}
		}
	}

	// Create HTTP server
	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("Events Service listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited")
}
