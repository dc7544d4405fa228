package di

import (
	"github.com/seatwise/backend-events/internal/handler"
	"github.com/seatwise/backend-events/internal/repository"
	"github.com/seatwise/backend-events/internal/service"
	"github.com/seatwise/backend-events/pkg/config"
	"github.com/seatwise/backend-events/pkg/database"
	"github.com/seatwise/backend-events/pkg/redis"
)

// Container holds all dependencies for the events service
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Repositories
	EventRepo    repository.EventRepository
	LocationRepo repository.LocationRepository

	// Services
	EventService       service.EventService
	ReservationService service.ReservationService
	QueryService       service.QueryService
	LocationService    service.LocationService

	// Handlers
	HealthHandler      *handler.HealthHandler
	EventHandler       *handler.EventHandler
	ReservationHandler *handler.ReservationHandler
	QueryHandler       *handler.QueryHandler
	LocationHandler    *handler.LocationHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *redis.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	// Initialize repositories
	pgEventRepo := repository.NewPostgresEventRepository(c.DB.Pool())

	// Wrap with cache if Redis is available
	if c.Redis != nil {
		c.EventRepo = repository.NewCachedEventRepository(pgEventRepo, c.Redis.Client())
	} else {
		c.EventRepo = pgEventRepo
	}
	c.LocationRepo = repository.NewPostgresLocationRepository(c.DB.Pool())

	// Initialize services
	c.EventService = service.NewEventService(c.EventRepo)
	c.ReservationService = service.NewReservationService(c.EventRepo, cfg.Config.Engine.SaveRetryAttempts)
	c.QueryService = service.NewQueryService(c.EventRepo, cfg.Config.Engine.NearbyLimit)
	c.LocationService = service.NewLocationService(c.LocationRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.EventHandler = handler.NewEventHandler(c.EventService)
	c.ReservationHandler = handler.NewReservationHandler(c.ReservationService)
	c.QueryHandler = handler.NewQueryHandler(c.QueryService)
	c.LocationHandler = handler.NewLocationHandler(c.LocationService)

	return c
}
