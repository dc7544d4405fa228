package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seatwise/backend-events/pkg/database"
	"github.com/seatwise/backend-events/pkg/redis"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db    *database.PostgresDB
	cache *redis.Client
}

// NewHealthHandler creates a new HealthHandler. cache may be nil when
// Redis is disabled.
func NewHealthHandler(db *database.PostgresDB, cache *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health handles GET /health - process liveness.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready handles GET /ready - dependency readiness. The database is
// required; Redis only degrades the report since the repository falls
// back to Postgres without it.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()
	checks := gin.H{}
	status := http.StatusOK

	if err := h.db.HealthCheck(ctx); err != nil {
		checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	} else {
		checks["database"] = "ok"
	}

	if h.cache != nil {
		if err := h.cache.HealthCheck(ctx); err != nil {
			checks["redis"] = err.Error()
		} else {
			checks["redis"] = "ok"
		}
	}

	c.JSON(status, gin.H{"status": http.StatusText(status), "checks": checks})
}
