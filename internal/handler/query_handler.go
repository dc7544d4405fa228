package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/seatwise/backend-events/internal/service"
	"github.com/seatwise/backend-events/pkg/response"
)

// QueryHandler serves the read-side event projections.
type QueryHandler struct {
	queryService service.QueryService
}

// NewQueryHandler creates a new QueryHandler
func NewQueryHandler(queryService service.QueryService) *QueryHandler {
	return &QueryHandler{queryService: queryService}
}

// UpcomingPublished handles GET /events - published events with at
// least one upcoming date.
func (h *QueryHandler) UpcomingPublished(c *gin.Context) {
	summaries, err := h.queryService.UpcomingPublished(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, summaries)
}

// UpcomingAll handles GET /events/all - upcoming events regardless of
// publication state.
func (h *QueryHandler) UpcomingAll(c *gin.Context) {
	summaries, err := h.queryService.UpcomingAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, summaries)
}

// All handles GET /events/every - every event, past dates included.
func (h *QueryHandler) All(c *gin.Context) {
	summaries, err := h.queryService.All(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, summaries)
}

// AllFull handles GET /events/every/full - full documents with seat rows.
func (h *QueryHandler) AllFull(c *gin.Context) {
	events, err := h.queryService.AllFull(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, events)
}

// Nearby handles GET /events/nearby?lon=&lat= - the closest published
// upcoming events to a point.
func (h *QueryHandler) Nearby(c *gin.Context) {
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		response.BadRequest(c, "Query parameter lon must be a number")
		return
	}
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.BadRequest(c, "Query parameter lat must be a number")
		return
	}

	summaries, svcErr := h.queryService.Nearby(c.Request.Context(), lon, lat)
	if svcErr != nil {
		writeError(c, svcErr)
		return
	}
	response.Success(c, summaries)
}

// GetByID handles GET /events/:id - one full event document.
func (h *QueryHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Event ID is required")
		return
	}

	event, err := h.queryService.GetEvent(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, event)
}
