package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/seatwise/backend-events/internal/dto"
	"github.com/seatwise/backend-events/internal/service"
	"github.com/seatwise/backend-events/pkg/middleware"
	"github.com/seatwise/backend-events/pkg/response"
)

// EventHandler handles the admin-only event mutations.
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create handles POST /events - creates an event with its full
// date and sector inventory.
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "User identity not found in token")
		return
	}
	req.UserID = userID

	event, err := h.eventService.CreateEvent(c.Request.Context(), &req, actorFromContext(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, event)
}

// Update handles PATCH /events/:id - applies a partial update, including
// publication, date and sector changes.
func (h *EventHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Event ID is required")
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), id, &req, actorFromContext(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, event)
}

// Delete handles DELETE /events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Event ID is required")
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), id, actorFromContext(c)); err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": id})
}
