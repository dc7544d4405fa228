package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/seatwise/backend-events/internal/dto"
	"github.com/seatwise/backend-events/internal/service"
	"github.com/seatwise/backend-events/pkg/response"
)

// LocationHandler handles venue CRUD.
type LocationHandler struct {
	locationService service.LocationService
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(locationService service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// Create handles POST /locations
func (h *LocationHandler) Create(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	location, err := h.locationService.CreateLocation(c.Request.Context(), &req, actorFromContext(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Created(c, location)
}

// Get handles GET /locations/:id
func (h *LocationHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Location ID is required")
		return
	}

	location, err := h.locationService.GetLocation(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, location)
}

// List handles GET /locations
func (h *LocationHandler) List(c *gin.Context) {
	list, err := h.locationService.ListLocations(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, list)
}

// Update handles PATCH /locations/:id
func (h *LocationHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Location ID is required")
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	location, err := h.locationService.UpdateLocation(c.Request.Context(), id, &req, actorFromContext(c))
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, location)
}

// Delete handles DELETE /locations/:id
func (h *LocationHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Location ID is required")
		return
	}

	if err := h.locationService.DeleteLocation(c.Request.Context(), id, actorFromContext(c)); err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": id})
}

// Address handles GET /locations/:id/address
func (h *LocationHandler) Address(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, "Location ID is required")
		return
	}

	address, err := h.locationService.GetLocationAddress(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, address)
}
