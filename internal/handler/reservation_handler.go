package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/seatwise/backend-events/internal/dto"
	"github.com/seatwise/backend-events/internal/service"
	"github.com/seatwise/backend-events/pkg/middleware"
	"github.com/seatwise/backend-events/pkg/response"
)

// ReservationHandler handles the seat reservation endpoints. The acting
// holder always comes from the JWT, never from the request body.
type ReservationHandler struct {
	reservationService service.ReservationService
}

// NewReservationHandler creates a new ReservationHandler
func NewReservationHandler(reservationService service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// ReserveSeat handles PATCH /events/:id/seat - reserves one numbered seat.
func (h *ReservationHandler) ReserveSeat(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		response.BadRequest(c, "Event ID is required")
		return
	}

	var req dto.ReserveSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	holder, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "User identity not found in token")
		return
	}
	req.Holder = holder

	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	seat, err := h.reservationService.ReserveSeat(c.Request.Context(), eventID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, seat)
}

// CreateAdhocSeat handles PATCH /events/:id/place - takes one place in
// an unnumbered sector.
func (h *ReservationHandler) CreateAdhocSeat(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		response.BadRequest(c, "Event ID is required")
		return
	}

	var req dto.AdhocSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	holder, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "User identity not found in token")
		return
	}
	req.Holder = holder

	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	seat, err := h.reservationService.CreateAdhocSeat(c.Request.Context(), eventID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, seat)
}

// BatchReserve handles PATCH /events/:id/reservations - reserves a mixed
// batch atomically: either every requested seat is taken or none is.
func (h *ReservationHandler) BatchReserve(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		response.BadRequest(c, "Event ID is required")
		return
	}

	var req dto.BatchReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	holder, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "User identity not found in token")
		return
	}
	req.Holder = holder

	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	result, err := h.reservationService.BatchReserve(c.Request.Context(), eventID, &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, result)
}

// ListByHolder handles GET /reservations/:holder - every reservation a
// holder has across all events. Holders may only read their own list.
func (h *ReservationHandler) ListByHolder(c *gin.Context) {
	holder := c.Param("holder")
	if holder == "" {
		response.BadRequest(c, "Holder is required")
		return
	}

	actor := actorFromContext(c)
	if actor.ID != holder && !actor.IsAdmin() {
		response.Forbidden(c, "Cannot read another holder's reservations")
		return
	}

	list, err := h.reservationService.ReservationsByHolder(c.Request.Context(), holder)
	if err != nil {
		writeError(c, err)
		return
	}

	response.Success(c, list)
}
