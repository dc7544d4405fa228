package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/seatwise/backend-events/internal/domain"
	"github.com/seatwise/backend-events/internal/service"
	"github.com/seatwise/backend-events/pkg/middleware"
	"github.com/seatwise/backend-events/pkg/response"
)

// writeError translates service and domain errors into HTTP responses.
// Unknown errors become a 500 without leaking their message.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, validationMessage(err))
	case domain.IsNotFound(err):
		response.NotFound(c, err.Error())
	case domain.IsBadRequest(err):
		response.BadRequest(c, err.Error())
	case domain.IsForbidden(err):
		response.Forbidden(c, err.Error())
	case domain.IsConflict(err):
		response.Conflict(c, "The event was modified concurrently, please retry")
	default:
		response.InternalError(c, err)
	}
}

func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
	if msg == "" {
		return service.ErrValidation.Error()
	}
	return msg
}

// actorFromContext builds the acting identity from the JWT claims stored
// by the auth middleware.
func actorFromContext(c *gin.Context) *service.Actor {
	id, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	return &service.Actor{ID: id, Role: role}
}
