package service

import (
	"context"

	"github.com/seatwise/backend-events/internal/domain"
	"github.com/seatwise/backend-events/internal/dto"
)

// Actor is the authenticated caller of a mutation
type Actor struct {
	ID   string
	Role string
}

// IsAdmin reports whether the actor carries the admin role
func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role == domain.RoleAdmin
}

// EventService defines the interface for event mutation logic
type EventService interface {
	// CreateEvent creates a new event with generated inventory, admin only
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest, actor *Actor) (*domain.Event, error)
	// UpdateEvent applies a partial update, admin only
	UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest, actor *Actor) (*domain.Event, error)
	// DeleteEvent removes an event, admin only
	DeleteEvent(ctx context.Context, id string, actor *Actor) error
}

// ReservationService defines the interface for seat reservation logic
type ReservationService interface {
	// ReserveSeat reserves one labelled seat in a numbered sector
	ReserveSeat(ctx context.Context, eventID string, req *dto.ReserveSeatRequest) (*dto.ReservedSeatResponse, error)
	// CreateAdhocSeat claims a place in an unnumbered sector
	CreateAdhocSeat(ctx context.Context, eventID string, req *dto.AdhocSeatRequest) (*dto.ReservedSeatResponse, error)
	// BatchReserve reserves across several sectors in one all-or-nothing operation
	BatchReserve(ctx context.Context, eventID string, req *dto.BatchReservationRequest) (*dto.BatchReservationResponse, error)
	// ReservationsByHolder lists every reservation held by the given holder
	ReservationsByHolder(ctx context.Context, holder string) (*dto.ReservationListResponse, error)
}

// QueryService defines the interface for event read projections
type QueryService interface {
	// UpcomingPublished lists published events with upcoming dates, summarized
	UpcomingPublished(ctx context.Context) ([]*dto.EventSummary, error)
	// UpcomingAll lists events with upcoming dates regardless of publication
	UpcomingAll(ctx context.Context) ([]*dto.EventSummary, error)
	// All lists every event, summarized
	All(ctx context.Context) ([]*dto.EventSummary, error)
	// AllFull lists every event with raw seat grids
	AllFull(ctx context.Context) ([]*domain.Event, error)
	// Nearby lists published future-dated events closest to the given point
	Nearby(ctx context.Context, lon, lat float64) ([]*dto.EventSummary, error)
	// GetEvent retrieves one full event document
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
}

// LocationService defines the interface for location business logic
type LocationService interface {
	// CreateLocation creates a new location, admin only
	CreateLocation(ctx context.Context, req *dto.CreateLocationRequest, actor *Actor) (*dto.LocationResponse, error)
	// GetLocation retrieves a location by ID
	GetLocation(ctx context.Context, id string) (*dto.LocationResponse, error)
	// ListLocations retrieves all locations
	ListLocations(ctx context.Context) (*dto.LocationListResponse, error)
	// UpdateLocation applies a partial update, admin only
	UpdateLocation(ctx context.Context, id string, req *dto.UpdateLocationRequest, actor *Actor) (*dto.LocationResponse, error)
	// DeleteLocation removes a location, admin only
	DeleteLocation(ctx context.Context, id string, actor *Actor) error
	// GetLocationAddress returns the address of a location
	GetLocationAddress(ctx context.Context, id string) (*domain.Address, error)
}
