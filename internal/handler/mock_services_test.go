package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/seatwise/backend-events/internal/domain"
	"github.com/seatwise/backend-events/internal/dto"
	"github.com/seatwise/backend-events/internal/service"
	"github.com/seatwise/backend-events/pkg/middleware"
)

// identity is a test middleware that plants JWT claims the way the auth
// middleware would.
func identity(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.ContextKeyUserID, userID)
		}
		if role != "" {
			c.Set(middleware.ContextKeyUserRole, role)
		}
		c.Next()
	}
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MockEventService is a mock implementation of service.EventService
type MockEventService struct {
	err     error
	deleted []string
}

func (m *MockEventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest, actor *service.Actor) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	now := time.Now()
	return &domain.Event{
		ID:        "event-123",
		Name:      req.Name,
		Artist:    req.Artist,
		UserID:    req.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (m *MockEventService) UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest, actor *service.Actor) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Event{ID: id, Name: "Updated"}, nil
}

func (m *MockEventService) DeleteEvent(ctx context.Context, id string, actor *service.Actor) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

// MockReservationService is a mock implementation of service.ReservationService
type MockReservationService struct {
	err        error
	lastHolder string
}

func (m *MockReservationService) ReserveSeat(ctx context.Context, eventID string, req *dto.ReserveSeatRequest) (*dto.ReservedSeatResponse, error) {
	m.lastHolder = req.Holder
	if m.err != nil {
		return nil, m.err
	}
	return &dto.ReservedSeatResponse{
		EventID:    eventID,
		DateID:     req.DateID,
		SectorID:   req.SectorID,
		SeatLabel:  req.SeatLabel,
		TicketCode: "ABC123",
		State:      string(domain.SeatConfirmed),
	}, nil
}

func (m *MockReservationService) CreateAdhocSeat(ctx context.Context, eventID string, req *dto.AdhocSeatRequest) (*dto.ReservedSeatResponse, error) {
	m.lastHolder = req.Holder
	if m.err != nil {
		return nil, m.err
	}
	return &dto.ReservedSeatResponse{
		EventID:    eventID,
		DateID:     req.DateID,
		SectorID:   req.SectorID,
		TicketCode: "ABC123",
		State:      string(domain.SeatConfirmed),
	}, nil
}

func (m *MockReservationService) BatchReserve(ctx context.Context, eventID string, req *dto.BatchReservationRequest) (*dto.BatchReservationResponse, error) {
	m.lastHolder = req.Holder
	if m.err != nil {
		return nil, m.err
	}
	return &dto.BatchReservationResponse{EventID: eventID}, nil
}

func (m *MockReservationService) ReservationsByHolder(ctx context.Context, holder string) (*dto.ReservationListResponse, error) {
	m.lastHolder = holder
	if m.err != nil {
		return nil, m.err
	}
	return &dto.ReservationListResponse{Holder: holder, Reservations: []*dto.ReservationRecord{}}, nil
}

// MockQueryService is a mock implementation of service.QueryService
type MockQueryService struct {
	err       error
	summaries []*dto.EventSummary
	events    []*domain.Event
	event     *domain.Event
}

func (m *MockQueryService) UpcomingPublished(ctx context.Context) ([]*dto.EventSummary, error) {
	return m.summaries, m.err
}

func (m *MockQueryService) UpcomingAll(ctx context.Context) ([]*dto.EventSummary, error) {
	return m.summaries, m.err
}

func (m *MockQueryService) All(ctx context.Context) ([]*dto.EventSummary, error) {
	return m.summaries, m.err
}

func (m *MockQueryService) AllFull(ctx context.Context) ([]*domain.Event, error) {
	return m.events, m.err
}

func (m *MockQueryService) Nearby(ctx context.Context, lon, lat float64) ([]*dto.EventSummary, error) {
	return m.summaries, m.err
}

func (m *MockQueryService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.event == nil || m.event.ID != id {
		return nil, domain.ErrEventNotFound
	}
	return m.event, nil
}

// MockLocationService is a mock implementation of service.LocationService
type MockLocationService struct {
	err      error
	location *dto.LocationResponse
}

func (m *MockLocationService) CreateLocation(ctx context.Context, req *dto.CreateLocationRequest, actor *service.Actor) (*dto.LocationResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &dto.LocationResponse{ID: "location-123", Name: req.Name}, nil
}

func (m *MockLocationService) GetLocation(ctx context.Context, id string) (*dto.LocationResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.location == nil || m.location.ID != id {
		return nil, domain.ErrLocationNotFound
	}
	return m.location, nil
}

func (m *MockLocationService) ListLocations(ctx context.Context) (*dto.LocationListResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	list := []*dto.LocationResponse{}
	if m.location != nil {
		list = append(list, m.location)
	}
	return &dto.LocationListResponse{Locations: list, Total: len(list)}, nil
}

func (m *MockLocationService) UpdateLocation(ctx context.Context, id string, req *dto.UpdateLocationRequest, actor *service.Actor) (*dto.LocationResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.location == nil || m.location.ID != id {
		return nil, domain.ErrLocationNotFound
	}
	return m.location, nil
}

func (m *MockLocationService) DeleteLocation(ctx context.Context, id string, actor *service.Actor) error {
	return m.err
}

func (m *MockLocationService) GetLocationAddress(ctx context.Context, id string) (*domain.Address, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Address{Street: "Main St", Number: 1}, nil
}
