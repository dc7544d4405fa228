package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/seatwise/backend-events/internal/domain"
	"github.com/seatwise/backend-events/internal/dto"
	"github.com/seatwise/backend-events/internal/repository"
)

// ErrValidation wraps request validation messages so handlers can map
// them to 400 responses.
var ErrValidation = errors.New("validation failed")

// eventService implements EventService
type eventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

// CreateEvent creates a new event and generates the full seat inventory
// for every sector of every date.
func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest, actor *Actor) (*domain.Event, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if valid, msg := req.Validate(); !valid {
		return nil, validationError(msg)
	}

	now := time.Now()
	dates := make([]domain.EventDate, 0, len(req.Dates))
	for _, d := range req.Dates {
		date, err := buildDate(&d, now)
		if err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Artist:      req.Artist,
		Image:       req.Image,
		Description: req.Description,
		LocationID:  req.LocationID,
		UserID:      req.UserID,
		Publicated:  req.Publicated,
		Coordinates: pointToGeo(req.Coordinates),
		Dates:       dates,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEvent applies a partial update. A payload carrying only the
// publication flag flips it without touching the date tree; structural
// edits regenerate inventory for anything added.
func (s *eventService) UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest, actor *Actor) (*domain.Event, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if valid, msg := req.Validate(); !valid {
		return nil, validationError(msg)
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}

	if req.PublishOnly() {
		event.Publicated = *req.Publicated
		if err := s.eventRepo.Save(ctx, event); err != nil {
			return nil, err
		}
		return event, nil
	}

	applyScalars(event, req)

	now := time.Now()
	for _, d := range req.AddDates {
		var date domain.EventDate
		var err error
		if len(d.Sectors) == 0 {
			date, err = cloneDateLayout(event, d.DateTime, now)
		} else {
			date, err = buildDate(&d, now)
		}
		if err != nil {
			return nil, err
		}
		event.Dates = append(event.Dates, date)
	}

	for _, dateID := range req.RemoveDateIDs {
		if err := removeDate(event, dateID); err != nil {
			return nil, err
		}
	}

	// Added sectors attach to every date, each with its own fresh grid.
	for _, sp := range req.AddSectors {
		spec, err := specFromDTO(&sp)
		if err != nil {
			return nil, err
		}
		for i := range event.Dates {
			event.Dates[i].Sectors = append(event.Dates[i].Sectors, domain.BuildInventory(spec, now))
		}
	}

	for _, name := range req.RemoveSectorNames {
		if err := removeSectors(event, name); err != nil {
			return nil, err
		}
	}

	if err := s.eventRepo.Save(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes an event
func (s *eventService) DeleteEvent(ctx context.Context, id string, actor *Actor) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.eventRepo.Delete(ctx, id)
}

func applyScalars(event *domain.Event, req *dto.UpdateEventRequest) {
	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Artist != nil {
		event.Artist = *req.Artist
	}
	if req.Image != nil {
		event.Image = *req.Image
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.LocationID != nil {
		event.LocationID = *req.LocationID
	}
	if req.Publicated != nil {
		event.Publicated = *req.Publicated
	}
	if req.Coordinates != nil {
		event.Coordinates = pointToGeo(req.Coordinates)
	}
}

func removeDate(event *domain.Event, dateID string) error {
	for i := range event.Dates {
		if event.Dates[i].ID == dateID {
			event.Dates = append(event.Dates[:i], event.Dates[i+1:]...)
			return nil
		}
	}
	return domain.ErrDateNotFound
}

func removeSectors(event *domain.Event, name string) error {
	removed := false
	for i := range event.Dates {
		sectors := event.Dates[i].Sectors[:0]
		for _, sector := range event.Dates[i].Sectors {
			if sector.Name == name {
				removed = true
				continue
			}
			sectors = append(sectors, sector)
		}
		event.Dates[i].Sectors = sectors
	}
	if !removed {
		return domain.ErrSectorNotFound
	}
	return nil
}

func buildDate(d *dto.DateSpecRequest, now time.Time) (domain.EventDate, error) {
	sectors := make([]domain.Sector, 0, len(d.Sectors))
	for _, sp := range d.Sectors {
		spec, err := specFromDTO(&sp)
		if err != nil {
			return domain.EventDate{}, err
		}
		sectors = append(sectors, domain.BuildInventory(spec, now))
	}
	return domain.EventDate{
		ID:       uuid.New().String(),
		DateTime: d.DateTime,
		Sectors:  sectors,
	}, nil
}

// cloneDateLayout derives sector specs from the event's current first
// date and regenerates fresh grids, so the added date starts with full
// availability regardless of outstanding reservations on the source.
func cloneDateLayout(event *domain.Event, when time.Time, now time.Time) (domain.EventDate, error) {
	if len(event.Dates) == 0 {
		return domain.EventDate{}, validationError("Event has no date to clone sectors from")
	}
	source := event.Dates[0].Sectors
	sectors := make([]domain.Sector, 0, len(source))
	for i := range source {
		spec := domain.SectorSpec{
			Name:        source[i].Name,
			Numbered:    source[i].Numbered,
			RowsNumber:  source[i].RowsNumber,
			SeatsNumber: source[i].SeatsNumber,
			Eliminated:  append([]domain.GridRef(nil), source[i].Eliminated...),
		}
		sectors = append(sectors, domain.BuildInventory(spec, now))
	}
	return domain.EventDate{
		ID:       uuid.New().String(),
		DateTime: when,
		Sectors:  sectors,
	}, nil
}

func specFromDTO(sp *dto.SectorSpecRequest) (domain.SectorSpec, error) {
	spec := domain.SectorSpec{
		Name:        sp.Name,
		Numbered:    sp.Numbered,
		RowsNumber:  sp.RowsNumber,
		SeatsNumber: sp.SeatsNumber,
	}
	for _, ref := range sp.Eliminated {
		spec.Eliminated = append(spec.Eliminated, domain.GridRef{Row: ref[0], Seat: ref[1]})
	}
	if err := spec.Validate(); err != nil {
		return domain.SectorSpec{}, err
	}
	return spec, nil
}

func pointToGeo(p *dto.Point) *domain.GeoPoint {
	if p == nil {
		return nil
	}
	return &domain.GeoPoint{Longitude: p.Longitude, Latitude: p.Latitude}
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
