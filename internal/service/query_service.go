package service

import (
	"context"
	"time"

	"github.com/seatwise/backend-events/internal/domain"
	"github.com/seatwise/backend-events/internal/dto"
	"github.com/seatwise/backend-events/internal/repository"
)

// queryService implements QueryService. Projections summarize sectors
// down to their counters so listing endpoints never ship seat grids.
type queryService struct {
	eventRepo   repository.EventRepository
	nearbyLimit int
}

// NewQueryService creates a new QueryService
func NewQueryService(eventRepo repository.EventRepository, nearbyLimit int) QueryService {
	if nearbyLimit <= 0 {
		nearbyLimit = 4
	}
	return &queryService{eventRepo: eventRepo, nearbyLimit: nearbyLimit}
}

// UpcomingPublished lists published events that still have a future
// date, with past dates pruned from each summary.
func (s *queryService) UpcomingPublished(ctx context.Context) ([]*dto.EventSummary, error) {
	return s.upcoming(ctx, true)
}

// UpcomingAll lists upcoming events regardless of publication
func (s *queryService) UpcomingAll(ctx context.Context) ([]*dto.EventSummary, error) {
	return s.upcoming(ctx, false)
}

func (s *queryService) upcoming(ctx context.Context, publishedOnly bool) ([]*dto.EventSummary, error) {
	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summaries := make([]*dto.EventSummary, 0)
	for _, event := range events {
		if publishedOnly && !event.Publicated {
			continue
		}
		upcoming := event.UpcomingDates(now)
		if len(upcoming) == 0 {
			continue
		}
		summaries = append(summaries, summarize(event, upcoming))
	}
	return summaries, nil
}

// All lists every event, summarized with all its dates
func (s *queryService) All(ctx context.Context) ([]*dto.EventSummary, error) {
	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.EventSummary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, summarize(event, event.Dates))
	}
	return summaries, nil
}

// AllFull lists every event with raw seat grids intact
func (s *queryService) AllFull(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.ListAll(ctx)
}

// nearbyOverFetch widens the distance-limited query so events dropped
// by the later future-date filter do not shrink the result page while
// farther qualifying events exist.
const nearbyOverFetch = 4

// Nearby lists the closest published events that still have a future
// date. Distance ordering happens in storage; the date filter runs on
// the decoded documents, then the page is trimmed to the limit.
func (s *queryService) Nearby(ctx context.Context, lon, lat float64) ([]*dto.EventSummary, error) {
	events, err := s.eventRepo.ListNearby(ctx, lon, lat, s.nearbyLimit*nearbyOverFetch)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summaries := make([]*dto.EventSummary, 0, s.nearbyLimit)
	for _, event := range events {
		upcoming := event.UpcomingDates(now)
		if len(upcoming) == 0 {
			continue
		}
		summaries = append(summaries, summarize(event, upcoming))
		if len(summaries) == s.nearbyLimit {
			break
		}
	}
	return summaries, nil
}

// GetEvent retrieves one full event document
func (s *queryService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

func summarize(event *domain.Event, dates []domain.EventDate) *dto.EventSummary {
	dateSummaries := make([]dto.DateSummary, 0, len(dates))
	for i := range dates {
		date := &dates[i]
		sectors := make([]dto.SectorSummary, 0, len(date.Sectors))
		for j := range date.Sectors {
			sector := &date.Sectors[j]
			sectors = append(sectors, dto.SectorSummary{
				ID:        sector.ID,
				Name:      sector.Name,
				Numbered:  sector.Numbered,
				Available: sector.Available,
				Capacity:  sector.Capacity,
				Ocuped:    sector.Ocuped,
			})
		}
		dateSummaries = append(dateSummaries, dto.DateSummary{
			ID:       date.ID,
			DateTime: date.DateTime.Format(time.RFC3339),
			Sectors:  sectors,
		})
	}

	return &dto.EventSummary{
		ID:          event.ID,
		Name:        event.Name,
		Artist:      event.Artist,
		Image:       event.Image,
		Description: event.Description,
		LocationID:  event.LocationID,
		Publicated:  event.Publicated,
		Coordinates: geoToPoint(event.Coordinates),
		Dates:       dateSummaries,
		CreatedAt:   event.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   event.UpdatedAt.Format(time.RFC3339),
	}
}

func geoToPoint(g *domain.GeoPoint) *dto.Point {
	if g == nil {
		return nil
	}
	return &dto.Point{Longitude: g.Longitude, Latitude: g.Latitude}
}
