package repository

import (
	"context"

	"github.com/seatwise/backend-events/internal/domain"
)

// EventRepository defines the interface for event document access.
// Events are stored whole: reads return the full date/sector/seat tree
// and Save persists the full tree back, guarded by the document version.
type EventRepository interface {
	// Create inserts a new event document
	Create(ctx context.Context, event *domain.Event) error
	// GetByID retrieves the full event document, nil when absent
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// Save persists the full document if the stored version still matches
	// event.Version; returns domain.ErrVersionConflict otherwise
	Save(ctx context.Context, event *domain.Event) error
	// Delete removes an event document, ErrEventNotFound when absent
	Delete(ctx context.Context, id string) error
	// ListAll retrieves every event document
	ListAll(ctx context.Context) ([]*domain.Event, error)
	// ListNearby retrieves published events ordered by distance from the
	// given point, at most limit rows
	ListNearby(ctx context.Context, lon, lat float64, limit int) ([]*domain.Event, error)
}

// LocationRepository defines the interface for location data access
type LocationRepository interface {
	// Create creates a new location
	Create(ctx context.Context, location *domain.Location) error
	// GetByID retrieves a location by ID, nil when absent
	GetByID(ctx context.Context, id string) (*domain.Location, error)
	// List retrieves all locations
	List(ctx context.Context) ([]*domain.Location, error)
	// Update updates a location
	Update(ctx context.Context, location *domain.Location) error
	// Delete deletes a location by ID
	Delete(ctx context.Context, id string) error
}
