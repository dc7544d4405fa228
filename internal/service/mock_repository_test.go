package service

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/seatwise/backend-events/internal/domain"
)

// MockEventRepository is an in-memory EventRepository. It hands out
// deep copies and enforces the version check on Save, so tests exercise
// the same reload-and-retry behavior as the real document store.
type MockEventRepository struct {
	events    map[string]*domain.Event
	createErr error
	saveErr   error
	deleteErr error
	listErr   error

	saveCalls int
	// beforeSave runs before each Save version check, letting tests
	// simulate a concurrent writer.
	beforeSave func(m *MockEventRepository)
}

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{
		events: make(map[string]*domain.Event),
	}
}

func cloneEvent(e *domain.Event) *domain.Event {
	raw, _ := json.Marshal(e)
	clone := &domain.Event{}
	json.Unmarshal(raw, clone)
	clone.Version = e.Version
	return clone
}

// Seed stores an event directly with version 1
func (m *MockEventRepository) Seed(event *domain.Event) {
	event.Version = 1
	m.events[event.ID] = cloneEvent(event)
}

// Stored returns a copy of the stored document for assertions
func (m *MockEventRepository) Stored(id string) *domain.Event {
	event, ok := m.events[id]
	if !ok {
		return nil
	}
	return cloneEvent(event)
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.createErr != nil {
		return m.createErr
	}
	event.Version = 1
	m.events[event.ID] = cloneEvent(event)
	return nil
}

func (m *MockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, nil
	}
	return cloneEvent(event), nil
}

func (m *MockEventRepository) Save(ctx context.Context, event *domain.Event) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	if m.beforeSave != nil {
		m.beforeSave(m)
	}
	stored, ok := m.events[event.ID]
	if !ok || stored.Version != event.Version {
		return domain.ErrVersionConflict
	}
	event.Version++
	m.events[event.ID] = cloneEvent(event)
	return nil
}

func (m *MockEventRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(m.events, id)
	return nil
}

func (m *MockEventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var events []*domain.Event
	for _, e := range m.events {
		events = append(events, cloneEvent(e))
	}
	return events, nil
}

// ListNearby mirrors the storage contract: published events with
// coordinates, nearest first, capped at limit.
func (m *MockEventRepository) ListNearby(ctx context.Context, lon, lat float64, limit int) ([]*domain.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var events []*domain.Event
	for _, e := range m.events {
		if !e.Publicated || e.Coordinates == nil {
			continue
		}
		events = append(events, cloneEvent(e))
	}
	sort.Slice(events, func(i, j int) bool {
		return squaredDistance(events[i], lon, lat) < squaredDistance(events[j], lon, lat)
	})
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func squaredDistance(e *domain.Event, lon, lat float64) float64 {
	dx := e.Coordinates.Longitude - lon
	dy := e.Coordinates.Latitude - lat
	return dx*dx + dy*dy
}

// MockLocationRepository is an in-memory LocationRepository
type MockLocationRepository struct {
	locations map[string]*domain.Location
	createErr error
}

func NewMockLocationRepository() *MockLocationRepository {
	return &MockLocationRepository{
		locations: make(map[string]*domain.Location),
	}
}

func (m *MockLocationRepository) Create(ctx context.Context, location *domain.Location) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.locations[location.ID] = location
	return nil
}

func (m *MockLocationRepository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	location, ok := m.locations[id]
	if !ok {
		return nil, nil
	}
	return location, nil
}

func (m *MockLocationRepository) List(ctx context.Context) ([]*domain.Location, error) {
	var locations []*domain.Location
	for _, l := range m.locations {
		locations = append(locations, l)
	}
	return locations, nil
}

func (m *MockLocationRepository) Update(ctx context.Context, location *domain.Location) error {
	if _, ok := m.locations[location.ID]; !ok {
		return domain.ErrLocationNotFound
	}
	m.locations[location.ID] = location
	return nil
}

func (m *MockLocationRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.locations[id]; !ok {
		return domain.ErrLocationNotFound
	}
	delete(m.locations, id)
	return nil
}
