package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seatwise/backend-events/internal/domain"
)

// PostgresEventRepository implements EventRepository using PostgreSQL.
// The whole event document lives in a JSONB column; a handful of scalar
// columns are projected out for SQL-side filtering, and a version column
// guards concurrent saves.
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

const eventColumns = `doc, version`

// scanEvent decodes one (doc, version) row into an Event
func (r *PostgresEventRepository) scanEvent(row pgx.Row) (*domain.Event, error) {
	var docJSON []byte
	var version int64

	if err := row.Scan(&docJSON, &version); err != nil {
		return nil, err
	}

	event := &domain.Event{}
	if err := json.Unmarshal(docJSON, event); err != nil {
		return nil, fmt.Errorf("decode event document: %w", err)
	}
	event.Version = version
	return event, nil
}

func (r *PostgresEventRepository) scanEvents(rows pgx.Rows) ([]*domain.Event, error) {
	var events []*domain.Event
	for rows.Next() {
		var docJSON []byte
		var version int64

		if err := rows.Scan(&docJSON, &version); err != nil {
			return nil, err
		}

		event := &domain.Event{}
		if err := json.Unmarshal(docJSON, event); err != nil {
			return nil, fmt.Errorf("decode event document: %w", err)
		}
		event.Version = version
		events = append(events, event)
	}
	return events, rows.Err()
}

// Create inserts a new event document with version 1
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (
			id, name, publicated, location_id, latitude, longitude,
			doc, version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8, $9)
	`

	docJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event document: %w", err)
	}

	var lat, lon *float64
	if event.Coordinates != nil {
		lat = &event.Coordinates.Latitude
		lon = &event.Coordinates.Longitude
	}

	_, err = r.pool.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Publicated,
		event.LocationID,
		lat,
		lon,
		docJSON,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return err
	}
	event.Version = 1
	return nil
}

// GetByID retrieves the full event document by ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)
	event, err := r.scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

// Save persists the full document under an optimistic version check.
// Zero rows affected means another writer saved first.
func (r *PostgresEventRepository) Save(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events SET
			name = $2, publicated = $3, location_id = $4,
			latitude = $5, longitude = $6,
			doc = $7, version = version + 1, updated_at = $8
		WHERE id = $1 AND version = $9
	`

	event.UpdatedAt = time.Now()
	docJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event document: %w", err)
	}

	var lat, lon *float64
	if event.Coordinates != nil {
		lat = &event.Coordinates.Latitude
		lon = &event.Coordinates.Longitude
	}

	result, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Publicated,
		event.LocationID,
		lat,
		lon,
		docJSON,
		event.UpdatedAt,
		event.Version,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrVersionConflict
	}
	event.Version++
	return nil
}

// Delete removes an event document by ID
func (r *PostgresEventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// ListAll retrieves every event document, newest first
func (r *PostgresEventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY created_at DESC`, eventColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanEvents(rows)
}

// ListNearby retrieves published events with coordinates ordered by
// haversine distance from the given point. Date filtering happens on the
// decoded documents in the service layer.
func (r *PostgresEventRepository) ListNearby(ctx context.Context, lon, lat float64, limit int) ([]*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM events
		WHERE publicated = true
		  AND latitude IS NOT NULL AND longitude IS NOT NULL
		ORDER BY 6371 * acos(
			LEAST(1.0, GREATEST(-1.0,
				cos(radians($2)) * cos(radians(latitude)) *
				cos(radians(longitude) - radians($1)) +
				sin(radians($2)) * sin(radians(latitude))
			))
		)
		LIMIT $3
	`, eventColumns)

	rows, err := r.pool.Query(ctx, query, lon, lat, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanEvents(rows)
}
