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

// PostgresLocationRepository implements LocationRepository using PostgreSQL
type PostgresLocationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresLocationRepository creates a new PostgresLocationRepository
func NewPostgresLocationRepository(pool *pgxpool.Pool) *PostgresLocationRepository {
	return &PostgresLocationRepository{pool: pool}
}

func scanLocation(row pgx.Row) (*domain.Location, error) {
	location := &domain.Location{}
	var addressJSON, configsJSON []byte
	var lat, lon *float64

	err := row.Scan(
		&location.ID,
		&location.Name,
		&addressJSON,
		&lat,
		&lon,
		&configsJSON,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(addressJSON, &location.Address); err != nil {
		return nil, fmt.Errorf("decode location address: %w", err)
	}
	if configsJSON != nil {
		if err := json.Unmarshal(configsJSON, &location.Configurations); err != nil {
			return nil, fmt.Errorf("decode location configurations: %w", err)
		}
	}
	if lat != nil && lon != nil {
		location.Coordinates = &domain.GeoPoint{Longitude: *lon, Latitude: *lat}
	}
	return location, nil
}

func encodeLocation(location *domain.Location) (addressJSON, configsJSON []byte, lat, lon *float64, err error) {
	addressJSON, err = json.Marshal(location.Address)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode location address: %w", err)
	}
	configsJSON, err = json.Marshal(location.Configurations)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode location configurations: %w", err)
	}
	if location.Coordinates != nil {
		lat = &location.Coordinates.Latitude
		lon = &location.Coordinates.Longitude
	}
	return addressJSON, configsJSON, lat, lon, nil
}

// Create creates a new location
func (r *PostgresLocationRepository) Create(ctx context.Context, location *domain.Location) error {
	query := `
		INSERT INTO locations (id, name, address, latitude, longitude, configurations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	addressJSON, configsJSON, lat, lon, err := encodeLocation(location)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		location.ID,
		location.Name,
		addressJSON,
		lat,
		lon,
		configsJSON,
		location.CreatedAt,
		location.UpdatedAt,
	)
	return err
}

// GetByID retrieves a location by ID
func (r *PostgresLocationRepository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	query := `
		SELECT id, name, address, latitude, longitude, configurations, created_at, updated_at
		FROM locations
		WHERE id = $1
	`
	location, err := scanLocation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return location, nil
}

// List retrieves all locations
func (r *PostgresLocationRepository) List(ctx context.Context) ([]*domain.Location, error) {
	query := `
		SELECT id, name, address, latitude, longitude, configurations, created_at, updated_at
		FROM locations
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []*domain.Location
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}
	return locations, rows.Err()
}

// Update updates a location
func (r *PostgresLocationRepository) Update(ctx context.Context, location *domain.Location) error {
	query := `
		UPDATE locations
		SET name = $2, address = $3, latitude = $4, longitude = $5, configurations = $6, updated_at = $7
		WHERE id = $1
	`
	addressJSON, configsJSON, lat, lon, err := encodeLocation(location)
	if err != nil {
		return err
	}
	location.UpdatedAt = time.Now()
	result, err := r.pool.Exec(ctx, query,
		location.ID,
		location.Name,
		addressJSON,
		lat,
		lon,
		configsJSON,
		location.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrLocationNotFound
	}
	return nil
}

// Delete deletes a location by ID
func (r *PostgresLocationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM locations WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrLocationNotFound
	}
	return nil
}
