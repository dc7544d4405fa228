package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/seatwise/backend-events/internal/domain"
)

func newTestLocation(name string) *domain.Location {
	now := time.Now()
	return &domain.Location{
		ID:   uuid.New().String(),
		Name: name,
		Address: domain.Address{
			Street: "Av. Libertador",
			Number: 4200,
		},
		Coordinates: &domain.GeoPoint{Longitude: -58.38, Latitude: -34.60},
		Configurations: []domain.SeatingConfiguration{{
			Name: "Concert",
			Sectors: []domain.SectorSpec{
				{Name: "Platea", Numbered: true, RowsNumber: 10, SeatsNumber: 20},
				{Name: "Campo", RowsNumber: 50, SeatsNumber: 100},
			},
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPostgresLocationRepository_CRUD(t *testing.T) {
	skipIfNoIntegration(t)

	db := setupTestDB(t)
	defer db.Close()
	defer cleanupTestData(t, db)

	ctx := context.Background()
	repo := NewPostgresLocationRepository(db.Pool())

	location := newTestLocation("test-location-crud")
	if err := repo.Create(ctx, location); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	loaded, err := repo.GetByID(ctx, location.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if loaded == nil {
		t.Fatal("GetByID() returned nil for existing location")
	}
	if loaded.Address.Street != "Av. Libertador" {
		t.Errorf("address street = %q", loaded.Address.Street)
	}
	if len(loaded.Configurations) != 1 || len(loaded.Configurations[0].Sectors) != 2 {
		t.Error("configurations did not survive the JSONB roundtrip")
	}
	if loaded.Coordinates == nil || loaded.Coordinates.Latitude != -34.60 {
		t.Error("coordinates did not survive the roundtrip")
	}

	loaded.Name = "test-location-renamed"
	if err := repo.Update(ctx, loaded); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	renamed, err := repo.GetByID(ctx, location.ID)
	if err != nil {
		t.Fatalf("GetByID() after update error = %v", err)
	}
	if renamed.Name != "test-location-renamed" {
		t.Errorf("name after update = %q", renamed.Name)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) == 0 {
		t.Error("List() returned no locations")
	}

	if err := repo.Delete(ctx, location.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, location.ID); !errors.Is(err, domain.ErrLocationNotFound) {
		t.Errorf("second delete error = %v, want ErrLocationNotFound", err)
	}

	missing, err := repo.GetByID(ctx, location.ID)
	if err != nil {
		t.Fatalf("GetByID(missing) error = %v", err)
	}
	if missing != nil {
		t.Error("expected nil for deleted location")
	}
}
