package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/seatwise/backend-events/internal/domain"
	"github.com/seatwise/backend-events/internal/dto"
	"github.com/seatwise/backend-events/internal/repository"
)

// locationService implements LocationService
type locationService struct {
	locationRepo repository.LocationRepository
}

// NewLocationService creates a new LocationService
func NewLocationService(locationRepo repository.LocationRepository) LocationService {
	return &locationService{locationRepo: locationRepo}
}

// CreateLocation creates a new location
func (s *locationService) CreateLocation(ctx context.Context, req *dto.CreateLocationRequest, actor *Actor) (*dto.LocationResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if valid, msg := req.Validate(); !valid {
		return nil, validationError(msg)
	}

	configs, err := configurationsFromDTO(req.Configurations)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	location := &domain.Location{
		ID:   uuid.New().String(),
		Name: req.Name,
		Address: domain.Address{
			Street: req.Address.Street,
			Number: req.Address.Number,
		},
		Coordinates:    pointToGeo(req.Coordinates),
		Configurations: configs,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}
	return locationResponse(location), nil
}

// GetLocation retrieves a location by ID
func (s *locationService) GetLocation(ctx context.Context, id string) (*dto.LocationResponse, error) {
	location, err := s.getLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	return locationResponse(location), nil
}

// ListLocations retrieves all locations
func (s *locationService) ListLocations(ctx context.Context) (*dto.LocationListResponse, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.LocationResponse, 0, len(locations))
	for _, location := range locations {
		responses = append(responses, locationResponse(location))
	}
	return &dto.LocationListResponse{
		Locations: responses,
		Total:     len(responses),
	}, nil
}

// UpdateLocation applies a partial update
func (s *locationService) UpdateLocation(ctx context.Context, id string, req *dto.UpdateLocationRequest, actor *Actor) (*dto.LocationResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if valid, msg := req.Validate(); !valid {
		return nil, validationError(msg)
	}

	location, err := s.getLocation(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Address != nil {
		location.Address = domain.Address{
			Street: req.Address.Street,
			Number: req.Address.Number,
		}
	}
	if req.Coordinates != nil {
		location.Coordinates = pointToGeo(req.Coordinates)
	}
	if req.Configurations != nil {
		configs, err := configurationsFromDTO(req.Configurations)
		if err != nil {
			return nil, err
		}
		location.Configurations = configs
	}

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}
	return locationResponse(location), nil
}

// DeleteLocation removes a location
func (s *locationService) DeleteLocation(ctx context.Context, id string, actor *Actor) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return s.locationRepo.Delete(ctx, id)
}

// GetLocationAddress returns the address of a location
func (s *locationService) GetLocationAddress(ctx context.Context, id string) (*domain.Address, error) {
	location, err := s.getLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	return &location.Address, nil
}

func (s *locationService) getLocation(ctx context.Context, id string) (*domain.Location, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrLocationNotFound
	}
	return location, nil
}

func configurationsFromDTO(reqs []dto.ConfigurationRequest) ([]domain.SeatingConfiguration, error) {
	if len(reqs) == 0 {
		return nil, nil
	}
	configs := make([]domain.SeatingConfiguration, 0, len(reqs))
	for _, c := range reqs {
		specs := make([]domain.SectorSpec, 0, len(c.Sectors))
		for _, sp := range c.Sectors {
			spec, err := specFromDTO(&sp)
			if err != nil {
				return nil, err
			}
			specs = append(specs, spec)
		}
		configs = append(configs, domain.SeatingConfiguration{
			Name:    c.Name,
			Sectors: specs,
		})
	}
	return configs, nil
}

func locationResponse(location *domain.Location) *dto.LocationResponse {
	configs := make([]dto.ConfigurationResponse, 0, len(location.Configurations))
	for _, c := range location.Configurations {
		sectors := make([]dto.SectorSpecRequest, 0, len(c.Sectors))
		capacity := 0
		for _, spec := range c.Sectors {
			eliminated := make([][2]int, 0, len(spec.Eliminated))
			for _, ref := range spec.Eliminated {
				eliminated = append(eliminated, [2]int{ref.Row, ref.Seat})
			}
			sectors = append(sectors, dto.SectorSpecRequest{
				Name:        spec.Name,
				Numbered:    spec.Numbered,
				RowsNumber:  spec.RowsNumber,
				SeatsNumber: spec.SeatsNumber,
				Eliminated:  eliminated,
			})
			capacity += domain.ConfigurationCapacity(spec)
		}
		configs = append(configs, dto.ConfigurationResponse{
			Name:     c.Name,
			Sectors:  sectors,
			Capacity: capacity,
		})
	}

	return &dto.LocationResponse{
		ID:   location.ID,
		Name: location.Name,
		Address: dto.AddressRequest{
			Street: location.Address.Street,
			Number: location.Address.Number,
		},
		Coordinates:    geoToPoint(location.Coordinates),
		Configurations: configs,
		CreatedAt:      location.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      location.UpdatedAt.Format(time.RFC3339),
	}
}
