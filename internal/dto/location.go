package dto

// AddressRequest is a street address.
type AddressRequest struct {
	Street string `json:"street" binding:"required,min=1,max=255"`
	Number int    `json:"number"`
}

// ConfigurationRequest is a named, reusable bundle of sector specs.
type ConfigurationRequest struct {
	Name    string              `json:"name" binding:"required,min=1,max=255"`
	Sectors []SectorSpecRequest `json:"sectors" binding:"required,min=1"`
}

// CreateLocationRequest represents the request to create a location
type CreateLocationRequest struct {
	Name           string                 `json:"name" binding:"required,min=1,max=255"`
	Address        AddressRequest         `json:"address" binding:"required"`
	Coordinates    *Point                 `json:"coordinates"`
	Configurations []ConfigurationRequest `json:"configurations"`
}

// Validate validates the CreateLocationRequest
func (r *CreateLocationRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Location name is required"
	}
	if r.Address.Street == "" {
		return false, "Address street is required"
	}
	for _, c := range r.Configurations {
		if ok, msg := validateConfiguration(&c); !ok {
			return false, msg
		}
	}
	return true, ""
}

// UpdateLocationRequest represents a partial location update
type UpdateLocationRequest struct {
	Name           *string                `json:"name" binding:"omitempty,min=1,max=255"`
	Address        *AddressRequest        `json:"address"`
	Coordinates    *Point                 `json:"coordinates"`
	Configurations []ConfigurationRequest `json:"configurations"`
}

// Validate validates the UpdateLocationRequest
func (r *UpdateLocationRequest) Validate() (bool, string) {
	if r.Name != nil && *r.Name == "" {
		return false, "Location name cannot be empty"
	}
	if r.Address != nil && r.Address.Street == "" {
		return false, "Address street is required"
	}
	for _, c := range r.Configurations {
		if ok, msg := validateConfiguration(&c); !ok {
			return false, msg
		}
	}
	return true, ""
}

func validateConfiguration(c *ConfigurationRequest) (bool, string) {
	if c.Name == "" {
		return false, "Configuration name is required"
	}
	if len(c.Sectors) == 0 {
		return false, "Configuration requires at least one sector"
	}
	for _, s := range c.Sectors {
		if ok, msg := validateSectorSpec(&s); !ok {
			return false, msg
		}
	}
	return true, ""
}

// ConfigurationResponse carries a configuration with derived capacity.
type ConfigurationResponse struct {
	Name     string              `json:"name"`
	Sectors  []SectorSpecRequest `json:"sectors"`
	Capacity int                 `json:"capacity"`
}

// LocationResponse represents a location
type LocationResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Address        AddressRequest          `json:"address"`
	Coordinates    *Point                  `json:"coordinates,omitempty"`
	Configurations []ConfigurationResponse `json:"configurations"`
	CreatedAt      string                  `json:"created_at"`
	UpdatedAt      string                  `json:"updated_at"`
}

// LocationListResponse represents a list of locations
type LocationListResponse struct {
	Locations []*LocationResponse `json:"locations"`
	Total     int                 `json:"total"`
}
