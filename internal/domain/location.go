package domain

import "time"

// Address is a street address consumed by the core as a read-only lookup.
type Address struct {
	Street string `json:"street"`
	Number int    `json:"number,omitempty"`
}

// SeatingConfiguration is a named bundle of sector specifications a venue
// offers as a template. Advisory only: an event built from a configuration
// is free to diverge from it.
type SeatingConfiguration struct {
	Name    string       `json:"name"`
	Sectors []SectorSpec `json:"sectors"`
}

// Location is a venue. Events reference a location by id; the core reads
// the address and, optionally, the seating configurations.
type Location struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Address        Address                `json:"address"`
	Coordinates    *GeoPoint              `json:"coordinates,omitempty"`
	Configurations []SeatingConfiguration `json:"configurations,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// ConfigurationCapacity derives the seat capacity of one sector spec:
// grid size minus eliminated cells for numbered sectors, the configured
// quantity otherwise.
func ConfigurationCapacity(spec SectorSpec) int {
	total := spec.RowsNumber * spec.SeatsNumber
	if spec.Numbered {
		return total - len(spec.Eliminated)
	}
	return total
}
