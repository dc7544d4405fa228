package dto

import "time"

// Point is the wire shape for coordinates, longitude first.
type Point struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// SectorSpecRequest describes one sector to generate inventory for.
// Eliminated entries are 0-based [row, seat] pairs.
type SectorSpecRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=255"`
	Numbered    bool     `json:"numbered"`
	RowsNumber  int      `json:"rows_number" binding:"required,min=1"`
	SeatsNumber int      `json:"seats_number" binding:"required,min=1"`
	Eliminated  [][2]int `json:"eliminated"`
}

// DateSpecRequest describes one scheduled date and its sectors.
type DateSpecRequest struct {
	DateTime time.Time           `json:"date_time" binding:"required"`
	Sectors  []SectorSpecRequest `json:"sectors" binding:"required,min=1"`
}

// CreateEventRequest represents the request to create a new event
type CreateEventRequest struct {
	Name        string            `json:"name" binding:"required,min=1,max=255"`
	Artist      string            `json:"artist" binding:"max=255"`
	Image       string            `json:"image"`
	Description string            `json:"description"`
	LocationID  string            `json:"location_id"`
	Publicated  bool              `json:"publicated"`
	Coordinates *Point            `json:"coordinates"`
	Dates       []DateSpecRequest `json:"dates" binding:"required,min=1"`
	UserID      string            `json:"-"` // Set from context
}

// Validate validates the CreateEventRequest
func (r *CreateEventRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Event name is required"
	}
	if len(r.Dates) == 0 {
		return false, "Event requires at least one date"
	}
	for _, d := range r.Dates {
		if ok, msg := validateDateSpec(&d); !ok {
			return false, msg
		}
	}
	return true, ""
}

// UpdateEventRequest represents a partial update. Scalar fields are
// pointers so absent and zero can be told apart; the slice fields carry
// structural edits to the date/sector tree.
type UpdateEventRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Artist      *string `json:"artist"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	LocationID  *string `json:"location_id"`
	Publicated  *bool   `json:"publicated"`
	Coordinates *Point  `json:"coordinates"`

	AddDates          []DateSpecRequest   `json:"add_dates"`
	RemoveDateIDs     []string            `json:"remove_date_ids"`
	AddSectors        []SectorSpecRequest `json:"add_sectors"`
	RemoveSectorNames []string            `json:"remove_sector_names"`
}

// Validate validates the UpdateEventRequest
func (r *UpdateEventRequest) Validate() (bool, string) {
	if r.Name != nil && *r.Name == "" {
		return false, "Event name cannot be empty"
	}
	for _, d := range r.AddDates {
		if d.DateTime.IsZero() {
			return false, "Date requires a date_time"
		}
		// No sectors means the event's current layout is cloned
		// into the new date.
		for _, s := range d.Sectors {
			if ok, msg := validateSectorSpec(&s); !ok {
				return false, msg
			}
		}
	}
	for _, s := range r.AddSectors {
		if ok, msg := validateSectorSpec(&s); !ok {
			return false, msg
		}
	}
	return true, ""
}

// PublishOnly reports whether the payload carries nothing but the
// publication flag, which lets the service flip it without touching
// the inventory tree.
func (r *UpdateEventRequest) PublishOnly() bool {
	return r.Publicated != nil &&
		r.Name == nil && r.Artist == nil && r.Image == nil &&
		r.Description == nil && r.LocationID == nil && r.Coordinates == nil &&
		len(r.AddDates) == 0 && len(r.RemoveDateIDs) == 0 &&
		len(r.AddSectors) == 0 && len(r.RemoveSectorNames) == 0
}

func validateDateSpec(d *DateSpecRequest) (bool, string) {
	if d.DateTime.IsZero() {
		return false, "Date requires a date_time"
	}
	if len(d.Sectors) == 0 {
		return false, "Date requires at least one sector"
	}
	for _, s := range d.Sectors {
		if ok, msg := validateSectorSpec(&s); !ok {
			return false, msg
		}
	}
	return true, ""
}

func validateSectorSpec(s *SectorSpecRequest) (bool, string) {
	if s.Name == "" {
		return false, "Sector name is required"
	}
	if s.RowsNumber <= 0 || s.SeatsNumber <= 0 {
		return false, "Sector dimensions must be positive"
	}
	for _, ref := range s.Eliminated {
		if ref[0] < 0 || ref[0] >= s.RowsNumber || ref[1] < 0 || ref[1] >= s.SeatsNumber {
			return false, "Eliminated seat reference is out of range"
		}
	}
	return true, ""
}

// SectorSummary is the seat-free projection of a sector.
type SectorSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Numbered  bool   `json:"numbered"`
	Available int    `json:"available"`
	Capacity  int    `json:"capacity"`
	Ocuped    int    `json:"ocuped"`
}

// DateSummary is one event date with summarized sectors.
type DateSummary struct {
	ID       string          `json:"id"`
	DateTime string          `json:"date_time"`
	Sectors  []SectorSummary `json:"sectors"`
}

// EventSummary is an event projection that never exposes seat rows.
type EventSummary struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Artist      string        `json:"artist"`
	Image       string        `json:"image"`
	Description string        `json:"description"`
	LocationID  string        `json:"location_id,omitempty"`
	Publicated  bool          `json:"publicated"`
	Coordinates *Point        `json:"coordinates,omitempty"`
	Dates       []DateSummary `json:"dates"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
}

// EventListResponse represents a list of event summaries
type EventListResponse struct {
	Events []*EventSummary `json:"events"`
	Total  int             `json:"total"`
}
