package domain

import "time"

// RoleAdmin is the role marker required for administrative mutations.
// The core does not authenticate; callers supply the role and the core
// only compares it against this value.
const RoleAdmin = "admin"

// GeoPoint is a WGS84 coordinate pair, longitude first to match the
// [lon, lat] order used on the wire.
type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// GridRef addresses one cell of a numbered sector grid. Both coordinates
// are 0-based: {0, 1} is the second seat of row A.
type GridRef struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

// Sector is a seating block within an event date. A numbered sector owns a
// materialized 2D grid of seats; an unnumbered sector is a capacity pool
// whose Rows hold a single bucket of ad-hoc seats appended at reservation
// time.
type Sector struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Numbered    bool      `json:"numbered"`
	RowsNumber  int       `json:"rows_number"`
	SeatsNumber int       `json:"seats_number"`
	Eliminated  []GridRef `json:"eliminated,omitempty"`
	Available   int       `json:"available"`
	Capacity    int       `json:"capacity"`
	Ocuped      int       `json:"ocuped"`
	Rows        [][]Seat  `json:"rows"`
}

// FindSeat returns the seat with the given display label, scanning all rows.
// Returns nil if no seat matches.
func (s *Sector) FindSeat(label string) *Seat {
	for i := range s.Rows {
		for j := range s.Rows[i] {
			if s.Rows[i][j].Label == label {
				return &s.Rows[i][j]
			}
		}
	}
	return nil
}

// CountersConsistent reports whether available + ocuped == capacity.
func (s *Sector) CountersConsistent() bool {
	return s.Available+s.Ocuped == s.Capacity
}

// EventDate is one scheduled occurrence of an event. Identity is the
// generated ID; DateTime is a mutable attribute, not a key.
type EventDate struct {
	ID       string    `json:"id"`
	DateTime time.Time `json:"date_time"`
	Sectors  []Sector  `json:"sectors"`
}

// SectorByID returns the sector with the given id, or nil.
func (d *EventDate) SectorByID(id string) *Sector {
	for i := range d.Sectors {
		if d.Sectors[i].ID == id {
			return &d.Sectors[i]
		}
	}
	return nil
}

// Event is the aggregate root. The whole tree of dates, sectors and seats
// is loaded, mutated and saved as one unit; Version carries the optimistic
// concurrency token checked on save.
type Event struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Artist      string      `json:"artist"`
	Image       string      `json:"image"`
	Description string      `json:"description"`
	LocationID  string      `json:"location_id"`
	UserID      string      `json:"user_id"`
	Publicated  bool        `json:"publicated"`
	Coordinates *GeoPoint   `json:"coordinates,omitempty"`
	Dates       []EventDate `json:"dates"`
	Version     int64       `json:"-"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// DateByID returns the event date with the given id, or nil.
func (e *Event) DateByID(id string) *EventDate {
	for i := range e.Dates {
		if e.Dates[i].ID == id {
			return &e.Dates[i]
		}
	}
	return nil
}

// HasUpcomingDate reports whether at least one date is at or after now.
func (e *Event) HasUpcomingDate(now time.Time) bool {
	for i := range e.Dates {
		if !e.Dates[i].DateTime.Before(now) {
			return true
		}
	}
	return false
}

// UpcomingDates returns the dates at or after now, preserving order.
func (e *Event) UpcomingDates(now time.Time) []EventDate {
	var out []EventDate
	for i := range e.Dates {
		if !e.Dates[i].DateTime.Before(now) {
			out = append(out, e.Dates[i])
		}
	}
	return out
}
