package domain

import "time"

// SeatState is the availability marker of a single inventory unit.
// The reservation engine only ever moves a seat forward: free seats become
// held (unpublished event) or confirmed (published event), and eliminated
// seats never move at all.
type SeatState string

const (
	// SeatFree means the seat can be reserved.
	SeatFree SeatState = "free"
	// SeatHeld means the seat is reserved against an unpublished event.
	// There is no release or expiry path for holds; converting or releasing
	// a hold is a pending product decision.
	SeatHeld SeatState = "held"
	// SeatConfirmed means the seat is reserved against a published event.
	SeatConfirmed SeatState = "confirmed"
	// SeatEliminated marks a grid cell excluded from inventory at
	// generation time (obstructed view etc). Terminal.
	SeatEliminated SeatState = "eliminated"
)

// Valid reports whether s is one of the known states.
func (s SeatState) Valid() bool {
	switch s {
	case SeatFree, SeatHeld, SeatConfirmed, SeatEliminated:
		return true
	}
	return false
}

// Reserved reports whether the seat is held or confirmed.
func (s SeatState) Reserved() bool {
	return s == SeatHeld || s == SeatConfirmed
}

// Reserve returns the state a free seat transitions to when reserved.
// Published events skip the hold stage and go straight to confirmed.
// Any state other than SeatFree is rejected.
func (s SeatState) Reserve(publicated bool) (SeatState, error) {
	if s != SeatFree {
		if s == SeatEliminated {
			return s, ErrSeatEliminated
		}
		return s, ErrSeatUnavailable
	}
	if publicated {
		return SeatConfirmed, nil
	}
	return SeatHeld, nil
}

// Seat is one inventory unit: a grid cell in a numbered sector or an
// on-demand slot in an unnumbered one.
type Seat struct {
	// Label is the display id, e.g. "A-1". Blank for unnumbered seats.
	Label      string    `json:"label"`
	State      SeatState `json:"state"`
	Timestamp  time.Time `json:"timestamp"`
	ReservedBy string    `json:"reserved_by"`
	TicketCode string    `json:"ticket_code"`
}

// ReserveFor applies the state transition for holder at time now.
func (s *Seat) ReserveFor(holder string, publicated bool, now time.Time) error {
	next, err := s.State.Reserve(publicated)
	if err != nil {
		return err
	}
	s.State = next
	s.ReservedBy = holder
	s.Timestamp = now
	return nil
}
