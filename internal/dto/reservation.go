package dto

// ReserveSeatRequest reserves one labelled seat in a numbered sector.
type ReserveSeatRequest struct {
	DateID    string `json:"date_id" binding:"required"`
	SectorID  string `json:"sector_id" binding:"required"`
	SeatLabel string `json:"seat_label" binding:"required"`
	Holder    string `json:"-"` // Set from context
}

// Validate validates the ReserveSeatRequest
func (r *ReserveSeatRequest) Validate() (bool, string) {
	if r.DateID == "" || r.SectorID == "" {
		return false, "date_id and sector_id are required"
	}
	if r.SeatLabel == "" {
		return false, "seat_label is required"
	}
	return true, ""
}

// AdhocSeatRequest claims a place in an unnumbered sector.
type AdhocSeatRequest struct {
	DateID   string `json:"date_id" binding:"required"`
	SectorID string `json:"sector_id" binding:"required"`
	Holder   string `json:"-"` // Set from context
}

// Validate validates the AdhocSeatRequest
func (r *AdhocSeatRequest) Validate() (bool, string) {
	if r.DateID == "" || r.SectorID == "" {
		return false, "date_id and sector_id are required"
	}
	return true, ""
}

// NumberedReservation is one sector-request inside a batch: a set of
// seat labels within one numbered sector of one date.
type NumberedReservation struct {
	DateID     string   `json:"date_id" binding:"required"`
	SectorID   string   `json:"sector_id" binding:"required"`
	SeatLabels []string `json:"seat_labels" binding:"required,min=1"`
}

// UnnumberedReservation claims a quantity of places in an unnumbered
// sector of one date.
type UnnumberedReservation struct {
	DateID   string `json:"date_id" binding:"required"`
	SectorID string `json:"sector_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// BatchReservationRequest reserves across several sectors of one event
// in a single all-or-nothing operation.
type BatchReservationRequest struct {
	Numbered   []NumberedReservation   `json:"numbered"`
	Unnumbered []UnnumberedReservation `json:"unnumbered"`
	Holder     string                  `json:"-"` // Set from context
}

// Validate validates the BatchReservationRequest
func (r *BatchReservationRequest) Validate() (bool, string) {
	if len(r.Numbered) == 0 && len(r.Unnumbered) == 0 {
		return false, "Reservation request is empty"
	}
	for _, n := range r.Numbered {
		if n.DateID == "" || n.SectorID == "" {
			return false, "date_id and sector_id are required"
		}
		if len(n.SeatLabels) == 0 {
			return false, "Numbered reservation requires at least one seat label"
		}
	}
	for _, u := range r.Unnumbered {
		if u.DateID == "" || u.SectorID == "" {
			return false, "date_id and sector_id are required"
		}
		if u.Quantity <= 0 {
			return false, "Quantity must be positive"
		}
	}
	return true, ""
}

// ReservedSeatResponse is returned after a successful reservation.
type ReservedSeatResponse struct {
	EventID    string `json:"event_id"`
	DateID     string `json:"date_id"`
	SectorID   string `json:"sector_id"`
	SeatLabel  string `json:"seat_label,omitempty"`
	TicketCode string `json:"ticket_code"`
	State      string `json:"state"`
}

// BatchReservationResponse lists every seat taken by a batch.
type BatchReservationResponse struct {
	EventID string                 `json:"event_id"`
	Seats   []ReservedSeatResponse `json:"seats"`
}

// ReservationRecord is one entry of a holder's reservation listing.
// Numbered seats produce one record each; unnumbered places collapse
// into one record per sector with Quantity set.
type ReservationRecord struct {
	EventID    string `json:"event_id"`
	EventName  string `json:"event_name"`
	DateID     string `json:"date_id"`
	DateTime   string `json:"date_time"`
	SectorID   string `json:"sector_id"`
	SectorName string `json:"sector_name"`
	SeatLabel  string `json:"seat_label,omitempty"`
	TicketCode string `json:"ticket_code,omitempty"`
	State      string `json:"state"`
	Quantity   int    `json:"quantity,omitempty"`
	ReservedAt string `json:"reserved_at"`
}

// ReservationListResponse represents a holder's reservations
type ReservationListResponse struct {
	Holder       string               `json:"holder"`
	Reservations []*ReservationRecord `json:"reservations"`
	Total        int                  `json:"total"`
}
