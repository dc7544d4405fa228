package domain

import (
	"crypto/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ticketCodeLen and ticketCodeCharset define the short alphanumeric code
// printed on every ticket. Uniqueness relies on generation-time randomness
// only; the collision probability over a single venue's inventory is
// negligible and not guarded against.
const (
	ticketCodeLen     = 6
	ticketCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// SectorSpec describes a sector to be generated: grid dimensions for
// numbered sectors, or a configured quantity (rows*seats) for unnumbered
// ones, plus the cells excluded from inventory.
type SectorSpec struct {
	Name        string    `json:"name"`
	Numbered    bool      `json:"numbered"`
	RowsNumber  int       `json:"rows_number"`
	SeatsNumber int       `json:"seats_number"`
	Eliminated  []GridRef `json:"eliminated,omitempty"`
}

// Validate checks the dimensions make sense before generation.
func (s *SectorSpec) Validate() error {
	if s.Name == "" || s.RowsNumber <= 0 || s.SeatsNumber <= 0 {
		return ErrInvalidSectorSpec
	}
	for _, ref := range s.Eliminated {
		if ref.Row < 0 || ref.Row >= s.RowsNumber || ref.Seat < 0 || ref.Seat >= s.SeatsNumber {
			return ErrInvalidSectorSpec
		}
	}
	return nil
}

// BuildInventory materializes a sector from its spec at creation time.
//
// Numbered sectors get one seat record per grid cell: rows are labelled
// with a spreadsheet-style base-26 sequence (A..Z, AA..), seats are
// numbered from 1, eliminated cells are kept in the grid but marked
// SeatEliminated, and every seat receives a fresh ticket code. Available
// and capacity count only non-eliminated cells, so the sector invariant
// available + ocuped == capacity holds immediately after generation.
//
// Unnumbered sectors are not materialized: the configured quantity becomes
// available and capacity, and Rows starts as one empty bucket ready to
// receive ad-hoc seats.
func BuildInventory(spec SectorSpec, now time.Time) Sector {
	sector := Sector{
		ID:          uuid.New().String(),
		Name:        spec.Name,
		Numbered:    spec.Numbered,
		RowsNumber:  spec.RowsNumber,
		SeatsNumber: spec.SeatsNumber,
		Eliminated:  spec.Eliminated,
	}

	if !spec.Numbered {
		sector.Available = spec.RowsNumber * spec.SeatsNumber
		sector.Capacity = sector.Available
		sector.Rows = [][]Seat{{}}
		return sector
	}

	eliminated := make(map[GridRef]bool, len(spec.Eliminated))
	for _, ref := range spec.Eliminated {
		eliminated[ref] = true
	}

	sector.Rows = make([][]Seat, 0, spec.RowsNumber)
	for i := 0; i < spec.RowsNumber; i++ {
		label := RowLabel(i)
		row := make([]Seat, 0, spec.SeatsNumber)
		for j := 0; j < spec.SeatsNumber; j++ {
			state := SeatFree
			if eliminated[GridRef{Row: i, Seat: j}] {
				state = SeatEliminated
			} else {
				sector.Available++
				sector.Capacity++
			}
			row = append(row, Seat{
				Label:      label + "-" + strconv.Itoa(j+1),
				State:      state,
				Timestamp:  now,
				TicketCode: NewTicketCode(),
			})
		}
		sector.Rows = append(sector.Rows, row)
	}
	return sector
}

// NewAdhocSeat builds an on-demand seat for an unnumbered sector. The label
// is blank; state and holder are set by the caller via ReserveFor.
func NewAdhocSeat(now time.Time) Seat {
	return Seat{
		State:      SeatFree,
		Timestamp:  now,
		TicketCode: NewTicketCode(),
	}
}

// RowLabel converts a 0-based row index into its alphabetic label:
// 0 -> A, 25 -> Z, 26 -> AA.
func RowLabel(n int) string {
	var buf []byte
	for n >= 0 {
		buf = append([]byte{byte(n%26) + 'A'}, buf...)
		n = n/26 - 1
	}
	return string(buf)
}

// NewTicketCode returns a fresh 6-character code drawn from [A-Z0-9].
func NewTicketCode() string {
	code := make([]byte, ticketCodeLen)
	rand.Read(code)
	for i := range code {
		code[i] = ticketCodeCharset[int(code[i])%len(ticketCodeCharset)]
	}
	return string(code)
}
