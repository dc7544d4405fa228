package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInventoryNumbered(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	spec := SectorSpec{
		Name:        "Platea",
		Numbered:    true,
		RowsNumber:  2,
		SeatsNumber: 3,
		Eliminated:  []GridRef{{Row: 0, Seat: 1}},
	}

	sector := BuildInventory(spec, now)

	assert.NotEmpty(t, sector.ID)
	assert.Equal(t, "Platea", sector.Name)
	assert.True(t, sector.Numbered)
	require.Len(t, sector.Rows, 2)
	require.Len(t, sector.Rows[0], 3)
	require.Len(t, sector.Rows[1], 3)

	wantLabels := [][]string{
		{"A-1", "A-2", "A-3"},
		{"B-1", "B-2", "B-3"},
	}
	for i, row := range sector.Rows {
		for j, seat := range row {
			assert.Equal(t, wantLabels[i][j], seat.Label)
			assert.Len(t, seat.TicketCode, 6)
			assert.Empty(t, seat.ReservedBy)
			assert.Equal(t, now, seat.Timestamp)
		}
	}

	assert.Equal(t, SeatEliminated, sector.Rows[0][1].State)
	assert.Equal(t, SeatFree, sector.Rows[0][0].State)
	assert.Equal(t, SeatFree, sector.Rows[1][2].State)

	assert.Equal(t, 5, sector.Capacity, "eliminated seats do not count toward capacity")
	assert.Equal(t, 5, sector.Available)
	assert.Equal(t, 0, sector.Ocuped)
	assert.True(t, sector.CountersConsistent())
}

func TestBuildInventoryUnnumbered(t *testing.T) {
	now := time.Now()
	spec := SectorSpec{Name: "Campo", RowsNumber: 10, SeatsNumber: 50}

	sector := BuildInventory(spec, now)

	assert.Equal(t, 500, sector.Capacity)
	assert.Equal(t, 500, sector.Available)
	assert.Equal(t, 0, sector.Ocuped)
	require.Len(t, sector.Rows, 1)
	assert.Empty(t, sector.Rows[0], "unnumbered sectors carry no generated seats")
}

func TestSectorSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    SectorSpec
		wantErr bool
	}{
		{name: "valid numbered", spec: SectorSpec{Name: "A", Numbered: true, RowsNumber: 1, SeatsNumber: 1}},
		{name: "valid unnumbered", spec: SectorSpec{Name: "B", RowsNumber: 2, SeatsNumber: 2}},
		{name: "missing name", spec: SectorSpec{RowsNumber: 1, SeatsNumber: 1}, wantErr: true},
		{name: "zero rows", spec: SectorSpec{Name: "C", RowsNumber: 0, SeatsNumber: 1}, wantErr: true},
		{name: "negative seats", spec: SectorSpec{Name: "D", RowsNumber: 1, SeatsNumber: -1}, wantErr: true},
		{name: "eliminated out of range", spec: SectorSpec{Name: "E", Numbered: true, RowsNumber: 1, SeatsNumber: 1, Eliminated: []GridRef{{Row: 1, Seat: 0}}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSectorSpec)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRowLabel(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RowLabel(tt.n), "n=%d", tt.n)
	}
}

func TestNewTicketCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := NewTicketCode()
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", r), code)
		}
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 90, "codes should be effectively unique")
}

func TestNewAdhocSeat(t *testing.T) {
	now := time.Now()
	seat := NewAdhocSeat(now)
	assert.Equal(t, SeatFree, seat.State)
	assert.Len(t, seat.TicketCode, 6)
	assert.Equal(t, now, seat.Timestamp)
	assert.Empty(t, seat.Label)
}
