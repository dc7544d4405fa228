package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(now time.Time) *Event {
	sector := BuildInventory(SectorSpec{
		Name:        "Platea",
		Numbered:    true,
		RowsNumber:  2,
		SeatsNumber: 2,
	}, now)
	return &Event{
		ID:   "ev-1",
		Name: "Concert",
		Dates: []EventDate{
			{ID: "d-past", DateTime: now.Add(-48 * time.Hour), Sectors: []Sector{sector}},
			{ID: "d-future", DateTime: now.Add(48 * time.Hour), Sectors: []Sector{sector}},
		},
	}
}

func TestEventDateLookup(t *testing.T) {
	now := time.Now()
	ev := testEvent(now)

	require.NotNil(t, ev.DateByID("d-future"))
	assert.Nil(t, ev.DateByID("missing"))

	date := ev.DateByID("d-past")
	require.NotNil(t, date)
	require.NotNil(t, date.SectorByID(date.Sectors[0].ID))
	assert.Nil(t, date.SectorByID("missing"))
}

func TestEventUpcomingDates(t *testing.T) {
	now := time.Now()
	ev := testEvent(now)

	assert.True(t, ev.HasUpcomingDate(now))
	upcoming := ev.UpcomingDates(now)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "d-future", upcoming[0].ID)

	ev.Dates = ev.Dates[:1]
	assert.False(t, ev.HasUpcomingDate(now))
	assert.Empty(t, ev.UpcomingDates(now))
}

func TestSectorFindSeat(t *testing.T) {
	sector := BuildInventory(SectorSpec{Name: "A", Numbered: true, RowsNumber: 2, SeatsNumber: 2}, time.Now())

	seat := sector.FindSeat("B-2")
	require.NotNil(t, seat)
	assert.Equal(t, "B-2", seat.Label)

	// FindSeat returns a pointer into the grid, so mutations stick.
	seat.State = SeatConfirmed
	assert.Equal(t, SeatConfirmed, sector.Rows[1][1].State)

	assert.Nil(t, sector.FindSeat("C-1"))
}

func TestSectorCountersConsistent(t *testing.T) {
	sector := BuildInventory(SectorSpec{Name: "A", Numbered: true, RowsNumber: 1, SeatsNumber: 2}, time.Now())
	assert.True(t, sector.CountersConsistent())

	sector.Rows[0][0].State = SeatHeld
	sector.Available--
	sector.Ocuped++
	assert.True(t, sector.CountersConsistent())

	sector.Available = 5
	assert.False(t, sector.CountersConsistent())
}

func TestConfigurationCapacity(t *testing.T) {
	numbered := SectorSpec{Name: "A", Numbered: true, RowsNumber: 3, SeatsNumber: 4, Eliminated: []GridRef{{0, 0}, {1, 2}}}
	assert.Equal(t, 10, ConfigurationCapacity(numbered))

	unnumbered := SectorSpec{Name: "B", RowsNumber: 3, SeatsNumber: 4, Eliminated: []GridRef{{0, 0}}}
	assert.Equal(t, 12, ConfigurationCapacity(unnumbered), "eliminated refs are ignored for unnumbered sectors")
}
