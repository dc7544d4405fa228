package dto

import (
	"testing"
	"time"
)

func validDateSpec() DateSpecRequest {
	return DateSpecRequest{
		DateTime: time.Now().Add(24 * time.Hour),
		Sectors: []SectorSpecRequest{
			{Name: "Platea", Numbered: true, RowsNumber: 2, SeatsNumber: 3},
		},
	}
}

func TestCreateEventRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateEventRequest
		want    bool
		wantMsg string
	}{
		{
			name: "valid request",
			req: CreateEventRequest{
				Name:  "Concert",
				Dates: []DateSpecRequest{validDateSpec()},
			},
			want:    true,
			wantMsg: "",
		},
		{
			name:    "missing name",
			req:     CreateEventRequest{Dates: []DateSpecRequest{validDateSpec()}},
			want:    false,
			wantMsg: "Event name is required",
		},
		{
			name:    "missing dates",
			req:     CreateEventRequest{Name: "Concert"},
			want:    false,
			wantMsg: "Event requires at least one date",
		},
		{
			name: "date without sectors",
			req: CreateEventRequest{
				Name:  "Concert",
				Dates: []DateSpecRequest{{DateTime: time.Now().Add(time.Hour)}},
			},
			want:    false,
			wantMsg: "Date requires at least one sector",
		},
		{
			name: "sector with zero rows",
			req: CreateEventRequest{
				Name: "Concert",
				Dates: []DateSpecRequest{{
					DateTime: time.Now().Add(time.Hour),
					Sectors:  []SectorSpecRequest{{Name: "A", SeatsNumber: 3}},
				}},
			},
			want:    false,
			wantMsg: "Sector dimensions must be positive",
		},
		{
			name: "eliminated reference out of range",
			req: CreateEventRequest{
				Name: "Concert",
				Dates: []DateSpecRequest{{
					DateTime: time.Now().Add(time.Hour),
					Sectors: []SectorSpecRequest{{
						Name: "A", Numbered: true, RowsNumber: 2, SeatsNumber: 3,
						Eliminated: [][2]int{{2, 0}},
					}},
				}},
			},
			want:    false,
			wantMsg: "Eliminated seat reference is out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := tt.req.Validate()
			if got != tt.want {
				t.Errorf("Validate() got = %v, want %v", got, tt.want)
			}
			if msg != tt.wantMsg {
				t.Errorf("Validate() msg = %v, want %v", msg, tt.wantMsg)
			}
		})
	}
}

func TestUpdateEventRequest_Validate(t *testing.T) {
	name := "Updated Concert"
	empty := ""

	tests := []struct {
		name    string
		req     UpdateEventRequest
		want    bool
		wantMsg string
	}{
		{
			name: "valid name update",
			req:  UpdateEventRequest{Name: &name},
			want: true,
		},
		{
			name: "empty request is valid",
			req:  UpdateEventRequest{},
			want: true,
		},
		{
			name:    "empty name",
			req:     UpdateEventRequest{Name: &empty},
			want:    false,
			wantMsg: "Event name cannot be empty",
		},
		{
			name: "added date without sectors",
			req: UpdateEventRequest{
				AddDates: []DateSpecRequest{{DateTime: time.Now().Add(time.Hour)}},
			},
			want:    false,
			wantMsg: "Date requires at least one sector",
		},
		{
			name: "added sector without name",
			req: UpdateEventRequest{
				AddSectors: []SectorSpecRequest{{RowsNumber: 1, SeatsNumber: 1}},
			},
			want:    false,
			wantMsg: "Sector name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := tt.req.Validate()
			if got != tt.want {
				t.Errorf("Validate() got = %v, want %v", got, tt.want)
			}
			if msg != tt.wantMsg {
				t.Errorf("Validate() msg = %v, want %v", msg, tt.wantMsg)
			}
		})
	}
}

func TestUpdateEventRequest_PublishOnly(t *testing.T) {
	yes := true
	name := "Concert"

	tests := []struct {
		name string
		req  UpdateEventRequest
		want bool
	}{
		{name: "publication flag only", req: UpdateEventRequest{Publicated: &yes}, want: true},
		{name: "empty request", req: UpdateEventRequest{}, want: false},
		{name: "flag plus scalar edit", req: UpdateEventRequest{Publicated: &yes, Name: &name}, want: false},
		{name: "flag plus structural edit", req: UpdateEventRequest{Publicated: &yes, RemoveDateIDs: []string{"d-1"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.PublishOnly(); got != tt.want {
				t.Errorf("PublishOnly() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBatchReservationRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     BatchReservationRequest
		want    bool
		wantMsg string
	}{
		{
			name: "valid mixed batch",
			req: BatchReservationRequest{
				Numbered:   []NumberedReservation{{DateID: "d", SectorID: "s", SeatLabels: []string{"A-1"}}},
				Unnumbered: []UnnumberedReservation{{DateID: "d", SectorID: "s2", Quantity: 2}},
			},
			want: true,
		},
		{
			name:    "empty batch",
			req:     BatchReservationRequest{},
			want:    false,
			wantMsg: "Reservation request is empty",
		},
		{
			name: "numbered without labels",
			req: BatchReservationRequest{
				Numbered: []NumberedReservation{{DateID: "d", SectorID: "s"}},
			},
			want:    false,
			wantMsg: "Numbered reservation requires at least one seat label",
		},
		{
			name: "unnumbered with zero quantity",
			req: BatchReservationRequest{
				Unnumbered: []UnnumberedReservation{{DateID: "d", SectorID: "s"}},
			},
			want:    false,
			wantMsg: "Quantity must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := tt.req.Validate()
			if got != tt.want {
				t.Errorf("Validate() got = %v, want %v", got, tt.want)
			}
			if msg != tt.wantMsg {
				t.Errorf("Validate() msg = %v, want %v", msg, tt.wantMsg)
			}
		})
	}
}
