package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/seatwise/backend-events/internal/domain"
	"github.com/seatwise/backend-events/pkg/response"
)

func reservationRouter(mockSvc *MockReservationService, userID, role string) *gin.Engine {
	router := testRouter()
	h := NewReservationHandler(mockSvc)

	authed := router.Group("/", identity(userID, role))
	{
		authed.PATCH("/events/:id/seat", h.ReserveSeat)
		authed.PATCH("/events/:id/place", h.CreateAdhocSeat)
		authed.PATCH("/events/:id/reservations", h.BatchReserve)
		authed.GET("/reservations/:holder", h.ListByHolder)
	}
	return router
}

const reserveSeatBody = `{"date_id": "date-1", "sector_id": "sector-1", "seat_label": "A-1"}`

func TestReservationHandler_ReserveSeat(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		body       string
		svcErr     error
		wantStatus int
	}{
		{
			name:       "reserved",
			userID:     "user-1",
			body:       reserveSeatBody,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing identity",
			userID:     "",
			body:       reserveSeatBody,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid body",
			userID:     "user-1",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing seat label",
			userID:     "user-1",
			body:       `{"date_id": "date-1", "sector_id": "sector-1"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "seat taken",
			userID:     "user-1",
			body:       reserveSeatBody,
			svcErr:     domain.ErrSeatUnavailable,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "event missing",
			userID:     "user-1",
			body:       reserveSeatBody,
			svcErr:     domain.ErrEventNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "contention exhausted",
			userID:     "user-1",
			body:       reserveSeatBody,
			svcErr:     domain.ErrVersionConflict,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := reservationRouter(&MockReservationService{err: tt.svcErr}, tt.userID, "user")

			req, _ := http.NewRequest(http.MethodPatch, "/events/event-1/seat", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.Code, tt.wantStatus)
			}
		})
	}
}

func TestReservationHandler_HolderFromToken(t *testing.T) {
	mockSvc := &MockReservationService{}
	router := reservationRouter(mockSvc, "user-42", "user")

	req, _ := http.NewRequest(http.MethodPatch, "/events/event-1/seat",
		bytes.NewBufferString(`{"date_id": "d", "sector_id": "s", "seat_label": "A-1", "holder": "spoofed"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusOK)
	}
	// The holder always comes from the token, never the body.
	if mockSvc.lastHolder != "user-42" {
		t.Errorf("holder = %q, want user-42", mockSvc.lastHolder)
	}
}

func TestReservationHandler_CreateAdhocSeat(t *testing.T) {
	mockSvc := &MockReservationService{}
	router := reservationRouter(mockSvc, "user-1", "user")

	req, _ := http.NewRequest(http.MethodPatch, "/events/event-1/place",
		bytes.NewBufferString(`{"date_id": "date-1", "sector_id": "sector-1"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.Code, http.StatusOK)
	}

	var body response.Response
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Error("expected success envelope")
	}
}

func TestReservationHandler_BatchReserve(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "mixed batch",
			body:       `{"numbered": [{"date_id": "d", "sector_id": "s", "seat_labels": ["A-1"]}], "unnumbered": [{"date_id": "d", "sector_id": "s2", "quantity": 2}]}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty batch",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := reservationRouter(&MockReservationService{}, "user-1", "user")

			req, _ := http.NewRequest(http.MethodPatch, "/events/event-1/reservations", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.Code, tt.wantStatus)
			}
		})
	}
}

func TestReservationHandler_ListByHolder(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		role       string
		holder     string
		wantStatus int
	}{
		{"own reservations", "user-1", "user", "user-1", http.StatusOK},
		{"someone else's", "user-1", "user", "user-2", http.StatusForbidden},
		{"admin reads anyone", "admin-1", "admin", "user-2", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := reservationRouter(&MockReservationService{}, tt.userID, tt.role)

			req, _ := http.NewRequest(http.MethodGet, "/reservations/"+tt.holder, nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.Code, tt.wantStatus)
			}
		})
	}
}
