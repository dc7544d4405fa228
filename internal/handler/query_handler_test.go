package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/seatwise/backend-events/internal/domain"
	"github.com/seatwise/backend-events/internal/dto"
	"github.com/seatwise/backend-events/pkg/response"
)

func queryRouter(mockSvc *MockQueryService) *gin.Engine {
	router := testRouter()
	h := NewQueryHandler(mockSvc)

	events := router.Group("/events")
	{
		events.GET("", h.UpcomingPublished)
		events.GET("/all", h.UpcomingAll)
		events.GET("/every", h.All)
		events.GET("/every/full", h.AllFull)
		events.GET("/nearby", h.Nearby)
		events.GET("/:id", h.GetByID)
	}
	return router
}

func TestQueryHandler_Listings(t *testing.T) {
	mockSvc := &MockQueryService{
		summaries: []*dto.EventSummary{{ID: "event-1", Name: "Concert"}},
		events:    []*domain.Event{{ID: "event-1", Name: "Concert"}},
	}
	router := queryRouter(mockSvc)

	for _, path := range []string{"/events", "/events/all", "/events/every", "/events/every/full"} {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d", path, resp.Code, http.StatusOK)
		}

		var body response.Response
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatalf("GET %s: decode response: %v", path, err)
		}
		if !body.Success {
			t.Errorf("GET %s: expected success envelope", path)
		}
	}
}

func TestQueryHandler_Nearby(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{"valid point", "?lon=-58.38&lat=-34.6", http.StatusOK},
		{"missing lon", "?lat=-34.6", http.StatusBadRequest},
		{"garbage lat", "?lon=-58.38&lat=south", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := queryRouter(&MockQueryService{})

			req, _ := http.NewRequest(http.MethodGet, "/events/nearby"+tt.query, nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.Code, tt.wantStatus)
			}
		})
	}
}

func TestQueryHandler_GetByID(t *testing.T) {
	mockSvc := &MockQueryService{event: &domain.Event{ID: "event-1", Name: "Concert"}}
	router := queryRouter(mockSvc)

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"existing event", "event-1", http.StatusOK},
		{"missing event", "nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/events/"+tt.id, nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.Code, tt.wantStatus)
			}
		})
	}
}
