package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"salonbook/models"
	"salonbook/services/booking"
	"salonbook/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type fakeBookingService struct {
	result *models.BookingResult
	err    error
}

func (f *fakeBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	return f.result, f.err
}

func newBookingRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc, zap.NewNop())
	r.POST("/api/bookings", h.CreateBookingHandler)
	return r
}

func postBooking(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingHandler_ValidationError(t *testing.T) {
	svc := &fakeBookingService{err: fmt.Errorf("%w: please select at least one service", booking.ErrValidation)}
	r := newBookingRouter(svc)

	w := postBooking(r, `{"name":"Thandi","phone":"1","date":"2025-03-10","time":"14:30","services":[]}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateBookingHandler_MalformedBody(t *testing.T) {
	r := newBookingRouter(&fakeBookingService{})

	w := postBooking(r, `{"services": "not-an-array"`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCreateBookingHandler_OutcomeStatusCodes(t *testing.T) {
	tests := []struct {
		outcome string
		want    int
	}{
		{models.OutcomeAllSuccess, http.StatusCreated},
		{models.OutcomePartial, http.StatusMultiStatus},
		{models.OutcomeAllFail, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			svc := &fakeBookingService{result: &models.BookingResult{Outcome: tt.outcome}}
			r := newBookingRouter(svc)

			w := postBooking(r, `{"name":"Thandi","phone":"1","date":"2025-03-10","time":"14:30","services":["Haircut"]}`)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}

			var result models.BookingResult
			if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
				t.Fatalf("bad response body: %v", err)
			}
			if result.Outcome != tt.outcome {
				t.Fatalf("expected outcome %s, got %s", tt.outcome, result.Outcome)
			}
		})
	}
}

func TestCurrentNotificationHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	presenter := &notification.MemoryPresenter{TTL: time.Minute}
	h := NewNotificationHandler(presenter, zap.NewNop())

	r := gin.New()
	r.GET("/api/notifications/current", h.CurrentNotificationHandler)

	// Empty slot responds 204.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notifications/current", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for empty slot, got %d", w.Code)
	}

	presenter.Publish(context.Background(), models.NotificationSuccess, "booked")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notifications/current", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var n models.Notification
	if err := json.Unmarshal(w.Body.Bytes(), &n); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if n.Kind != models.NotificationSuccess || n.Message != "booked" {
		t.Fatalf("unexpected notification: %+v", n)
	}
}
