package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/renukapahade/sprouts-coach-connect/internal/models"
	"github.com/renukapahade/sprouts-coach-connect/internal/services"
	"go.uber.org/zap"
)

type stubBookingService struct {
	result *models.Booking
	err    error

	lastInput services.BookSlotInput
}

func (s *stubBookingService) Book(_ context.Context, input services.BookSlotInput) (*models.Booking, error) {
	s.lastInput = input
	return s.result, s.err
}

func newBookingTestApp(service *stubBookingService) *fiber.App {
	handler := &BookingHandler{service: service, log: zap.NewNop()}
	app := fiber.New()
	app.Post("/api/bookings", handler.CreateBooking)
	return app
}

func bookingPayload() string {
	return `{
		"coachId": 7,
		"clientName": "Priya Nair",
		"clientEmail": "priya@example.com",
		"clientPhone": "9876543210",
		"date": "2026-03-02",
		"startTime": "10:00"
	}`
}

func TestCreateBookingReturnsCreated(t *testing.T) {
	service := &stubBookingService{
		result: &models.Booking{ID: 301, CoachID: 7, Amount: 1500, Status: models.BookingPending},
	}
	app := newBookingTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingPayload()))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if service.lastInput.CoachID != 7 || service.lastInput.StartTime != "10:00" {
		t.Fatalf("unexpected input: %+v", service.lastInput)
	}

	var body struct {
		ID      int64          `json:"id"`
		Booking models.Booking `json:"booking"`
		Message string         `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ID != 301 || body.Booking.Amount != 1500 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestCreateBookingSlotConflict(t *testing.T) {
	app := newBookingTestApp(&stubBookingService{err: services.ErrConflict})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingPayload()))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestCreateBookingRejectsInvalidPayload(t *testing.T) {
	app := newBookingTestApp(&stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"coachId": 7, "date": "03/02/2026"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}
