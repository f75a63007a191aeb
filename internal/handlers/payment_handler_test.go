package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/renukapahade/sprouts-coach-connect/internal/services"
	"go.uber.org/zap"
)

type stubPaymentService struct {
	openResult   *services.PaymentSession
	openErr      error
	verifyResult *services.VerifyResult
	verifyErr    error

	lastSubscriptionID int64
	lastOrderID        string
}

func (s *stubPaymentService) OpenPayment(_ context.Context, subscriptionID int64) (*services.PaymentSession, error) {
	s.lastSubscriptionID = subscriptionID
	return s.openResult, s.openErr
}

func (s *stubPaymentService) Verify(_ context.Context, orderID string) (*services.VerifyResult, error) {
	s.lastOrderID = orderID
	return s.verifyResult, s.verifyErr
}

func newPaymentTestApp(service *stubPaymentService) *fiber.App {
	handler := &PaymentHandler{service: service, log: zap.NewNop()}
	app := fiber.New()
	app.Post("/api/payments/create-session", handler.CreatePaymentSession)
	app.Post("/api/payments/verify", handler.VerifyPayment)
	return app
}

func TestCreatePaymentSessionReturnsGatewayIDs(t *testing.T) {
	service := &stubPaymentService{
		openResult: &services.PaymentSession{PaymentSessionID: "session_abc", OrderID: "SUB_11_1"},
	}
	app := newPaymentTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/create-session", strings.NewReader(`{"subscriptionId": 11}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if service.lastSubscriptionID != 11 {
		t.Fatalf("unexpected subscription id: %d", service.lastSubscriptionID)
	}

	var body struct {
		PaymentSessionID string `json:"paymentSessionId"`
		OrderID          string `json:"orderId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.PaymentSessionID != "session_abc" || body.OrderID != "SUB_11_1" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestCreatePaymentSessionRejectsSettledSubscription(t *testing.T) {
	app := newPaymentTestApp(&stubPaymentService{openErr: services.ErrInvalidState})

	req := httptest.NewRequest(http.MethodPost, "/api/payments/create-session", strings.NewReader(`{"subscriptionId": 11}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestCreatePaymentSessionUnknownSubscription(t *testing.T) {
	app := newPaymentTestApp(&stubPaymentService{openErr: services.ErrSubscriptionNotFound})

	req := httptest.NewRequest(http.MethodPost, "/api/payments/create-session", strings.NewReader(`{"subscriptionId": 99}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestVerifyPaymentReportsSuccess(t *testing.T) {
	service := &stubPaymentService{
		verifyResult: &services.VerifyResult{Activated: true},
	}
	app := newPaymentTestApp(service)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(`{"orderId": "SUB_11_1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if service.lastOrderID != "SUB_11_1" {
		t.Fatalf("unexpected order id: %s", service.lastOrderID)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success || body.Message == "" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestVerifyPaymentReportsFailure(t *testing.T) {
	app := newPaymentTestApp(&stubPaymentService{
		verifyResult: &services.VerifyResult{Activated: false},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(`{"orderId": "SUB_11_1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "Payment verification failed" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
}

func TestVerifyPaymentUnknownOrder(t *testing.T) {
	app := newPaymentTestApp(&stubPaymentService{verifyErr: services.ErrSubscriptionNotFound})

	req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(`{"orderId": "SUB_99_1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}
