package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestDocsPageListsEndpoints(t *testing.T) {
	app := fiber.New()
	app.Get("/api/docs", docsHandler())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Fatalf("unexpected content type: %s", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	page := string(body)
	for _, path := range []string{
		"/api/coaches",
		"/api/subscriptions",
		"/api/payments/create-session",
		"/api/payments/verify",
		"/api/bookings",
		"/api/admin/seed",
	} {
		if !strings.Contains(page, path) {
			t.Fatalf("docs page missing %s", path)
		}
	}
}
