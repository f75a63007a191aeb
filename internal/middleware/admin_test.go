package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newGuardedApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Post("/api/admin/seed", AdminRequired(apiKey), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func TestAdminRequiredAcceptsMatchingKey(t *testing.T) {
	app := newGuardedApp("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
	req.Header.Set("X-Admin-Key", "s3cret")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestAdminRequiredRejectsMissingKey(t *testing.T) {
	app := newGuardedApp("s3cret")

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestAdminRequiredRejectsWrongKey(t *testing.T) {
	app := newGuardedApp("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
	req.Header.Set("X-Admin-Key", "guess")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestAdminRequiredDisabledWithoutKey(t *testing.T) {
	app := newGuardedApp("")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
	req.Header.Set("X-Admin-Key", "anything")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}
