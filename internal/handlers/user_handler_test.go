package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/renukapahade/sprouts-coach-connect/internal/models"
	"go.uber.org/zap"
)

type stubUserRepo struct {
	existing  *models.User
	getErr    error
	createErr error

	createdUser *models.User
}

func (r *stubUserRepo) Create(_ context.Context, user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = 42
	r.createdUser = user
	return nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, _ string) (*models.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.existing, nil
}

func newUserTestApp(repo *stubUserRepo) *fiber.App {
	handler := &UserHandler{userRepo: repo, log: zap.NewNop()}
	app := fiber.New()
	app.Post("/api/users", handler.CreateUser)
	app.Get("/api/users/:email", handler.GetUserByEmail)
	return app
}

func userPayload() string {
	return `{"name": "Priya Nair", "email": "priya@example.com", "phone": "9876543210"}`
}

func TestCreateUserReturnsCreated(t *testing.T) {
	repo := &stubUserRepo{getErr: pgx.ErrNoRows}
	app := newUserTestApp(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(userPayload()))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if repo.createdUser == nil || repo.createdUser.Email != "priya@example.com" {
		t.Fatalf("user not persisted: %+v", repo.createdUser)
	}
}

func TestCreateUserIsIdempotentOnEmail(t *testing.T) {
	repo := &stubUserRepo{
		existing: &models.User{ID: 42, Name: "Priya Nair", Email: "priya@example.com"},
	}
	app := newUserTestApp(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(userPayload()))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	if repo.createdUser != nil {
		t.Fatal("existing user must not be overwritten")
	}

	var body struct {
		Data    models.User `json:"data"`
		Message string      `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data.ID != 42 || body.Message != "User already exists" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestGetUserByEmailNotFound(t *testing.T) {
	app := newUserTestApp(&stubUserRepo{getErr: pgx.ErrNoRows})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/missing%40example.com", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestGetUserByEmailUnescapesParam(t *testing.T) {
	repo := &stubUserRepo{
		existing: &models.User{ID: 42, Email: "priya@example.com"},
	}
	app := newUserTestApp(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/priya%40example.com", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	var user models.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.Email != "priya@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}
