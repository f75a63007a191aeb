package repository

import (
	"context"

	"github.com/renukapahade/sprouts-coach-connect/internal/models"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, user.Name, user.Email, user.Phone).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

// GetOrCreate inserts a user keyed by email, or returns the existing record
// unchanged. The no-op DO UPDATE keeps the RETURNING clause populated on
// conflict without overwriting the stored name or phone.
func (r *UserRepository) GetOrCreate(ctx context.Context, name, email, phone string) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, phone)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET email = users.email
		RETURNING id, name, email, phone, created_at, updated_at
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, name, email, phone).
		Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users`)
	return err
}
