package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/renukapahade/sprouts-coach-connect/internal/models"
)

type CoachListFilter struct {
	Specialization string
	Search         string
	Offset         int
	Limit          int
}

type CoachRepository struct {
	db DBTX
}

func NewCoachRepository(db DBTX) *CoachRepository {
	return &CoachRepository{db: db}
}

const coachColumns = `id, name, email, phone, specialization, bio, experience, location,
	rating, review_count, image, certifications, hourly_rate, monthly_slots,
	availability, packages, created_at, updated_at`

func (r *CoachRepository) Create(ctx context.Context, coach *models.Coach) error {
	query := `
		INSERT INTO coaches (name, email, phone, specialization, bio, experience, location,
			rating, review_count, image, certifications, hourly_rate, monthly_slots,
			availability, packages)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		coach.Name,
		coach.Email,
		coach.Phone,
		coach.Specialization,
		coach.Bio,
		coach.Experience,
		coach.Location,
		coach.Rating,
		coach.ReviewCount,
		coach.Image,
		coach.Certifications,
		coach.HourlyRate,
		coach.MonthlySlots,
		coach.Availability,
		coach.Packages,
	).Scan(&coach.ID, &coach.CreatedAt, &coach.UpdatedAt)
}

func (r *CoachRepository) GetByID(ctx context.Context, coachID int64) (*models.Coach, error) {
	query := fmt.Sprintf(`SELECT %s FROM coaches WHERE id = $1`, coachColumns)

	var coach models.Coach
	err := r.db.QueryRow(ctx, query, coachID).Scan(
		&coach.ID,
		&coach.Name,
		&coach.Email,
		&coach.Phone,
		&coach.Specialization,
		&coach.Bio,
		&coach.Experience,
		&coach.Location,
		&coach.Rating,
		&coach.ReviewCount,
		&coach.Image,
		&coach.Certifications,
		&coach.HourlyRate,
		&coach.MonthlySlots,
		&coach.Availability,
		&coach.Packages,
		&coach.CreatedAt,
		&coach.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *CoachRepository) List(ctx context.Context, filter CoachListFilter) ([]models.Coach, int, error) {
	args := []any{}
	whereParts := []string{}

	if spec := strings.TrimSpace(filter.Specialization); spec != "" && spec != "all" {
		args = append(args, spec)
		whereParts = append(whereParts, fmt.Sprintf("specialization IN ($%d, 'both')", len(args)))
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		whereParts = append(whereParts, fmt.Sprintf(
			"(name ILIKE $%d OR bio ILIKE $%d OR specialization ILIKE $%d OR location ILIKE $%d)",
			n, n, n, n,
		))
	}

	whereClause := ""
	if len(whereParts) > 0 {
		whereClause = "WHERE " + strings.Join(whereParts, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM coaches %s`, whereClause)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM coaches
		%s
		ORDER BY id ASC
		LIMIT $%d OFFSET $%d
	`, coachColumns, whereClause, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	coaches := make([]models.Coach, 0)
	for rows.Next() {
		var coach models.Coach
		if err := rows.Scan(
			&coach.ID,
			&coach.Name,
			&coach.Email,
			&coach.Phone,
			&coach.Specialization,
			&coach.Bio,
			&coach.Experience,
			&coach.Location,
			&coach.Rating,
			&coach.ReviewCount,
			&coach.Image,
			&coach.Certifications,
			&coach.HourlyRate,
			&coach.MonthlySlots,
			&coach.Availability,
			&coach.Packages,
			&coach.CreatedAt,
			&coach.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		coaches = append(coaches, coach)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return coaches, total, nil
}

func (r *CoachRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM coaches`)
	return err
}
