package postgres

import (
	"context"
	"database/sql"
	"errors"

	"volunteertracking/internal/domain"
)

type volunteerRepository struct {
	DB *sql.DB
}

func NewVolunteerRepository(db *sql.DB) domain.VolunteerRepository {
	return &volunteerRepository{DB: db}
}

func (r *volunteerRepository) Create(ctx context.Context, v *domain.Volunteer) error {
	query := `
		INSERT INTO volunteers (name, email, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, v.Name, v.Email, v.Role).Scan(&v.ID)
}

func (r *volunteerRepository) GetByID(ctx context.Context, id int64) (*domain.Volunteer, error) {
	query := `
		SELECT id, name, email, role
		FROM volunteers
		WHERE id = $1
	`
	v := &domain.Volunteer{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Name, &v.Email, &v.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *volunteerRepository) List(ctx context.Context) ([]*domain.Volunteer, error) {
	query := `
		SELECT id, name, email, role
		FROM volunteers
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var volunteers []*domain.Volunteer
	for rows.Next() {
		v := &domain.Volunteer{}
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Role); err != nil {
			return nil, err
		}
		volunteers = append(volunteers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if volunteers == nil {
		volunteers = []*domain.Volunteer{}
	}
	return volunteers, nil
}
