package postgres

import (
	"context"
	"database/sql"

	"volunteertracking/internal/domain"
)

type shiftRepository struct {
	DB *sql.DB
}

func NewShiftRepository(db *sql.DB) domain.ShiftRepository {
	return &shiftRepository{DB: db}
}

func (r *shiftRepository) Create(ctx context.Context, s *domain.Shift) error {
	query := `
		INSERT INTO shifts (volunteer_id, shift_date, shift_hours, task)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, s.VolunteerID, s.ShiftDate, s.ShiftHours, s.Task).
		Scan(&s.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *shiftRepository) ListWithVolunteer(ctx context.Context) ([]*domain.ShiftWithVolunteer, error) {
	query := `
		SELECT s.id, s.volunteer_id, v.name, s.shift_date, s.shift_hours, s.task
		FROM shifts s
		JOIN volunteers v ON s.volunteer_id = v.id
		ORDER BY s.id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []*domain.ShiftWithVolunteer
	for rows.Next() {
		s := &domain.ShiftWithVolunteer{}
		if err := rows.Scan(&s.ShiftID, &s.VolunteerID, &s.VolunteerName, &s.ShiftDate, &s.ShiftHours, &s.Task); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if shifts == nil {
		shifts = []*domain.ShiftWithVolunteer{}
	}
	return shifts, nil
}
