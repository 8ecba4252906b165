package postgres

import (
	"context"
	"database/sql"

	"volunteertracking/internal/domain"
)

type attendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) domain.AttendanceRepository {
	return &attendanceRepository{DB: db}
}

func (r *attendanceRepository) Create(ctx context.Context, a *domain.Attendance) error {
	query := `
		INSERT INTO attendance (volunteer_id, date, hours)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, a.VolunteerID, a.Date, a.Hours).
		Scan(&a.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *attendanceRepository) ListWithVolunteer(ctx context.Context) ([]*domain.AttendanceWithVolunteer, error) {
	query := `
		SELECT a.id, a.volunteer_id, v.name, a.date, a.hours
		FROM attendance a
		JOIN volunteers v ON a.volunteer_id = v.id
		ORDER BY a.id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.AttendanceWithVolunteer
	for rows.Next() {
		a := &domain.AttendanceWithVolunteer{}
		if err := rows.Scan(&a.AttendanceID, &a.VolunteerID, &a.VolunteerName, &a.Date, &a.Hours); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if records == nil {
		records = []*domain.AttendanceWithVolunteer{}
	}
	return records, nil
}

// TotalHoursByVolunteer uses an inner join, so volunteers with no
// attendance rows do not appear in the result.
func (r *attendanceRepository) TotalHoursByVolunteer(ctx context.Context) ([]*domain.VolunteerHours, error) {
	query := `
		SELECT v.id, v.name, SUM(a.hours) AS total_hours
		FROM attendance a
		JOIN volunteers v ON a.volunteer_id = v.id
		GROUP BY v.id, v.name
		ORDER BY v.id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []*domain.VolunteerHours
	for rows.Next() {
		h := &domain.VolunteerHours{}
		if err := rows.Scan(&h.VolunteerID, &h.VolunteerName, &h.TotalHours); err != nil {
			return nil, err
		}
		totals = append(totals, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if totals == nil {
		totals = []*domain.VolunteerHours{}
	}
	return totals, nil
}
