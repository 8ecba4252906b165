package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"volunteertracking/internal/domain"
)

// dateLayout is the stored date format for shifts and attendance.
const dateLayout = "2006-01-02"

// normalizeDate validates that date is a calendar date in YYYY-MM-DD
// and returns it in canonical form.
func normalizeDate(date string) (string, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return t.Format(dateLayout), nil
}

type shiftService struct {
	shiftRepo     domain.ShiftRepository
	volunteerRepo domain.VolunteerRepository
}

// NewShiftService creates a ShiftService with the given repositories.
func NewShiftService(shiftRepo domain.ShiftRepository, volunteerRepo domain.VolunteerRepository) domain.ShiftService {
	return &shiftService{
		shiftRepo:     shiftRepo,
		volunteerRepo: volunteerRepo,
	}
}

func (s *shiftService) Schedule(ctx context.Context, volunteerID int64, shiftDate string, shiftHours int, task string) (*domain.Shift, error) {
	if shiftHours < 1 {
		return nil, fmt.Errorf("%w: shift_hours must be positive", domain.ErrInvalidInput)
	}
	date, err := normalizeDate(shiftDate)
	if err != nil {
		return nil, err
	}

	// Ensure the volunteer exists; the foreign key backs this up.
	if _, err := s.volunteerRepo.GetByID(ctx, volunteerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get volunteer: %w", err)
	}

	shift := domain.NewShift(volunteerID, date, shiftHours, strings.TrimSpace(task))
	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("create shift: %w", err)
	}
	return shift, nil
}

func (s *shiftService) List(ctx context.Context) ([]*domain.ShiftWithVolunteer, error) {
	shifts, err := s.shiftRepo.ListWithVolunteer(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	if shifts == nil {
		shifts = []*domain.ShiftWithVolunteer{}
	}
	return shifts, nil
}
