package services

import (
	"context"
	"errors"
	"fmt"

	"volunteertracking/internal/domain"
)

type attendanceService struct {
	attendanceRepo domain.AttendanceRepository
	volunteerRepo  domain.VolunteerRepository
}

// NewAttendanceService creates an AttendanceService with the given repositories.
func NewAttendanceService(attendanceRepo domain.AttendanceRepository, volunteerRepo domain.VolunteerRepository) domain.AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		volunteerRepo:  volunteerRepo,
	}
}

func (s *attendanceService) Log(ctx context.Context, volunteerID int64, date string, hours int) (*domain.Attendance, error) {
	if hours < 1 {
		return nil, fmt.Errorf("%w: hours must be positive", domain.ErrInvalidInput)
	}
	normalized, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	if _, err := s.volunteerRepo.GetByID(ctx, volunteerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get volunteer: %w", err)
	}

	record := domain.NewAttendance(volunteerID, normalized, hours)
	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("create attendance: %w", err)
	}
	return record, nil
}

func (s *attendanceService) List(ctx context.Context) ([]*domain.AttendanceWithVolunteer, error) {
	records, err := s.attendanceRepo.ListWithVolunteer(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	if records == nil {
		records = []*domain.AttendanceWithVolunteer{}
	}
	return records, nil
}

func (s *attendanceService) TotalHoursByVolunteer(ctx context.Context) ([]*domain.VolunteerHours, error) {
	totals, err := s.attendanceRepo.TotalHoursByVolunteer(ctx)
	if err != nil {
		return nil, fmt.Errorf("total hours by volunteer: %w", err)
	}
	if totals == nil {
		totals = []*domain.VolunteerHours{}
	}
	return totals, nil
}
