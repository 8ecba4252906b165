package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"volunteertracking/internal/domain"
)

type volunteerService struct {
	volunteerRepo domain.VolunteerRepository
	emailService  domain.EmailService
}

// NewVolunteerService creates a VolunteerService. emailService may be
// nil, in which case no welcome emails are sent.
func NewVolunteerService(volunteerRepo domain.VolunteerRepository, emailService domain.EmailService) domain.VolunteerService {
	return &volunteerService{
		volunteerRepo: volunteerRepo,
		emailService:  emailService,
	}
}

func (s *volunteerService) Register(ctx context.Context, name, email, role string) (*domain.Volunteer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	email = strings.TrimSpace(email)
	role = strings.TrimSpace(role)

	v := domain.NewVolunteer(name, email, role)
	if err := s.volunteerRepo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("create volunteer: %w", err)
	}

	// Best effort: a failed welcome email never fails the registration.
	if s.emailService != nil && v.Email != "" {
		data := &domain.WelcomeMessageEmailData{
			Email: v.Email,
			Name:  v.Name,
			Role:  v.Role,
		}
		if err := s.emailService.SendWelcomeMessage(ctx, data); err != nil {
			log.Printf("[EMAIL] Welcome email to %s failed: %v", v.Email, err)
		}
	}
	return v, nil
}

func (s *volunteerService) List(ctx context.Context) ([]*domain.Volunteer, error) {
	volunteers, err := s.volunteerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list volunteers: %w", err)
	}
	if volunteers == nil {
		volunteers = []*domain.Volunteer{}
	}
	return volunteers, nil
}
