package services

import (
	"context"
	"errors"
	"testing"

	"volunteertracking/internal/domain"
)

type mockVolunteerRepository struct {
	created   []*domain.Volunteer
	createErr error
	listErr   error
	nextID    int64
}

func (m *mockVolunteerRepository) Create(ctx context.Context, v *domain.Volunteer) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	v.ID = m.nextID
	m.created = append(m.created, v)
	return nil
}

func (m *mockVolunteerRepository) GetByID(ctx context.Context, id int64) (*domain.Volunteer, error) {
	for _, v := range m.created {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockVolunteerRepository) List(ctx context.Context) ([]*domain.Volunteer, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.created, nil
}

type mockEmailService struct {
	sent []*domain.WelcomeMessageEmailData
	err  error
}

func (m *mockEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, data)
	return nil
}

func TestVolunteerService_Register(t *testing.T) {
	tests := []struct {
		name           string
		inputName      string
		inputEmail     string
		inputRole      string
		repo           *mockVolunteerRepository
		email          *mockEmailService
		wantErr        bool
		isInvalidInput bool
		wantEmails     int
	}{
		{
			name:       "success sends welcome email",
			inputName:  "Ana",
			inputEmail: "ana@x.com",
			inputRole:  "Helper",
			repo:       &mockVolunteerRepository{},
			email:      &mockEmailService{},
			wantEmails: 1,
		},
		{
			name:       "no email address skips welcome email",
			inputName:  "Ana",
			inputEmail: "",
			inputRole:  "Helper",
			repo:       &mockVolunteerRepository{},
			email:      &mockEmailService{},
			wantEmails: 0,
		},
		{
			name:       "welcome email failure does not fail registration",
			inputName:  "Ana",
			inputEmail: "ana@x.com",
			inputRole:  "Helper",
			repo:       &mockVolunteerRepository{},
			email:      &mockEmailService{err: errors.New("smtp down")},
			wantEmails: 0,
		},
		{
			name:           "empty name rejected",
			inputName:      "",
			inputEmail:     "ana@x.com",
			inputRole:      "Helper",
			repo:           &mockVolunteerRepository{},
			email:          &mockEmailService{},
			wantErr:        true,
			isInvalidInput: true,
		},
		{
			name:           "whitespace name rejected",
			inputName:      "   ",
			inputEmail:     "ana@x.com",
			inputRole:      "Helper",
			repo:           &mockVolunteerRepository{},
			email:          &mockEmailService{},
			wantErr:        true,
			isInvalidInput: true,
		},
		{
			name:      "repo error surfaces",
			inputName: "Ana",
			repo:      &mockVolunteerRepository{createErr: errors.New("db error")},
			email:     &mockEmailService{},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewVolunteerService(tt.repo, tt.email)

			got, err := svc.Register(context.Background(), tt.inputName, tt.inputEmail, tt.inputRole)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.isInvalidInput && !errors.Is(err, domain.ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				if len(tt.repo.created) != 0 {
					t.Fatalf("expected no volunteer created, got %d", len(tt.repo.created))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID == 0 {
				t.Fatalf("expected assigned id, got 0")
			}
			if len(tt.email.sent) != tt.wantEmails {
				t.Fatalf("expected %d welcome emails, got %d", tt.wantEmails, len(tt.email.sent))
			}
		})
	}
}

func TestVolunteerService_Register_NilEmailService(t *testing.T) {
	repo := &mockVolunteerRepository{}
	svc := NewVolunteerService(repo, nil)

	got, err := svc.Register(context.Background(), "Ana", "ana@x.com", "Helper")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("expected id 1, got %d", got.ID)
	}
}

func TestVolunteerService_Register_AssignsDistinctIDs(t *testing.T) {
	repo := &mockVolunteerRepository{}
	svc := NewVolunteerService(repo, nil)

	// Duplicate names and emails are permitted; each registration still
	// gets its own id in creation order.
	first, err := svc.Register(context.Background(), "Ana", "ana@x.com", "Helper")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Register(context.Background(), "Ana", "ana@x.com", "Helper")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both were %d", first.ID)
	}

	volunteers, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(volunteers) != 2 {
		t.Fatalf("expected 2 volunteers, got %d", len(volunteers))
	}
	if volunteers[0].ID != first.ID || volunteers[1].ID != second.ID {
		t.Fatalf("expected listing in creation order, got %d then %d", volunteers[0].ID, volunteers[1].ID)
	}
}

func TestVolunteerService_List(t *testing.T) {
	tests := []struct {
		name      string
		repo      *mockVolunteerRepository
		wantCount int
		wantErr   bool
	}{
		{
			name: "returns volunteers",
			repo: &mockVolunteerRepository{
				created: []*domain.Volunteer{
					{ID: 1, Name: "Ana"},
					{ID: 2, Name: "Bert"},
				},
			},
			wantCount: 2,
		},
		{
			name:      "empty repo returns empty slice",
			repo:      &mockVolunteerRepository{},
			wantCount: 0,
		},
		{
			name:    "repo error surfaces",
			repo:    &mockVolunteerRepository{listErr: errors.New("db error")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewVolunteerService(tt.repo, nil)

			got, err := svc.List(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got=%v (err=%v)", tt.wantErr, err != nil, err)
			}
			if err != nil {
				return
			}
			if got == nil {
				t.Fatalf("expected non-nil slice")
			}
			if len(got) != tt.wantCount {
				t.Fatalf("expected %d volunteers, got %d", tt.wantCount, len(got))
			}
		})
	}
}
