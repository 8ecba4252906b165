package domain

import "context"

// Volunteer is a person registered with the organization.
// Volunteers are append-only: never updated or deleted.
// swagger:model Volunteer
type Volunteer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewVolunteer returns a new Volunteer. ID is set by the repository on create.
func NewVolunteer(name, email, role string) *Volunteer {
	return &Volunteer{
		Name:  name,
		Email: email,
		Role:  role,
	}
}

// VolunteerRepository defines storage operations for volunteers.
type VolunteerRepository interface {
	Create(ctx context.Context, v *Volunteer) error
	GetByID(ctx context.Context, id int64) (*Volunteer, error)
	// List returns all volunteers in insertion order (ascending id).
	List(ctx context.Context) ([]*Volunteer, error)
}

// VolunteerService defines volunteer registration and listing.
type VolunteerService interface {
	// Register creates a new volunteer. Name must be non-empty; duplicate
	// names and emails are permitted.
	Register(ctx context.Context, name, email, role string) (*Volunteer, error)
	List(ctx context.Context) ([]*Volunteer, error)
}
