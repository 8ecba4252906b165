package domain

import "context"

// Shift is a scheduled work assignment for a volunteer. Immutable after creation.
// swagger:model Shift
type Shift struct {
	ID          int64  `json:"id"`
	VolunteerID int64  `json:"volunteer_id"`
	ShiftDate   string `json:"shift_date"`
	ShiftHours  int    `json:"shift_hours"`
	Task        string `json:"task"`
}

// NewShift returns a new Shift. ID is set by the repository on create.
func NewShift(volunteerID int64, shiftDate string, shiftHours int, task string) *Shift {
	return &Shift{
		VolunteerID: volunteerID,
		ShiftDate:   shiftDate,
		ShiftHours:  shiftHours,
		Task:        task,
	}
}

// ShiftWithVolunteer is a shift row joined with its volunteer's name.
// swagger:model ShiftWithVolunteer
type ShiftWithVolunteer struct {
	ShiftID       int64  `json:"shift_id"`
	VolunteerID   int64  `json:"volunteer_id"`
	VolunteerName string `json:"volunteer_name"`
	ShiftDate     string `json:"shift_date"`
	ShiftHours    int    `json:"shift_hours"`
	Task          string `json:"task"`
}

// ShiftRepository defines storage operations for shifts.
type ShiftRepository interface {
	Create(ctx context.Context, s *Shift) error
	// ListWithVolunteer returns all shifts joined with the volunteer's
	// name, in creation order (ascending shift id).
	ListWithVolunteer(ctx context.Context) ([]*ShiftWithVolunteer, error)
}

// ShiftService defines shift scheduling and listing.
type ShiftService interface {
	// Schedule creates a shift for an existing volunteer. Returns
	// ErrNotFound when the volunteer does not exist and ErrInvalidInput
	// when shiftHours is not positive or shiftDate is not YYYY-MM-DD.
	Schedule(ctx context.Context, volunteerID int64, shiftDate string, shiftHours int, task string) (*Shift, error)
	List(ctx context.Context) ([]*ShiftWithVolunteer, error)
}
