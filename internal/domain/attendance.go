package domain

import "context"

// Attendance records hours a volunteer actually worked on a date.
// Immutable after creation.
// swagger:model Attendance
type Attendance struct {
	ID          int64  `json:"id"`
	VolunteerID int64  `json:"volunteer_id"`
	Date        string `json:"date"`
	Hours       int    `json:"hours"`
}

// NewAttendance returns a new Attendance. ID is set by the repository on create.
func NewAttendance(volunteerID int64, date string, hours int) *Attendance {
	return &Attendance{
		VolunteerID: volunteerID,
		Date:        date,
		Hours:       hours,
	}
}

// AttendanceWithVolunteer is an attendance row joined with its volunteer's name.
// swagger:model AttendanceWithVolunteer
type AttendanceWithVolunteer struct {
	AttendanceID  int64  `json:"attendance_id"`
	VolunteerID   int64  `json:"volunteer_id"`
	VolunteerName string `json:"volunteer_name"`
	Date          string `json:"date"`
	Hours         int    `json:"hours"`
}

// VolunteerHours is the total attendance hours logged for one volunteer.
// Only volunteers with at least one attendance record are reported;
// scheduled shift hours are not counted.
// swagger:model VolunteerHours
type VolunteerHours struct {
	VolunteerID   int64  `json:"volunteer_id"`
	VolunteerName string `json:"volunteer_name"`
	TotalHours    int    `json:"total_hours"`
}

// AttendanceRepository defines storage operations for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, a *Attendance) error
	// ListWithVolunteer returns all attendance records joined with the
	// volunteer's name, in creation order (ascending attendance id).
	ListWithVolunteer(ctx context.Context) ([]*AttendanceWithVolunteer, error)
	// TotalHoursByVolunteer sums logged hours per volunteer, ordered by
	// volunteer id. Volunteers without attendance records are excluded.
	TotalHoursByVolunteer(ctx context.Context) ([]*VolunteerHours, error)
}

// AttendanceService defines attendance logging and hours reporting.
type AttendanceService interface {
	// Log records hours worked by an existing volunteer. Returns
	// ErrNotFound when the volunteer does not exist and ErrInvalidInput
	// when hours is not positive or date is not YYYY-MM-DD.
	Log(ctx context.Context, volunteerID int64, date string, hours int) (*Attendance, error)
	List(ctx context.Context) ([]*AttendanceWithVolunteer, error)
	TotalHoursByVolunteer(ctx context.Context) ([]*VolunteerHours, error)
}
