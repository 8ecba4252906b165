package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"volunteertracking/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	volunteerController *controllers.VolunteerController,
	shiftController *controllers.ShiftController,
	attendanceController *controllers.AttendanceController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Volunteers
	mux.HandleFunc("POST /volunteers", volunteerController.RegisterVolunteer)
	mux.HandleFunc("GET /volunteers", volunteerController.ListVolunteers)

	// Shifts
	mux.HandleFunc("POST /volunteers/{volunteerID}/shifts", shiftController.ScheduleShift)
	mux.HandleFunc("GET /shifts", shiftController.ListShifts)

	// Attendance and reporting
	mux.HandleFunc("POST /volunteers/{volunteerID}/attendance", attendanceController.LogAttendance)
	mux.HandleFunc("GET /attendance", attendanceController.ListAttendance)
	mux.HandleFunc("GET /reports/hours", attendanceController.HoursReport)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
