package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"volunteertracking/internal/delivery/http/helpers"
	"volunteertracking/internal/domain"
)

type AttendanceController struct {
	Logger  *slog.Logger
	Service domain.AttendanceService
}

func NewAttendanceController(logger *slog.Logger, svc domain.AttendanceService) *AttendanceController {
	return &AttendanceController{
		Logger:  logger,
		Service: svc,
	}
}

// LogAttendanceRequest is the request body for POST /volunteers/{volunteerID}/attendance.
type LogAttendanceRequest struct {
	Date  string `json:"date"`
	Hours int    `json:"hours"`
}

// Validate implements helpers.Validator.
func (r *LogAttendanceRequest) Validate() []string {
	var errs []string
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		errs = append(errs, "date must be YYYY-MM-DD")
	}
	if r.Hours < 1 {
		errs = append(errs, "hours must be positive")
	}
	return errs
}

// LogAttendanceSuccessResponse is the success response envelope for POST /volunteers/{volunteerID}/attendance (201).
type LogAttendanceSuccessResponse struct {
	Data  *domain.Attendance `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// LogAttendance godoc
// @Summary Log hours worked by a volunteer
// @Description Records attendance for the given volunteer on a date. The volunteer must already exist.
// @Tags attendance
// @Accept json
// @Produce json
// @Param volunteerID path int true "Volunteer ID"
// @Param body body controllers.LogAttendanceRequest true "Attendance details"
// @Success 201 {object} controllers.LogAttendanceSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers/{volunteerID}/attendance [post]
func (c *AttendanceController) LogAttendance(w http.ResponseWriter, r *http.Request) {
	volunteerID, ok := volunteerIDFromPath(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid volunteerID")
		return
	}

	var req LogAttendanceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	record, err := c.Service.Log(r.Context(), volunteerID, req.Date, req.Hours)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "volunteer not found")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, record)
}

// ListAttendanceSuccessResponse is the success response envelope for GET /attendance (200).
type ListAttendanceSuccessResponse struct {
	Data  []*domain.AttendanceWithVolunteer `json:"data"`
	Error *helpers.APIError                 `json:"error"`
}

// ListAttendance godoc
// @Summary List all attendance records
// @Description Returns all attendance records joined with the volunteer's name, in creation order.
// @Tags attendance
// @Produce json
// @Success 200 {object} controllers.ListAttendanceSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendance [get]
func (c *AttendanceController) ListAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, records)
}

// HoursReportSuccessResponse is the success response envelope for GET /reports/hours (200).
type HoursReportSuccessResponse struct {
	Data  []*domain.VolunteerHours `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// HoursReport godoc
// @Summary Total hours worked per volunteer
// @Description Sums logged attendance hours per volunteer, ordered by volunteer id. Volunteers with no attendance records are excluded; scheduled shift hours are not counted.
// @Tags reports
// @Produce json
// @Success 200 {object} controllers.HoursReportSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reports/hours [get]
func (c *AttendanceController) HoursReport(w http.ResponseWriter, r *http.Request) {
	totals, err := c.Service.TotalHoursByVolunteer(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, totals)
}
