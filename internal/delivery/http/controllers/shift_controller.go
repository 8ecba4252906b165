package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"volunteertracking/internal/delivery/http/helpers"
	"volunteertracking/internal/domain"
)

// volunteerIDFromPath parses the volunteerID path segment as a positive integer.
func volunteerIDFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("volunteerID"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

type ShiftController struct {
	Logger  *slog.Logger
	Service domain.ShiftService
}

func NewShiftController(logger *slog.Logger, svc domain.ShiftService) *ShiftController {
	return &ShiftController{
		Logger:  logger,
		Service: svc,
	}
}

// ScheduleShiftRequest is the request body for POST /volunteers/{volunteerID}/shifts.
type ScheduleShiftRequest struct {
	ShiftDate  string `json:"shift_date"`
	ShiftHours int    `json:"shift_hours"`
	Task       string `json:"task"`
}

// Validate implements helpers.Validator.
func (r *ScheduleShiftRequest) Validate() []string {
	var errs []string
	if _, err := time.Parse("2006-01-02", r.ShiftDate); err != nil {
		errs = append(errs, "shift_date must be YYYY-MM-DD")
	}
	if r.ShiftHours < 1 {
		errs = append(errs, "shift_hours must be positive")
	}
	return errs
}

// ScheduleShiftSuccessResponse is the success response envelope for POST /volunteers/{volunteerID}/shifts (201).
type ScheduleShiftSuccessResponse struct {
	Data  *domain.Shift     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ScheduleShift godoc
// @Summary Schedule a shift for a volunteer
// @Description Creates a shift assigned to the given volunteer. The volunteer must already exist.
// @Tags shifts
// @Accept json
// @Produce json
// @Param volunteerID path int true "Volunteer ID"
// @Param body body controllers.ScheduleShiftRequest true "Shift details"
// @Success 201 {object} controllers.ScheduleShiftSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers/{volunteerID}/shifts [post]
func (c *ShiftController) ScheduleShift(w http.ResponseWriter, r *http.Request) {
	volunteerID, ok := volunteerIDFromPath(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid volunteerID")
		return
	}

	var req ScheduleShiftRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	shift, err := c.Service.Schedule(r.Context(), volunteerID, req.ShiftDate, req.ShiftHours, req.Task)
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
	helpers.WriteJSONSuccess(w, http.StatusCreated, shift)
}

// ListShiftsSuccessResponse is the success response envelope for GET /shifts (200).
type ListShiftsSuccessResponse struct {
	Data  []*domain.ShiftWithVolunteer `json:"data"`
	Error *helpers.APIError            `json:"error"`
}

// ListShifts godoc
// @Summary List all scheduled shifts
// @Description Returns all shifts joined with the volunteer's name, in creation order.
// @Tags shifts
// @Produce json
// @Success 200 {object} controllers.ListShiftsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /shifts [get]
func (c *ShiftController) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, shifts)
}
