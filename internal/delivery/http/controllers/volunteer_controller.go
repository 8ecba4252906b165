package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"volunteertracking/internal/delivery/http/helpers"
	"volunteertracking/internal/domain"
)

type VolunteerController struct {
	Logger  *slog.Logger
	Service domain.VolunteerService
}

func NewVolunteerController(logger *slog.Logger, svc domain.VolunteerService) *VolunteerController {
	return &VolunteerController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterVolunteerRequest is the request body for POST /volunteers.
type RegisterVolunteerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Validate implements helpers.Validator.
func (r *RegisterVolunteerRequest) Validate() []string {
	if strings.TrimSpace(r.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

// RegisterVolunteerSuccessResponse is the success response envelope for POST /volunteers (201).
type RegisterVolunteerSuccessResponse struct {
	Data  *domain.Volunteer `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// RegisterVolunteer godoc
// @Summary Register a new volunteer
// @Description Creates a volunteer record. Name is required; duplicate names and emails are permitted. When an email address is given, a welcome email is sent best-effort.
// @Tags volunteers
// @Accept json
// @Produce json
// @Param body body controllers.RegisterVolunteerRequest true "Volunteer details"
// @Success 201 {object} controllers.RegisterVolunteerSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers [post]
func (c *VolunteerController) RegisterVolunteer(w http.ResponseWriter, r *http.Request) {
	var req RegisterVolunteerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	volunteer, err := c.Service.Register(r.Context(), req.Name, req.Email, req.Role)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, volunteer)
}

// ListVolunteersSuccessResponse is the success response envelope for GET /volunteers (200).
type ListVolunteersSuccessResponse struct {
	Data  []*domain.Volunteer `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// ListVolunteers godoc
// @Summary List all volunteers
// @Description Returns all registered volunteers in creation order (ascending id).
// @Tags volunteers
// @Produce json
// @Success 200 {object} controllers.ListVolunteersSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers [get]
func (c *VolunteerController) ListVolunteers(w http.ResponseWriter, r *http.Request) {
	volunteers, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, volunteers)
}
