package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"volunteertracking/internal/delivery/http/helpers"
	"volunteertracking/internal/domain"
)

type mockAttendanceService struct {
	records []*domain.AttendanceWithVolunteer
	totals  []*domain.VolunteerHours
	logged  *domain.Attendance
	err     error
}

func (m *mockAttendanceService) Log(ctx context.Context, volunteerID int64, date string, hours int) (*domain.Attendance, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.logged, nil
}

func (m *mockAttendanceService) List(ctx context.Context) ([]*domain.AttendanceWithVolunteer, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *mockAttendanceService) TotalHoursByVolunteer(ctx context.Context) ([]*domain.VolunteerHours, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.totals, nil
}

func newAttendanceRequest(volunteerID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/volunteers/"+volunteerID+"/attendance", strings.NewReader(body))
	req.SetPathValue("volunteerID", volunteerID)
	return req
}

func TestAttendanceController_LogAttendance_Success(t *testing.T) {
	svc := &mockAttendanceService{
		logged: &domain.Attendance{ID: 1, VolunteerID: 1, Date: "2024-06-01", Hours: 4},
	}
	ctrl := NewAttendanceController(testLogger(), svc)

	req := newAttendanceRequest("1", `{"date":"2024-06-01","hours":4}`)
	w := httptest.NewRecorder()

	ctrl.LogAttendance(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	var resp struct {
		Data  *domain.Attendance `json:"data"`
		Error *helpers.APIError  `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data == nil || resp.Data.Hours != 4 {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}

func TestAttendanceController_LogAttendance_BadRequests(t *testing.T) {
	ctrl := NewAttendanceController(testLogger(), &mockAttendanceService{})

	tests := []struct {
		name        string
		volunteerID string
		body        string
	}{
		{"bad volunteer id", "abc", `{"date":"2024-06-01","hours":4}`},
		{"bad date", "1", `{"date":"yesterday","hours":4}`},
		{"zero hours", "1", `{"date":"2024-06-01","hours":0}`},
		{"negative hours", "1", `{"date":"2024-06-01","hours":-3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newAttendanceRequest(tt.volunteerID, tt.body)
			w := httptest.NewRecorder()

			ctrl.LogAttendance(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestAttendanceController_LogAttendance_VolunteerNotFound(t *testing.T) {
	ctrl := NewAttendanceController(testLogger(), &mockAttendanceService{err: domain.ErrNotFound})

	req := newAttendanceRequest("99", `{"date":"2024-06-01","hours":4}`)
	w := httptest.NewRecorder()

	ctrl.LogAttendance(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestAttendanceController_ListAttendance_Success(t *testing.T) {
	svc := &mockAttendanceService{
		records: []*domain.AttendanceWithVolunteer{
			{AttendanceID: 1, VolunteerID: 1, VolunteerName: "Ana", Date: "2024-06-01", Hours: 4},
		},
	}
	ctrl := NewAttendanceController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/attendance", nil)
	w := httptest.NewRecorder()

	ctrl.ListAttendance(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestAttendanceController_HoursReport_Success(t *testing.T) {
	svc := &mockAttendanceService{
		totals: []*domain.VolunteerHours{
			{VolunteerID: 1, VolunteerName: "Ana", TotalHours: 7},
		},
	}
	ctrl := NewAttendanceController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/reports/hours", nil)
	w := httptest.NewRecorder()

	ctrl.HoursReport(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp struct {
		Data  []*domain.VolunteerHours `json:"data"`
		Error *helpers.APIError        `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].TotalHours != 7 {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}

func TestAttendanceController_HoursReport_Error(t *testing.T) {
	ctrl := NewAttendanceController(testLogger(), &mockAttendanceService{err: errors.New("db down")})

	req := httptest.NewRequest(http.MethodGet, "/reports/hours", nil)
	w := httptest.NewRecorder()

	ctrl.HoursReport(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}
