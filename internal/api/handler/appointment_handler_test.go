package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/legalsheba/legalsheba-api/internal/api/middleware"
	"github.com/legalsheba/legalsheba-api/internal/core/domain"
	"github.com/legalsheba/legalsheba-api/internal/core/ports"
)

type stubAppointmentService struct {
	bookInput  ports.BookAppointmentInput
	bookResult *domain.Appointment
	bookErr    error

	page    *ports.AppointmentPage
	pageErr error

	updated   *domain.Appointment
	updateErr error
}

func (s *stubAppointmentService) Book(_ context.Context, input ports.BookAppointmentInput) (*domain.Appointment, error) {
	s.bookInput = input
	return s.bookResult, s.bookErr
}

func (s *stubAppointmentService) ListByLawyer(_ context.Context, _ domain.Principal, _ string, page, size int) (*ports.AppointmentPage, error) {
	if s.pageErr != nil {
		return nil, s.pageErr
	}
	s.page.Page = page
	s.page.Size = size
	return s.page, nil
}

func (s *stubAppointmentService) ListMine(_ context.Context, _ domain.Principal, page, size int) (*ports.AppointmentPage, error) {
	if s.pageErr != nil {
		return nil, s.pageErr
	}
	s.page.Page = page
	s.page.Size = size
	return s.page, nil
}

func (s *stubAppointmentService) UpdateStatus(_ context.Context, _ domain.Principal, _ string, _ string) (*domain.Appointment, error) {
	return s.updated, s.updateErr
}

func appointmentContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.PrincipalKey, domain.Principal{
		ID:    "client-1",
		Email: "alice@example.com",
		Role:  domain.RoleClient,
	})
	return c, rec
}

func TestAppointmentHandler_Create(t *testing.T) {
	svc := &stubAppointmentService{
		bookResult: &domain.Appointment{
			ID:              "appt-1",
			ClientID:        "client-1",
			ClientName:      "Alice",
			LawyerName:      "Lara",
			AppointmentDate: "2026-09-01",
			Status:          domain.StatusPending,
		},
	}
	h := NewAppointmentHandler(svc)

	body := `{"lawyerProfileId":"prof-1","appointmentDate":"2026-09-01","problemDescription":"land dispute"}`
	c, rec := appointmentContext(t, http.MethodPost, "/appointments", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Client identity must come from the principal, not the payload.
	if svc.bookInput.ClientID != "client-1" || svc.bookInput.ClientEmail != "alice@example.com" {
		t.Fatalf("unexpected booking input: %+v", svc.bookInput)
	}

	var resp appointmentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "appt-1" || resp.Status != string(domain.StatusPending) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAppointmentHandler_CreateMissingFields(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentService{})

	c, rec := appointmentContext(t, http.MethodPost, "/appointments", `{"notes":"x"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAppointmentHandler_CreateUnknownLawyerIs400(t *testing.T) {
	svc := &stubAppointmentService{bookErr: domain.ErrLawyerNotFound}
	h := NewAppointmentHandler(svc)

	body := `{"lawyerProfileId":"nope","appointmentDate":"2026-09-01"}`
	c, rec := appointmentContext(t, http.MethodPost, "/appointments", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown profile, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "invalid lawyerProfileId" {
		t.Fatalf("unexpected error body: %q", resp.Error)
	}
}

func TestAppointmentHandler_ListMinePaging(t *testing.T) {
	svc := &stubAppointmentService{
		page: &ports.AppointmentPage{
			Items: []*domain.Appointment{{ID: "a1", Status: domain.StatusPending}},
			Total: 11,
		},
	}
	h := NewAppointmentHandler(svc)

	c, rec := appointmentContext(t, http.MethodGet, "/appointments/my?page=1&size=5", "")

	if err := h.ListMine(c); err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Content       []appointmentResponse `json:"content"`
		Page          int                   `json:"page"`
		Size          int                   `json:"size"`
		TotalElements int64                 `json:"totalElements"`
		TotalPages    int                   `json:"totalPages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Page != 1 || resp.Size != 5 || resp.TotalElements != 11 || resp.TotalPages != 3 {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if len(resp.Content) != 1 || resp.Content[0].ID != "a1" {
		t.Fatalf("unexpected content: %+v", resp.Content)
	}
}

func TestAppointmentHandler_ForbiddenPropagates(t *testing.T) {
	svc := &stubAppointmentService{pageErr: domain.ErrForbidden}
	h := NewAppointmentHandler(svc)

	c, _ := appointmentContext(t, http.MethodGet, "/appointments/by-lawyer/other", "")
	c.SetParamNames("id")
	c.SetParamValues("other")

	err := h.ListByLawyer(c)
	if err == nil {
		t.Fatalf("expected error to propagate to the error handler")
	}
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAppointmentHandler_UpdateStatus(t *testing.T) {
	svc := &stubAppointmentService{
		updated: &domain.Appointment{ID: "a1", Status: domain.StatusConfirmed},
	}
	h := NewAppointmentHandler(svc)

	c, rec := appointmentContext(t, http.MethodPatch, "/appointments/a1/status", `{"status":"CONFIRMED"}`)
	c.SetParamNames("id")
	c.SetParamValues("a1")

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp appointmentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != string(domain.StatusConfirmed) {
		t.Fatalf("expected CONFIRMED, got %s", resp.Status)
	}
}

func TestAppointmentHandler_NoPrincipalIs401(t *testing.T) {
	h := NewAppointmentHandler(&stubAppointmentService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/appointments/my", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListMine(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
