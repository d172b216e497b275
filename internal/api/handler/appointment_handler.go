package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalsheba/legalsheba-api/internal/api/metrics"
	"github.com/legalsheba/legalsheba-api/internal/core/domain"
	"github.com/legalsheba/legalsheba-api/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for appointment operations.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type createAppointmentRequest struct {
	LawyerProfileID    string `json:"lawyerProfileId"  validate:"required"`
	AppointmentDate    string `json:"appointmentDate"  validate:"required"`
	ProblemDescription string `json:"problemDescription"`
	Notes              string `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type appointmentResponse struct {
	ID                 string `json:"id"`
	AppointmentDate    string `json:"appointmentDate"`
	Status             string `json:"status"`
	ProblemDescription string `json:"problemDescription"`
	Notes              string `json:"notes"`
	ClientName         string `json:"clientName"`
	LawyerName         string `json:"lawyerName"`
}

func toAppointmentResponse(a *domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:                 a.ID,
		AppointmentDate:    a.AppointmentDate,
		Status:             string(a.Status),
		ProblemDescription: a.ProblemDescription,
		Notes:              a.Notes,
		ClientName:         a.ClientName,
		LawyerName:         a.LawyerName,
	}
}

func toAppointmentPage(p *ports.AppointmentPage) pagedResponse {
	items := make([]appointmentResponse, 0, len(p.Items))
	for _, a := range p.Items {
		items = append(items, toAppointmentResponse(a))
	}
	return newPagedResponse(items, p.Page, p.Size, p.Total)
}

// Create handles POST /appointments.
//
// @Summary      Book an appointment with a lawyer
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppointmentRequest  true  "Appointment details"
// @Success      200   {object}  appointmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   "Unauthorized"
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	appt, err := h.service.Book(c.Request().Context(), ports.BookAppointmentInput{
		ClientID:           principal.ID,
		ClientEmail:        principal.Email,
		LawyerProfileID:    req.LawyerProfileID,
		AppointmentDate:    req.AppointmentDate,
		ProblemDescription: req.ProblemDescription,
		Notes:              req.Notes,
	})
	if err != nil {
		// An unknown profile id is a caller mistake, not a missing page.
		if errors.Is(err, domain.ErrLawyerNotFound) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid lawyerProfileId"})
		}
		return err
	}

	metrics.AppointmentsBookedTotal.Inc()
	return c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

// ListByLawyer handles GET /appointments/by-lawyer/:id. Only the lawyer
// who owns the profile may list its appointments.
//
// @Summary      List appointments on a lawyer profile
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true   "Lawyer user id or profile id"
// @Param        page  query     int     false  "Zero-based page"
// @Param        size  query     int     false  "Page size (max 100)"
// @Success      200   {object}  pagedResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /appointments/by-lawyer/{id} [get]
func (h *AppointmentHandler) ListByLawyer(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	page, size := pageParams(c)
	result, err := h.service.ListByLawyer(c.Request().Context(), principal, c.Param("id"), page, size)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAppointmentPage(result))
}

// ListMine handles GET /appointments/my — the authenticated client's
// own bookings.
//
// @Summary      List my appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Zero-based page"
// @Param        size  query     int  false  "Page size (max 100)"
// @Success      200   {object}  pagedResponse
// @Router       /appointments/my [get]
func (h *AppointmentHandler) ListMine(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	page, size := pageParams(c)
	result, err := h.service.ListMine(c.Request().Context(), principal, page, size)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAppointmentPage(result))
}

// UpdateStatus handles PATCH /appointments/:id/status.
//
// @Summary      Update an appointment's status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Appointment id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  appointmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	appt, err := h.service.UpdateStatus(c.Request().Context(), principal, c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(string(appt.Status)).Inc()
	return c.JSON(http.StatusOK, toAppointmentResponse(appt))
}
