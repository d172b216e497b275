package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
	"github.com/legalsheba/legalsheba-api/internal/core/ports"
)

// LawyerHandler handles the public lawyer directory and profile-id
// bridging lookups.
type LawyerHandler struct {
	service ports.LawyerService
}

func NewLawyerHandler(service ports.LawyerService) *LawyerHandler {
	return &LawyerHandler{service: service}
}

type lawyerResponse struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Experience          int      `json:"experience"`
	Location            string   `json:"location"`
	CourtOfPractice     string   `json:"courtOfPractice"`
	AvailabilityDetails string   `json:"availabilityDetails"`
	VisitingHour        string   `json:"vHour"`
	Specialties         []string `json:"specialties"`
}

func toLawyerResponse(lp *domain.LawyerProfile) lawyerResponse {
	specs := lp.Specialties
	if specs == nil {
		specs = []string{}
	}
	return lawyerResponse{
		ID:                  lp.ID,
		Name:                lp.Name,
		Experience:          lp.Experience,
		Location:            lp.Location,
		CourtOfPractice:     lp.CourtOfPractice,
		AvailabilityDetails: lp.AvailabilityDetails,
		VisitingHour:        lp.VisitingHour,
		Specialties:         specs,
	}
}

// List handles GET /lawyers — the public directory.
//
// @Summary      List all lawyers
// @Tags         lawyers
// @Produce      json
// @Success      200  {array}  lawyerResponse
// @Router       /lawyers [get]
func (h *LawyerHandler) List(c echo.Context) error {
	profiles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]lawyerResponse, 0, len(profiles))
	for _, lp := range profiles {
		out = append(out, toLawyerResponse(lp))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /lawyers/:id.
//
// @Summary      Get a lawyer profile
// @Tags         lawyers
// @Produce      json
// @Param        id   path      string  true  "Lawyer profile id"
// @Success      200  {object}  lawyerResponse
// @Failure      404  {object}  map[string]string
// @Router       /lawyers/{id} [get]
func (h *LawyerHandler) Get(c echo.Context) error {
	profile, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLawyerResponse(profile))
}

// ProfileIDByUser handles GET /lawyers/by-user/:userId/profile-id.
//
// @Summary      Resolve a profile id from a user id
// @Tags         lawyers
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {string}  string
// @Failure      404     {object}  map[string]string
// @Router       /lawyers/by-user/{userId}/profile-id [get]
func (h *LawyerHandler) ProfileIDByUser(c echo.Context) error {
	id, err := h.service.ProfileIDByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, id)
}

// MyProfileID handles GET /lawyers/me/profile-id for the authenticated
// lawyer.
//
// @Summary      Resolve my profile id
// @Tags         lawyers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {string}  string
// @Failure      404  {object}  map[string]string
// @Router       /lawyers/me/profile-id [get]
func (h *LawyerHandler) MyProfileID(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	id, err := h.service.ProfileIDByUser(c.Request().Context(), principal.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, id)
}
