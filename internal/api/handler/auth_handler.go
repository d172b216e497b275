package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalsheba/legalsheba-api/internal/api/metrics"
	"github.com/legalsheba/legalsheba-api/internal/core/ports"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerLawyerRequest struct {
	Name                string   `json:"name"     validate:"required"`
	Email               string   `json:"email"    validate:"required,email"`
	Password            string   `json:"password" validate:"required,min=6"`
	Experience          int      `json:"experience"`
	Location            string   `json:"location"`
	CourtOfPractice     string   `json:"court_of_practice"`
	AvailabilityDetails string   `json:"availability_details"`
	VisitingHour        string   `json:"v_hour"`
	Specialties         []string `json:"specialties"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token           string `json:"token"`
	UserID          string `json:"userId"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	DisplayName     string `json:"displayName"`
	LawyerProfileID string `json:"lawyerProfileId,omitempty"`
}

func toAuthResponse(r *ports.AuthResult) authResponse {
	return authResponse{
		Token:           r.Token,
		UserID:          r.UserID,
		Email:           r.Email,
		Role:            r.Role,
		DisplayName:     r.DisplayName,
		LawyerProfileID: r.LawyerProfileID,
	}
}

// Register creates a client account and returns a fresh token.
//
// @Summary      Register a new client
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.authService.RegisterClient(c.Request().Context(), ports.RegisterClientInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(result.Role).Inc()
	return c.JSON(http.StatusOK, toAuthResponse(result))
}

// RegisterLawyer creates a lawyer account together with its practice
// profile and optional specialties.
//
// @Summary      Register a new lawyer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerLawyerRequest  true  "Registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/register-lawyer [post]
func (h *AuthHandler) RegisterLawyer(c echo.Context) error {
	var req registerLawyerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.authService.RegisterLawyer(c.Request().Context(), ports.RegisterLawyerInput{
		Name:                req.Name,
		Email:               req.Email,
		Password:            req.Password,
		Experience:          req.Experience,
		Location:            req.Location,
		CourtOfPractice:     req.CourtOfPractice,
		AvailabilityDetails: req.AvailabilityDetails,
		VisitingHour:        req.VisitingHour,
		Specialties:         req.Specialties,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(result.Role).Inc()
	return c.JSON(http.StatusOK, toAuthResponse(result))
}

// Login authenticates a user and returns a token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toAuthResponse(result))
}
