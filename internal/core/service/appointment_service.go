package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
	"github.com/legalsheba/legalsheba-api/internal/core/ports"
)

// AppointmentService implements booking, principal-scoped listings and
// the status lifecycle guard.
type AppointmentService struct {
	appointments ports.AppointmentRepository
	lawyers      ports.LawyerRepository
	users        ports.UserRepository
	logger       zerolog.Logger
}

func NewAppointmentService(appointments ports.AppointmentRepository, lawyers ports.LawyerRepository, users ports.UserRepository, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{appointments: appointments, lawyers: lawyers, users: users, logger: logger}
}

// Book creates a PENDING appointment between the acting client and the
// given lawyer profile. Display names of both parties are denormalized
// onto the record at booking time.
func (s *AppointmentService) Book(ctx context.Context, input ports.BookAppointmentInput) (*domain.Appointment, error) {
	lawyer, err := s.lawyers.FindByID(ctx, input.LawyerProfileID)
	if err != nil {
		return nil, err
	}

	client, err := s.users.FindByEmail(ctx, input.ClientEmail)
	if err != nil {
		return nil, err
	}

	appt, err := s.appointments.Create(ctx, &domain.Appointment{
		ClientID:           input.ClientID,
		ClientName:         client.Name,
		LawyerProfileID:    lawyer.ID,
		LawyerUserID:       lawyer.UserID,
		LawyerName:         lawyer.Name,
		AppointmentDate:    input.AppointmentDate,
		Status:             domain.StatusPending,
		ProblemDescription: input.ProblemDescription,
		Notes:              input.Notes,
		CreatedAt:          time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("lawyer_profile_id", lawyer.ID).Msg("failed to book appointment")
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", appt.ID).
		Str("client_id", appt.ClientID).
		Str("lawyer_profile_id", appt.LawyerProfileID).
		Msg("appointment booked")

	return appt, nil
}

// ListByLawyer returns a page of the appointments on a lawyer profile.
// lawyerID resolves first as a user id, then as a profile id. The
// principal must own the resolved profile.
func (s *AppointmentService) ListByLawyer(ctx context.Context, principal domain.Principal, lawyerID string, page, size int) (*ports.AppointmentPage, error) {
	profile, err := s.lawyers.FindByUserID(ctx, lawyerID)
	if errors.Is(err, domain.ErrLawyerNotFound) {
		profile, err = s.lawyers.FindByID(ctx, lawyerID)
	}
	if err != nil {
		return nil, err
	}

	if profile.UserID != principal.ID {
		return nil, domain.ErrForbidden
	}

	items, total, err := s.appointments.ListByLawyer(ctx, profile.ID, page, size)
	if err != nil {
		return nil, err
	}
	return &ports.AppointmentPage{Items: items, Total: total, Page: page, Size: size}, nil
}

// ListMine returns a page of the principal's own bookings. The query is
// scoped to the principal's user id, so no separate ownership check is
// needed.
func (s *AppointmentService) ListMine(ctx context.Context, principal domain.Principal, page, size int) (*ports.AppointmentPage, error) {
	items, total, err := s.appointments.ListByClient(ctx, principal.ID, page, size)
	if err != nil {
		return nil, err
	}
	return &ports.AppointmentPage{Items: items, Total: total, Page: page, Size: size}, nil
}

// UpdateStatus advances an appointment's status. Order of checks:
// existence (404), ownership (403), status whitelist (400). Nothing is
// persisted unless all three pass. An empty status keeps the current one.
func (s *AppointmentService) UpdateStatus(ctx context.Context, principal domain.Principal, appointmentID string, status string) (*domain.Appointment, error) {
	appt, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if appt.LawyerUserID != principal.ID {
		return nil, domain.ErrForbidden
	}

	next := domain.AppointmentStatus(status)
	if status == "" {
		next = appt.Status
	}
	if !next.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.appointments.UpdateStatus(ctx, appt.ID, next)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", appt.ID).
		Str("status", string(next)).
		Msg("appointment status updated")

	return updated, nil
}
