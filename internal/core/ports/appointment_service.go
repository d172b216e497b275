package ports

import (
	"context"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
)

// BookAppointmentInput carries the data needed to book an appointment.
// Client identity comes from the authenticated principal, never from
// request input.
type BookAppointmentInput struct {
	ClientID           string
	ClientEmail        string
	LawyerProfileID    string
	AppointmentDate    string
	ProblemDescription string
	Notes              string
}

// AppointmentPage is one page of appointments plus the total count.
type AppointmentPage struct {
	Items []*domain.Appointment
	Total int64
	Page  int
	Size  int
}

// AppointmentService defines the booking use cases. Ownership rules:
// a lawyer only lists and mutates appointments on their own profile,
// a client only lists their own bookings.
type AppointmentService interface {
	Book(ctx context.Context, input BookAppointmentInput) (*domain.Appointment, error)
	// ListByLawyer resolves lawyerID first as a user id, then as a
	// profile id, and requires the principal to own the profile.
	ListByLawyer(ctx context.Context, principal domain.Principal, lawyerID string, page, size int) (*AppointmentPage, error)
	ListMine(ctx context.Context, principal domain.Principal, page, size int) (*AppointmentPage, error)
	// UpdateStatus checks existence first, then ownership, then the
	// status whitelist; the record is unchanged on any failure.
	UpdateStatus(ctx context.Context, principal domain.Principal, appointmentID string, status string) (*domain.Appointment, error)
}
