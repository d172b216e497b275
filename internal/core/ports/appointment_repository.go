package ports

import (
	"context"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
)

// AppointmentRepository defines persistence operations for appointments.
// List queries return pages sorted newest first together with the total
// number of matching records.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListByLawyer(ctx context.Context, lawyerProfileID string, page, size int) ([]*domain.Appointment, int64, error)
	ListByClient(ctx context.Context, clientID string, page, size int) ([]*domain.Appointment, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
}
