package domain

import (
	"errors"
	"time"
)

// AppointmentStatus is one of the five recognized appointment states.
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "PENDING"
	StatusConfirmed  AppointmentStatus = "CONFIRMED"
	StatusInProgress AppointmentStatus = "IN_PROGRESS"
	StatusCompleted  AppointmentStatus = "COMPLETED"
	StatusRejected   AppointmentStatus = "REJECTED"
)

// validStatuses is a flat whitelist: any recognized status may replace
// any other. There is deliberately no transition graph.
var validStatuses = map[AppointmentStatus]struct{}{
	StatusPending:    {},
	StatusConfirmed:  {},
	StatusInProgress: {},
	StatusCompleted:  {},
	StatusRejected:   {},
}

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrInvalidStatus = errors.New("invalid status")
var ErrForbidden = errors.New("access forbidden")

// IsValid reports whether s is one of the five recognized statuses.
func (s AppointmentStatus) IsValid() bool {
	_, ok := validStatuses[s]
	return ok
}

// Appointment binds a client to a lawyer profile. Both references are
// immutable after creation; only the status changes, and only through
// the owning lawyer. The lawyer's owning user id and both display names
// are denormalized for ownership checks and listings.
type Appointment struct {
	ID                 string            `json:"id"`
	ClientID           string            `json:"client_id"`
	ClientName         string            `json:"client_name"`
	LawyerProfileID    string            `json:"lawyer_profile_id"`
	LawyerUserID       string            `json:"-"`
	LawyerName         string            `json:"lawyer_name"`
	AppointmentDate    string            `json:"appointment_date"`
	Status             AppointmentStatus `json:"status"`
	ProblemDescription string            `json:"problem_description"`
	Notes              string            `json:"notes"`
	CreatedAt          time.Time         `json:"created_at"`
}
