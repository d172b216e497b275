package domain

import (
	"errors"
	"time"
)

var ErrLawyerNotFound = errors.New("lawyer profile not found")

// LawyerProfile extends a User with role LAWYER. At most one profile
// exists per user (unique index on UserID). The owner's display name is
// denormalized onto the profile for directory listings.
type LawyerProfile struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	Name                string    `json:"name"`
	Experience          int       `json:"experience"`
	Location            string    `json:"location"`
	CourtOfPractice     string    `json:"court_of_practice"`
	AvailabilityDetails string    `json:"availability_details"`
	VisitingHour        string    `json:"v_hour"`
	Specialties         []string  `json:"specialties"`
	CreatedAt           time.Time `json:"created_at"`
}
