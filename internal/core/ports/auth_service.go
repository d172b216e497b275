package ports

import "context"

// RegisterClientInput carries the fields needed to create a client account.
type RegisterClientInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterLawyerInput carries the account fields plus the practice
// metadata stored on the lawyer's profile.
type RegisterLawyerInput struct {
	Name                string
	Email               string
	Password            string
	Experience          int
	Location            string
	CourtOfPractice     string
	AvailabilityDetails string
	VisitingHour        string
	Specialties         []string
}

// AuthResult is returned by registration and login. LawyerProfileID is
// empty for accounts without a profile.
type AuthResult struct {
	Token           string
	UserID          string
	Email           string
	Role            string
	DisplayName     string
	LawyerProfileID string
}

// AuthService implements registration and login.
type AuthService interface {
	RegisterClient(ctx context.Context, input RegisterClientInput) (*AuthResult, error)
	RegisterLawyer(ctx context.Context, input RegisterLawyerInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
