package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
	"github.com/legalsheba/legalsheba-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users   ports.UserRepository
	lawyers ports.LawyerRepository
	cache   ports.DirectoryCache
	hasher  ports.PasswordHasher
	tokens  ports.TokenService
}

func NewAuthService(users ports.UserRepository, lawyers ports.LawyerRepository, cache ports.DirectoryCache, hasher ports.PasswordHasher, tokens ports.TokenService) *AuthService {
	return &AuthService{users: users, lawyers: lawyers, cache: cache, hasher: hasher, tokens: tokens}
}

func (s *AuthService) RegisterClient(ctx context.Context, input ports.RegisterClientInput) (*ports.AuthResult, error) {
	user, err := s.createUser(ctx, input.Name, input.Email, input.Password, domain.RoleClient)
	if err != nil {
		return nil, err
	}
	return s.result(user, "")
}

func (s *AuthService) RegisterLawyer(ctx context.Context, input ports.RegisterLawyerInput) (*ports.AuthResult, error) {
	user, err := s.createUser(ctx, input.Name, input.Email, input.Password, domain.RoleLawyer)
	if err != nil {
		return nil, err
	}

	specialties := make([]string, 0, len(input.Specialties))
	for _, name := range input.Specialties {
		if name = strings.TrimSpace(name); name != "" {
			specialties = append(specialties, name)
		}
	}

	profile, err := s.lawyers.Create(ctx, &domain.LawyerProfile{
		UserID:              user.ID,
		Name:                user.Name,
		Experience:          input.Experience,
		Location:            input.Location,
		CourtOfPractice:     input.CourtOfPractice,
		AvailabilityDetails: input.AvailabilityDetails,
		VisitingHour:        input.VisitingHour,
		Specialties:         specialties,
		CreatedAt:           user.CreatedAt,
	})
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)

	return s.result(user, profile.ID)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// A missing account and a wrong password are indistinguishable
		// to the caller.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	// Having no profile is normal for clients; a failing profile store
	// is not.
	profileID := ""
	profile, err := s.lawyers.FindByUserID(ctx, user.ID)
	switch {
	case err == nil:
		profileID = profile.ID
	case !errors.Is(err, domain.ErrLawyerNotFound):
		return nil, err
	}

	return s.result(user, profileID)
}

func (s *AuthService) createUser(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailInUse
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
}

func (s *AuthService) result(user *domain.User, profileID string) (*ports.AuthResult, error) {
	token, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{
		Token:           token,
		UserID:          user.ID,
		Email:           user.Email,
		Role:            user.Role,
		DisplayName:     user.Name,
		LawyerProfileID: profileID,
	}, nil
}
