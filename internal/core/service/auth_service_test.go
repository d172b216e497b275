package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/legalsheba/legalsheba-api/internal/core/domain"
	"github.com/legalsheba/legalsheba-api/internal/core/ports"
)

// --- Stubs shared by the service tests ---

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by email
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailInUse
	}
	stored := *user
	stored.ID = "u" + strconv.Itoa(r.nextID)
	r.nextID++
	r.users[stored.Email] = &stored
	clone := stored
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

type stubLawyerRepo struct {
	profiles map[string]*domain.LawyerProfile // keyed by profile id
	nextID   int
}

func newStubLawyerRepo() *stubLawyerRepo {
	return &stubLawyerRepo{profiles: make(map[string]*domain.LawyerProfile), nextID: 1}
}

func (r *stubLawyerRepo) Create(_ context.Context, profile *domain.LawyerProfile) (*domain.LawyerProfile, error) {
	stored := *profile
	stored.ID = "lp" + strconv.Itoa(r.nextID)
	r.nextID++
	r.profiles[stored.ID] = &stored
	clone := stored
	return &clone, nil
}

func (r *stubLawyerRepo) FindByID(_ context.Context, id string) (*domain.LawyerProfile, error) {
	lp, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrLawyerNotFound
	}
	clone := *lp
	return &clone, nil
}

func (r *stubLawyerRepo) FindByUserID(_ context.Context, userID string) (*domain.LawyerProfile, error) {
	for _, lp := range r.profiles {
		if lp.UserID == userID {
			clone := *lp
			return &clone, nil
		}
	}
	return nil, domain.ErrLawyerNotFound
}

func (r *stubLawyerRepo) List(_ context.Context) ([]*domain.LawyerProfile, error) {
	out := make([]*domain.LawyerProfile, 0, len(r.profiles))
	for _, lp := range r.profiles {
		clone := *lp
		out = append(out, &clone)
	}
	return out, nil
}

type stubCache struct {
	profiles    []*domain.LawyerProfile
	cached      bool
	invalidated int
}

func (c *stubCache) Get(_ context.Context) ([]*domain.LawyerProfile, bool) {
	if !c.cached {
		return nil, false
	}
	return c.profiles, true
}

func (c *stubCache) Set(_ context.Context, profiles []*domain.LawyerProfile) {
	c.profiles = profiles
	c.cached = true
}

func (c *stubCache) Invalidate(_ context.Context) {
	c.profiles = nil
	c.cached = false
	c.invalidated++
}

// fakeHasher is a deterministic PasswordHasher for tests.
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) { return "h:" + plaintext, nil }
func (fakeHasher) Verify(plaintext, hash string) bool    { return "h:"+plaintext == hash }

func newAuthService(users *stubUserRepo, lawyers *stubLawyerRepo, cache *stubCache) (*AuthService, *TokenService) {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(users, lawyers, cache, fakeHasher{}, tokens), tokens
}

// --- Tests ---

func TestAuthService_RegisterClient_Success(t *testing.T) {
	users := newStubUserRepo()
	svc, tokens := newAuthService(users, newStubLawyerRepo(), &stubCache{})

	result, err := svc.RegisterClient(context.Background(), ports.RegisterClientInput{
		Name: "Alice", Email: "alice@example.com", Password: "pw1",
	})
	if err != nil {
		t.Fatalf("RegisterClient returned error: %v", err)
	}
	if result.Role != domain.RoleClient {
		t.Fatalf("unexpected role: %s", result.Role)
	}
	if result.DisplayName != "Alice" || result.Email != "alice@example.com" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.LawyerProfileID != "" {
		t.Fatalf("client should have no lawyer profile id")
	}

	stored, err := users.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if stored.PasswordHash == "pw1" {
		t.Fatalf("expected password to be hashed")
	}

	claims, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("unexpected token subject: %s", claims.Subject)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc, _ := newAuthService(users, newStubLawyerRepo(), &stubCache{})

	input := ports.RegisterClientInput{Name: "Bob", Email: "bob@example.com", Password: "pw"}
	if _, err := svc.RegisterClient(context.Background(), input); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.RegisterClient(context.Background(), input); err != domain.ErrEmailInUse {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
	if len(users.users) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(users.users))
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), newStubLawyerRepo(), &stubCache{})

	if _, err := svc.RegisterClient(context.Background(), ports.RegisterClientInput{Email: "x@example.com", Password: "pw"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for missing name, got %v", err)
	}
}

func TestAuthService_RegisterLawyer_CreatesProfile(t *testing.T) {
	lawyers := newStubLawyerRepo()
	cache := &stubCache{cached: true}
	svc, _ := newAuthService(newStubUserRepo(), lawyers, cache)

	result, err := svc.RegisterLawyer(context.Background(), ports.RegisterLawyerInput{
		Name: "Carol", Email: "carol@example.com", Password: "pw",
		Experience: 7, Location: "Dhaka", CourtOfPractice: "High Court",
		Specialties: []string{" Family Law ", "", "Property"},
	})
	if err != nil {
		t.Fatalf("RegisterLawyer returned error: %v", err)
	}
	if result.Role != domain.RoleLawyer {
		t.Fatalf("unexpected role: %s", result.Role)
	}
	if result.LawyerProfileID == "" {
		t.Fatalf("expected lawyer profile id")
	}

	profile, err := lawyers.FindByID(context.Background(), result.LawyerProfileID)
	if err != nil {
		t.Fatalf("profile not persisted: %v", err)
	}
	if profile.UserID != result.UserID {
		t.Fatalf("profile owner mismatch: %s vs %s", profile.UserID, result.UserID)
	}
	if len(profile.Specialties) != 2 || profile.Specialties[0] != "Family Law" {
		t.Fatalf("unexpected specialties: %v", profile.Specialties)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected directory cache invalidation, got %d", cache.invalidated)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	lawyers := newStubLawyerRepo()
	svc, _ := newAuthService(newStubUserRepo(), lawyers, &stubCache{})

	reg, err := svc.RegisterLawyer(context.Background(), ports.RegisterLawyerInput{
		Name: "Dave", Email: "dave@example.com", Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "dave@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.LawyerProfileID != reg.LawyerProfileID {
		t.Fatalf("expected profile id %s, got %s", reg.LawyerProfileID, result.LawyerProfileID)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), newStubLawyerRepo(), &stubCache{})

	_, _ = svc.RegisterClient(context.Background(), ports.RegisterClientInput{Name: "Eve", Email: "eve@example.com", Password: "goodpass"})
	if _, err := svc.Login(context.Background(), "eve@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

// failingLawyerRepo simulates a broken profile store.
type failingLawyerRepo struct {
	*stubLawyerRepo
	findByUserErr error
}

func (r *failingLawyerRepo) FindByUserID(ctx context.Context, userID string) (*domain.LawyerProfile, error) {
	if r.findByUserErr != nil {
		return nil, r.findByUserErr
	}
	return r.stubLawyerRepo.FindByUserID(ctx, userID)
}

func TestAuthService_Login_ProfileStoreFailurePropagates(t *testing.T) {
	users := newStubUserRepo()
	lawyers := &failingLawyerRepo{stubLawyerRepo: newStubLawyerRepo()}
	tokens := NewTokenService("secret", time.Hour)
	svc := NewAuthService(users, lawyers, &stubCache{}, fakeHasher{}, tokens)

	if _, err := svc.RegisterClient(context.Background(), ports.RegisterClientInput{
		Name: "Frank", Email: "frank@example.com", Password: "pw",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	storeErr := errors.New("profile store unreachable")
	lawyers.findByUserErr = storeErr

	if _, err := svc.Login(context.Background(), "frank@example.com", "pw"); err != storeErr {
		t.Fatalf("expected profile store error to propagate, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), newStubLawyerRepo(), &stubCache{})

	// Unknown account and wrong password must be indistinguishable.
	if _, err := svc.Login(context.Background(), "ghost@example.com", "pw"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
