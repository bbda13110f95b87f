package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtrackr/internal/auth"
	"github.com/jobtrackr/jobtrackr/internal/dtos"
	"github.com/jobtrackr/jobtrackr/internal/models"
	"github.com/jobtrackr/jobtrackr/internal/repository"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Save(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

type fakeGoogle struct {
	profile *auth.GoogleProfile
	err     error
}

func (g *fakeGoogle) Exchange(ctx context.Context, code string) (*auth.GoogleProfile, error) {
	return g.profile, g.err
}

func newAuthService(google auth.GoogleVerifier) (*AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(users, tokens, google, testLogger()), users
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(&fakeGoogle{})
	ctx := context.Background()

	user, token, err := svc.Register(ctx, &dtos.RegisterRequest{
		Email:    "Ayu@Example.COM",
		Password: "correct horse",
		Name:     "Ayu",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "ayu@example.com" {
		t.Errorf("email not lowercased: %q", user.Email)
	}
	if token == "" {
		t.Error("no token issued")
	}
	if user.PasswordHash == "correct horse" {
		t.Error("password stored in the clear")
	}

	if _, _, err := svc.Register(ctx, &dtos.RegisterRequest{Email: "ayu@example.com", Password: "whatever9"}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate register err = %v, want ErrEmailTaken", err)
	}

	if _, _, err := svc.Login(ctx, &dtos.LoginRequest{Email: "ayu@example.com", Password: "correct horse"}); err != nil {
		t.Errorf("Login: %v", err)
	}
	if _, _, err := svc.Login(ctx, &dtos.LoginRequest{Email: "ayu@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(ctx, &dtos.LoginRequest{Email: "nobody@example.com", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestGoogleSignInCreatesAccount(t *testing.T) {
	svc, users := newAuthService(&fakeGoogle{profile: &auth.GoogleProfile{
		ID:    "google-sub-1",
		Email: "Budi@Example.com",
		Name:  "Budi",
	}})
	ctx := context.Background()

	user, token, err := svc.GoogleSignIn(ctx, "auth-code")
	if err != nil {
		t.Fatalf("GoogleSignIn: %v", err)
	}
	if token == "" {
		t.Error("no token issued")
	}
	if user.Email != "budi@example.com" || user.GoogleID != "google-sub-1" {
		t.Errorf("user = %+v", user)
	}

	// A second sign-in reuses the account.
	again, _, err := svc.GoogleSignIn(ctx, "auth-code")
	if err != nil {
		t.Fatalf("second GoogleSignIn: %v", err)
	}
	if again.ID != user.ID {
		t.Errorf("second sign-in created a new account")
	}
	if len(users.users) != 1 {
		t.Errorf("user count = %d, want 1", len(users.users))
	}
}

func TestGoogleSignInLinksExistingEmailAccount(t *testing.T) {
	google := &fakeGoogle{profile: &auth.GoogleProfile{ID: "google-sub-2", Email: "ayu@example.com", Name: "Ayu"}}
	svc, _ := newAuthService(google)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, &dtos.RegisterRequest{Email: "ayu@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	linked, _, err := svc.GoogleSignIn(ctx, "auth-code")
	if err != nil {
		t.Fatalf("GoogleSignIn: %v", err)
	}
	if linked.ID != registered.ID {
		t.Error("google sign-in did not reuse the email account")
	}
	if linked.GoogleID != "google-sub-2" {
		t.Errorf("google id not linked: %q", linked.GoogleID)
	}
}

func TestGoogleSignInExchangeFailure(t *testing.T) {
	svc, _ := newAuthService(&fakeGoogle{err: errors.New("boom")})
	if _, _, err := svc.GoogleSignIn(context.Background(), "bad-code"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}
