package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobtrackr/jobtrackr/internal/auth"
	"github.com/jobtrackr/jobtrackr/internal/dtos"
	"github.com/jobtrackr/jobtrackr/internal/models"
	"github.com/jobtrackr/jobtrackr/internal/repository"
)

// AuthService establishes accounts and issues session tokens, either from an
// email/password pair or a Google sign-in.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
	google auth.GoogleVerifier
	log    *logrus.Logger
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, google auth.GoogleVerifier, log *logrus.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, google: google, log: log}
}

func (s *AuthService) Register(ctx context.Context, req *dtos.RegisterRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	user := &models.User{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}
	s.log.WithField("user_id", user.ID).Info("user registered")
	return s.withToken(user)
}

func (s *AuthService) Login(ctx context.Context, req *dtos.LoginRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	// Google-only accounts have no password to check against.
	if user.PasswordHash == "" {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	return s.withToken(user)
}

// GoogleSignIn exchanges the OAuth authorization code, then finds or creates
// the matching account keyed by email.
func (s *AuthService) GoogleSignIn(ctx context.Context, code string) (*models.User, string, error) {
	profile, err := s.google.Exchange(ctx, code)
	if err != nil {
		s.log.WithError(err).Warn("google sign-in exchange failed")
		return nil, "", ErrInvalidCredentials
	}
	email := strings.ToLower(strings.TrimSpace(profile.Email))
	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		user = &models.User{
			Email:    email,
			Name:     profile.Name,
			GoogleID: profile.ID,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, "", err
		}
		s.log.WithField("user_id", user.ID).Info("user created via google sign-in")
	case err != nil:
		return nil, "", err
	default:
		if user.GoogleID == "" {
			user.GoogleID = profile.ID
			if user.Name == "" {
				user.Name = profile.Name
			}
			if err := s.users.Save(ctx, user); err != nil {
				return nil, "", err
			}
		}
	}
	return s.withToken(user)
}

// CurrentUser resolves the session's user id to its account.
func (s *AuthService) CurrentUser(ctx context.Context, id string) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *AuthService) withToken(user *models.User) (*models.User, string, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
