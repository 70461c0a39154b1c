package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/domain"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/repo"
	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailTaken          = errors.New("email already registered")
	ErrDisplayNameRequired = errors.New("display name is required")
)

// UserService handles sign-in and sign-up.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// ValidateCredentials checks email and password; returns the user if valid.
func (s *UserService) ValidateCredentials(ctx context.Context, email, password string) (dom.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, repo.ErrNotFound) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Register creates a new user with a hashed password. The display name is
// required; that check happens here, before anything is written.
func (s *UserService) Register(ctx context.Context, email, password, displayName string) (dom.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	displayName = strings.TrimSpace(displayName)
	if email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	if displayName == "" {
		return dom.User{}, ErrDisplayNameRequired
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, email, displayName, string(hash))
	if err != nil {
		if utils.IsPGUniqueViolation(err) || errors.Is(err, repo.ErrEmailExists) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}
