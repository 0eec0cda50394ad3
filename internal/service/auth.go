package service

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/minicart/minicart-go/internal/crypto"
	"github.com/minicart/minicart-go/internal/model"
	"github.com/minicart/minicart-go/internal/repository"
)

// MinPasswordLength is the minimum accepted sign-up password length.
const MinPasswordLength = 8

var (
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("email is not a valid address")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrEmailTaken       = errors.New("email already taken")

	// ErrInvalidCredentials covers both unknown-email and wrong-password
	// login failures. Distinguishing them would let a caller probe which
	// addresses have accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserStore is the persistence surface AuthService depends on.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// AuthService handles sign-up, login and token issuance.
type AuthService struct {
	users      UserStore
	jwtSecret  string
	jwtExpiry  time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		jwtSecret:  secret,
		jwtExpiry:  expiry,
		bcryptCost: bcryptCost,
	}
}

// SignUp creates a new user account and returns a signed bearer token.
func (s *AuthService) SignUp(ctx context.Context, req model.SignUpRequest) (string, error) {
	if err := validateSignUp(req); err != nil {
		return "", err
	}

	hash, err := crypto.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return "", err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", ErrEmailTaken
		}
		return "", err
	}

	return crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
}

// Login authenticates a user by email and password and returns a signed
// bearer token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !match {
		return "", ErrInvalidCredentials
	}

	return crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// ListUsers retrieves all users.
func (s *AuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func validateSignUp(req model.SignUpRequest) error {
	if req.Name == "" {
		return ErrNameRequired
	}
	if req.Email == "" {
		return ErrEmailRequired
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return ErrEmailInvalid
	}
	if req.Password == "" {
		return ErrPasswordRequired
	}
	if len(req.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
