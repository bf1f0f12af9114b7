package service

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"gorm.io/gorm"

	"vault/internal/auth"
	apperrors "vault/internal/errors"
	"vault/internal/model"
	"vault/internal/repository"
)

// AuthService handles signup, login, and session issuance.
type AuthService interface {
	Signup(ctx context.Context, email, name, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

type authService struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	tokens       *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, activityRepo repository.ActivityRepository, tokens *auth.TokenService) AuthService {
	return &authService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		tokens:       tokens,
	}
}

// ValidatePassword enforces the signup password policy. Each violated rule
// surfaces its own requirement category.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return &apperrors.WeakPasswordError{Requirement: "at least 8 characters"}
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper {
		return &apperrors.WeakPasswordError{Requirement: "an uppercase letter"}
	}
	if !lower {
		return &apperrors.WeakPasswordError{Requirement: "a lowercase letter"}
	}
	if !digit {
		return &apperrors.WeakPasswordError{Requirement: "a digit"}
	}
	return nil
}

// Signup creates a viewer account and issues a session token. Duplicate
// emails are detected atomically at the storage layer, so concurrent signups
// with the same email produce exactly one record.
func (s *authService) Signup(ctx context.Context, email, name, password string) (*model.User, string, error) {
	if err := ValidatePassword(password); err != nil {
		return nil, "", err
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:          email,
		Name:           name,
		PasswordDigest: digest,
		Role:           model.RoleViewer,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return nil, "", apperrors.ErrDuplicateEmail
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.record(ctx, user, model.ActionSignup, "Account created")
	return user, token, nil
}

// Login authenticates a user and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordDigest) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.record(ctx, user, model.ActionLogin, "Signed in")
	return user, token, nil
}

// record appends an access log entry; failures never block the auth flow.
func (s *authService) record(ctx context.Context, user *model.User, action, details string) {
	_ = s.activityRepo.Create(ctx, &model.Activity{
		UserID:  user.ID,
		Action:  action,
		Details: details,
	})
}
