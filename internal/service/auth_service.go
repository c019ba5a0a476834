package service

import (
	"context"
	"errors"
	"strings"

	"mindconnect/internal/auth"
	"mindconnect/internal/domain"
	"mindconnect/internal/models"
	"mindconnect/internal/repository"
	"mindconnect/internal/types"

	"gorm.io/gorm"
)

var ErrInvalidCreds = domain.Unauthorized(domain.CodeInvalidCredentials, "Invalid email or password")

type LoginInput struct {
	Email    types.Optional `json:"email"`
	Password types.Optional `json:"password"`
}

type AuthService struct {
	userRepo *repository.UserRepository
	verifier auth.Verifier
}

func NewAuthService(userRepo *repository.UserRepository, verifier auth.Verifier) *AuthService {
	return &AuthService{userRepo: userRepo, verifier: verifier}
}

// Login checks a single credential. Unknown emails and wrong passwords both
// return ErrInvalidCreds, and both pay for a hash comparison.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	email, _ := requiredText(in.Email)
	password, _ := in.Password.Text()
	if email == "" || password == "" {
		return nil, domain.Validation(domain.CodeMissingFields, "Email and password are required")
	}
	if !validEmail(email) {
		return nil, domain.Validation(domain.CodeInvalidEmail, "Invalid email format")
	}
	u, err := s.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.verifier.Verify(auth.DummyHash(), password)
		return nil, ErrInvalidCreds
	}
	if err != nil {
		return nil, err
	}
	if !s.verifier.Verify(u.PasswordHash, password) {
		return nil, ErrInvalidCreds
	}
	return u, nil
}
