package services

import (
	"errors"
	"fmt"

	"civic/internal/models"
	"civic/internal/repositories"
)

// AuthService handles login. Passwords are stored and compared as given.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Login returns the first user whose email and password both match.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByCredentials(email, password)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up credentials: %w", err)
	}
	return user, nil
}
