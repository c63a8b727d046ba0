package services

import (
	"errors"

	"microblog/app/models"
	"microblog/app/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthService owns user identity: registration and credential verification.
type AuthService struct {
	users repositories.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

type credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Register creates a new user with an irreversibly hashed password and
// returns its ID. A duplicate username fails with repositories.ErrConflict.
func (s *AuthService) Register(username, password string) (int, error) {
	if err := validate.Struct(credentials{Username: username, Password: password}); err != nil {
		return 0, asValidationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// VerifyCredentials checks a username/password pair and returns the user's
// ID on match. The bcrypt comparison is constant-time; unknown users and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) VerifyCredentials(username, password string) (int, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, ErrInvalidCredentials
		}
		return 0, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return 0, ErrInvalidCredentials
	}
	return user.ID, nil
}
