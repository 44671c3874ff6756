package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// AuthService checks the single operator credential. There is no user table;
// the event has one operator password, configured as a bcrypt hash.
type AuthService struct {
	passwordHash []byte
}

func NewAuthService(passwordHash string) *AuthService {
	return &AuthService{passwordHash: []byte(passwordHash)}
}

// Login verifies the operator password.
func (s *AuthService) Login(password string) error {
	if len(s.passwordHash) == 0 || password == "" {
		return ErrInvalidCredentials
	}
	err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("compare password hash: %w", err)
	}
	return nil
}

// HashPassword produces a bcrypt hash suitable for the operator password
// configuration value.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
