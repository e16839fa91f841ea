package auth

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"sehatanak.id/stunting-assistant/internal/store"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
// Callers must not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Service implements account management on top of the store.
type Service struct {
	store *store.SQLiteStore
}

func NewService(s *store.SQLiteStore) *Service {
	return &Service{store: s}
}

func (s *Service) Register(username, password string, email, name *string) error {
	hash, err := HashPassword(password)
	if err != nil {
		logrus.Errorf("Failed to hash password for user %q: %v", username, err)
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.store.CreateUser(username, hash, email, name)
}

// Authenticate verifies the password and returns the user's display name.
func (s *Service) Authenticate(username, password string) (string, error) {
	user, err := s.store.GetUserByUsername(username)
	if err != nil {
		return "", err
	}
	if user == nil || !CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return user.DisplayName(), nil
}

func (s *Service) ChangePassword(username, oldPassword, newPassword string) error {
	if _, err := s.Authenticate(username, oldPassword); err != nil {
		return err
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	return s.store.UpdatePasswordHash(username, hash)
}

func (s *Service) UpdateProfile(username string, email, name *string) error {
	return s.store.UpdateProfile(username, email, name)
}

// DeleteAccount re-authenticates, then removes the user's chat rows followed
// by the user row.
func (s *Service) DeleteAccount(username, password string) error {
	if _, err := s.Authenticate(username, password); err != nil {
		return err
	}
	return s.store.DeleteUser(username)
}
