// Package auth implements the login and register flow over the plaintext
// credential store. It only reads and writes the credential file; nothing
// else in the core depends on it.
package auth

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"jbpos/internal/domain"
	"jbpos/internal/store"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Service authenticates and registers operator accounts.
type Service struct {
	users  *store.UserStore
	logger *zap.Logger
}

// NewService creates the auth service over the user store.
func NewService(users *store.UserStore, logger *zap.Logger) *Service {
	return &Service{users: users, logger: logger}
}

// HasUsers reports whether any account exists; the shell forces first-run
// admin creation when it is false.
func (s *Service) HasUsers() bool {
	return !s.users.Empty()
}

// Login matches the username case-insensitively and the password exactly.
func (s *Service) Login(username, password string) (*domain.User, error) {
	u := s.users.FindByName(strings.TrimSpace(username))
	if u == nil || u.Password != password {
		return nil, ErrInvalidCredentials
	}
	s.logger.Info("Operator logged in", zap.String("username", u.Username))
	return u, nil
}

// Register creates a new operator account. Usernames are unique ignoring
// case.
func (s *Service) Register(username, password string) (*domain.User, error) {
	u, err := s.users.Add(domain.User{Username: strings.TrimSpace(username), Password: password})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Operator registered", zap.String("username", u.Username))
	return u, nil
}
