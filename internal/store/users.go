package store

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"jbpos/internal/codec"
	"jbpos/internal/domain"
)

var ErrUserExists = errors.New("username already taken")

// UserStore holds the operator accounts. The backing file keeps passwords
// in plaintext, the format the system has always used; it is preserved
// rather than silently migrated.
type UserStore struct {
	path   string
	logger *zap.Logger
	users  []*domain.User
}

// OpenUserStore loads the credential file.
func OpenUserStore(path string, logger *zap.Logger) (*UserStore, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	s := &UserStore{path: path, logger: logger}
	for _, line := range lines {
		u, err := codec.DecodeUser(line)
		if err != nil {
			logger.Debug("Dropping unreadable credential line", zap.Error(err))
			continue
		}
		s.users = append(s.users, u)
	}
	return s, nil
}

// Empty reports whether no account exists yet.
func (s *UserStore) Empty() bool {
	return len(s.users) == 0
}

// FindByName looks a user up by case-insensitive username, or nil.
func (s *UserStore) FindByName(username string) *domain.User {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return u
		}
	}
	return nil
}

// Add appends a new account. Usernames are unique ignoring case.
func (s *UserStore) Add(user domain.User) (*domain.User, error) {
	if strings.TrimSpace(user.Username) == "" || strings.TrimSpace(user.Password) == "" {
		return nil, fmt.Errorf("invalid user: username and password are required")
	}
	if s.FindByName(user.Username) != nil {
		return nil, ErrUserExists
	}
	u := user
	s.users = append(s.users, &u)
	return &u, s.Flush()
}

// Flush rewrites the credential file.
func (s *UserStore) Flush() error {
	lines := make([]string, 0, len(s.users))
	for _, u := range s.users {
		lines = append(lines, codec.EncodeUser(u))
	}
	return writeLines(s.path, lines)
}
