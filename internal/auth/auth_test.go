package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jbpos/internal/store"
)

func authService(t *testing.T) (*Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "admins.txt")
	users, err := store.OpenUserStore(path, zap.NewNop())
	require.NoError(t, err)
	return NewService(users, zap.NewNop()), path
}

func TestRegisterAndLogin(t *testing.T) {
	s, path := authService(t)
	assert.False(t, s.HasUsers())

	u, err := s.Register("admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.True(t, s.HasUsers())

	// Username matches ignoring case, password does not.
	got, err := s.Login("ADMIN", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)

	_, err = s.Login("admin", "SECRET")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login("nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Credentials land in the file as-is.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "admin|secret\n", string(data))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	s, _ := authService(t)
	_, err := s.Register("admin", "secret")
	require.NoError(t, err)

	_, err = s.Register("Admin", "other")
	assert.ErrorIs(t, err, store.ErrUserExists)
}

func TestRegisterRequiresUsernameAndPassword(t *testing.T) {
	s, _ := authService(t)
	_, err := s.Register("  ", "secret")
	assert.Error(t, err)
	_, err = s.Register("admin", "")
	assert.Error(t, err)
}

func TestLoginAgainstExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admins.txt")
	require.NoError(t, os.WriteFile(path, []byte("jb|pass123\n"), 0o644))
	users, err := store.OpenUserStore(path, zap.NewNop())
	require.NoError(t, err)
	s := NewService(users, zap.NewNop())

	got, err := s.Login("jb", "pass123")
	require.NoError(t, err)
	assert.Equal(t, "pass123", got.Password)
}
