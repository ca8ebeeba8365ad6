package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teka-app/teka/internal/models"
	"github.com/teka-app/teka/internal/storage"
)

func newAuth(t *testing.T) (*AuthService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemory()
	svc, err := NewAuthService(store)
	require.NoError(t, err)
	return svc, store
}

func TestRegisterSignsIn(t *testing.T) {
	svc, _ := newAuth(t)

	user, err := svc.Register("linh", "linh@example.com", "secret", "")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "linh", user.Username)
	assert.Equal(t, "linh@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
	assert.Contains(t, user.ProfilePicture, "dicebear.com")
	assert.Empty(t, user.DietaryPreferences)

	current, ok := svc.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuth(t)

	_, err := svc.Register("linh", "linh@example.com", "secret", "")
	require.NoError(t, err)

	_, err = svc.Register("someone", "linh@example.com", "other", "")
	assert.ErrorIs(t, err, ErrUserExists)

	// The failed attempt must not touch the registry.
	assert.Len(t, svc.Users(), 1)
}

func TestRegisterKeepsSuppliedAvatar(t *testing.T) {
	svc, _ := newAuth(t)

	user, err := svc.Register("linh", "linh@example.com", "secret", "https://example.com/me.png")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/me.png", user.ProfilePicture)
}

func TestLoginAndLogout(t *testing.T) {
	svc, _ := newAuth(t)

	_, err := svc.Register("linh", "linh@example.com", "secret", "")
	require.NoError(t, err)
	require.NoError(t, svc.Logout())

	_, ok := svc.CurrentUser()
	assert.False(t, ok)

	user, err := svc.Login("linh@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "linh", user.Username)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.Login("linh@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Logout with no session is a no-op.
	require.NoError(t, svc.Logout())
	require.NoError(t, svc.Logout())
}

func TestSessionSurvivesReload(t *testing.T) {
	svc, store := newAuth(t)

	registered, err := svc.Register("linh", "linh@example.com", "secret", "")
	require.NoError(t, err)

	reloaded, err := NewAuthService(store)
	require.NoError(t, err)

	current, ok := reloaded.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, registered.ID, current.ID)

	_, err = reloaded.Login("linh@example.com", "secret")
	assert.NoError(t, err)
}

func TestCorruptSessionIsCleared(t *testing.T) {
	svc, store := newAuth(t)
	_, err := svc.Register("linh", "linh@example.com", "secret", "")
	require.NoError(t, err)

	require.NoError(t, store.Put("currentUser", []byte("garbage")))

	reloaded, err := NewAuthService(store)
	require.NoError(t, err)

	_, ok := reloaded.CurrentUser()
	assert.False(t, ok)
}

func TestUpdateProfile(t *testing.T) {
	svc, store := newAuth(t)

	_, err := svc.Register("linh", "linh@example.com", "secret", "")
	require.NoError(t, err)

	prefs := []string{"vegetarian", "no peanuts"}
	updated, err := svc.UpdateProfile(models.UserUpdate{DietaryPreferences: &prefs})
	require.NoError(t, err)
	assert.Equal(t, prefs, updated.DietaryPreferences)

	// The registry record changes too, and the change persists.
	reloaded, err := NewAuthService(store)
	require.NoError(t, err)
	users := reloaded.Users()
	require.Len(t, users, 1)
	assert.Equal(t, prefs, users[0].DietaryPreferences)

	require.NoError(t, svc.Logout())
	_, err = svc.UpdateProfile(models.UserUpdate{DietaryPreferences: &prefs})
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestUsersAreSanitized(t *testing.T) {
	svc, _ := newAuth(t)

	_, err := svc.Register("linh", "linh@example.com", "secret", "")
	require.NoError(t, err)

	for _, u := range svc.Users() {
		assert.Empty(t, u.PasswordHash)
	}
}
