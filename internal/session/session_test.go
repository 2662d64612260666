package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, email, role string, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestLoginDecodesClaims(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	store := NewStore(tokenFile)

	assert.False(t, store.IsAuthenticated())

	token := signedToken(t, "ana@gym.com", "admin", time.Now().Add(time.Hour))
	require.NoError(t, store.Login(token))

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, token, store.Token())
	require.NotNil(t, store.Claims())
	assert.Equal(t, "ana@gym.com", store.Claims().Subject)
	assert.Equal(t, "admin", store.Claims().Role)

	// token mirrored to durable storage
	raw, err := os.ReadFile(tokenFile)
	require.NoError(t, err)
	assert.Equal(t, token, string(raw))
}

func TestLoginExpiredTokenStillAuthenticated(t *testing.T) {
	// presence check only: expiry is the backend's problem
	store := NewStore(filepath.Join(t.TempDir(), "token"))
	token := signedToken(t, "ana@gym.com", "admin", time.Now().Add(-time.Hour))
	require.NoError(t, store.Login(token))
	assert.True(t, store.IsAuthenticated())
}

func TestLoginMalformedTokenForcesLogout(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	store := NewStore(tokenFile)

	good := signedToken(t, "ana@gym.com", "admin", time.Now().Add(time.Hour))
	require.NoError(t, store.Login(good))

	err := store.Login("definitely-not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.Claims())

	// invalid session is not held in persistent storage either
	_, statErr := os.Stat(tokenFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLogoutRemovesMirroredToken(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	store := NewStore(tokenFile)

	require.NoError(t, store.Login(signedToken(t, "ana@gym.com", "admin", time.Now().Add(time.Hour))))
	store.Logout()

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	_, err := os.Stat(tokenFile)
	assert.True(t, os.IsNotExist(err))
}

func TestRestore(t *testing.T) {
	tokenFile := filepath.Join(t.TempDir(), "token")
	token := signedToken(t, "ana@gym.com", "admin", time.Now().Add(time.Hour))
	require.NoError(t, os.WriteFile(tokenFile, []byte(token), 0o600))

	store := NewStore(tokenFile)
	store.Restore()

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "ana@gym.com", store.Claims().Email)
}

func TestRestoreMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "token"))
	store.Restore()
	assert.False(t, store.IsAuthenticated())
}
