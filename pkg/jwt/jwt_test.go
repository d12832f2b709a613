package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewManager("secret", time.Minute, time.Hour)
	userID := uuid.NewString()

	token, err := m.GenerateAccessToken(userID, "winston")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "winston", claims.Username)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshTokenCarriesJTI(t *testing.T) {
	m := NewManager("secret", time.Minute, time.Hour)

	token, jti, err := m.GenerateRefreshToken(uuid.NewString())
	require.NoError(t, err)
	assert.NotEmpty(t, jti)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, jti, claims.ID)
	assert.Equal(t, "refresh", claims.Type)
}

func TestTokenTypeMismatch(t *testing.T) {
	m := NewManager("secret", time.Minute, time.Hour)

	access, err := m.GenerateAccessToken(uuid.NewString(), "winston")
	require.NoError(t, err)
	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)

	refresh, _, err := m.GenerateRefreshToken(uuid.NewString())
	require.NoError(t, err)
	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("secret", -time.Minute, time.Hour)

	token, err := m.GenerateAccessToken(uuid.NewString(), "winston")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	m := NewManager("secret", time.Minute, time.Hour)
	other := NewManager("other-secret", time.Minute, time.Hour)

	token, err := m.GenerateAccessToken(uuid.NewString(), "winston")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}
