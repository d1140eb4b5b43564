package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletvault/internal/middleware"
)

func TestStartSessionRoundTrip(t *testing.T) {
	secret := []byte("session-secret")
	issuer := NewSessionService(secret, time.Hour)

	session, err := issuer.StartSession(credAddr, true)
	require.NoError(t, err)
	assert.Equal(t, credAddr, session.Address)
	assert.True(t, session.IsAdmin)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)

	claims := &middleware.Claims{}
	token, err := jwt.ParseWithClaims(session.Token, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, credAddr, claims.Address)
	assert.True(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID, "token id should be set")
}

func TestStartSessionUniqueTokenIDs(t *testing.T) {
	issuer := NewSessionService([]byte("session-secret"), time.Hour)

	a, err := issuer.StartSession(credAddr, false)
	require.NoError(t, err)
	b, err := issuer.StartSession(credAddr, false)
	require.NoError(t, err)
	assert.NotEqual(t, a.Token, b.Token)
}

func TestStartSessionRejectsWrongKeyOnParse(t *testing.T) {
	issuer := NewSessionService([]byte("session-secret"), time.Hour)
	session, err := issuer.StartSession(credAddr, false)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(session.Token, &middleware.Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
