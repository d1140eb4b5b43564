package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"walletvault/internal/middleware"
)

// Session is the issued handle. Transport decides how to attach it: the API
// variants return Token in the body, the simple recovery variant sets it as a
// cookie.
type Session struct {
	Token     string    `json:"token"`
	Address   string    `json:"address"`
	IsAdmin   bool      `json:"is_admin"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionIssuer interface {
	StartSession(address string, isAdmin bool) (*Session, error)
}

type sessionService struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionService(secret []byte, ttl time.Duration) SessionIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &sessionService{secret: secret, ttl: ttl}
}

func (s *sessionService) StartSession(address string, isAdmin bool) (*Session, error) {
	now := time.Now()
	expires := now.Add(s.ttl)

	claims := &middleware.Claims{
		Address: address,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &Session{
		Token:     signed,
		Address:   address,
		IsAdmin:   isAdmin,
		ExpiresAt: expires,
	}, nil
}
