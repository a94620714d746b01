package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/hotel-booking/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Identity is what a session token carries about its holder.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

// TokenManager provides logic for session token generation and parsing.
type TokenManager interface {
	NewSessionToken(userID uuid.UUID, role string) (string, time.Duration, error)
	Parse(token string) (*Identity, error)
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Manager struct {
	signingKey string
	sessionTTL time.Duration
	now        func() time.Time
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("empty signing key")
	}

	if cfg.SessionTTL == 0 {
		return nil, errors.New("empty session token ttl")
	}

	return &Manager{
		signingKey: cfg.SigningKey,
		sessionTTL: cfg.SessionTTL,
		now:        time.Now,
	}, nil
}

func (m *Manager) NewSessionToken(userID uuid.UUID, role string) (string, time.Duration, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.sessionTTL)),
		},
	})

	signed, err := token.SignedString([]byte(m.signingKey))
	if err != nil {
		return "", 0, errors.New("sign jwt failed")
	}

	return signed, m.sessionTTL, nil
}

func (m *Manager) Parse(token string) (*Identity, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(m.signingKey), nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not an uuid", ErrInvalidToken)
	}

	return &Identity{UserID: userID, Role: claims.Role}, nil
}
