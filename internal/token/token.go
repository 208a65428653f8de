// Package token issues and verifies the signed bearer credentials that bind
// a request to a user identity.
package token

import (
	"fmt"
	"time"

	"github.com/kylejryan/medical-claims-portal/internal/apperr"
	"github.com/kylejryan/medical-claims-portal/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is the fixed validity window for issued credentials.
const TTL = 24 * time.Hour

// claims carries the user surrogate id and email alongside the registered
// expiry fields.
type claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 tokens with a shared secret.
type Service struct {
	secret []byte
	now    func() time.Time
}

// New constructs a Service. secret must be non-empty.
func New(secret string) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: empty signing secret")
	}
	return &Service{secret: []byte(secret), now: time.Now}, nil
}

// Issue returns a fresh signed credential for the given identity, valid for
// TTL from now.
func (s *Service) Issue(userID, email string) (string, error) {
	now := s.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	})
	return t.SignedString(s.secret)
}

// Verify parses and validates a credential, returning the bound identity.
// Every failure mode (bad signature, expiry, malformed input) collapses to
// apperr.ErrInvalidToken; the distinction never reaches a caller.
func (s *Service) Verify(tokenString string) (models.Identity, error) {
	var c claims
	t, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !t.Valid {
		return models.Identity{}, apperr.ErrInvalidToken
	}
	return models.Identity{UserID: c.UserID, Email: c.Email}, nil
}
