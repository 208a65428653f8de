// Package auth implements the identity capability: registration, login and
// credential verification over a user store.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/kylejryan/medical-claims-portal/internal/apperr"
	"github.com/kylejryan/medical-claims-portal/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the persistence surface the service needs.
type UserStore interface {
	Put(ctx context.Context, u models.User) error
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

// Tokens issues and verifies signed credentials.
type Tokens interface {
	Issue(userID, email string) (string, error)
	Verify(tokenString string) (models.Identity, error)
}

// Service wires the user store and token service together.
type Service struct {
	Users UserStore
	Token Tokens
	now   func() string
}

// New constructs the identity service.
func New(users UserStore, tokens Tokens, nowISO func() string) *Service {
	return &Service{Users: users, Token: tokens, now: nowISO}
}

// Register creates a new user and returns a signed credential for it.
// Fails with apperr.ErrAlreadyExists if the email is taken (case-sensitive
// exact match).
func (s *Service) Register(ctx context.Context, email, password, name string) (string, error) {
	_, err := s.Users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return "", apperr.ErrAlreadyExists
	case !errors.Is(err, apperr.ErrNotFound):
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	u := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Users.Put(ctx, u); err != nil {
		return "", err
	}
	return s.Token.Issue(u.ID, u.Email)
}

// Login checks the password for an existing email and returns a fresh
// credential. Missing users fail with apperr.ErrNotFound, wrong passwords
// with apperr.ErrInvalidCredential; no token is issued on either.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", apperr.ErrInvalidCredential
	}
	return s.Token.Issue(u.ID, u.Email)
}

// Verify validates a credential and returns the identity bound to it.
func (s *Service) Verify(tokenString string) (models.Identity, error) {
	return s.Token.Verify(tokenString)
}
