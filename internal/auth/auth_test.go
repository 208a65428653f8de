package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/kylejryan/medical-claims-portal/internal/apperr"
	"github.com/kylejryan/medical-claims-portal/internal/models"
	"github.com/kylejryan/medical-claims-portal/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUserStore is an in-memory UserStore fake keyed by email.
type memUserStore struct {
	users map[string]models.User
	puts  int
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]models.User{}}
}

func (m *memUserStore) Put(_ context.Context, u models.User) error {
	m.puts++
	m.users[u.Email] = u
	return nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := m.users[email]
	if !ok {
		return models.User{}, apperr.ErrNotFound
	}
	return u, nil
}

func newService(t *testing.T, store UserStore) *Service {
	t.Helper()
	tokens, err := token.New("test-secret")
	require.NoError(t, err)
	return New(store, tokens, func() string { return "2026-01-01T00:00:00Z" })
}

func TestRegister_ThenVerify(t *testing.T) {
	store := newMemUserStore()
	svc := newService(t, store)

	tok, err := svc.Register(context.Background(), "alice@example.com", "Str0ng!pass", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", id.Email)

	u := store.users["alice@example.com"]
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "Str0ng!pass", u.PasswordHash, "password must not be stored in the clear")
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "2026-01-01T00:00:00Z", u.CreatedAt)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newMemUserStore()
	svc := newService(t, store)

	_, err := svc.Register(context.Background(), "alice@example.com", "Str0ng!pass", "Alice")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice@example.com", "0ther!Pass", "Alice Again")
	assert.True(t, errors.Is(err, apperr.ErrAlreadyExists), "got %v", err)
	assert.Equal(t, 1, store.puts, "second registration must not write a user record")
}

func TestLogin(t *testing.T) {
	store := newMemUserStore()
	svc := newService(t, store)

	_, err := svc.Register(context.Background(), "alice@example.com", "Str0ng!pass", "Alice")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		tok, err := svc.Login(context.Background(), "alice@example.com", "Str0ng!pass")
		require.NoError(t, err)
		id, err := svc.Verify(tok)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", id.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		tok, err := svc.Login(context.Background(), "alice@example.com", "WrongPass1!")
		assert.True(t, errors.Is(err, apperr.ErrInvalidCredential), "got %v", err)
		assert.Empty(t, tok)
	})

	t.Run("unknown email", func(t *testing.T) {
		tok, err := svc.Login(context.Background(), "nobody@example.com", "Str0ng!pass")
		assert.True(t, errors.Is(err, apperr.ErrNotFound), "got %v", err)
		assert.Empty(t, tok)
	})
}
