package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUsers struct {
	byEmail map[string]User
	getErr  error
}

func (m *memUsers) Create(_ context.Context, u User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return ErrUserAlreadyExists
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (User, error) {
	if m.getErr != nil {
		return User{}, m.getErr
	}
	u, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, u User) (string, error) { return "token-" + u.Email, nil }

func TestEnsureAdminAndLogin(t *testing.T) {
	repo := &memUsers{byEmail: map[string]User{}}
	svc := NewAuthService(repo, staticTokens{})
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, " Admin@Example.com ", "s3cret"))
	u, ok := repo.byEmail["admin@example.com"]
	require.True(t, ok)
	assert.True(t, u.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))

	// idempotent, keeps the original password
	require.NoError(t, svc.EnsureAdmin(ctx, "admin@example.com", "other"))
	assert.Equal(t, u.PasswordHash, repo.byEmail["admin@example.com"].PasswordHash)

	res, err := svc.Login(ctx, "ADMIN@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "token-admin@example.com", res.Token)

	_, err = svc.Login(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureAdmin_Errors(t *testing.T) {
	svc := NewAuthService(&memUsers{byEmail: map[string]User{}}, staticTokens{})
	assert.ErrorIs(t, svc.EnsureAdmin(context.Background(), "", "x"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.EnsureAdmin(context.Background(), "a@b.c", ""), ErrInvalidCredentials)

	boom := errors.New("db down")
	svc = NewAuthService(&memUsers{byEmail: map[string]User{}, getErr: boom}, staticTokens{})
	assert.ErrorIs(t, svc.EnsureAdmin(context.Background(), "a@b.c", "x"), boom)
}
