package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pet-adoption/internal/ports/auth"
)

func TestVerifier_PlainPassword(t *testing.T) {
	v, err := NewVerifier(Config{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	claims, err := v.Verify(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.True(t, claims.Admin)
	assert.Equal(t, "admin", claims.Username)

	_, err = v.Verify(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = v.Verify(context.Background(), "root", "admin123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestVerifier_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	v, err := NewVerifier(Config{Username: "admin", Password: "ignored", PasswordHash: string(hash)})
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), "admin", "s3cret")
	assert.NoError(t, err)

	_, err = v.Verify(context.Background(), "admin", "ignored")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestNewVerifier_Validation(t *testing.T) {
	_, err := NewVerifier(Config{Password: "x"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewVerifier(Config{Username: "admin"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewVerifier(Config{Username: "admin", PasswordHash: "not-a-hash"})
	assert.Error(t, err)
}
