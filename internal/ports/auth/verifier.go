package auth

import (
	"context"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier valida usuario/contraseña y devuelve claims o
// ErrInvalidCredentials.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (Claims, error)
}
