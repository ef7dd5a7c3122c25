package static

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"pet-adoption/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("admin credentials not configured")
)

// Config de la única cuenta admin. Si PasswordHash (bcrypt) viene, se ignora
// Password.
type Config struct {
	Username     string
	Password     string
	PasswordHash string
}

// Verifier implementa auth.CredentialVerifier contra una cuenta fija.
type Verifier struct {
	username string
	password string
	hash     []byte
}

func NewVerifier(cfg Config) (*Verifier, error) {
	v := &Verifier{
		username: strings.TrimSpace(cfg.Username),
		password: cfg.Password,
	}
	if h := strings.TrimSpace(cfg.PasswordHash); h != "" {
		if _, err := bcrypt.Cost([]byte(h)); err != nil {
			return nil, err
		}
		v.hash = []byte(h)
	}
	if v.username == "" || (v.password == "" && v.hash == nil) {
		return nil, ErrNotConfigured
	}
	return v, nil
}

func (v *Verifier) Verify(ctx context.Context, username, password string) (auth.Claims, error) {
	if v == nil {
		return auth.Claims{}, ErrNotConfigured
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1

	var passOK bool
	if v.hash != nil {
		passOK = bcrypt.CompareHashAndPassword(v.hash, []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	}

	if !userOK || !passOK {
		return auth.Claims{}, auth.ErrInvalidCredentials
	}
	return auth.Claims{Username: v.username, Admin: true}, nil
}
