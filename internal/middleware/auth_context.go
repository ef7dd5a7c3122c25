package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"

	"pet-adoption/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// Keys dentro de la sesión server-side.
const (
	sessionAdminKey    = "admin_logged_in"
	sessionUsernameKey = "admin_username"
)

type SessionOptions struct {
	Lifetime     time.Duration
	CookieName   string
	CookieSecure bool
}

// NewSessionManager crea el store de sesiones (in-memory). El cookie solo
// lleva el token; el flag admin vive del lado del servidor.
func NewSessionManager(opts SessionOptions) *scs.SessionManager {
	sm := scs.New()
	if opts.Lifetime > 0 {
		sm.Lifetime = opts.Lifetime
	}
	sm.Cookie.Name = "session"
	if name := strings.TrimSpace(opts.CookieName); name != "" {
		sm.Cookie.Name = name
	}
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = opts.CookieSecure
	return sm
}

// AuthContext lee el flag admin de la sesión y setea claims en el contexto.
// Debe ir después de sm.LoadAndSave. Sin sesión admin el request sigue igual;
// RequireAdmin decide el 401.
func AuthContext(sm *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sm.GetBool(r.Context(), sessionAdminKey) {
				next.ServeHTTP(w, r)
				return
			}

			claims := auth.Claims{
				Username: sm.GetString(r.Context(), sessionUsernameKey),
				Admin:    true,
			}
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin corta con 401 si no hay sesión admin.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		if !ok || !claims.Admin {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized, please login"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// StartAdminSession rota el token (evita fijación de sesión) y marca la
// sesión como admin.
func StartAdminSession(ctx context.Context, sm *scs.SessionManager, claims auth.Claims) error {
	if err := sm.RenewToken(ctx); err != nil {
		return err
	}
	sm.Put(ctx, sessionAdminKey, true)
	sm.Put(ctx, sessionUsernameKey, claims.Username)
	return nil
}

// EndAdminSession es idempotente.
func EndAdminSession(ctx context.Context, sm *scs.SessionManager) error {
	sm.Remove(ctx, sessionAdminKey)
	sm.Remove(ctx, sessionUsernameKey)
	return sm.RenewToken(ctx)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}
