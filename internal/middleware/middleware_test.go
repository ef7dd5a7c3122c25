package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"
)

func newSessionRouter(t *testing.T) http.Handler {
	t.Helper()

	sm := NewSessionManager(SessionOptions{})
	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)
	r.Use(AuthContext(sm))

	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, StartAdminSession(r.Context(), sm, auth.Claims{Username: "admin", Admin: true}))
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, EndAdminSession(r.Context(), sm))
		w.WriteHeader(http.StatusOK)
	})
	r.With(RequireAdmin).Get("/private", func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(claims.Username))
	})
	return r
}

func TestRequireAdmin_WithoutSession(t *testing.T) {
	h := newSessionRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/private", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized, please login", body["error"])
}

func TestAdminSession_LoginAndLogout(t *testing.T) {
	h := newSessionRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	session := cookies[0]
	assert.Equal(t, "session", session.Name)
	assert.True(t, session.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(session)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(session)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// El token viejo ya no tiene sesión admin.
	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(session)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecover_RespondsJSON500(t *testing.T) {
	h := RequestID(Recover(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(chimw.RequestIDHeader))
}

func TestRequestLogger_RecordsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(RequestLogger(logger.NewNop()))
	r.Get("/pets/{petID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pets/7", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/pets/7", nil)
	assert.Equal(t, "unmatched", routePattern(req))
}
