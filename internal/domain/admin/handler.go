package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"
)

// RegisterRoutes monta login/logout de la cuenta admin compartida.
func RegisterRoutes(r chi.Router, verifier auth.CredentialVerifier, sm *scs.SessionManager, log logger.Logger) {
	r.Post("/login", loginHandler(verifier, sm, log))
	r.Post("/logout", logoutHandler(sm))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// loginHandler godoc
// @Summary  Start an admin session
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body  body  loginRequest  true  "credentials"
// @Success  200  {object}  messageResponse
// @Failure  401  {object}  errorResponse
// @Router   /login [post]
func loginHandler(verifier auth.CredentialVerifier, sm *scs.SessionManager, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		claims, err := verifier.Verify(r.Context(), req.Username, req.Password)
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidCredentials) {
				log.Error("credential check failed", map[string]any{"error": err})
			}
			log.Warn("admin login rejected", map[string]any{"username": req.Username})
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid credentials"})
			return
		}

		if err := middleware.StartAdminSession(r.Context(), sm, claims); err != nil {
			log.Error("start admin session", map[string]any{"error": err})
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}

		log.Info("admin logged in", map[string]any{"username": claims.Username})
		writeJSON(w, http.StatusOK, messageResponse{Message: "Login successful"})
	}
}

// logoutHandler godoc
// @Summary  End the admin session
// @Tags     admin
// @Produce  json
// @Success  200  {object}  messageResponse
// @Router   /logout [post]
func logoutHandler(sm *scs.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := middleware.EndAdminSession(r.Context(), sm); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
