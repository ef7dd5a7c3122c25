package adoptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// unknownPetName se muestra cuando la mascota referida ya no existe.
const unknownPetName = "Unknown"

func RegisterRoutes(r chi.Router, svc *Service, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/adoption-requests", func(ar chi.Router) {
		// Cualquier visitante puede solicitar una adopción
		ar.Post("/", submitRequestHandler(svc))

		ar.Group(func(admin chi.Router) {
			admin.Use(requireAdmin)
			admin.Get("/", listRequestsHandler(svc))
			admin.Patch("/{requestID}/approve", approveRequestHandler(svc))
			admin.Patch("/{requestID}/reject", rejectRequestHandler(svc))
			admin.Delete("/{requestID}", deleteRequestHandler(svc))
		})
	})
}

type submitRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	PetID    int64  `json:"pet_id"`
}

type requestResponse struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	PetID     int64     `json:"pet_id"`
	PetName   string    `json:"pet_name"`
	Approved  bool      `json:"approved"`
	Rejected  bool      `json:"rejected"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type messageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// submitRequestHandler godoc
// @Summary  Submit an adoption request
// @Tags     adoption-requests
// @Accept   json
// @Produce  json
// @Param    body  body  submitRequest  true  "request"
// @Success  201  {object}  messageResponse
// @Failure  400  {object}  errorResponse
// @Failure  404  {object}  errorResponse
// @Router   /adoption-requests [post]
func submitRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		created, err := svc.Submit(r.Context(), SubmitInput{
			UserName: req.UserName,
			Email:    req.Email,
			Phone:    req.Phone,
			Message:  req.Message,
			PetID:    req.PetID,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, messageResponse{
			Message: "Adoption request submitted successfully",
			ID:      created.ID,
		})
	}
}

// listRequestsHandler godoc
// @Summary  List adoption requests (admin)
// @Tags     adoption-requests
// @Produce  json
// @Success  200  {array}  requestResponse
// @Failure  401  {object}  errorResponse
// @Router   /adoption-requests [get]
func listRequestsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		// status=pending|approved|rejected (opcional)
		status := Status(r.URL.Query().Get("status"))

		out := make([]requestResponse, 0, len(items))
		for _, req := range items {
			if status != "" && req.Status() != status {
				continue
			}
			out = append(out, toRequestResponse(req))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// approveRequestHandler godoc
// @Summary  Approve an adoption request and mark the pet adopted (admin)
// @Tags     adoption-requests
// @Produce  json
// @Param    requestID  path  int  true  "request id"
// @Success  200  {object}  messageResponse
// @Failure  401  {object}  errorResponse
// @Failure  404  {object}  errorResponse
// @Router   /adoption-requests/{requestID}/approve [patch]
func approveRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIDParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, "adoption request not found")
			return
		}

		if _, err := svc.Approve(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Adoption request approved and pet marked as adopted"})
	}
}

// rejectRequestHandler godoc
// @Summary  Reject an adoption request (admin)
// @Tags     adoption-requests
// @Produce  json
// @Param    requestID  path  int  true  "request id"
// @Success  200  {object}  messageResponse
// @Failure  401  {object}  errorResponse
// @Failure  404  {object}  errorResponse
// @Router   /adoption-requests/{requestID}/reject [patch]
func rejectRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIDParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, "adoption request not found")
			return
		}

		if _, err := svc.Reject(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Adoption request rejected"})
	}
}

// deleteRequestHandler godoc
// @Summary  Delete an adoption request (admin)
// @Tags     adoption-requests
// @Produce  json
// @Param    requestID  path  int  true  "request id"
// @Success  200  {object}  messageResponse
// @Failure  401  {object}  errorResponse
// @Failure  404  {object}  errorResponse
// @Router   /adoption-requests/{requestID} [delete]
func deleteRequestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requestIDParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, "adoption request not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Adoption request deleted successfully"})
	}
}

func requestIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "requestID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func toRequestResponse(req Request) requestResponse {
	petName := req.PetName
	if petName == "" {
		petName = unknownPetName
	}
	return requestResponse{
		ID:        req.ID,
		UserName:  req.UserName,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		PetID:     req.PetID,
		PetName:   petName,
		Approved:  req.Approved,
		Rejected:  req.Rejected,
		Status:    req.Status(),
		CreatedAt: req.CreatedAt,
		UpdatedAt: req.UpdatedAt,
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "adoption request not found")
	case errors.Is(err, ErrPetNotFound):
		writeError(w, http.StatusNotFound, "pet not found")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
