package pets

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

const multipartMemory = 8 << 20

func RegisterRoutes(r chi.Router, svc *Service, requireAdmin func(http.Handler) http.Handler, maxUploadBytes int64) {
	r.Route("/pets", func(pr chi.Router) {
		// Catálogo público
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))

		// Administración (sesión admin)
		pr.Group(func(ar chi.Router) {
			ar.Use(requireAdmin)
			ar.Post("/", createPetHandler(svc, maxUploadBytes))
			ar.Patch("/{petID}/adopted", markAdoptedHandler(svc))
			ar.Delete("/{petID}", deletePetHandler(svc))
		})
	})
}

type createPetRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Breed       string `json:"breed"`
	Gender      string `json:"gender"`
	Age         string `json:"age"`
	Description string `json:"description"`
}

type petResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Breed       string    `json:"breed"`
	Gender      string    `json:"gender"`
	Age         string    `json:"age"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	Adopted     bool      `json:"adopted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type messageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listPetsHandler godoc
// @Summary  List pets
// @Tags     pets
// @Produce  json
// @Param    type     query  string  false  "exact pet type"
// @Param    adopted  query  string  false  "true selects adopted pets, any other value non-adopted"
// @Success  200  {array}  petResponse
// @Router   /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		f := Filter{Type: q.Get("type")}
		if raw := q.Get("adopted"); raw != "" {
			adopted := strings.EqualFold(raw, "true")
			f.Adopted = &adopted
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		base := baseURL(r)
		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p, base))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary  Get a pet
// @Tags     pets
// @Produce  json
// @Param    petID  path  int  true  "pet id"
// @Success  200  {object}  petResponse
// @Failure  404  {object}  errorResponse
// @Router   /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, "pet not found")
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p, baseURL(r)))
	}
}

// createPetHandler godoc
// @Summary  Create a pet (admin)
// @Tags     pets
// @Accept   multipart/form-data
// @Accept   json
// @Produce  json
// @Param    name         formData  string  true   "name"
// @Param    type         formData  string  true   "type"
// @Param    breed        formData  string  false  "breed"
// @Param    gender       formData  string  false  "gender"
// @Param    age          formData  string  false  "age"
// @Param    description  formData  string  false  "description"
// @Param    image        formData  file    false  "png, jpg, jpeg or gif"
// @Success  201  {object}  messageResponse
// @Failure  400  {object}  errorResponse
// @Failure  401  {object}  errorResponse
// @Failure  413  {object}  errorResponse
// @Router   /pets [post]
func createPetHandler(svc *Service, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if maxUploadBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		}

		var in CreateInput

		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		switch mediaType {
		case "multipart/form-data", "application/x-www-form-urlencoded":
			if err := parseForm(r, mediaType); err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					writeError(w, http.StatusRequestEntityTooLarge, "request too large")
					return
				}
				writeError(w, http.StatusBadRequest, "invalid form")
				return
			}
			in = CreateInput{
				Name:        r.FormValue("name"),
				Type:        r.FormValue("type"),
				Breed:       r.FormValue("breed"),
				Gender:      r.FormValue("gender"),
				Age:         r.FormValue("age"),
				Description: r.FormValue("description"),
			}

			if r.MultipartForm != nil {
				if file, header, err := r.FormFile("image"); err == nil {
					defer file.Close()
					in.Image = &ImageUpload{Filename: header.Filename, Body: file}
				}
			}
		default:
			// El front end manda JSON cuando no hay imagen.
			var req createPetRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					writeError(w, http.StatusRequestEntityTooLarge, "request too large")
					return
				}
				writeError(w, http.StatusBadRequest, "invalid json")
				return
			}
			in = CreateInput{
				Name:        req.Name,
				Type:        req.Type,
				Breed:       req.Breed,
				Gender:      req.Gender,
				Age:         req.Age,
				Description: req.Description,
			}
		}

		p, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, messageResponse{Message: "Pet added successfully", ID: p.ID})
	}
}

// markAdoptedHandler godoc
// @Summary  Mark a pet as adopted (admin)
// @Tags     pets
// @Produce  json
// @Param    petID  path  int  true  "pet id"
// @Success  200  {object}  messageResponse
// @Failure  401  {object}  errorResponse
// @Failure  404  {object}  errorResponse
// @Router   /pets/{petID}/adopted [patch]
func markAdoptedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, "pet not found")
			return
		}

		if _, err := svc.MarkAdopted(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Pet marked as adopted"})
	}
}

// deletePetHandler godoc
// @Summary  Delete a pet and its adoption requests (admin)
// @Tags     pets
// @Produce  json
// @Param    petID  path  int  true  "pet id"
// @Success  200  {object}  messageResponse
// @Failure  401  {object}  errorResponse
// @Failure  404  {object}  errorResponse
// @Router   /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, "pet not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Pet deleted successfully"})
	}
}

func parseForm(r *http.Request, mediaType string) error {
	if mediaType == "multipart/form-data" {
		return r.ParseMultipartForm(multipartMemory)
	}
	return r.ParseForm()
}

func petIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func toPetResponse(p Pet, base string) petResponse {
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Breed:       p.Breed,
		Gender:      p.Gender,
		Age:         p.Age,
		Description: p.Description,
		ImageURL:    absoluteImageURL(base, p.ImageURL),
		Adopted:     p.Adopted,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// absoluteImageURL devuelve nil si no hay imagen; las rutas relativas se
// resuelven contra la URL base del request.
func absoluteImageURL(base, imageURL string) *string {
	if imageURL == "" {
		return nil
	}
	if strings.HasPrefix(imageURL, "http://") || strings.HasPrefix(imageURL, "https://") {
		return &imageURL
	}
	abs := base + imageURL
	return &abs
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "pet not found")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos (pets/adoptions)
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
