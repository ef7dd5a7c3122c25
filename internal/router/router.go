package router

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-adoption/docs"
	"pet-adoption/internal/adapters/auth/static"
	mem "pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/domain/admin"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/uploads"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/ports/media"
)

// Credenciales de desarrollo cuando no se inyecta un verifier.
const (
	devAdminUsername = "admin"
	devAdminPassword = "admin123"
)

type Options struct {
	// Opcionales: si no vienen, se usa un backend in-memory compartido.
	Pets      pets.Repository
	Adoptions adoptions.Repository

	// Puede ser nil: las mascotas se crean sin imagen y /uploads no se monta.
	Media media.Store

	Verifier auth.CredentialVerifier // nil = cuenta admin de desarrollo
	Sessions *scs.SessionManager     // nil = sesiones in-memory con defaults
	Logger   logger.Logger

	MaxUploadBytes int64
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	if opts.Pets == nil || opts.Adoptions == nil {
		db := mem.New()
		opts.Pets = mem.NewPetRepo(db)
		opts.Adoptions = mem.NewAdoptionRepo(db)
	}

	verifier := opts.Verifier
	if verifier == nil {
		dev, err := static.NewVerifier(static.Config{Username: devAdminUsername, Password: devAdminPassword})
		if err != nil {
			panic(err)
		}
		log.Warn("using development admin credentials", map[string]any{"username": devAdminUsername})
		verifier = dev
	}

	sm := opts.Sessions
	if sm == nil {
		sm = middleware.NewSessionManager(middleware.SessionOptions{})
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Use(sm.LoadAndSave)
	r.Use(middleware.AuthContext(sm))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	petsSvc := pets.NewService(opts.Pets, opts.Media, log.With(map[string]any{"module": "pets"}))
	adoptionsSvc := adoptions.NewService(opts.Adoptions, petsSvc, log.With(map[string]any{"module": "adoptions"}))

	// Rutas por módulo
	admin.RegisterRoutes(r, verifier, sm, log.With(map[string]any{"module": "admin"}))

	// El front end vive en otro origen: catálogo, solicitudes e imágenes
	// aceptan cualquier origen.
	r.Group(func(pub chi.Router) {
		pub.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", chimw.RequestIDHeader},
			ExposedHeaders: []string{chimw.RequestIDHeader},
			MaxAge:         300,
		}))

		pets.RegisterRoutes(pub, petsSvc, middleware.RequireAdmin, opts.MaxUploadBytes)
		adoptions.RegisterRoutes(pub, adoptionsSvc, middleware.RequireAdmin)
		if opts.Media != nil {
			uploads.RegisterRoutes(pub, opts.Media, log.With(map[string]any{"module": "uploads"}))
		}
	})

	return r
}
