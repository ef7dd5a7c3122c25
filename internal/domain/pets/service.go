package pets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/media"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo  Repository
	media media.Store
	log   logger.Logger
	now   func() time.Time
}

func NewService(repo Repository, store media.Store, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:  repo,
		media: store,
		log:   log,
		now:   time.Now,
	}
}

// ImageUpload es el archivo opcional que acompaña el alta.
type ImageUpload struct {
	Filename string
	Body     io.Reader
}

type CreateInput struct {
	Name        string
	Type        string
	Breed       string
	Gender      string
	Age         string
	Description string
	Image       *ImageUpload
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Type) == "" {
		return Pet{}, fmt.Errorf("%w: type is required", ErrInvalidInput)
	}

	var imageURL string
	if in.Image != nil && s.media != nil {
		url, err := s.media.Save(ctx, in.Image.Filename, in.Image.Body)
		switch {
		case err == nil:
			imageURL = url
		case errors.Is(err, media.ErrUnsupportedType), errors.Is(err, media.ErrInvalidName):
			// Igual que el alta sin imagen: la mascota se crea sin foto.
			s.log.Warn("image ignored", map[string]any{
				"filename": in.Image.Filename,
				"reason":   err.Error(),
			})
		default:
			return Pet{}, fmt.Errorf("save image: %w", err)
		}
	}

	now := s.now()
	p := Pet{
		Name:        strings.TrimSpace(in.Name),
		Type:        strings.TrimSpace(in.Type),
		Breed:       strings.TrimSpace(in.Breed),
		Gender:      strings.TrimSpace(in.Gender),
		Age:         strings.TrimSpace(in.Age),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return Pet{}, err
	}

	s.log.Info("pet created", map[string]any{"pet_id": created.ID, "type": created.Type})
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List compara el tipo tal cual llega, sin normalizar.
func (s *Service) List(ctx context.Context, f Filter) ([]Pet, error) {
	return s.repo.List(ctx, f)
}

// MarkAdopted es idempotente.
func (s *Service) MarkAdopted(ctx context.Context, id int64) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrNotFound
	}
	if err := s.repo.MarkAdopted(ctx, id, s.now()); err != nil {
		return Pet{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("pet deleted", map[string]any{"pet_id": id})
	return nil
}

// Exists expone la existencia de una mascota para otros módulos
// (adoptions) sin que importen este paquete.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
