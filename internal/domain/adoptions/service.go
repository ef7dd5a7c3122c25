package adoptions

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// PetLookup evita importar el paquete pets (rompe ciclos).
type PetLookup interface {
	Exists(ctx context.Context, petID int64) (bool, error)
}

type Service struct {
	repo Repository
	pets PetLookup
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, pets PetLookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo: repo,
		pets: pets,
		log:  log,
		now:  time.Now,
	}
}

type SubmitInput struct {
	UserName string
	Email    string
	Phone    string
	Message  string
	PetID    int64
}

// Submit es público: no requiere sesión admin.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Request, error) {
	userName := strings.TrimSpace(in.UserName)
	email := strings.TrimSpace(in.Email)

	if userName == "" {
		return Request{}, fmt.Errorf("%w: user_name is required", ErrInvalidInput)
	}
	if email == "" {
		return Request{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return Request{}, fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	}
	if in.PetID <= 0 {
		return Request{}, fmt.Errorf("%w: pet_id is required", ErrInvalidInput)
	}

	if s.pets != nil {
		ok, err := s.pets.Exists(ctx, in.PetID)
		if err != nil {
			return Request{}, err
		}
		if !ok {
			return Request{}, ErrPetNotFound
		}
	}

	now := s.now()
	req := Request{
		UserName:  userName,
		Email:     email,
		Phone:     strings.TrimSpace(in.Phone),
		Message:   strings.TrimSpace(in.Message),
		PetID:     in.PetID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		return Request{}, err
	}

	metrics.RecordAdoptionEvent("submitted")
	s.log.Info("adoption request submitted", map[string]any{
		"request_id": created.ID,
		"pet_id":     created.PetID,
	})
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Request, error) {
	if id <= 0 {
		return Request{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Request, error) {
	return s.repo.List(ctx)
}

// Approve no impide aprobar varias solicitudes de la misma mascota.
func (s *Service) Approve(ctx context.Context, id int64) (Request, error) {
	if id <= 0 {
		return Request{}, ErrNotFound
	}

	req, err := s.repo.Approve(ctx, id, s.now())
	if err != nil {
		return Request{}, err
	}

	metrics.RecordAdoptionEvent("approved")
	s.log.Info("adoption request approved", map[string]any{
		"request_id": req.ID,
		"pet_id":     req.PetID,
	})
	return req, nil
}

func (s *Service) Reject(ctx context.Context, id int64) (Request, error) {
	if id <= 0 {
		return Request{}, ErrNotFound
	}

	req, err := s.repo.Reject(ctx, id, s.now())
	if err != nil {
		return Request{}, err
	}

	metrics.RecordAdoptionEvent("rejected")
	s.log.Info("adoption request rejected", map[string]any{
		"request_id": req.ID,
		"pet_id":     req.PetID,
	})
	return req, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecordAdoptionEvent("deleted")
	return nil
}
