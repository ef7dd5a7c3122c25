package memory

import (
	"context"
	"sort"
	"time"

	"pet-adoption/internal/domain/adoptions"
)

type adoptionRepo struct {
	db *DB
}

func NewAdoptionRepo(db *DB) adoptions.Repository {
	return &adoptionRepo{db: db}
}

func (r *adoptionRepo) Create(ctx context.Context, req adoptions.Request) (adoptions.Request, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	// FK pet_id -> pets.id
	if _, ok := r.db.pets[req.PetID]; !ok {
		return adoptions.Request{}, adoptions.ErrPetNotFound
	}

	r.db.nextRequestID++
	req.ID = r.db.nextRequestID
	req.PetName = ""
	r.db.requests[req.ID] = req
	return r.withPetName(req), nil
}

func (r *adoptionRepo) GetByID(ctx context.Context, id int64) (adoptions.Request, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	req, ok := r.db.requests[id]
	if !ok {
		return adoptions.Request{}, adoptions.ErrNotFound
	}
	return r.withPetName(req), nil
}

func (r *adoptionRepo) List(ctx context.Context) ([]adoptions.Request, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]adoptions.Request, 0, len(r.db.requests))
	for _, req := range r.db.requests {
		out = append(out, r.withPetName(req))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *adoptionRepo) Approve(ctx context.Context, id int64, at time.Time) (adoptions.Request, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	req, ok := r.db.requests[id]
	if !ok {
		return adoptions.Request{}, adoptions.ErrNotFound
	}
	pet, ok := r.db.pets[req.PetID]
	if !ok {
		return adoptions.Request{}, adoptions.ErrPetNotFound
	}

	req.Approved = true
	req.UpdatedAt = at
	pet.Adopted = true
	pet.UpdatedAt = at

	r.db.requests[id] = req
	r.db.pets[pet.ID] = pet
	return r.withPetName(req), nil
}

func (r *adoptionRepo) Reject(ctx context.Context, id int64, at time.Time) (adoptions.Request, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	req, ok := r.db.requests[id]
	if !ok {
		return adoptions.Request{}, adoptions.ErrNotFound
	}
	req.Rejected = true
	req.Approved = false
	req.UpdatedAt = at
	r.db.requests[id] = req
	return r.withPetName(req), nil
}

func (r *adoptionRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.requests[id]; !ok {
		return adoptions.ErrNotFound
	}
	delete(r.db.requests, id)
	return nil
}

// withPetName asume el lock tomado.
func (r *adoptionRepo) withPetName(req adoptions.Request) adoptions.Request {
	if p, ok := r.db.pets[req.PetID]; ok {
		req.PetName = p.Name
	} else {
		req.PetName = ""
	}
	return req
}
