package memory

import (
	"context"
	"sort"
	"time"

	"pet-adoption/internal/domain/pets"
)

type petRepo struct {
	db *DB
}

func NewPetRepo(db *DB) pets.Repository {
	return &petRepo{db: db}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.nextPetID++
	p.ID = r.db.nextPetID
	r.db.pets[p.ID] = p
	return p, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, ok := r.db.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) List(ctx context.Context, f pets.Filter) ([]pets.Pet, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.db.pets {
		if f.Matches(p) {
			out = append(out, p)
		}
	}

	// Orden estable por id (mismo orden que SQL)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *petRepo) MarkAdopted(ctx context.Context, id int64, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	p, ok := r.db.pets[id]
	if !ok {
		return pets.ErrNotFound
	}
	p.Adopted = true
	p.UpdatedAt = at
	r.db.pets[id] = p
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.pets[id]; !ok {
		return pets.ErrNotFound
	}
	delete(r.db.pets, id)

	// ON DELETE CASCADE
	for reqID, req := range r.db.requests {
		if req.PetID == id {
			delete(r.db.requests, reqID)
		}
	}
	return nil
}
