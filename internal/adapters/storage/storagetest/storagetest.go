// Package storagetest contiene pruebas de contrato compartidas por todos los
// backends de almacenamiento (memory, sqlite, postgres).
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
)

// Repos agrupa los repositorios de un backend recién creado y vacío.
type Repos struct {
	Pets      pets.Repository
	Adoptions adoptions.Repository
}

// Run ejecuta el contrato completo. newRepos debe devolver un backend vacío
// en cada llamada.
func Run(t *testing.T, newRepos func(t *testing.T) Repos) {
	t.Run("PetsCreateAndGet", func(t *testing.T) { testPetsCreateAndGet(t, newRepos(t)) })
	t.Run("PetsListFilters", func(t *testing.T) { testPetsListFilters(t, newRepos(t)) })
	t.Run("PetsMarkAdopted", func(t *testing.T) { testPetsMarkAdopted(t, newRepos(t)) })
	t.Run("PetsDeleteCascades", func(t *testing.T) { testPetsDeleteCascades(t, newRepos(t)) })
	t.Run("RequestsCreateRequiresPet", func(t *testing.T) { testRequestsCreateRequiresPet(t, newRepos(t)) })
	t.Run("RequestsApproveMarksPet", func(t *testing.T) { testRequestsApproveMarksPet(t, newRepos(t)) })
	t.Run("RequestsRejectClearsApproved", func(t *testing.T) { testRequestsRejectClearsApproved(t, newRepos(t)) })
	t.Run("RequestsNotFound", func(t *testing.T) { testRequestsNotFound(t, newRepos(t)) })
}

var baseTime = time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)

func newPet(name, typ string) pets.Pet {
	return pets.Pet{
		Name:      name,
		Type:      typ,
		Breed:     "mixed",
		Gender:    "female",
		Age:       "2 years",
		CreatedAt: baseTime,
		UpdatedAt: baseTime,
	}
}

func newRequest(petID int64) adoptions.Request {
	return adoptions.Request{
		UserName:  "Ana",
		Email:     "ana@example.com",
		Phone:     "555-0101",
		Message:   "I have a garden",
		PetID:     petID,
		CreatedAt: baseTime,
		UpdatedAt: baseTime,
	}
}

func testPetsCreateAndGet(t *testing.T, r Repos) {
	ctx := context.Background()

	p := newPet("Milo", "dog")
	p.ImageURL = "/uploads/milo.png"
	created, err := r.Pets.Create(ctx, p)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := r.Pets.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milo", got.Name)
	assert.Equal(t, "dog", got.Type)
	assert.Equal(t, "mixed", got.Breed)
	assert.Equal(t, "/uploads/milo.png", got.ImageURL)
	assert.False(t, got.Adopted)
	assert.True(t, got.CreatedAt.Equal(baseTime), "created_at round trip: %v", got.CreatedAt)

	second, err := r.Pets.Create(ctx, newPet("Luna", "cat"))
	require.NoError(t, err)
	assert.Greater(t, second.ID, created.ID)

	_, err = r.Pets.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func testPetsListFilters(t *testing.T, r Repos) {
	ctx := context.Background()

	milo, err := r.Pets.Create(ctx, newPet("Milo", "dog"))
	require.NoError(t, err)
	_, err = r.Pets.Create(ctx, newPet("Luna", "cat"))
	require.NoError(t, err)
	_, err = r.Pets.Create(ctx, newPet("Rex", "dog"))
	require.NoError(t, err)
	require.NoError(t, r.Pets.MarkAdopted(ctx, milo.ID, baseTime.Add(time.Hour)))

	all, err := r.Pets.List(ctx, pets.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Milo", all[0].Name)
	assert.Equal(t, "Rex", all[2].Name)

	dogs, err := r.Pets.List(ctx, pets.Filter{Type: "dog"})
	require.NoError(t, err)
	assert.Len(t, dogs, 2)

	adopted := true
	adoptedDogs, err := r.Pets.List(ctx, pets.Filter{Type: "dog", Adopted: &adopted})
	require.NoError(t, err)
	require.Len(t, adoptedDogs, 1)
	assert.Equal(t, milo.ID, adoptedDogs[0].ID)

	notAdopted := false
	available, err := r.Pets.List(ctx, pets.Filter{Adopted: &notAdopted})
	require.NoError(t, err)
	assert.Len(t, available, 2)

	// El tipo se compara exacto.
	none, err := r.Pets.List(ctx, pets.Filter{Type: "Dog"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testPetsMarkAdopted(t *testing.T, r Repos) {
	ctx := context.Background()

	p, err := r.Pets.Create(ctx, newPet("Milo", "dog"))
	require.NoError(t, err)

	at := baseTime.Add(2 * time.Hour)
	require.NoError(t, r.Pets.MarkAdopted(ctx, p.ID, at))
	// Marcar dos veces no es error.
	require.NoError(t, r.Pets.MarkAdopted(ctx, p.ID, at))

	got, err := r.Pets.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.Adopted)
	assert.True(t, got.UpdatedAt.Equal(at))

	assert.ErrorIs(t, r.Pets.MarkAdopted(ctx, 9999, at), pets.ErrNotFound)
}

func testPetsDeleteCascades(t *testing.T, r Repos) {
	ctx := context.Background()

	milo, err := r.Pets.Create(ctx, newPet("Milo", "dog"))
	require.NoError(t, err)
	luna, err := r.Pets.Create(ctx, newPet("Luna", "cat"))
	require.NoError(t, err)

	_, err = r.Adoptions.Create(ctx, newRequest(milo.ID))
	require.NoError(t, err)
	kept, err := r.Adoptions.Create(ctx, newRequest(luna.ID))
	require.NoError(t, err)

	require.NoError(t, r.Pets.Delete(ctx, milo.ID))

	_, err = r.Pets.GetByID(ctx, milo.ID)
	assert.ErrorIs(t, err, pets.ErrNotFound)

	items, err := r.Adoptions.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, kept.ID, items[0].ID)

	assert.ErrorIs(t, r.Pets.Delete(ctx, milo.ID), pets.ErrNotFound)
}

func testRequestsCreateRequiresPet(t *testing.T, r Repos) {
	ctx := context.Background()

	_, err := r.Adoptions.Create(ctx, newRequest(9999))
	assert.ErrorIs(t, err, adoptions.ErrPetNotFound)

	p, err := r.Pets.Create(ctx, newPet("Milo", "dog"))
	require.NoError(t, err)

	created, err := r.Adoptions.Create(ctx, newRequest(p.ID))
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, "Milo", created.PetName)
	assert.Equal(t, adoptions.StatusPending, created.Status())

	got, err := r.Adoptions.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.UserName)
	assert.Equal(t, "ana@example.com", got.Email)
	assert.Equal(t, "555-0101", got.Phone)
	assert.Equal(t, "I have a garden", got.Message)
	assert.Equal(t, p.ID, got.PetID)
}

func testRequestsApproveMarksPet(t *testing.T, r Repos) {
	ctx := context.Background()

	p, err := r.Pets.Create(ctx, newPet("Milo", "dog"))
	require.NoError(t, err)
	req, err := r.Adoptions.Create(ctx, newRequest(p.ID))
	require.NoError(t, err)

	at := baseTime.Add(time.Hour)
	approved, err := r.Adoptions.Approve(ctx, req.ID, at)
	require.NoError(t, err)
	assert.True(t, approved.Approved)
	assert.Equal(t, adoptions.StatusApproved, approved.Status())
	assert.True(t, approved.UpdatedAt.Equal(at))

	pet, err := r.Pets.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, pet.Adopted)
}

func testRequestsRejectClearsApproved(t *testing.T, r Repos) {
	ctx := context.Background()

	p, err := r.Pets.Create(ctx, newPet("Milo", "dog"))
	require.NoError(t, err)
	req, err := r.Adoptions.Create(ctx, newRequest(p.ID))
	require.NoError(t, err)

	_, err = r.Adoptions.Approve(ctx, req.ID, baseTime.Add(time.Hour))
	require.NoError(t, err)

	rejected, err := r.Adoptions.Reject(ctx, req.ID, baseTime.Add(2*time.Hour))
	require.NoError(t, err)
	assert.False(t, rejected.Approved)
	assert.True(t, rejected.Rejected)
	assert.Equal(t, adoptions.StatusRejected, rejected.Status())

	// Rechazar no revierte la adopción.
	pet, err := r.Pets.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, pet.Adopted)
}

func testRequestsNotFound(t *testing.T, r Repos) {
	ctx := context.Background()

	_, err := r.Adoptions.GetByID(ctx, 42)
	assert.ErrorIs(t, err, adoptions.ErrNotFound)
	_, err = r.Adoptions.Approve(ctx, 42, baseTime)
	assert.ErrorIs(t, err, adoptions.ErrNotFound)
	_, err = r.Adoptions.Reject(ctx, 42, baseTime)
	assert.ErrorIs(t, err, adoptions.ErrNotFound)
	assert.ErrorIs(t, r.Adoptions.Delete(ctx, 42), adoptions.ErrNotFound)

	items, err := r.Adoptions.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
