package memory

import (
	"testing"

	"pet-adoption/internal/adapters/storage/storagetest"
)

func TestMemoryRepositories(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storagetest.Repos {
		db := New()
		return storagetest.Repos{
			Pets:      NewPetRepo(db),
			Adoptions: NewAdoptionRepo(db),
		}
	})
}
