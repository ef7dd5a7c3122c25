package memory

import (
	"sync"

	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/pets"
)

// DB guarda ambas tablas bajo un mismo lock para que approve (request +
// pet) y el borrado en cascada sean atómicos, igual que en SQL.
type DB struct {
	mu sync.RWMutex

	pets     map[int64]pets.Pet
	requests map[int64]adoptions.Request

	nextPetID     int64
	nextRequestID int64
}

func New() *DB {
	return &DB{
		pets:     make(map[int64]pets.Pet),
		requests: make(map[int64]adoptions.Request),
	}
}
