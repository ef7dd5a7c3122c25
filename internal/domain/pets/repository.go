package pets

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("pet not found")

type Repository interface {
	// Create asigna ID y devuelve la fila persistida.
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	List(ctx context.Context, f Filter) ([]Pet, error)
	MarkAdopted(ctx context.Context, id int64, at time.Time) error
	// Delete elimina la mascota y sus solicitudes de adopción.
	Delete(ctx context.Context, id int64) error
}
