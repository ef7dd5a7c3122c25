package adoptions

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound    = errors.New("adoption request not found")
	ErrPetNotFound = errors.New("pet not found")
)

type Repository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id int64) (Request, error)
	List(ctx context.Context) ([]Request, error)

	// Approve marca approved=true y la mascota referida adopted=true en una
	// sola transacción.
	Approve(ctx context.Context, id int64, at time.Time) (Request, error)
	// Reject marca rejected=true y approved=false. No toca la mascota.
	Reject(ctx context.Context, id int64, at time.Time) (Request, error)
	Delete(ctx context.Context, id int64) error
}
