package adoptions

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request es una solicitud de adopción enviada por cualquier visitante.
type Request struct {
	ID int64

	UserName string
	Email    string
	Phone    string
	Message  string

	PetID int64
	// PetName viene del join con pets; vacío si la mascota ya no existe.
	PetName string

	Approved bool
	Rejected bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status resume los dos flags. Rejected gana: reject limpia approved.
func (r Request) Status() Status {
	switch {
	case r.Rejected:
		return StatusRejected
	case r.Approved:
		return StatusApproved
	default:
		return StatusPending
	}
}
