package pets

import "time"

// Pet es un animal publicado para adopción.
// Type y Age son texto libre (ej: "dog", "2 years").
type Pet struct {
	ID int64

	Name        string
	Type        string
	Breed       string
	Gender      string
	Age         string
	Description string

	// ImageURL es relativo (/uploads/<archivo>) o vacío; cada consumidor lo
	// vuelve absoluto.
	ImageURL string

	Adopted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter restringe el listado. Campos vacíos/nil no filtran.
type Filter struct {
	Type    string
	Adopted *bool
}

func (f Filter) Matches(p Pet) bool {
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Adopted != nil && p.Adopted != *f.Adopted {
		return false
	}
	return true
}
