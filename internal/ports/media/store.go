package media

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrInvalidName     = errors.New("invalid file name")
	ErrNotFound        = errors.New("file not found")
)

// URLPrefix es la ruta bajo la que se sirven los archivos guardados.
const URLPrefix = "/uploads/"

// Object es un archivo abierto listo para servirse con http.ServeContent.
type Object struct {
	Name        string
	ContentType string
	ModTime     time.Time
	Body        io.ReadSeekCloser
}

// Store guarda imágenes subidas y las devuelve por nombre.
type Store interface {
	// Save sanea filename, valida la extensión y devuelve la ruta relativa
	// (URLPrefix + nombre). Un nombre repetido sobrescribe el anterior.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Open(ctx context.Context, name string) (Object, error)
}
