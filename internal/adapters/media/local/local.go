package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/media"
)

// allowedExtensions son las únicas extensiones aceptadas (sin punto, en minúscula).
var allowedExtensions = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Store guarda imágenes en un directorio local.
type Store struct {
	basePath string
	log      logger.Logger
}

var _ media.Store = (*Store)(nil)

func NewStore(basePath string, log logger.Logger) (*Store, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("upload directory is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{basePath: basePath, log: log}, nil
}

func (s *Store) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := SecureFilename(filename)
	if name == "" {
		return "", media.ErrInvalidName
	}
	if !AllowedFile(name) {
		return "", media.ErrUnsupportedType
	}

	dst, err := s.safeJoin(name)
	if err != nil {
		return "", err
	}

	// Se escribe a un temporal y se renombra: un upload cortado no deja
	// archivos a medias ni pisa la versión anterior.
	tmpPath := filepath.Join(s.basePath, ".upload-"+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, readerWithContext(ctx, r)); err != nil {
		if cerr := f.Close(); cerr != nil {
			s.log.Error("failed to close file after write error", map[string]any{"error": cerr})
		}
		s.removeTemp(tmpPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		s.removeTemp(tmpPath)
		return "", fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		s.removeTemp(tmpPath)
		return "", fmt.Errorf("failed to store file: %w", err)
	}

	s.log.Debug("image stored", map[string]any{"filename": name})
	return media.URLPrefix + name, nil
}

func (s *Store) Open(ctx context.Context, name string) (media.Object, error) {
	if name == "" || name != SecureFilename(name) {
		return media.Object{}, media.ErrInvalidName
	}
	filePath, err := s.safeJoin(name)
	if err != nil {
		return media.Object{}, err
	}

	f, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return media.Object{}, media.ErrNotFound
		}
		return media.Object{}, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return media.Object{}, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		_ = f.Close()
		return media.Object{}, media.ErrNotFound
	}

	return media.Object{
		Name:        name,
		ContentType: contentType(name),
		ModTime:     info.ModTime(),
		Body:        f,
	}, nil
}

// SecureFilename deja un nombre plano y seguro: sin directorios, solo ASCII,
// espacios como "_" y sin "." ni "_" al principio o al final. Puede devolver "".
func SecureFilename(filename string) string {
	filename = norm.NFKD.String(filename)

	var b strings.Builder
	for _, r := range filename {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	filename = b.String()

	filename = strings.NewReplacer("/", " ", "\\", " ").Replace(filename)
	filename = strings.Join(strings.Fields(filename), "_")
	filename = unsafeChars.ReplaceAllString(filename, "")
	return strings.Trim(filename, "._")
}

// AllowedFile informa si la extensión está en la lista blanca.
func AllowedFile(filename string) bool {
	_, ok := allowedExtensions[extension(filename)]
	return ok
}

func extension(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

func contentType(filename string) string {
	if ct, ok := allowedExtensions[extension(filename)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// safeJoin resuelve name relativo a basePath y rechaza directory traversal.
func (s *Store) safeJoin(name string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, name))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", media.ErrInvalidName
	}
	return absPath, nil
}

func (s *Store) removeTemp(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Error("failed to remove temp upload", map[string]any{"error": err, "path": path})
	}
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	if ctx == nil {
		return r
	}
	return ctxReader{ctx: ctx, r: r}
}
