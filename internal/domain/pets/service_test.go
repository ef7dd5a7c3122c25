package pets

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"pet-adoption/internal/ports/media"
)

type testRepo struct {
	byID   map[int64]Pet
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) (Pet, error) {
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context, f Filter) ([]Pet, error) {
	out := make([]Pet, 0)
	for i := int64(1); i <= r.nextID; i++ {
		if p, ok := r.byID[i]; ok && f.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) MarkAdopted(ctx context.Context, id int64, at time.Time) error {
	p, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	p.Adopted = true
	p.UpdatedAt = at
	r.byID[id] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// fakeStore acepta solo .png y guarda el contenido en memoria.
type fakeStore struct {
	saved map[string]string
	err   error
}

func (s *fakeStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if !strings.HasSuffix(filename, ".png") {
		return "", media.ErrUnsupportedType
	}
	b, _ := io.ReadAll(r)
	s.saved[filename] = string(b)
	return media.URLPrefix + filename, nil
}

func (s *fakeStore) Open(ctx context.Context, name string) (media.Object, error) {
	return media.Object{}, media.ErrNotFound
}

func TestService_Create_RequiresNameAndType(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)

	if _, err := svc.Create(context.Background(), CreateInput{Type: "dog"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Name: "Milo"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without type, got %v", err)
	}
}

func TestService_Create_WithImage(t *testing.T) {
	store := &fakeStore{saved: map[string]string{}}
	svc := NewService(newTestRepo(), store, nil)

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), CreateInput{
		Name:  " Milo ",
		Type:  "dog",
		Age:   "2 years",
		Image: &ImageUpload{Filename: "milo.png", Body: strings.NewReader("png-bytes")},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.Name != "Milo" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
	if p.ImageURL != "/uploads/milo.png" {
		t.Fatalf("unexpected image url %q", p.ImageURL)
	}
	if p.Adopted {
		t.Fatalf("new pets must not be adopted")
	}
	if p.CreatedAt != now {
		t.Fatalf("expected CreatedAt to be now")
	}
	if store.saved["milo.png"] != "png-bytes" {
		t.Fatalf("image not stored")
	}
}

func TestService_Create_IgnoresUnsupportedImage(t *testing.T) {
	store := &fakeStore{saved: map[string]string{}}
	svc := NewService(newTestRepo(), store, nil)

	p, err := svc.Create(context.Background(), CreateInput{
		Name:  "Milo",
		Type:  "dog",
		Image: &ImageUpload{Filename: "virus.exe", Body: strings.NewReader("x")},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.ImageURL != "" {
		t.Fatalf("expected no image, got %q", p.ImageURL)
	}
}

func TestService_Create_FailsOnStorageError(t *testing.T) {
	store := &fakeStore{saved: map[string]string{}, err: errors.New("disk full")}
	svc := NewService(newTestRepo(), store, nil)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:  "Milo",
		Type:  "dog",
		Image: &ImageUpload{Filename: "milo.png", Body: strings.NewReader("x")},
	})
	if err == nil {
		t.Fatalf("expected storage error")
	}
}

func TestService_List_Filters(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)
	ctx := context.Background()

	dog, _ := svc.Create(ctx, CreateInput{Name: "Milo", Type: "dog"})
	_, _ = svc.Create(ctx, CreateInput{Name: "Luna", Type: "cat"})
	_, _ = svc.Create(ctx, CreateInput{Name: "Rex", Type: "dog"})

	if _, err := svc.MarkAdopted(ctx, dog.ID); err != nil {
		t.Fatalf("MarkAdopted error: %v", err)
	}

	dogs, _ := svc.List(ctx, Filter{Type: "dog"})
	if len(dogs) != 2 {
		t.Fatalf("expected 2 dogs, got %d", len(dogs))
	}

	adopted := true
	adoptedDogs, _ := svc.List(ctx, Filter{Type: "dog", Adopted: &adopted})
	if len(adoptedDogs) != 1 || adoptedDogs[0].ID != dog.ID {
		t.Fatalf("expected only Milo, got %+v", adoptedDogs)
	}

	notAdopted := false
	available, _ := svc.List(ctx, Filter{Adopted: &notAdopted})
	if len(available) != 2 {
		t.Fatalf("expected 2 available pets, got %d", len(available))
	}

	padded, _ := svc.List(ctx, Filter{Type: " dog"})
	if len(padded) != 0 {
		t.Fatalf("expected exact type match, got %d pets for %q", len(padded), " dog")
	}
}

func TestService_MarkAdoptedAndDelete_NotFound(t *testing.T) {
	svc := NewService(newTestRepo(), nil, nil)
	ctx := context.Background()

	if _, err := svc.MarkAdopted(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	ok, err := svc.Exists(ctx, 99)
	if err != nil || ok {
		t.Fatalf("expected Exists=false, got %v %v", ok, err)
	}
}
