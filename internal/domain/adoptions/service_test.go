package adoptions

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID    map[int64]Request
	adopted map[int64]bool
	nextID  int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Request{}, adopted: map[int64]bool{}}
}

func (r *testRepo) Create(ctx context.Context, req Request) (Request, error) {
	r.nextID++
	req.ID = r.nextID
	r.byID[req.ID] = req
	return req, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Request, error) {
	req, ok := r.byID[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	return req, nil
}

func (r *testRepo) List(ctx context.Context) ([]Request, error) {
	out := make([]Request, 0, len(r.byID))
	for i := int64(1); i <= r.nextID; i++ {
		if req, ok := r.byID[i]; ok {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *testRepo) Approve(ctx context.Context, id int64, at time.Time) (Request, error) {
	req, ok := r.byID[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	req.Approved = true
	req.UpdatedAt = at
	r.byID[id] = req
	r.adopted[req.PetID] = true
	return req, nil
}

func (r *testRepo) Reject(ctx context.Context, id int64, at time.Time) (Request, error) {
	req, ok := r.byID[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	req.Rejected = true
	req.Approved = false
	req.UpdatedAt = at
	r.byID[id] = req
	return req, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakePets map[int64]bool

func (f fakePets) Exists(ctx context.Context, petID int64) (bool, error) {
	return f[petID], nil
}

func validInput() SubmitInput {
	return SubmitInput{
		UserName: "Ana",
		Email:    "ana@example.com",
		Phone:    "555-0101",
		Message:  "I have a garden",
		PetID:    1,
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Submit_CreatesPending(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, fakePets{1: true}, nil)

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	req, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if req.ID == 0 {
		t.Fatalf("expected id to be assigned")
	}
	if req.Status() != StatusPending {
		t.Fatalf("expected pending, got %s", req.Status())
	}
	if req.CreatedAt != now || req.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
}

func TestService_Submit_RequiresFields(t *testing.T) {
	svc := NewService(newTestRepo(), fakePets{1: true}, nil)

	cases := map[string]func(*SubmitInput){
		"missing user_name": func(in *SubmitInput) { in.UserName = "  " },
		"missing email":     func(in *SubmitInput) { in.Email = "" },
		"bad email":         func(in *SubmitInput) { in.Email = "not-an-email" },
		"missing pet_id":    func(in *SubmitInput) { in.PetID = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			mutate(&in)
			_, err := svc.Submit(context.Background(), in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestService_Submit_UnknownPet(t *testing.T) {
	svc := NewService(newTestRepo(), fakePets{}, nil)

	_, err := svc.Submit(context.Background(), validInput())
	if !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
}

func TestService_Approve_MarksPetAdopted(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, fakePets{1: true}, nil)

	req, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}

	approved, err := svc.Approve(context.Background(), req.ID)
	if err != nil {
		t.Fatalf("Approve error: %v", err)
	}
	if !approved.Approved || approved.Status() != StatusApproved {
		t.Fatalf("expected approved, got %+v", approved)
	}
	if !repo.adopted[1] {
		t.Fatalf("expected pet 1 to be adopted after approve")
	}
}

func TestService_Reject_ClearsApproved(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, fakePets{1: true}, nil)

	req, _ := svc.Submit(context.Background(), validInput())
	if _, err := svc.Approve(context.Background(), req.ID); err != nil {
		t.Fatalf("Approve error: %v", err)
	}

	rejected, err := svc.Reject(context.Background(), req.ID)
	if err != nil {
		t.Fatalf("Reject error: %v", err)
	}
	if rejected.Approved {
		t.Fatalf("expected approved=false after reject")
	}
	if !rejected.Rejected || rejected.Status() != StatusRejected {
		t.Fatalf("expected rejected, got %+v", rejected)
	}
}

func TestService_Approve_AllowsSeveralForSamePet(t *testing.T) {
	// No hay exclusión entre solicitudes de la misma mascota.
	repo := newTestRepo()
	svc := NewService(repo, fakePets{1: true}, nil)

	a, _ := svc.Submit(context.Background(), validInput())
	b, _ := svc.Submit(context.Background(), validInput())

	if _, err := svc.Approve(context.Background(), a.ID); err != nil {
		t.Fatalf("Approve a: %v", err)
	}
	if _, err := svc.Approve(context.Background(), b.ID); err != nil {
		t.Fatalf("Approve b: %v", err)
	}

	items, _ := svc.List(context.Background())
	approved := 0
	for _, it := range items {
		if it.Approved {
			approved++
		}
	}
	if approved != 2 {
		t.Fatalf("expected 2 approved requests, got %d", approved)
	}
}

func TestService_NotFound(t *testing.T) {
	svc := NewService(newTestRepo(), fakePets{}, nil)
	ctx := context.Background()

	if _, err := svc.Approve(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Approve: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Reject(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Reject: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetByID(ctx, 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID: expected ErrNotFound, got %v", err)
	}
}
