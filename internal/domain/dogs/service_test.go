package dogs

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Dog
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Dog{}}
}

func (r *testRepo) Create(ctx context.Context, d Dog) error {
	if d.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[d.ID] = d
	return nil
}

func (r *testRepo) Update(ctx context.Context, d Dog) error {
	if _, ok := r.byID[d.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[d.ID] = d
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Dog, error) {
	d, ok := r.byID[id]
	if !ok {
		return Dog{}, errRepoNotFound
	}
	return d, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID string) ([]Dog, error) {
	out := make([]Dog, 0)
	for _, d := range r.byID {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]Dog, error) {
	out := make([]Dog, 0)
	for _, d := range r.byID {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_RoundTrip(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	age := 3
	created, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:          "Rex",
		Breed:         "Golden Retriever",
		Age:           &age,
		BehaviorNotes: "afraid of bicycles",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == "" || created.OwnerID != "owner-1" {
		t.Fatalf("unexpected created dog: %+v", created)
	}
	if created.CreatedAt != now || created.UpdatedAt != now {
		t.Fatalf("expected server timestamps to be now")
	}

	// Lecturas repetidas devuelven el mismo registro.
	got1, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	got2, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID #2 error: %v", err)
	}
	if got1.Name != "Rex" || got1.Breed != created.Breed || *got1.Age != 3 {
		t.Fatalf("round trip mismatch: %+v", got1)
	}
	if got1.ID != got2.ID || got1.CreatedAt != got2.CreatedAt {
		t.Fatalf("expected stable server-assigned fields across reads")
	}
}

func TestService_Create_RequiresNameAndBreed(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), "owner-1", CreateInput{Breed: "Poodle"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Rex"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput without breed, got %v", err)
	}
}

func TestService_Update_PreservesImmutableFields(t *testing.T) {
	svc := NewService(newTestRepo())

	created := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return created }

	d, err := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Rex", Breed: "Golden Retriever"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	later := created.Add(time.Hour)
	svc.now = func() time.Time { return later }

	name := "Rexy"
	weight := 25.5
	updated, err := svc.Update(context.Background(), d.ID, UpdateInput{Name: &name, Weight: &weight})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if updated.Name != "Rexy" || *updated.Weight != 25.5 {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.ID != d.ID || updated.OwnerID != "owner-1" || updated.CreatedAt != created {
		t.Fatalf("immutable fields changed: %+v", updated)
	}
	if updated.UpdatedAt != later {
		t.Fatalf("expected UpdatedAt refreshed")
	}
	// Los campos no enviados se conservan.
	if updated.Breed != "Golden Retriever" {
		t.Fatalf("expected untouched breed, got %q", updated.Breed)
	}
}

func TestService_Delete(t *testing.T) {
	svc := NewService(newTestRepo())

	d, err := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Rex", Breed: "Beagle"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(context.Background(), d.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), d.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), d.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestService_ListVisible(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), "owner-1", CreateInput{Name: "Rex", Breed: "Beagle"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.Create(context.Background(), "owner-2", CreateInput{Name: "Bella", Breed: "Collie"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	all, err := svc.ListVisible(context.Background(), "walker-1", true)
	if err != nil {
		t.Fatalf("ListVisible error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("walker should see all dogs, got %d", len(all))
	}

	own, err := svc.ListVisible(context.Background(), "owner-1", false)
	if err != nil {
		t.Fatalf("ListVisible error: %v", err)
	}
	if len(own) != 1 || own[0].Name != "Rex" {
		t.Fatalf("owner should see only own dogs, got %+v", own)
	}
}
