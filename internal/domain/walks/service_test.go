package walks

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"star-dog-walker/internal/ports/auth"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Walk
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Walk{}}
}

func (r *testRepo) Create(ctx context.Context, w Walk) error {
	if w.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[w.ID] = w
	return nil
}

func (r *testRepo) Update(ctx context.Context, w Walk) error {
	if _, ok := r.byID[w.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[w.ID] = w
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Walk, error) {
	w, ok := r.byID[id]
	if !ok {
		return Walk{}, errRepoNotFound
	}
	return w, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID string) ([]Walk, error) {
	out := make([]Walk, 0)
	for _, w := range r.byID {
		if w.OwnerID == ownerID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]Walk, error) {
	out := make([]Walk, 0)
	for _, w := range r.byID {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

var (
	testOwner  = auth.Identity{ID: "1", Name: "Sophie Williams", Role: auth.RoleOwner}
	testWalker = auth.Identity{ID: "2", Name: "Sarah Jenkins", Role: auth.RoleWalker}
)

func validCreateInput() CreateInput {
	return CreateInput{
		DogID:     "dog-1",
		Date:      "2025-05-02",
		StartTime: "10:00",
		Duration:  30,
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_OwnerBookingIsPendingWithDefaultWalker(t *testing.T) {
	svc := NewService(newTestRepo())

	w, err := svc.Create(context.Background(), testOwner, "1", "2", validCreateInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if w.Status != StatusPending {
		t.Fatalf("owner booking should start pending, got %q", w.Status)
	}
	if w.WalkerID != "2" {
		t.Fatalf("owner booking should fall back to default walker, got %q", w.WalkerID)
	}
	if w.OwnerID != "1" {
		t.Fatalf("ownerId should come from the dog, got %q", w.OwnerID)
	}
	if w.Photos == nil || len(w.Photos) != 0 {
		t.Fatalf("photos should start as empty slice, got %#v", w.Photos)
	}
}

func TestService_Create_WalkerBookingIsConfirmedAndSelfAssigned(t *testing.T) {
	svc := NewService(newTestRepo())

	w, err := svc.Create(context.Background(), testWalker, "1", "ignored-default", validCreateInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if w.Status != StatusConfirmed {
		t.Fatalf("walker booking should start confirmed, got %q", w.Status)
	}
	if w.WalkerID != testWalker.ID {
		t.Fatalf("walker booking should self-assign, got %q", w.WalkerID)
	}
	// El walk sigue perteneciendo al dueño del perro, no al walker.
	if w.OwnerID != "1" {
		t.Fatalf("ownerId should stay the dog owner's, got %q", w.OwnerID)
	}
}

func TestService_Create_RequiredFields(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"sin dogId", CreateInput{Date: "2025-05-02", StartTime: "10:00", Duration: 30}},
		{"sin date", CreateInput{DogID: "dog-1", StartTime: "10:00", Duration: 30}},
		{"sin startTime", CreateInput{DogID: "dog-1", Date: "2025-05-02", Duration: 30}},
		{"duration cero", CreateInput{DogID: "dog-1", Date: "2025-05-02", StartTime: "10:00"}},
		{"duration negativa", CreateInput{DogID: "dog-1", Date: "2025-05-02", StartTime: "10:00", Duration: -5}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), testOwner, "1", "2", tc.in); err != ErrInvalidInput {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestService_Update_PreservesImmutableFields(t *testing.T) {
	svc := NewService(newTestRepo())

	created := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return created }

	w, err := svc.Create(context.Background(), testOwner, "1", "2", validCreateInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	later := created.Add(2 * time.Hour)
	svc.now = func() time.Time { return later }

	route := "Central Park loop"
	notes := "Great energy today"
	photos := []string{"https://example.com/p1.jpg", "https://example.com/p2.jpg"}
	updated, err := svc.Update(context.Background(), w.ID, UpdateInput{
		Route:  &route,
		Notes:  &notes,
		Photos: &photos,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if updated.Route != route || updated.Notes != notes || len(updated.Photos) != 2 {
		t.Fatalf("journal update not applied: %+v", updated)
	}
	if updated.ID != w.ID || updated.DogID != w.DogID || updated.OwnerID != w.OwnerID {
		t.Fatalf("immutable fields changed: %+v", updated)
	}
	if updated.CreatedAt != created {
		t.Fatalf("createdAt should be preserved")
	}
	if updated.UpdatedAt != later {
		t.Fatalf("expected UpdatedAt refreshed")
	}
	// El status no se toca por Update, solo por SetStatus.
	if updated.Status != StatusPending {
		t.Fatalf("Update must not change status, got %q", updated.Status)
	}
}

func TestService_SetStatus(t *testing.T) {
	svc := NewService(newTestRepo())

	w, err := svc.Create(context.Background(), testOwner, "1", "2", validCreateInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	confirmed, err := svc.SetStatus(context.Background(), w.ID, StatusConfirmed)
	if err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if confirmed.Status != StatusConfirmed {
		t.Fatalf("expected confirmed, got %q", confirmed.Status)
	}

	completed, err := svc.SetStatus(context.Background(), w.ID, StatusCompleted)
	if err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if completed.Status != StatusCompleted {
		t.Fatalf("expected completed, got %q", completed.Status)
	}

	if _, err := svc.SetStatus(context.Background(), w.ID, Status("banana")); err != ErrBadState {
		t.Fatalf("expected ErrBadState for unknown status, got %v", err)
	}
	// El status previo queda intacto después del rechazo.
	got, err := svc.GetByID(context.Background(), w.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Fatalf("rejected transition must not persist, got %q", got.Status)
	}

	if _, err := svc.SetStatus(context.Background(), "nope", StatusConfirmed); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown walk, got %v", err)
	}
}

func TestService_GetPublic_OnlyCompleted(t *testing.T) {
	svc := NewService(newTestRepo())

	w, err := svc.Create(context.Background(), testOwner, "1", "2", validCreateInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.GetPublic(context.Background(), w.ID); err != ErrNotFound {
		t.Fatalf("pending walk must not be public, got %v", err)
	}

	if _, err := svc.SetStatus(context.Background(), w.ID, StatusCompleted); err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}

	got, err := svc.GetPublic(context.Background(), w.ID)
	if err != nil {
		t.Fatalf("GetPublic error: %v", err)
	}
	if got.ID != w.ID {
		t.Fatalf("unexpected public walk: %+v", got)
	}

	if _, err := svc.GetPublic(context.Background(), "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestService_ListVisible(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), testOwner, "1", "2", validCreateInput()); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	other := validCreateInput()
	other.DogID = "dog-2"
	if _, err := svc.Create(context.Background(), testWalker, "3", "2", other); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	all, err := svc.ListVisible(context.Background(), testWalker.ID, true)
	if err != nil {
		t.Fatalf("ListVisible error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("walker should see all walks, got %d", len(all))
	}

	own, err := svc.ListVisible(context.Background(), "1", false)
	if err != nil {
		t.Fatalf("ListVisible error: %v", err)
	}
	if len(own) != 1 || own[0].OwnerID != "1" {
		t.Fatalf("owner should see only own walks, got %+v", own)
	}
}
