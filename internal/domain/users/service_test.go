package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	if u.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[u.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) Update(ctx context.Context, u User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, errRepoNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, errRepoNotFound
}

// -------------------------
// Tests
// -------------------------

func TestService_Register_HashesPassword(t *testing.T) {
	svc := NewService(newTestRepo())

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "Owner@Example.com",
		Password: "password",
		Name:     "Sophie Williams",
		Role:     RoleOwner,
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if u.Email != "owner@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.PasswordHash == "password" || u.PasswordHash == "" {
		t.Fatalf("expected bcrypt hash, got %q", u.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password")); err != nil {
		t.Fatalf("hash does not match original password: %v", err)
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc := NewService(newTestRepo())

	in := RegisterInput{Email: "owner@example.com", Password: "pw", Name: "Sophie", Role: RoleOwner}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("Register #1 error: %v", err)
	}

	_, err := svc.Register(context.Background(), in)
	if err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestService_Register_RejectsUnknownRole(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "x@example.com",
		Password: "pw",
		Name:     "X",
		Role:     Role("admin"),
	})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Login(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Register(context.Background(), RegisterInput{
		Email: "walker@stardogwalker.com", Password: "password", Name: "Sarah Jenkins", Role: RoleWalker,
	}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	u, err := svc.Login(context.Background(), "walker@stardogwalker.com", "password")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if u.Role != RoleWalker {
		t.Fatalf("expected walker role, got %s", u.Role)
	}

	if _, err := svc.Login(context.Background(), "walker@stardogwalker.com", "wrong"); err != ErrBadCredentials {
		t.Fatalf("expected ErrBadCredentials for bad password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@example.com", "password"); err != ErrBadCredentials {
		t.Fatalf("expected ErrBadCredentials for unknown email, got %v", err)
	}
}

func TestService_UpdateProfile_PreservesImmutableFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return created }

	u, err := svc.Register(context.Background(), RegisterInput{
		Email: "owner@example.com", Password: "pw", Name: "Sophie", Role: RoleOwner, Phone: "+44 7123",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	later := created.Add(48 * time.Hour)
	svc.now = func() time.Time { return later }

	name := "Sophie W."
	addr := "Adamsdown, Cardiff"
	updated, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{
		Name:    &name,
		Address: &addr,
	})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}

	if updated.Name != "Sophie W." || updated.Address != "Adamsdown, Cardiff" {
		t.Fatalf("profile fields not updated: %+v", updated)
	}
	// Phone no vino en el input: se conserva.
	if updated.Phone != "+44 7123" {
		t.Fatalf("expected untouched phone, got %q", updated.Phone)
	}
	if updated.Email != u.Email || updated.Role != u.Role || updated.ID != u.ID {
		t.Fatalf("immutable fields changed: %+v", updated)
	}
	if updated.CreatedAt != created || updated.UpdatedAt != later {
		t.Fatalf("expected CreatedAt preserved and UpdatedAt refreshed")
	}
	if updated.PasswordHash != u.PasswordHash {
		t.Fatalf("password hash must not change on profile update")
	}
}

func TestService_UpdateProfile_UnknownUser(t *testing.T) {
	svc := NewService(newTestRepo())

	name := "X"
	if _, err := svc.UpdateProfile(context.Background(), "missing", UpdateProfileInput{Name: &name}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
