package doctor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/spitali-app/spitali_backend/internal/repo"
	"github.com/spitali-app/spitali_backend/internal/repo/enttest"
	entuser "github.com/spitali-app/spitali_backend/internal/repo/user"
)

func mustUUID() uuid.UUID { return uuid.Must(uuid.NewV7()) }

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:doctor_%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func seed(t *testing.T, client *repo.Client, name, specialty, city string) {
	t.Helper()
	ctx := context.Background()
	u, err := client.User.Create().
		SetEmail(name + "@clinic.test").
		SetPasswordHash("x").
		SetRole(entuser.RoleDOCTOR).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := client.Doctor.Create().
		SetUserID(u.ID).
		SetName(name).
		SetSpecialty(specialty).
		SetCity(city).
		Save(ctx); err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
}

func TestSearch(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	seed(t, client, "adams", "Cardiology", "Tirana")
	seed(t, client, "baker", "Dermatology", "Tirana")
	seed(t, client, "clark", "Cardiology", "Durres")

	tests := []struct {
		name string
		req  SearchRequest
		want int
	}{
		{"by specialty case-insensitive", SearchRequest{Specialty: "cardio"}, 2},
		{"by city", SearchRequest{City: "tirana"}, 2},
		{"both filters", SearchRequest{Specialty: "CARDIOLOGY", City: "durres"}, 1},
		{"no filters", SearchRequest{}, 3},
		{"no match", SearchRequest{Specialty: "neurology"}, 0},
		{"substring city", SearchRequest{City: "urre"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := svc.Search(ctx, tt.req)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(rows) != tt.want {
				t.Errorf("got %d doctors, want %d", len(rows), tt.want)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateRequest{
		Email:     "House@Clinic.test",
		Password:  "s3cretpass",
		Name:      "Gregory House",
		Specialty: "Diagnostics",
		City:      "Princeton",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.Name == nil || *d.Name != "Gregory House" {
		t.Errorf("name = %v", d.Name)
	}

	// The login account exists with a normalized email and DOCTOR role.
	u, err := client.User.Query().Where(entuser.Email("house@clinic.test")).Only(ctx)
	if err != nil {
		t.Fatalf("linked user missing: %v", err)
	}
	if u.Role != entuser.RoleDOCTOR {
		t.Errorf("role = %q, want DOCTOR", u.Role)
	}
	if d.UserID != u.ID {
		t.Error("profile not linked to account")
	}

	// Duplicate email fails and leaves no half-created profile.
	before, _ := client.Doctor.Query().Count(ctx)
	_, err = svc.Create(ctx, CreateRequest{Email: "house@clinic.test", Password: "whatever1"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
	after, _ := client.Doctor.Query().Count(ctx)
	if after != before {
		t.Error("duplicate create leaked a doctor row")
	}
}

func TestGetByID(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	seed(t, client, "adams", "Cardiology", "Tirana")
	all, _ := client.Doctor.Query().All(ctx)

	got, err := svc.GetByID(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != all[0].ID {
		t.Error("wrong doctor returned")
	}

	_, err = svc.GetByID(ctx, mustUUID())
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound, got %v", err)
	}
}
