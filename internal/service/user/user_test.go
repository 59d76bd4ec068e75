package user

import (
	"context"
	"errors"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/spitali-app/spitali_backend/internal/repo"
	entdoctor "github.com/spitali-app/spitali_backend/internal/repo/doctor"
	"github.com/spitali-app/spitali_backend/internal/repo/enttest"
	entpatient "github.com/spitali-app/spitali_backend/internal/repo/patient"
	entuser "github.com/spitali-app/spitali_backend/internal/repo/user"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:user_%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCreateByRole(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	t.Run("doctor gets a profile", func(t *testing.T) {
		u, err := svc.Create(ctx, CreateRequest{
			Email:     "doc@clinic.test",
			Password:  "s3cretpass",
			Role:      "doctor",
			Name:      "Gregory House",
			Specialty: "Diagnostics",
			City:      "Princeton",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if u.Role != entuser.RoleDOCTOR {
			t.Errorf("role = %q", u.Role)
		}
		d, err := client.Doctor.Query().Where(entdoctor.UserID(u.ID)).Only(ctx)
		if err != nil {
			t.Fatalf("doctor profile missing: %v", err)
		}
		if d.Specialty == nil || *d.Specialty != "Diagnostics" {
			t.Errorf("specialty = %v", d.Specialty)
		}
	})

	t.Run("patient gets a profile", func(t *testing.T) {
		u, err := svc.Create(ctx, CreateRequest{
			Email:    "pat@example.test",
			Password: "s3cretpass",
			Role:     "ROLE_PATIENT",
			Name:     "Ada",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if u.Role != entuser.RolePATIENT {
			t.Errorf("role = %q", u.Role)
		}
		if _, err := client.Patient.Query().Where(entpatient.UserID(u.ID)).Only(ctx); err != nil {
			t.Fatalf("patient profile missing: %v", err)
		}
	})

	t.Run("admin gets no profile", func(t *testing.T) {
		u, err := svc.Create(ctx, CreateRequest{
			Email:    "root@clinic.test",
			Password: "s3cretpass",
			Role:     "Admin",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if u.Role != entuser.RoleADMIN {
			t.Errorf("role = %q", u.Role)
		}
	})
}

func TestCreateValidation(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{"bad email", CreateRequest{Email: "nope", Password: "s3cretpass", Role: "ADMIN"}, ErrInvalidEmail},
		{"short password", CreateRequest{Email: "a@b.test", Password: "short", Role: "ADMIN"}, ErrPasswordTooShort},
		{"bad role", CreateRequest{Email: "a@b.test", Password: "s3cretpass", Role: "nurse"}, ErrInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := svc.Create(ctx, CreateRequest{Email: "dup@b.test", Password: "s3cretpass", Role: "ADMIN"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{Email: "dup@b.test", Password: "s3cretpass", Role: "ADMIN"}); !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestStats(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, nil)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateRequest{Email: "doc@clinic.test", Password: "s3cretpass", Role: "DOCTOR"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, CreateRequest{Email: "pat@example.test", Password: "s3cretpass", Role: "PATIENT"}); err != nil {
		t.Fatal(err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Users != 2 || stats.Doctors != 1 || stats.Patients != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Appointments != 0 || stats.Scheduled != 0 {
		t.Errorf("appointment counts = %+v", stats)
	}
}
