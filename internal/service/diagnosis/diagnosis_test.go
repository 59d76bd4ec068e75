package diagnosis

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
	"github.com/spitali-app/spitali_backend/pkg/authorize"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:diag_%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func seedDoctor(t *testing.T, client *repo.Client, name string) (*repo.User, *repo.Doctor) {
	t.Helper()
	ctx := context.Background()
	u, err := client.User.Create().
		SetEmail(name + "@clinic.test").SetPasswordHash("x").SetRole(entuser.RoleDOCTOR).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed doctor user: %v", err)
	}
	d, err := client.Doctor.Create().SetUserID(u.ID).SetName(name).Save(ctx)
	if err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return u, d
}

func TestCreateAndListScoping(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	docUser1, _ := seedDoctor(t, client, "house")
	docUser2, _ := seedDoctor(t, client, "wilson")

	p, err := client.Patient.Create().SetName("Ada").Save(ctx)
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}

	desc := "persistent cough"
	if _, err := svc.Create(ctx, Actor{UserID: docUser1.ID, Role: authorize.RoleNameDoctor}, CreateRequest{
		PatientID:   p.ID,
		Title:       "Bronchitis",
		Description: &desc,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, Actor{UserID: docUser2.ID, Role: authorize.RoleNameDoctor}, CreateRequest{
		PatientID: p.ID,
		Title:     "Allergy",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Each doctor sees only their own notes.
	mine, err := svc.List(ctx, Actor{UserID: docUser1.ID, Role: authorize.RoleNameDoctor}, ListRequest{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(mine) != 1 || mine[0].Title != "Bronchitis" {
		t.Errorf("doctor1 sees %d diagnoses", len(mine))
	}

	// Admins see everything.
	all, err := svc.List(ctx, Actor{UserID: uuid.Must(uuid.NewV7()), Role: authorize.RoleNameAdmin}, ListRequest{})
	if err != nil {
		t.Fatalf("List admin: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin sees %d diagnoses, want 2", len(all))
	}

	// Patients cannot list.
	if _, err := svc.List(ctx, Actor{UserID: uuid.Must(uuid.NewV7()), Role: authorize.RoleNamePatient}, ListRequest{}); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	docUser, _ := seedDoctor(t, client, "house")
	p, err := client.Patient.Create().SetName("Ada").Save(ctx)
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	actor := Actor{UserID: docUser.ID, Role: authorize.RoleNameDoctor}

	if _, err := svc.Create(ctx, actor, CreateRequest{PatientID: p.ID, Title: "  "}); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
	if _, err := svc.Create(ctx, actor, CreateRequest{PatientID: uuid.Must(uuid.NewV7()), Title: "X"}); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
	if _, err := svc.Create(ctx, Actor{UserID: uuid.Must(uuid.NewV7()), Role: authorize.RoleNamePatient}, CreateRequest{PatientID: p.ID, Title: "X"}); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied, got %v", err)
	}
	if _, err := svc.Create(ctx, Actor{UserID: uuid.Must(uuid.NewV7()), Role: authorize.RoleNameDoctor}, CreateRequest{PatientID: p.ID, Title: "X"}); !errors.Is(err, ErrNoDoctorProfile) {
		t.Errorf("expected ErrNoDoctorProfile, got %v", err)
	}
}
