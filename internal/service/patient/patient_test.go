package patient

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

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
		fmt.Sprintf("file:patient_%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func strPtr(s string) *string { return &s }

func mustTime() time.Time {
	return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
}

func TestUpsertMine(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	u, err := client.User.Create().
		SetEmail("pat@example.test").
		SetPasswordHash("x").
		SetRole(entuser.RolePATIENT).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	// First write creates the row.
	p, created, err := svc.UpsertMine(ctx, u.ID, UpdateProfileRequest{
		FirstName: strPtr("Ada"),
		LastName:  strPtr("Lovelace"),
		Gender:    strPtr("female"),
	})
	if err != nil {
		t.Fatalf("UpsertMine create: %v", err)
	}
	if !created {
		t.Error("expected created=true on first write")
	}
	if p.Name == nil || *p.Name != "Ada Lovelace" {
		t.Errorf("display name = %v, want Ada Lovelace", p.Name)
	}
	if p.Email == nil || *p.Email != "pat@example.test" {
		t.Errorf("email not copied from account: %v", p.Email)
	}

	// Second write updates in place.
	p2, created, err := svc.UpsertMine(ctx, u.ID, UpdateProfileRequest{
		Phone: strPtr("0691234567"),
	})
	if err != nil {
		t.Fatalf("UpsertMine update: %v", err)
	}
	if created {
		t.Error("expected created=false on update")
	}
	if p2.ID != p.ID {
		t.Error("update created a second row")
	}
	if p2.Phone == nil || *p2.Phone != "0691234567" {
		t.Errorf("phone = %v", p2.Phone)
	}

	// Empty request is rejected.
	if _, _, err := svc.UpsertMine(ctx, u.ID, UpdateProfileRequest{}); !errors.Is(err, ErrNothingToUpdate) {
		t.Errorf("expected ErrNothingToUpdate, got %v", err)
	}

	// Bad gender is rejected.
	if _, _, err := svc.UpsertMine(ctx, u.ID, UpdateProfileRequest{Gender: strPtr("other")}); !errors.Is(err, ErrInvalidGender) {
		t.Errorf("expected ErrInvalidGender, got %v", err)
	}
}

func TestListSearch(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	for _, name := range []string{"Ada Lovelace", "Grace Hopper", "Alan Turing"} {
		if _, err := client.Patient.Create().SetName(name).Save(ctx); err != nil {
			t.Fatalf("seed patient: %v", err)
		}
	}

	res, err := svc.List(ctx, ListRequest{Search: "lovelace"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Total != 1 || len(res.Data) != 1 {
		t.Fatalf("search total = %d, want 1", res.Total)
	}
	if *res.Data[0].Name != "Ada Lovelace" {
		t.Errorf("found %q", *res.Data[0].Name)
	}

	all, err := svc.List(ctx, ListRequest{})
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if all.Total != 3 {
		t.Errorf("total = %d, want 3", all.Total)
	}
}

func TestDeleteCascades(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	docUser, err := client.User.Create().
		SetEmail("doc@clinic.test").SetPasswordHash("x").SetRole(entuser.RoleDOCTOR).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed doctor user: %v", err)
	}
	doc, err := client.Doctor.Create().SetUserID(docUser.ID).SetName("house").Save(ctx)
	if err != nil {
		t.Fatalf("seed doctor: %v", err)
	}

	patUser, err := client.User.Create().
		SetEmail("pat@example.test").SetPasswordHash("x").SetRole(entuser.RolePATIENT).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed patient user: %v", err)
	}
	p, err := client.Patient.Create().SetUserID(patUser.ID).SetName("Ada").Save(ctx)
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}

	if _, err := client.Appointment.Create().
		SetDoctorID(doc.ID).SetPatientID(p.ID).
		SetScheduledAt(mustTime()).Save(ctx); err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	if _, err := client.Diagnosis.Create().
		SetDoctorID(doc.ID).SetPatientID(p.ID).SetTitle("flu").Save(ctx); err != nil {
		t.Fatalf("seed diagnosis: %v", err)
	}

	// A random patient cannot delete.
	if err := svc.Delete(ctx, authorize.RoleNamePatient, patUser.ID, p.ID); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied, got %v", err)
	}

	// A doctor who did not register this patient cannot delete.
	if err := svc.Delete(ctx, authorize.RoleNameDoctor, docUser.ID, p.ID); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied for non-creating doctor, got %v", err)
	}

	if err := svc.Delete(ctx, authorize.RoleNameAdmin, uuid.Must(uuid.NewV7()), p.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}

	if n, _ := client.Patient.Query().Count(ctx); n != 0 {
		t.Errorf("patients left: %d", n)
	}
	if n, _ := client.Appointment.Query().Count(ctx); n != 0 {
		t.Errorf("appointments left: %d", n)
	}
	if n, _ := client.Diagnosis.Query().Count(ctx); n != 0 {
		t.Errorf("diagnoses left: %d", n)
	}
	// The linked login account goes too.
	if n, _ := client.User.Query().Where(entuser.ID(patUser.ID)).Count(ctx); n != 0 {
		t.Error("linked user account not removed")
	}
}

func TestListForDoctor(t *testing.T) {
	client := newTestClient(t)
	svc := New(client)
	ctx := context.Background()

	docUser, err := client.User.Create().
		SetEmail("doc@clinic.test").SetPasswordHash("x").SetRole(entuser.RoleDOCTOR).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed doctor user: %v", err)
	}
	doc, err := client.Doctor.Create().SetUserID(docUser.ID).SetName("house").Save(ctx)
	if err != nil {
		t.Fatalf("seed doctor: %v", err)
	}

	// One created by this doctor, one unclaimed walk-in, one self-registered,
	// one registered by another doctor.
	if _, err := client.Patient.Create().SetName("Mine").SetCreatedByDoctorID(doc.ID).Save(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := client.Patient.Create().SetName("Walk In").Save(ctx); err != nil {
		t.Fatal(err)
	}
	owner, err := client.User.Create().
		SetEmail("owner@example.test").SetPasswordHash("x").SetRole(entuser.RolePATIENT).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := client.Patient.Create().SetName("Self Registered").SetUserID(owner.ID).Save(ctx); err != nil {
		t.Fatal(err)
	}
	otherDocUser, err := client.User.Create().
		SetEmail("wilson@clinic.test").SetPasswordHash("x").SetRole(entuser.RoleDOCTOR).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}
	otherDoc, err := client.Doctor.Create().SetUserID(otherDocUser.ID).SetName("wilson").Save(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := client.Patient.Create().SetName("Theirs").SetCreatedByDoctorID(otherDoc.ID).Save(ctx); err != nil {
		t.Fatal(err)
	}

	rows, err := svc.ListForDoctor(ctx, docUser.ID)
	if err != nil {
		t.Fatalf("ListForDoctor: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("doctor sees %d patients, want 3", len(rows))
	}
	for _, r := range rows {
		if r.Name != nil && *r.Name == "Theirs" {
			t.Error("doctor should not see another doctor's registrations")
		}
	}
}
