package appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"entgo.io/ent"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/spitali-app/spitali_backend/config"
	"github.com/spitali-app/spitali_backend/internal/repo"
	entappt "github.com/spitali-app/spitali_backend/internal/repo/appointment"
	"github.com/spitali-app/spitali_backend/internal/repo/enttest"
	"github.com/spitali-app/spitali_backend/internal/repo/hook"
	entpatient "github.com/spitali-app/spitali_backend/internal/repo/patient"
	entuser "github.com/spitali-app/spitali_backend/internal/repo/user"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
)

var testCfg = config.BookingConfig{EnforceSlotGrid: true, EnforceWeekdays: true}

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:appt_%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func seedDoctor(t *testing.T, client *repo.Client, name string) (*repo.User, *repo.Doctor) {
	t.Helper()
	ctx := context.Background()
	u, err := client.User.Create().
		SetEmail(name + "@clinic.test").
		SetPasswordHash("x").
		SetRole(entuser.RoleDOCTOR).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed doctor user: %v", err)
	}
	d, err := client.Doctor.Create().
		SetUserID(u.ID).
		SetName(name).
		SetSpecialty("cardiology").
		SetCity("Tirana").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return u, d
}

func seedPatientUser(t *testing.T, client *repo.Client, email string) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetRole(entuser.RolePATIENT).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed patient user: %v", err)
	}
	return u
}

func strPtr(s string) *string { return &s }

// Monday 09:00, on-grid
var mondaySlot = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestCreateBooksSlot(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, testCfg)
	ctx := context.Background()

	_, doc := seedDoctor(t, client, "house")
	pat := seedPatientUser(t, client, "pat@example.test")

	appt, err := svc.Create(ctx, Actor{UserID: pat.ID, Role: authorize.RoleNamePatient}, CreateRequest{
		DoctorID:    doc.ID,
		ScheduledAt: mondaySlot,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if appt.Status != "SCHEDULED" {
		t.Errorf("status = %q, want SCHEDULED", appt.Status)
	}
	if !appt.ScheduledAt.Equal(mondaySlot) {
		t.Errorf("scheduled_at = %v, want %v", appt.ScheduledAt, mondaySlot)
	}

	// A patient row was created on the fly and linked to the user.
	p, err := client.Patient.Query().Where(entpatient.UserID(pat.ID)).Only(ctx)
	if err != nil {
		t.Fatalf("patient row not created: %v", err)
	}
	if appt.PatientID != p.ID {
		t.Errorf("appointment patient = %v, want %v", appt.PatientID, p.ID)
	}
}

func TestCreateDoubleBook(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, testCfg)
	ctx := context.Background()

	_, doc := seedDoctor(t, client, "house")
	pat1 := seedPatientUser(t, client, "one@example.test")
	pat2 := seedPatientUser(t, client, "two@example.test")

	if _, err := svc.Create(ctx, Actor{UserID: pat1.ID, Role: authorize.RoleNamePatient}, CreateRequest{
		DoctorID: doc.ID, ScheduledAt: mondaySlot,
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := svc.Create(ctx, Actor{UserID: pat2.ID, Role: authorize.RoleNamePatient}, CreateRequest{
		DoctorID: doc.ID, ScheduledAt: mondaySlot,
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	// Same time with another doctor is fine.
	_, doc2 := seedDoctor(t, client, "wilson")
	if _, err := svc.Create(ctx, Actor{UserID: pat2.ID, Role: authorize.RoleNamePatient}, CreateRequest{
		DoctorID: doc2.ID, ScheduledAt: mondaySlot,
	}); err != nil {
		t.Fatalf("booking other doctor: %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, testCfg)
	ctx := context.Background()

	_, doc := seedDoctor(t, client, "house")
	pat := seedPatientUser(t, client, "pat@example.test")
	actor := Actor{UserID: pat.ID, Role: authorize.RoleNamePatient}

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			"off grid",
			CreateRequest{DoctorID: doc.ID, ScheduledAt: time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC)},
			ErrOffGrid,
		},
		{
			"before opening",
			CreateRequest{DoctorID: doc.ID, ScheduledAt: time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)},
			ErrOffGrid,
		},
		{
			"saturday",
			CreateRequest{DoctorID: doc.ID, ScheduledAt: time.Date(2026, 3, 7, 9, 0, 0, 0, time.UTC)},
			ErrWeekendBooking,
		},
		{
			"unknown doctor",
			CreateRequest{DoctorID: uuid.Must(uuid.NewV7()), ScheduledAt: mondaySlot},
			ErrDoctorNotFound,
		},
		{
			"bad gender",
			CreateRequest{DoctorID: doc.ID, ScheduledAt: mondaySlot, Patient: PatientInput{Gender: strPtr("other")}},
			ErrInvalidGender,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, actor, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreatePolicyDisabled(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, config.BookingConfig{})
	ctx := context.Background()

	_, doc := seedDoctor(t, client, "house")
	pat := seedPatientUser(t, client, "pat@example.test")

	// Off-grid and weekend both pass when policy enforcement is off.
	_, err := svc.Create(ctx, Actor{UserID: pat.ID, Role: authorize.RoleNamePatient}, CreateRequest{
		DoctorID:    doc.ID,
		ScheduledAt: time.Date(2026, 3, 7, 22, 45, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create with policy off: %v", err)
	}
}

func TestCreateRollbackLeavesNoOrphanPatient(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, testCfg)
	ctx := context.Background()

	docUser, doc := seedDoctor(t, client, "house")
	pat := seedPatientUser(t, client, "pat@example.test")

	if _, err := svc.Create(ctx, Actor{UserID: pat.ID, Role: authorize.RoleNamePatient}, CreateRequest{
		DoctorID: doc.ID, ScheduledAt: mondaySlot,
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	before, _ := client.Patient.Query().Count(ctx)

	// Doctor books a brand-new walk-in into the taken slot. The patient row
	// is created inside the tx and must vanish with the rollback.
	name := "Walk In"
	_, err := svc.Create(ctx, Actor{UserID: docUser.ID, Role: authorize.RoleNameDoctor}, CreateRequest{
		DoctorID:    doc.ID,
		ScheduledAt: mondaySlot,
		Patient:     PatientInput{Name: &name},
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	after, _ := client.Patient.Query().Count(ctx)
	if after != before {
		t.Errorf("patient count changed %d -> %d, rollback leaked a row", before, after)
	}
}

func TestCreateStaffPatientDetails(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, testCfg)
	ctx := context.Background()

	docUser, doc := seedDoctor(t, client, "house")
	dob := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)

	appt, err := svc.Create(ctx, Actor{UserID: docUser.ID, Role: authorize.RoleNameDoctor}, CreateRequest{
		DoctorID:    doc.ID,
		ScheduledAt: mondaySlot,
		Patient: PatientInput{
			FirstName: strPtr("Ada"),
			LastName:  strPtr("Lovelace"),
			Email:     strPtr("ada@example.test"),
			Phone:     strPtr("0691234567"),
			Gender:    strPtr("female"),
			DOB:       &dob,
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	p, err := client.Patient.Get(ctx, appt.PatientID)
	if err != nil {
		t.Fatalf("get created patient: %v", err)
	}
	if p.Name == nil || *p.Name != "Ada Lovelace" {
		t.Errorf("name = %v, want Ada Lovelace", p.Name)
	}
	if p.Email == nil || *p.Email != "ada@example.test" {
		t.Errorf("email = %v", p.Email)
	}
	if p.Phone == nil || *p.Phone != "0691234567" {
		t.Errorf("phone = %v", p.Phone)
	}
	if p.Gender == nil || *p.Gender != entpatient.GenderFemale {
		t.Errorf("gender = %v", p.Gender)
	}
	if p.Dob == nil || !p.Dob.Equal(dob) {
		t.Errorf("dob = %v, want %v", p.Dob, dob)
	}
	if p.CreatedByDoctorID == nil || *p.CreatedByDoctorID != doc.ID {
		t.Errorf("created_by_doctor_id = %v, want %v", p.CreatedByDoctorID, doc.ID)
	}
}

func TestCreateFillsOwnProfile(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, testCfg)
	ctx := context.Background()

	_, doc := seedDoctor(t, client, "house")
	pat := seedPatientUser(t, client, "pat@example.test")

	appt, err := svc.Create(ctx, Actor{UserID: pat.ID, Role: authorize.RoleNamePatient}, CreateRequest{
		DoctorID:    doc.ID,
		ScheduledAt: mondaySlot,
		Patient: PatientInput{
			FirstName: strPtr("Grace"),
			LastName:  strPtr("Hopper"),
			Phone:     strPtr("0449999999"),
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	p, err := client.Patient.Get(ctx, appt.PatientID)
	if err != nil {
		t.Fatalf("get created patient: %v", err)
	}
	if p.UserID == nil || *p.UserID != pat.ID {
		t.Errorf("user_id = %v, want %v", p.UserID, pat.ID)
	}
	if p.Name == nil || *p.Name != "Grace Hopper" {
		t.Errorf("name = %v, want Grace Hopper", p.Name)
	}
	if p.Phone == nil || *p.Phone != "0449999999" {
		t.Errorf("phone = %v", p.Phone)
	}
	// The account email wins over the form.
	if p.Email == nil || *p.Email != "pat@example.test" {
		t.Errorf("email = %v", p.Email)
	}
}

func TestCreateLosesRaceToConcurrentInsert(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, testCfg)
	ctx := context.Background()

	_, doc := seedDoctor(t, client, "house")
	pat := seedPatientUser(t, client, "pat@example.test")

	rival, err := client.Patient.Create().SetName("Rival").Save(ctx)
	if err != nil {
		t.Fatalf("seed rival patient: %v", err)
	}

	// Sneak a competing row into the slot after the availability check has
	// already passed, the way a concurrent booking winning the race would.
	var raced bool
	client.Appointment.Use(func(next ent.Mutator) ent.Mutator {
		return hook.AppointmentFunc(func(ctx context.Context, m *repo.AppointmentMutation) (repo.Value, error) {
			if m.Op().Is(ent.OpCreate) && !raced {
				raced = true
				doctorID, _ := m.DoctorID()
				at, _ := m.ScheduledAt()
				if _, err := m.Client().Appointment.Create().
					SetDoctorID(doctorID).
					SetPatientID(rival.ID).
					SetScheduledAt(at).
					SetStatus(entappt.StatusSCHEDULED).
					Save(ctx); err != nil {
					return nil, err
				}
			}
			return next.Mutate(ctx, m)
		})
	})

	_, err = svc.Create(ctx, Actor{UserID: pat.ID, Role: authorize.RoleNamePatient}, CreateRequest{
		DoctorID: doc.ID, ScheduledAt: mondaySlot,
	})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken from the unique index, got %v", err)
	}
	if !raced {
		t.Fatal("competing insert never ran")
	}

	// The losing transaction rolled back everything, competing row included.
	if n, _ := client.Appointment.Query().Count(ctx); n != 0 {
		t.Errorf("appointment count = %d, want 0 after rollback", n)
	}
}

func TestListMineRequiresProfile(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, testCfg)
	ctx := context.Background()

	pat := seedPatientUser(t, client, "new@example.test")
	if _, err := svc.ListMine(ctx, Actor{UserID: pat.ID, Role: authorize.RoleNamePatient}); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}

	u, err := client.User.Create().
		SetEmail("noprofile@clinic.test").
		SetPasswordHash("x").
		SetRole(entuser.RoleDOCTOR).
		Save(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ListMine(ctx, Actor{UserID: u.ID, Role: authorize.RoleNameDoctor}); !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestCancelFreesSlot(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, testCfg)
	ctx := context.Background()

	_, doc := seedDoctor(t, client, "house")
	pat := seedPatientUser(t, client, "pat@example.test")
	actor := Actor{UserID: pat.ID, Role: authorize.RoleNamePatient}

	appt, err := svc.Create(ctx, actor, CreateRequest{DoctorID: doc.ID, ScheduledAt: mondaySlot})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	cancelled, err := svc.Cancel(ctx, actor, appt.ID)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if cancelled.Status != "CANCELLED" {
		t.Errorf("status = %q, want CANCELLED", cancelled.Status)
	}
	if cancelled.CancelledAt == nil {
		t.Error("cancelled_at not set")
	}

	// Slot is free again.
	if _, err := svc.Create(ctx, actor, CreateRequest{DoctorID: doc.ID, ScheduledAt: mondaySlot}); err != nil {
		t.Fatalf("rebooking freed slot: %v", err)
	}

	// Cancelling twice fails cleanly.
	if _, err := svc.Cancel(ctx, actor, appt.ID); !errors.Is(err, ErrAlreadyCancelled) {
		t.Errorf("expected ErrAlreadyCancelled, got %v", err)
	}
}

func TestCancelOwnership(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, testCfg)
	ctx := context.Background()

	_, doc := seedDoctor(t, client, "house")
	owner := seedPatientUser(t, client, "owner@example.test")
	stranger := seedPatientUser(t, client, "stranger@example.test")

	appt, err := svc.Create(ctx, Actor{UserID: owner.ID, Role: authorize.RoleNamePatient},
		CreateRequest{DoctorID: doc.ID, ScheduledAt: mondaySlot})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Another patient cannot cancel.
	if _, err := svc.Cancel(ctx, Actor{UserID: stranger.ID, Role: authorize.RoleNamePatient}, appt.ID); !errors.Is(err, ErrNotAllowed) {
		t.Errorf("expected ErrNotAllowed for stranger, got %v", err)
	}

	// An unassigned doctor cannot cancel.
	otherDocUser, _ := seedDoctor(t, client, "wilson")
	if _, err := svc.Cancel(ctx, Actor{UserID: otherDocUser.ID, Role: authorize.RoleNameDoctor}, appt.ID); !errors.Is(err, ErrNotAllowed) {
		t.Errorf("expected ErrNotAllowed for other doctor, got %v", err)
	}

	// An admin can.
	admin := Actor{UserID: uuid.Must(uuid.NewV7()), Role: authorize.RoleNameAdmin}
	if _, err := svc.Cancel(ctx, admin, appt.ID); err != nil {
		t.Errorf("admin cancel: %v", err)
	}
}

func TestComplete(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, testCfg)
	ctx := context.Background()

	docUser, doc := seedDoctor(t, client, "house")
	pat := seedPatientUser(t, client, "pat@example.test")

	appt, err := svc.Create(ctx, Actor{UserID: pat.ID, Role: authorize.RoleNamePatient},
		CreateRequest{DoctorID: doc.ID, ScheduledAt: mondaySlot})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// The patient cannot complete their own appointment.
	if _, err := svc.Complete(ctx, Actor{UserID: pat.ID, Role: authorize.RoleNamePatient}, appt.ID); !errors.Is(err, ErrNotAllowed) {
		t.Errorf("expected ErrNotAllowed for patient, got %v", err)
	}

	done, err := svc.Complete(ctx, Actor{UserID: docUser.ID, Role: authorize.RoleNameDoctor}, appt.ID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if done.Status != "DONE" {
		t.Errorf("status = %q, want DONE", done.Status)
	}

	// Completing again fails, and so does cancelling a done visit.
	if _, err := svc.Complete(ctx, Actor{UserID: docUser.ID, Role: authorize.RoleNameDoctor}, appt.ID); !errors.Is(err, ErrAlreadyDone) {
		t.Errorf("expected ErrAlreadyDone, got %v", err)
	}
	if _, err := svc.Cancel(ctx, Actor{UserID: pat.ID, Role: authorize.RoleNamePatient}, appt.ID); !errors.Is(err, ErrAlreadyDone) {
		t.Errorf("expected ErrAlreadyDone on cancel, got %v", err)
	}
}

func TestListMineScoping(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, testCfg)
	ctx := context.Background()

	docUser, doc := seedDoctor(t, client, "house")
	pat1 := seedPatientUser(t, client, "one@example.test")
	pat2 := seedPatientUser(t, client, "two@example.test")

	slots := []time.Time{
		mondaySlot,
		mondaySlot.Add(30 * time.Minute),
		mondaySlot.Add(time.Hour),
	}
	actors := []Actor{
		{UserID: pat1.ID, Role: authorize.RoleNamePatient},
		{UserID: pat1.ID, Role: authorize.RoleNamePatient},
		{UserID: pat2.ID, Role: authorize.RoleNamePatient},
	}
	for i, at := range slots {
		if _, err := svc.Create(ctx, actors[i], CreateRequest{DoctorID: doc.ID, ScheduledAt: at}); err != nil {
			t.Fatalf("booking %d: %v", i, err)
		}
	}

	mine, err := svc.ListMine(ctx, Actor{UserID: pat1.ID, Role: authorize.RoleNamePatient})
	if err != nil {
		t.Fatalf("ListMine patient: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("patient sees %d appointments, want 2", len(mine))
	}

	docAppts, err := svc.ListMine(ctx, Actor{UserID: docUser.ID, Role: authorize.RoleNameDoctor})
	if err != nil {
		t.Fatalf("ListMine doctor: %v", err)
	}
	if len(docAppts) != 3 {
		t.Errorf("doctor sees %d appointments, want 3", len(docAppts))
	}
}

func TestListBookedSlots(t *testing.T) {
	client := newTestClient(t)
	svc := New(client, testCfg)
	ctx := context.Background()

	_, doc := seedDoctor(t, client, "house")
	pat := seedPatientUser(t, client, "pat@example.test")
	actor := Actor{UserID: pat.ID, Role: authorize.RoleNamePatient}

	first, err := svc.Create(ctx, actor, CreateRequest{DoctorID: doc.ID, ScheduledAt: mondaySlot})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, actor, CreateRequest{DoctorID: doc.ID, ScheduledAt: mondaySlot.Add(2 * time.Hour)}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	booked, err := svc.ListBookedSlots(ctx, doc.ID, mondaySlot)
	if err != nil {
		t.Fatalf("ListBookedSlots: %v", err)
	}
	want := []string{"09:00", "11:00"}
	if len(booked) != len(want) {
		t.Fatalf("booked = %v, want %v", booked, want)
	}
	for i := range want {
		if booked[i] != want[i] {
			t.Errorf("booked[%d] = %q, want %q", i, booked[i], want[i])
		}
	}

	// Cancelled appointments drop out of the listing.
	if _, err := svc.Cancel(ctx, actor, first.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	booked, err = svc.ListBookedSlots(ctx, doc.ID, mondaySlot)
	if err != nil {
		t.Fatalf("ListBookedSlots: %v", err)
	}
	if len(booked) != 1 || booked[0] != "11:00" {
		t.Errorf("booked after cancel = %v, want [11:00]", booked)
	}
}
