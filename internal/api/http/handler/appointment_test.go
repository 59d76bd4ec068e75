package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/spitali-app/spitali_backend/config"
	"github.com/spitali-app/spitali_backend/internal/repo"
	"github.com/spitali-app/spitali_backend/internal/repo/enttest"
	entuser "github.com/spitali-app/spitali_backend/internal/repo/user"
	"github.com/spitali-app/spitali_backend/internal/service/appointment"
	"github.com/spitali-app/spitali_backend/pkg/token"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:handler_%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

// asUser injects claims the way the auth middleware would after verifying a
// bearer token.
func asUser(userID uuid.UUID, role string) fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Locals(token.CtxKeyClaims, &token.Claims{
			Type:   token.TokenTypeAccess,
			UserID: userID,
			Role:   role,
		})
		return c.Next()
	}
}

func TestAppointmentWireContract(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	docUser, err := client.User.Create().
		SetEmail("house@clinic.test").
		SetPasswordHash("x").
		SetRole(entuser.RoleDOCTOR).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed doctor user: %v", err)
	}
	doc, err := client.Doctor.Create().
		SetUserID(docUser.ID).
		SetName("house").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	pat, err := client.User.Create().
		SetEmail("pat@example.test").
		SetPasswordHash("x").
		SetRole(entuser.RolePATIENT).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed patient user: %v", err)
	}

	svc := appointment.New(client, config.BookingConfig{EnforceSlotGrid: true, EnforceWeekdays: true})
	h := NewAppointmentHandler(svc)

	app := fiber.New()
	app.Get("/appointments/doctor/:doctorId/booked", h.BookedSlots)
	app.Post("/appointments", asUser(pat.ID, "PATIENT"), h.Create)
	app.Get("/patients/me/appointments", asUser(pat.ID, "PATIENT"), h.Mine)
	app.Get("/doctors/me/appointments", asUser(docUser.ID, "DOCTOR"), h.Mine)

	book := func(body string) (int, []byte) {
		t.Helper()
		req := httptest.NewRequest("POST", "/appointments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		raw, _ := io.ReadAll(res.Body)
		return res.StatusCode, raw
	}

	// Booking with the client's payload creates the appointment.
	payload := fmt.Sprintf(`{
		"doctor_id": %q,
		"scheduled_at": "2026-03-02 09:00:00",
		"reason": null,
		"patient": {
			"first_name": "Ada",
			"last_name": "Lovelace",
			"name": "Ada Lovelace",
			"dob": "1990-05-01",
			"email": "ada@example.test",
			"phone": "0691234567",
			"gender": "female"
		}
	}`, doc.ID)

	code, raw := book(payload)
	if code != fiber.StatusCreated {
		t.Fatalf("status = %d, body = %s", code, raw)
	}
	var appt struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &appt); err != nil {
		t.Fatalf("decode appointment: %v", err)
	}
	if appt.ID == "" || appt.Status != "SCHEDULED" {
		t.Errorf("appointment = %+v", appt)
	}

	// Booking the same slot again conflicts and carries a message.
	code, raw = book(payload)
	if code != fiber.StatusConflict {
		t.Fatalf("rebook status = %d, want 409", code)
	}
	var conflictBody struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &conflictBody); err != nil || conflictBody.Message == "" {
		t.Errorf("conflict body = %s", raw)
	}

	// The public booked-slots feed wraps times in a booked key.
	req := httptest.NewRequest("GET", "/appointments/doctor/"+doc.ID.String()+"/booked?date=2026-03-02", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("booked request: %v", err)
	}
	raw, _ = io.ReadAll(res.Body)
	var booked struct {
		Booked []string `json:"booked"`
	}
	if err := json.Unmarshal(raw, &booked); err != nil {
		t.Fatalf("decode booked: %v (%s)", err, raw)
	}
	if len(booked.Booked) != 1 || booked.Booked[0] != "09:00" {
		t.Errorf("booked = %v, want [09:00]", booked.Booked)
	}

	// Patients get a bare array of their appointments.
	req = httptest.NewRequest("GET", "/patients/me/appointments", nil)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("mine request: %v", err)
	}
	raw, _ = io.ReadAll(res.Body)
	var mine []json.RawMessage
	if err := json.Unmarshal(raw, &mine); err != nil {
		t.Fatalf("patient appointments not a bare array: %s", raw)
	}
	if len(mine) != 1 {
		t.Errorf("patient sees %d appointments, want 1", len(mine))
	}

	// Doctors get theirs wrapped in items.
	req = httptest.NewRequest("GET", "/doctors/me/appointments", nil)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("doctor mine request: %v", err)
	}
	raw, _ = io.ReadAll(res.Body)
	var docMine struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(raw, &docMine); err != nil {
		t.Fatalf("decode doctor appointments: %s", raw)
	}
	if len(docMine.Items) != 1 {
		t.Errorf("doctor sees %d appointments, want 1", len(docMine.Items))
	}
}

func TestAppointmentCreateRejectsMissingFields(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	pat, err := client.User.Create().
		SetEmail("pat@example.test").
		SetPasswordHash("x").
		SetRole(entuser.RolePATIENT).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed patient user: %v", err)
	}

	svc := appointment.New(client, config.BookingConfig{})
	h := NewAppointmentHandler(svc)
	app := fiber.New()
	app.Post("/appointments", asUser(pat.ID, "PATIENT"), h.Create)

	req := httptest.NewRequest("POST", "/appointments",
		strings.NewReader(`{"doctor_id": "", "patient": {"name": "Ada"}}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", res.StatusCode)
	}
}
