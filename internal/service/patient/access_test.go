package patient

import (
	"testing"

	"github.com/google/uuid"

	"github.com/spitali-app/spitali_backend/internal/repo"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
)

func TestCanAccess(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV7())
	otherID := uuid.Must(uuid.NewV7())
	docID := uuid.Must(uuid.NewV7())
	otherDocID := uuid.Must(uuid.NewV7())

	claimed := &repo.Patient{UserID: &ownerID}
	unclaimed := &repo.Patient{}
	staffCreated := &repo.Patient{CreatedByDoctorID: &docID}

	tests := []struct {
		name     string
		role     authorize.RoleName
		userID   uuid.UUID
		doctorID *uuid.UUID
		patient  *repo.Patient
		want     bool
	}{
		{"admin always", authorize.RoleNameAdmin, otherID, nil, claimed, true},
		{"admin on unclaimed", authorize.RoleNameAdmin, otherID, nil, unclaimed, true},

		{"patient owns row", authorize.RoleNamePatient, ownerID, nil, claimed, true},
		{"patient other row", authorize.RoleNamePatient, otherID, nil, claimed, false},
		{"patient on unclaimed", authorize.RoleNamePatient, ownerID, nil, unclaimed, false},

		{"doctor created it", authorize.RoleNameDoctor, otherID, &docID, staffCreated, true},
		{"doctor did not create it", authorize.RoleNameDoctor, otherID, &otherDocID, staffCreated, false},
		{"doctor on unclaimed", authorize.RoleNameDoctor, otherID, &docID, unclaimed, true},
		{"doctor on self-registered row", authorize.RoleNameDoctor, otherID, &docID, claimed, true},
		{"doctor without profile", authorize.RoleNameDoctor, otherID, nil, staffCreated, false},
		{"doctor without profile on self-registered", authorize.RoleNameDoctor, otherID, nil, claimed, true},

		{"unknown role", authorize.RoleName("NURSE"), ownerID, nil, claimed, false},
		{"nil patient", authorize.RoleNameAdmin, ownerID, nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanAccess(tt.role, tt.userID, tt.doctorID, tt.patient)
			if got != tt.want {
				t.Errorf("CanAccess() = %v, want %v", got, tt.want)
			}
		})
	}
}
