package patient

import (
	"github.com/google/uuid"

	"github.com/spitali-app/spitali_backend/internal/repo"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
)

// CanAccess decides whether an actor may read or modify a patient record.
//
//   - Admins always can.
//   - Patients can access only their own row.
//   - Doctors can access records they registered, plus any record no doctor
//     registered (self-registered patients and walk-ins alike).
//
// doctorID is the acting doctor's profile row id; nil when the actor has no
// doctor profile.
func CanAccess(role authorize.RoleName, userID uuid.UUID, doctorID *uuid.UUID, p *repo.Patient) bool {
	if p == nil {
		return false
	}

	switch role {
	case authorize.RoleNameAdmin:
		return true

	case authorize.RoleNamePatient:
		return p.UserID != nil && *p.UserID == userID

	case authorize.RoleNameDoctor:
		if p.CreatedByDoctorID == nil {
			return true
		}
		return doctorID != nil && *p.CreatedByDoctorID == *doctorID

	default:
		return false
	}
}
