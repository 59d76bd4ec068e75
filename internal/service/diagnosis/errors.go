package diagnosis

import "errors"

var (
	ErrDiagnosisNotFound = errors.New("diagnosis not found")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrNoDoctorProfile   = errors.New("acting user has no doctor profile")
	ErrAccessDenied      = errors.New("access denied to this diagnosis")
	ErrTitleRequired     = errors.New("diagnosis title is required")
)
