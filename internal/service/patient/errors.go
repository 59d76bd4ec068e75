package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrAccessDenied    = errors.New("access denied to this patient record")
	ErrInvalidGender   = errors.New("gender must be Male or Female")
	ErrNothingToUpdate = errors.New("no profile fields provided")
)
