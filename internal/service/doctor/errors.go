package doctor

import "errors"

var (
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
)
