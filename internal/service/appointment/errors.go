package appointment

import "errors"

var (
	ErrNotFound         = errors.New("appointment not found")
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrPatientNotFound  = errors.New("patient not found")
	ErrSlotTaken        = errors.New("time slot is already booked")
	ErrOffGrid          = errors.New("time is not on the booking grid")
	ErrWeekendBooking   = errors.New("appointments cannot be booked on weekends")
	ErrAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrAlreadyDone      = errors.New("appointment is already completed")
	ErrNotAllowed       = errors.New("not allowed to act on this appointment")
	ErrBadTimeFormat    = errors.New("invalid time format")
	ErrInvalidGender    = errors.New("gender must be male or female")
)
