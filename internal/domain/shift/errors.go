package shift

import "errors"

var (
	ErrShiftNotFound    = errors.New("shift not found")
	ErrShiftNameExists  = errors.New("shift name already exists")
	ErrInvalidShiftType = errors.New("invalid shift type")
)
