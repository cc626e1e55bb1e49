package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrAlreadyCheckedIn       = errors.New("employee has already checked in on this date")
	ErrNotCheckedIn           = errors.New("employee has not checked in on this date")
	ErrAlreadyCheckedOut      = errors.New("employee has already checked out on this date")
	ErrCheckOutWithoutCheckIn = errors.New("check-out requires a check-in")

	// Justification errors
	ErrNotAnAbsence     = errors.New("only absences can be justified")
	ErrAlreadyJustified = errors.New("absence has already been justified")

	// General errors
	ErrAttendanceNotFound      = errors.New("attendance record not found")
	ErrAttendanceAlreadyExists = errors.New("attendance record already exists for this date")
)
