package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// All methods include companyID parameter to prevent cross-company data access.
type AttendanceRepository interface {
	// Create fails with ErrAttendanceAlreadyExists when the employee already has a record on that date
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string, companyID string) (Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*Attendance, error)

	Update(ctx context.Context, attendance Attendance) error

	List(ctx context.Context, filter AttendanceFilter, companyID string) ([]Attendance, int64, error)

	// ListByEmployeePeriod returns the employee's records within the calendar month
	ListByEmployeePeriod(ctx context.Context, employeeID string, month int, year int, companyID string) ([]Attendance, error)

	// BulkCreateAbsences inserts absence records, skipping employees that already have one.
	// Returns the number of rows actually inserted.
	BulkCreateAbsences(ctx context.Context, absences []Attendance) (int, error)

	// EmployeeIDsWithRecord lists employees that already have a record on date
	EmployeeIDsWithRecord(ctx context.Context, date time.Time, companyID string) ([]string, error)
}

// JustificationRepository stores absence justifications.
type JustificationRepository interface {
	// Create fails with ErrAlreadyJustified when the record already has a justification
	Create(ctx context.Context, justification Justification) (Justification, error)
	GetByAttendanceID(ctx context.Context, attendanceID string, companyID string) (*Justification, error)
}
