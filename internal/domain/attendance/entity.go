package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent         Status = "present"
	StatusAbsent          Status = "absent"
	StatusAbsentJustified Status = "absent_justified"
	StatusLate            Status = "late"
	StatusEarlyDeparture  Status = "early_departure"
	StatusHoliday         Status = "holiday"
	StatusDayOff          Status = "day_off"
)

var validStatuses = map[Status]bool{
	StatusPresent:         true,
	StatusAbsent:          true,
	StatusAbsentJustified: true,
	StatusLate:            true,
	StatusEarlyDeparture:  true,
	StatusHoliday:         true,
	StatusDayOff:          true,
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// CountsAsWorked reports whether the record's hours are paid by the hour-driven payroll.
func (s Status) CountsAsWorked() bool {
	return s == StatusPresent || s == StatusAbsentJustified
}

// Attendance is the single record of an employee for one calendar date.
type Attendance struct {
	ID          string
	CompanyID   string
	EmployeeID  string
	Date        time.Time
	CheckIn     *time.Time
	CheckOut    *time.Time
	WorkedHours decimal.Decimal
	Status      Status
	Notes       *string
	RecordedBy  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
}

// Justification explains an absence. At most one exists per attendance record.
type Justification struct {
	ID           string
	CompanyID    string
	AttendanceID string
	Reason       string
	EvidenceRef  *string
	JustifiedBy  *string
	CreatedAt    time.Time
}

// DateOf returns the calendar date of t as midnight UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
