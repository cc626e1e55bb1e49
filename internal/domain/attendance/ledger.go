package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// JustificationWindow is how long after a record is created an absence can still be excused.
const JustificationWindow = 24 * time.Hour

// ApplyCheckIn opens the day for an employee. existing is the record already stored for
// that date, if any. A record created by the absence sweep is turned into a presence.
func ApplyCheckIn(existing *Attendance, companyID, employeeID string, at time.Time) (Attendance, error) {
	if existing == nil {
		record := Attendance{
			CompanyID:  companyID,
			EmployeeID: employeeID,
			Date:       DateOf(at),
			CheckIn:    &at,
			Status:     StatusPresent,
		}
		return record.Recompute(), nil
	}

	if existing.CheckIn != nil {
		return *existing, ErrAlreadyCheckedIn
	}

	record := *existing
	record.CheckIn = &at
	if record.Status == StatusAbsent {
		record.Status = StatusPresent
	}
	return record.Recompute(), nil
}

// ApplyCheckOut closes the day for an employee.
func ApplyCheckOut(existing *Attendance, at time.Time) (Attendance, error) {
	if existing == nil || existing.CheckIn == nil {
		return Attendance{}, ErrNotCheckedIn
	}
	if existing.CheckOut != nil {
		return *existing, ErrAlreadyCheckedOut
	}

	record := *existing
	record.CheckOut = &at
	return record.Recompute(), nil
}

// ClosesOvernight reports whether a check-out at at closes a shift opened at checkIn on
// the previous day: the punches are less than a day apart and the check-out's time of
// day comes before the check-in's.
func ClosesOvernight(checkIn, at time.Time) bool {
	if !at.After(checkIn) || at.Sub(checkIn) >= 24*time.Hour {
		return false
	}
	return clockOf(at.In(checkIn.Location())) < clockOf(checkIn)
}

func clockOf(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second
}

// ApplyCorrection overwrites punches, status or notes and recomputes the hours.
func ApplyCorrection(record Attendance, checkIn, checkOut *time.Time, status *Status, notes *string) (Attendance, error) {
	if checkIn != nil {
		record.CheckIn = checkIn
	}
	if checkOut != nil {
		record.CheckOut = checkOut
	}
	if record.CheckOut != nil && record.CheckIn == nil {
		return Attendance{}, ErrCheckOutWithoutCheckIn
	}
	if status != nil {
		record.Status = *status
	}
	if notes != nil {
		record.Notes = notes
	}
	return record.Recompute(), nil
}

// ApplyJustification excuses an absence when now is within JustificationWindow of the
// record's creation. applied is false when the window has passed; the record is then
// returned unchanged and the justification is still kept.
func ApplyJustification(record Attendance, now time.Time) (updated Attendance, applied bool, err error) {
	switch record.Status {
	case StatusAbsentJustified:
		return record, false, ErrAlreadyJustified
	case StatusAbsent:
	default:
		return record, false, ErrNotAnAbsence
	}

	if now.Sub(record.CreatedAt) > JustificationWindow {
		return record, false, nil
	}

	record.Status = StatusAbsentJustified
	return record, true, nil
}

// NewAbsence builds the record written by the absence sweep.
func NewAbsence(companyID, employeeID string, date time.Time) Attendance {
	return Attendance{
		CompanyID:   companyID,
		EmployeeID:  employeeID,
		Date:        DateOf(date),
		Status:      StatusAbsent,
		WorkedHours: decimal.Zero,
	}
}
