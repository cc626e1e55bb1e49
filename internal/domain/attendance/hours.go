package attendance

import (
	"time"

	"github.com/medusa-holding/medusa/internal/domain/shift"
	"github.com/medusa-holding/medusa/internal/pkg/money"
	"github.com/shopspring/decimal"
)

var secondsPerHour = decimal.NewFromInt(3600)

// WorkedHours returns the hours between check-in and check-out on date, rounded to two places.
// Only the time of day of each punch is used. A check-out earlier than the check-in
// belongs to the following day.
func WorkedHours(checkIn, checkOut *time.Time, date time.Time) decimal.Decimal {
	if checkIn == nil || checkOut == nil {
		return decimal.Zero
	}

	loc := date.Location()
	entry := onDate(date, checkIn.In(loc))
	exit := onDate(date, checkOut.In(loc))
	if exit.Before(entry) {
		exit = exit.AddDate(0, 0, 1)
	}

	seconds := int64(exit.Sub(entry) / time.Second)
	return money.Round(decimal.NewFromInt(seconds).Div(secondsPerHour))
}

func onDate(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), clock.Second(), 0, date.Location())
}

// Recompute returns a copy of a with WorkedHours derived from its punches.
func (a Attendance) Recompute() Attendance {
	a.WorkedHours = WorkedHours(a.CheckIn, a.CheckOut, a.Date)
	return a
}

// HoursShort returns how far the record falls below the shift's daily hours. Zero without a shift.
func HoursShort(a Attendance, s *shift.Shift) decimal.Decimal {
	if s == nil {
		return decimal.Zero
	}
	short := s.DailyHours.Sub(a.WorkedHours)
	if short.IsNegative() {
		return decimal.Zero
	}
	return money.Round(short)
}
