package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftType enum
type ShiftType string

const (
	ShiftTypeFixed8h  ShiftType = "fixed_8h"
	ShiftTypeFixed12h ShiftType = "fixed_12h"
	ShiftType12x36    ShiftType = "12x36"
	ShiftType12x48    ShiftType = "12x48"
	ShiftType6h       ShiftType = "6h"
	ShiftType4h       ShiftType = "4h"
	ShiftTypeWeekend  ShiftType = "weekend"
	ShiftTypeCustom   ShiftType = "custom"
)

var validShiftTypes = map[ShiftType]bool{
	ShiftTypeFixed8h:  true,
	ShiftTypeFixed12h: true,
	ShiftType12x36:    true,
	ShiftType12x48:    true,
	ShiftType6h:       true,
	ShiftType4h:       true,
	ShiftTypeWeekend:  true,
	ShiftTypeCustom:   true,
}

// IsValid reports whether t is one of the known shift types.
func (t ShiftType) IsValid() bool {
	return validShiftTypes[t]
}

// StandardWorkdaysPerMonth is the month length assumed by fixed shifts.
const StandardWorkdaysPerMonth = 22

// DefaultDailyHours applies to employees without a shift.
const DefaultDailyHours = 8

var (
	standardWorkdays = decimal.NewFromInt(StandardWorkdaysPerMonth)
	weeksPerMonth    = decimal.NewFromInt(4)
	daysPerMonth     = decimal.NewFromInt(30)
	weekendDays      = decimal.NewFromInt(8)
)

type Shift struct {
	ID              string
	CompanyID       string
	Name            string
	Type            ShiftType
	DailyHours      decimal.Decimal
	WeeklyHours     decimal.Decimal
	WorkdaysPerWeek int
	Description     *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MonthlyExpectedHours returns the hours the shift is expected to cover in a month.
// Rotating shifts use a 30-day month; fixed shifts use 22 workdays.
func (s Shift) MonthlyExpectedHours() decimal.Decimal {
	switch s.Type {
	case ShiftTypeFixed8h, ShiftTypeFixed12h:
		return s.DailyHours.Mul(standardWorkdays)
	case ShiftType12x36:
		// one shift every four days
		return s.DailyHours.Mul(daysPerMonth.Div(decimal.NewFromInt(4)))
	case ShiftType12x48:
		// two shifts every six days
		return s.DailyHours.Mul(daysPerMonth.Div(decimal.NewFromInt(6))).Mul(decimal.NewFromInt(2))
	case ShiftTypeWeekend:
		return s.DailyHours.Mul(weekendDays)
	default:
		return s.DailyHours.Mul(decimal.NewFromInt(int64(s.WorkdaysPerWeek))).Mul(weeksPerMonth)
	}
}

// WeeklyHoursConsistent reports whether WeeklyHours matches DailyHours × WorkdaysPerWeek.
// Rotating shifts legitimately diverge, so this is informational only.
func (s Shift) WeeklyHoursConsistent() bool {
	return s.DailyHours.Mul(decimal.NewFromInt(int64(s.WorkdaysPerWeek))).Equal(s.WeeklyHours)
}

// DailyHoursOrDefault returns the daily hours of s, or 8 when s is nil.
func DailyHoursOrDefault(s *Shift) decimal.Decimal {
	if s == nil || !s.DailyHours.IsPositive() {
		return decimal.NewFromInt(DefaultDailyHours)
	}
	return s.DailyHours
}

// MonthlyHoursOrDefault returns the monthly expected hours of s, or 22 × 8 when s is nil.
func MonthlyHoursOrDefault(s *Shift) decimal.Decimal {
	if s != nil {
		if hours := s.MonthlyExpectedHours(); hours.IsPositive() {
			return hours
		}
	}
	return standardWorkdays.Mul(decimal.NewFromInt(DefaultDailyHours))
}
