package shift

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShift_MonthlyExpectedHours(t *testing.T) {
	tests := []struct {
		name     string
		shift    Shift
		expected string
	}{
		{"fixed 8h", Shift{Type: ShiftTypeFixed8h, DailyHours: decimal.NewFromInt(8), WorkdaysPerWeek: 5}, "176"},
		{"fixed 12h", Shift{Type: ShiftTypeFixed12h, DailyHours: decimal.NewFromInt(12), WorkdaysPerWeek: 5}, "264"},
		{"12x36", Shift{Type: ShiftType12x36, DailyHours: decimal.NewFromInt(12)}, "90"},
		{"12x48", Shift{Type: ShiftType12x48, DailyHours: decimal.NewFromInt(12)}, "120"},
		{"weekend", Shift{Type: ShiftTypeWeekend, DailyHours: decimal.NewFromInt(10)}, "80"},
		{"6h uses workdays", Shift{Type: ShiftType6h, DailyHours: decimal.NewFromInt(6), WorkdaysPerWeek: 6}, "144"},
		{"4h uses workdays", Shift{Type: ShiftType4h, DailyHours: decimal.NewFromInt(4), WorkdaysPerWeek: 5}, "80"},
		{"custom", Shift{Type: ShiftTypeCustom, DailyHours: decimal.RequireFromString("7.5"), WorkdaysPerWeek: 5}, "150"},
		{"unknown type falls back", Shift{Type: ShiftType("rotating"), DailyHours: decimal.NewFromInt(8), WorkdaysPerWeek: 4}, "128"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.shift.MonthlyExpectedHours()
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "got %s, want %s", got, tt.expected)
		})
	}
}

func TestShift_WeeklyHoursConsistent(t *testing.T) {
	s := Shift{DailyHours: decimal.NewFromInt(8), WeeklyHours: decimal.NewFromInt(40), WorkdaysPerWeek: 5}
	assert.True(t, s.WeeklyHoursConsistent())

	s.WeeklyHours = decimal.NewFromInt(44)
	assert.False(t, s.WeeklyHoursConsistent())
}

func TestDefaults(t *testing.T) {
	assert.True(t, DailyHoursOrDefault(nil).Equal(decimal.NewFromInt(8)))
	assert.True(t, MonthlyHoursOrDefault(nil).Equal(decimal.NewFromInt(176)))

	s := &Shift{Type: ShiftType12x36, DailyHours: decimal.NewFromInt(12)}
	assert.True(t, DailyHoursOrDefault(s).Equal(decimal.NewFromInt(12)))
	assert.True(t, MonthlyHoursOrDefault(s).Equal(decimal.NewFromInt(90)))
}

func TestCreateShiftRequest_Validate(t *testing.T) {
	valid := CreateShiftRequest{Name: "Morning", Type: ShiftTypeFixed8h, DailyHours: decimal.NewFromInt(8), WeeklyHours: decimal.NewFromInt(40), WorkdaysPerWeek: 5}
	assert.NoError(t, valid.Validate())

	invalid := CreateShiftRequest{Type: "bogus", DailyHours: decimal.Zero, WorkdaysPerWeek: 0}
	err := invalid.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "type")
	assert.Contains(t, err.Error(), "daily_hours")
	assert.Contains(t, err.Error(), "workdays_per_week")
}
