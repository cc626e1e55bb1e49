package attendance

import (
	"testing"
	"time"

	"github.com/medusa-holding/medusa/internal/domain/shift"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func clock(hour, min int) *time.Time {
	t := time.Date(2024, time.March, 4, hour, min, 0, 0, time.UTC)
	return &t
}

func TestWorkedHours(t *testing.T) {
	date := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkIn  *time.Time
		checkOut *time.Time
		expected string
	}{
		{"day shift", clock(8, 0), clock(17, 0), "9"},
		{"overnight shift", clock(22, 0), clock(6, 0), "8"},
		{"rounded to two places", clock(9, 0), clock(16, 10), "7.17"},
		{"twenty minutes", clock(8, 0), clock(8, 20), "0.33"},
		{"same time", clock(8, 0), clock(8, 0), "0"},
		{"missing check-out", clock(8, 0), nil, "0"},
		{"missing check-in", nil, clock(17, 0), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WorkedHours(tt.checkIn, tt.checkOut, date)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "got %s, want %s", got, tt.expected)
		})
	}
}

func TestWorkedHours_UsesTimeOfDayOnly(t *testing.T) {
	date := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	in := time.Date(2024, time.March, 4, 22, 0, 0, 0, time.UTC)
	// punch stamped on the next calendar day
	out := time.Date(2024, time.March, 5, 6, 30, 0, 0, time.UTC)

	got := WorkedHours(&in, &out, date)
	assert.True(t, got.Equal(decimal.RequireFromString("8.5")), "got %s", got)
}

func TestWorkedHours_OffsetIndependent(t *testing.T) {
	maputo := time.FixedZone("CAT", 2*60*60)
	date := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	in := time.Date(2024, time.March, 4, 22, 0, 0, 0, maputo)
	out := time.Date(2024, time.March, 5, 6, 0, 0, 0, maputo)

	got := WorkedHours(&in, &out, date)
	assert.True(t, got.Equal(decimal.NewFromInt(8)), "got %s", got)
}

func TestAttendance_Recompute(t *testing.T) {
	a := Attendance{
		Date:        time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		CheckIn:     clock(8, 0),
		CheckOut:    clock(17, 0),
		WorkedHours: decimal.NewFromInt(99),
	}

	got := a.Recompute()
	assert.True(t, got.WorkedHours.Equal(decimal.NewFromInt(9)))
	// original value untouched
	assert.True(t, a.WorkedHours.Equal(decimal.NewFromInt(99)))
}

func TestHoursShort(t *testing.T) {
	s := &shift.Shift{DailyHours: decimal.NewFromInt(8)}

	assert.True(t, HoursShort(Attendance{WorkedHours: decimal.RequireFromString("6.5")}, s).Equal(decimal.RequireFromString("1.5")))
	assert.True(t, HoursShort(Attendance{WorkedHours: decimal.NewFromInt(9)}, s).IsZero())
	assert.True(t, HoursShort(Attendance{WorkedHours: decimal.NewFromInt(2)}, nil).IsZero())
}
