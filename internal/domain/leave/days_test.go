package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBusinessDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
		total int
	}{
		{"monday to friday", date(2024, time.March, 4), date(2024, time.March, 8), 5, 5},
		{"weekend only", date(2024, time.March, 9), date(2024, time.March, 10), 0, 2},
		{"single weekday", date(2024, time.March, 6), date(2024, time.March, 6), 1, 1},
		{"monday to next monday", date(2024, time.March, 4), date(2024, time.March, 11), 6, 8},
		{"across month end", date(2024, time.February, 26), date(2024, time.March, 3), 5, 7},
		{"two full weeks", date(2024, time.March, 4), date(2024, time.March, 17), 10, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BusinessDays(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			total, err := TotalDays(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)
		})
	}
}

func TestBusinessDays_InvalidRange(t *testing.T) {
	_, err := BusinessDays(date(2024, time.March, 8), date(2024, time.March, 4))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = TotalDays(date(2024, time.March, 8), date(2024, time.March, 4))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestBusinessDays_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.March, 4, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 5, 0, 15, 0, 0, time.UTC)

	got, err := BusinessDays(start, end)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(LeaveRequestStatusRequested, LeaveRequestStatusApproved))
	assert.True(t, CanTransition(LeaveRequestStatusRequested, LeaveRequestStatusRejected))
	assert.True(t, CanTransition(LeaveRequestStatusApproved, LeaveRequestStatusTaken))
	assert.True(t, CanTransition(LeaveRequestStatusApproved, LeaveRequestStatusCancelled))
	assert.False(t, CanTransition(LeaveRequestStatusRequested, LeaveRequestStatusTaken))
	assert.False(t, CanTransition(LeaveRequestStatusRejected, LeaveRequestStatusApproved))
	assert.False(t, CanTransition(LeaveRequestStatusTaken, LeaveRequestStatusCancelled))
}
