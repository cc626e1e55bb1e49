package leave

import "time"

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TotalDays counts calendar days in [start, end], inclusive.
func TotalDays(start, end time.Time) (int, error) {
	s, e := calendarDate(start), calendarDate(end)
	if s.After(e) {
		return 0, ErrInvalidDateRange
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

// BusinessDays counts Monday through Friday in [start, end], inclusive.
// Holidays are not considered.
func BusinessDays(start, end time.Time) (int, error) {
	s, e := calendarDate(start), calendarDate(end)
	if s.After(e) {
		return 0, ErrInvalidDateRange
	}

	count := 0
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count, nil
}
