package memory

import (
	"context"
	"sort"
	"time"

	"github.com/medusa-holding/medusa/internal/domain/attendance"
	"github.com/medusa-holding/medusa/internal/pkg/validator"
)

type AttendanceRepository struct {
	store
	records   map[string]attendance.Attendance
	employees *EmployeeRepository
	now       func() time.Time
}

func NewAttendanceRepository(employees *EmployeeRepository) *AttendanceRepository {
	return &AttendanceRepository{
		records:   make(map[string]attendance.Attendance),
		employees: employees,
		now:       time.Now,
	}
}

// SetClock overrides the timestamps assigned to new records.
func (r *AttendanceRepository) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

func sameDay(a, b time.Time) bool {
	return attendance.DateOf(a).Equal(attendance.DateOf(b))
}

func (r *AttendanceRepository) findLocked(employeeID string, date time.Time, companyID string) (attendance.Attendance, bool) {
	for _, a := range r.records {
		if a.CompanyID == companyID && a.EmployeeID == employeeID && sameDay(a.Date, date) {
			return a, true
		}
	}
	return attendance.Attendance{}, false
}

func (r *AttendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.findLocked(a.EmployeeID, a.Date, a.CompanyID); exists {
		return attendance.Attendance{}, attendance.ErrAttendanceAlreadyExists
	}
	a.ID = newID()
	a.Date = attendance.DateOf(a.Date)
	a.CreatedAt = r.now()
	a.UpdatedAt = a.CreatedAt
	r.records[a.ID] = a
	return a, nil
}

func (r *AttendanceRepository) GetByID(ctx context.Context, id string, companyID string) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.records[id]
	if !ok || a.CompanyID != companyID {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.findLocked(employeeID, date, companyID); ok {
		return &a, nil
	}
	return nil, nil
}

func (r *AttendanceRepository) Update(ctx context.Context, a attendance.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.records[a.ID]
	if !ok || existing.CompanyID != a.CompanyID {
		return attendance.ErrAttendanceNotFound
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = r.now()
	r.records[a.ID] = a
	return nil
}

func (r *AttendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter, companyID string) ([]attendance.Attendance, int64, error) {
	r.mu.RLock()
	var matched []attendance.Attendance
	for _, a := range r.records {
		if a.CompanyID != companyID {
			continue
		}
		if filter.EmployeeID != nil && a.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil {
			if start, ok := validator.IsValidDate(*filter.StartDate); ok && a.Date.Before(start) {
				continue
			}
		}
		if filter.EndDate != nil {
			if end, ok := validator.IsValidDate(*filter.EndDate); ok && a.Date.After(end) {
				continue
			}
		}
		matched = append(matched, a)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].EmployeeID < matched[j].EmployeeID
	})

	total := int64(len(matched))
	page := paginate(matched, filter.Page, filter.Limit)
	for i := range page {
		if r.employees != nil {
			page[i].EmployeeName = r.employees.name(page[i].EmployeeID)
		}
	}
	return page, total, nil
}

func (r *AttendanceRepository) ListByEmployeePeriod(ctx context.Context, employeeID string, month int, year int, companyID string) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []attendance.Attendance
	for _, a := range r.records {
		if a.CompanyID == companyID && a.EmployeeID == employeeID && a.Date.Year() == year && int(a.Date.Month()) == month {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (r *AttendanceRepository) BulkCreateAbsences(ctx context.Context, absences []attendance.Attendance) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inserted := 0
	for _, a := range absences {
		if _, exists := r.findLocked(a.EmployeeID, a.Date, a.CompanyID); exists {
			continue
		}
		a.ID = newID()
		a.Date = attendance.DateOf(a.Date)
		a.CreatedAt = r.now()
		a.UpdatedAt = a.CreatedAt
		r.records[a.ID] = a
		inserted++
	}
	return inserted, nil
}

func (r *AttendanceRepository) EmployeeIDsWithRecord(ctx context.Context, date time.Time, companyID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []string
	for _, a := range r.records {
		if a.CompanyID == companyID && sameDay(a.Date, date) {
			ids = append(ids, a.EmployeeID)
		}
	}
	return ids, nil
}

type JustificationRepository struct {
	store
	byAttendance map[string]attendance.Justification
	now          func() time.Time
}

func NewJustificationRepository() *JustificationRepository {
	return &JustificationRepository{byAttendance: make(map[string]attendance.Justification), now: time.Now}
}

func (r *JustificationRepository) Create(ctx context.Context, j attendance.Justification) (attendance.Justification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byAttendance[j.AttendanceID]; exists {
		return attendance.Justification{}, attendance.ErrAlreadyJustified
	}
	j.ID = newID()
	j.CreatedAt = r.now()
	r.byAttendance[j.AttendanceID] = j
	return j, nil
}

func (r *JustificationRepository) GetByAttendanceID(ctx context.Context, attendanceID string, companyID string) (*attendance.Justification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.byAttendance[attendanceID]
	if !ok || j.CompanyID != companyID {
		return nil, nil
	}
	return &j, nil
}

func paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
