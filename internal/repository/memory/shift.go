package memory

import (
	"context"
	"sort"
	"time"

	"github.com/medusa-holding/medusa/internal/domain/shift"
)

type ShiftRepository struct {
	store
	shifts    map[string]shift.Shift
	employees *EmployeeRepository
}

// NewShiftRepository returns a shift store; deleting a shift clears it from employees.
func NewShiftRepository(employees *EmployeeRepository) *ShiftRepository {
	return &ShiftRepository{shifts: make(map[string]shift.Shift), employees: employees}
}

func (r *ShiftRepository) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.shifts {
		if existing.CompanyID == s.CompanyID && existing.Name == s.Name {
			return shift.Shift{}, shift.ErrShiftNameExists
		}
	}
	s.ID = newID()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	r.shifts[s.ID] = s
	return s, nil
}

func (r *ShiftRepository) GetByID(ctx context.Context, id string, companyID string) (shift.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.shifts[id]
	if !ok || s.CompanyID != companyID {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (r *ShiftRepository) List(ctx context.Context, companyID string, activeOnly bool) ([]shift.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []shift.Shift
	for _, s := range r.shifts {
		if s.CompanyID == companyID && (!activeOnly || s.IsActive) {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *ShiftRepository) Update(ctx context.Context, s shift.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.shifts[s.ID]
	if !ok || existing.CompanyID != s.CompanyID {
		return shift.ErrShiftNotFound
	}
	for id, other := range r.shifts {
		if id != s.ID && other.CompanyID == s.CompanyID && other.Name == s.Name {
			return shift.ErrShiftNameExists
		}
	}
	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = time.Now()
	r.shifts[s.ID] = s
	return nil
}

func (r *ShiftRepository) Delete(ctx context.Context, id string, companyID string) error {
	r.mu.Lock()
	s, ok := r.shifts[id]
	if !ok || s.CompanyID != companyID {
		r.mu.Unlock()
		return shift.ErrShiftNotFound
	}
	delete(r.shifts, id)
	r.mu.Unlock()

	if r.employees != nil {
		r.employees.clearShift(id, companyID)
	}
	return nil
}
