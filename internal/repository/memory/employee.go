package memory

import (
	"context"
	"sort"

	"github.com/medusa-holding/medusa/internal/domain/employee"
)

type EmployeeRepository struct {
	store
	employees map[string]employee.Employee
}

func NewEmployeeRepository(seed ...employee.Employee) *EmployeeRepository {
	r := &EmployeeRepository{employees: make(map[string]employee.Employee)}
	for _, e := range seed {
		r.Put(e)
	}
	return r
}

// Put inserts or replaces an employee, assigning an ID when missing.
func (r *EmployeeRepository) Put(e employee.Employee) employee.Employee {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == "" {
		e.ID = newID()
	}
	r.employees[e.ID] = e
	return e
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.employees[id]
	if !ok || e.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *EmployeeRepository) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []employee.Employee
	for _, e := range r.employees {
		if e.CompanyID == companyID && e.IsActive() {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EmployeeCode < result[j].EmployeeCode })
	return result, nil
}

func (r *EmployeeRepository) GetCompanyIDsWithActiveEmployees(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var ids []string
	for _, e := range r.employees {
		if e.IsActive() && !seen[e.CompanyID] {
			seen[e.CompanyID] = true
			ids = append(ids, e.CompanyID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *EmployeeRepository) UpdateShift(ctx context.Context, id string, shiftID *string, companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.employees[id]
	if !ok || e.CompanyID != companyID {
		return employee.ErrEmployeeNotFound
	}
	e.ShiftID = shiftID
	r.employees[id] = e
	return nil
}

// clearShift drops shiftID from every employee of the company.
func (r *EmployeeRepository) clearShift(shiftID string, companyID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.employees {
		if e.CompanyID == companyID && e.ShiftID != nil && *e.ShiftID == shiftID {
			e.ShiftID = nil
			r.employees[id] = e
		}
	}
}

func (r *EmployeeRepository) name(id string) *string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.employees[id]; ok {
		n := e.FullName
		return &n
	}
	return nil
}
