package memory

import (
	"context"
	"sort"
	"time"

	"github.com/medusa-holding/medusa/internal/domain/payroll"
)

type PayrollRepository struct {
	store
	records   map[string]payroll.PayrollRecord
	employees *EmployeeRepository
}

func NewPayrollRepository(employees *EmployeeRepository) *PayrollRepository {
	return &PayrollRepository{records: make(map[string]payroll.PayrollRecord), employees: employees}
}

func (r *PayrollRepository) CreatePayrollRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.records {
		if existing.CompanyID == record.CompanyID && existing.EmployeeID == record.EmployeeID &&
			existing.PeriodMonth == record.PeriodMonth && existing.PeriodYear == record.PeriodYear {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
	}
	record.ID = newID()
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	r.records[record.ID] = record
	return record, nil
}

func (r *PayrollRepository) withEmployee(record payroll.PayrollRecord) payroll.PayrollRecord {
	if r.employees == nil {
		return record
	}
	if e, err := r.employees.GetByID(context.Background(), record.EmployeeID, record.CompanyID); err == nil {
		name, code := e.FullName, e.EmployeeCode
		record.EmployeeName = &name
		record.EmployeeCode = &code
	}
	return record
}

func (r *PayrollRepository) GetPayrollRecordByID(ctx context.Context, id string, companyID string) (payroll.PayrollRecord, error) {
	r.mu.RLock()
	record, ok := r.records[id]
	r.mu.RUnlock()
	if !ok || record.CompanyID != companyID {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return r.withEmployee(record), nil
}

func (r *PayrollRepository) GetPayrollRecordByEmployeePeriod(ctx context.Context, employeeID string, month, year int, companyID string) (payroll.PayrollRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, record := range r.records {
		if record.CompanyID == companyID && record.EmployeeID == employeeID &&
			record.PeriodMonth == month && record.PeriodYear == year {
			return record, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (r *PayrollRepository) ListPayrollRecords(ctx context.Context, companyID string, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	r.mu.RLock()
	var matched []payroll.PayrollRecord
	for _, record := range r.records {
		if record.CompanyID != companyID {
			continue
		}
		if filter.PeriodMonth != nil && record.PeriodMonth != *filter.PeriodMonth {
			continue
		}
		if filter.PeriodYear != nil && record.PeriodYear != *filter.PeriodYear {
			continue
		}
		if filter.Status != nil && record.Status != *filter.Status {
			continue
		}
		if filter.EmployeeID != nil && record.EmployeeID != *filter.EmployeeID {
			continue
		}
		matched = append(matched, record)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.PeriodYear != b.PeriodYear {
			return a.PeriodYear > b.PeriodYear
		}
		if a.PeriodMonth != b.PeriodMonth {
			return a.PeriodMonth > b.PeriodMonth
		}
		return a.EmployeeID < b.EmployeeID
	})

	total := int64(len(matched))
	page := paginate(matched, filter.Page, filter.Limit)
	for i := range page {
		page[i] = r.withEmployee(page[i])
	}
	return page, total, nil
}

func (r *PayrollRepository) MarkPaid(ctx context.Context, ids []string, paidBy string, paymentDate time.Time, companyID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	var updated int64
	for _, id := range ids {
		record, ok := r.records[id]
		if !ok || record.CompanyID != companyID || record.Status != payroll.PayrollStatusDraft {
			continue
		}
		by, date, at := paidBy, paymentDate, now
		record.Status = payroll.PayrollStatusPaid
		record.PaidBy = &by
		record.PaymentDate = &date
		record.PaidAt = &at
		record.UpdatedAt = now
		r.records[id] = record
		updated++
	}
	return updated, nil
}

func (r *PayrollRepository) DeletePayrollRecord(ctx context.Context, id string, companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok || record.CompanyID != companyID {
		return payroll.ErrPayrollRecordNotFound
	}
	delete(r.records, id)
	return nil
}
