package payroll

import (
	"context"
	"time"
)

// PayrollRepository defines data access methods for payroll.
// All methods include companyID parameter to prevent cross-company data access.
type PayrollRepository interface {
	// CreatePayrollRecord fails with ErrPayrollRecordAlreadyExists for a duplicate (employee, month, year)
	CreatePayrollRecord(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetPayrollRecordByID(ctx context.Context, id string, companyID string) (PayrollRecord, error)
	GetPayrollRecordByEmployeePeriod(ctx context.Context, employeeID string, month, year int, companyID string) (PayrollRecord, error)
	ListPayrollRecords(ctx context.Context, companyID string, filter PayrollFilter) ([]PayrollRecord, int64, error)
	// MarkPaid moves draft records to paid; it returns the number of records updated
	MarkPaid(ctx context.Context, ids []string, paidBy string, paymentDate time.Time, companyID string) (int64, error)
	DeletePayrollRecord(ctx context.Context, id string, companyID string) error
}
