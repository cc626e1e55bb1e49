package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	// GetCompanyIDsWithActiveEmployees lists tenants that have at least one active employee.
	GetCompanyIDsWithActiveEmployees(ctx context.Context) ([]string, error)
	UpdateShift(ctx context.Context, id string, shiftID *string, companyID string) error
}
