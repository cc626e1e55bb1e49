package employee

import "context"

type EmployeeService interface {
	GetEmployee(ctx context.Context, companyID string, id string) (EmployeeResponse, error)
}
