package review

import "context"

type ReviewRepository interface {
	Create(ctx context.Context, review Review) (Review, error)
	GetByID(ctx context.Context, id string, companyID string) (Review, error)
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]Review, error)
	Update(ctx context.Context, review Review) error
}
