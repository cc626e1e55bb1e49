package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id string, companyID string) (Shift, error)
	List(ctx context.Context, companyID string, activeOnly bool) ([]Shift, error)
	Update(ctx context.Context, shift Shift) error
	// Delete removes the shift and clears it from every employee that references it.
	Delete(ctx context.Context, id string, companyID string) error
}
