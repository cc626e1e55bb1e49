package shift

import "context"

type ShiftService interface {
	CreateShift(ctx context.Context, companyID string, req CreateShiftRequest) (ShiftResponse, error)
	GetShift(ctx context.Context, companyID string, id string) (ShiftResponse, error)
	ListShifts(ctx context.Context, companyID string, activeOnly bool) ([]ShiftResponse, error)
	UpdateShift(ctx context.Context, companyID string, req UpdateShiftRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, companyID string, id string) error
	AssignShift(ctx context.Context, companyID string, req AssignShiftRequest) error
}
