package leave

import "context"

type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, companyID string, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, companyID string, id string) (LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, companyID string, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)

	ApproveLeaveRequest(ctx context.Context, companyID string, id string, decidedBy *string) (LeaveRequestResponse, error)
	RejectLeaveRequest(ctx context.Context, companyID string, id string, decidedBy *string) (LeaveRequestResponse, error)
	CancelLeaveRequest(ctx context.Context, companyID string, id string, decidedBy *string) (LeaveRequestResponse, error)
	MarkLeaveTaken(ctx context.Context, companyID string, id string, decidedBy *string) (LeaveRequestResponse, error)
}
