package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string, companyID string) (LeaveRequest, error)
	// UpdateStatus moves a request from one status to another; it returns
	// ErrLeaveRequestAlreadyProcessed when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id string, companyID string, from, to LeaveRequestStatus, decidedBy *string, decidedAt time.Time) error
	List(ctx context.Context, filter LeaveRequestFilter, companyID string) ([]LeaveRequest, int64, error)
}
