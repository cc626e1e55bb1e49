package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/medusa-holding/medusa/internal/domain/employee"
	"github.com/medusa-holding/medusa/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveRequestRepo leave.LeaveRequestRepository
	employeeRepo     employee.EmployeeRepository
	now              func() time.Time
}

func NewLeaveService(leaveRequestRepo leave.LeaveRequestRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRequestRepo: leaveRequestRepo,
		employeeRepo:     employeeRepo,
		now:              time.Now,
	}
}

// CreateLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, companyID string, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := l.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	totalDays, err := leave.TotalDays(startDate, endDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	businessDays, err := leave.BusinessDays(startDate, endDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created, err := l.leaveRequestRepo.Create(ctx, leave.LeaveRequest{
		CompanyID:    companyID,
		EmployeeID:   emp.ID,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalDays:    totalDays,
		BusinessDays: businessDays,
		Notes:        req.Notes,
		Status:       leave.LeaveRequestStatusRequested,
		RequestedAt:  l.now(),
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	created.EmployeeName = &emp.FullName
	return leave.ToResponse(created), nil
}

// GetLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, companyID string, id string) (leave.LeaveRequestResponse, error) {
	request, err := l.leaveRequestRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToResponse(request), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, companyID string, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	requests, total, err := l.leaveRequestRepo.List(ctx, filter, companyID)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, leave.ToResponse(request))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return leave.ListLeaveRequestResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Requests:   responses,
	}, nil
}

// ApproveLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, companyID string, id string, decidedBy *string) (leave.LeaveRequestResponse, error) {
	return l.transition(ctx, companyID, id, leave.LeaveRequestStatusApproved, decidedBy)
}

// RejectLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, companyID string, id string, decidedBy *string) (leave.LeaveRequestResponse, error) {
	return l.transition(ctx, companyID, id, leave.LeaveRequestStatusRejected, decidedBy)
}

// CancelLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CancelLeaveRequest(ctx context.Context, companyID string, id string, decidedBy *string) (leave.LeaveRequestResponse, error) {
	return l.transition(ctx, companyID, id, leave.LeaveRequestStatusCancelled, decidedBy)
}

// MarkLeaveTaken implements leave.LeaveService.
func (l *LeaveServiceImpl) MarkLeaveTaken(ctx context.Context, companyID string, id string, decidedBy *string) (leave.LeaveRequestResponse, error) {
	return l.transition(ctx, companyID, id, leave.LeaveRequestStatusTaken, decidedBy)
}

// transition moves a request to status to. The repository re-checks the stored
// status so that two concurrent decisions cannot both succeed.
func (l *LeaveServiceImpl) transition(ctx context.Context, companyID, id string, to leave.LeaveRequestStatus, decidedBy *string) (leave.LeaveRequestResponse, error) {
	request, err := l.leaveRequestRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if !leave.CanTransition(request.Status, to) {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	decidedAt := l.now()
	if err := l.leaveRequestRepo.UpdateStatus(ctx, id, companyID, request.Status, to, decidedBy, decidedAt); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request.Status = to
	request.DecidedBy = decidedBy
	request.DecidedAt = &decidedAt
	return leave.ToResponse(request), nil
}
