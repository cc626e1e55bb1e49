package leave

import (
	"context"
	"testing"
	"time"

	"github.com/medusa-holding/medusa/internal/domain/employee"
	"github.com/medusa-holding/medusa/internal/domain/leave"
	"github.com/medusa-holding/medusa/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companyID = "company-1"

func newService() leave.LeaveService {
	employees := memory.NewEmployeeRepository(employee.Employee{
		ID:               "emp-ana",
		CompanyID:        companyID,
		EmployeeCode:     "E001",
		FullName:         "Ana Macuacua",
		HireDate:         time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
		EmploymentStatus: employee.EmploymentStatusActive,
	})
	return NewLeaveService(memory.NewLeaveRequestRepository(employees), employees)
}

func TestCreateLeaveRequest(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	// Friday 2025-03-07 to Monday 2025-03-17
	created, err := svc.CreateLeaveRequest(ctx, companyID, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-ana",
		StartDate:  "2025-03-07",
		EndDate:    "2025-03-17",
	})
	require.NoError(t, err)
	assert.Equal(t, 11, created.TotalDays)
	assert.Equal(t, 7, created.BusinessDays)
	assert.Equal(t, leave.LeaveRequestStatusRequested, created.Status)
	require.NotNil(t, created.EmployeeName)
	assert.Equal(t, "Ana Macuacua", *created.EmployeeName)
}

func TestCreateLeaveRequest_Invalid(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.CreateLeaveRequest(ctx, companyID, leave.CreateLeaveRequestRequest{EmployeeID: "emp-ana", StartDate: "2025-03-10", EndDate: "2025-03-09"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), leave.ErrInvalidDateRange.Error())

	_, err = svc.CreateLeaveRequest(ctx, "company-2", leave.CreateLeaveRequestRequest{EmployeeID: "emp-ana", StartDate: "2025-03-10", EndDate: "2025-03-10"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestLeaveRequestTransitions(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	manager := "user-manager"

	create := func() string {
		created, err := svc.CreateLeaveRequest(ctx, companyID, leave.CreateLeaveRequestRequest{EmployeeID: "emp-ana", StartDate: "2025-03-10", EndDate: "2025-03-14"})
		require.NoError(t, err)
		return created.ID
	}

	approved := create()
	resp, err := svc.ApproveLeaveRequest(ctx, companyID, approved, &manager)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, resp.Status)
	assert.NotNil(t, resp.DecidedAt)

	_, err = svc.ApproveLeaveRequest(ctx, companyID, approved, &manager)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	_, err = svc.RejectLeaveRequest(ctx, companyID, approved, &manager)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	resp, err = svc.MarkLeaveTaken(ctx, companyID, approved, &manager)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusTaken, resp.Status)
	_, err = svc.CancelLeaveRequest(ctx, companyID, approved, &manager)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	rejected := create()
	resp, err = svc.RejectLeaveRequest(ctx, companyID, rejected, &manager)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusRejected, resp.Status)
	_, err = svc.MarkLeaveTaken(ctx, companyID, rejected, &manager)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	cancelled := create()
	resp, err = svc.CancelLeaveRequest(ctx, companyID, cancelled, nil)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusCancelled, resp.Status)

	_, err = svc.GetLeaveRequest(ctx, "company-2", cancelled)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	status := leave.LeaveRequestStatusCancelled
	list, err := svc.ListLeaveRequests(ctx, companyID, leave.LeaveRequestFilter{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.TotalCount)
	assert.Equal(t, "1-1 of 1", list.Showing)
}
