package leave

import (
	"time"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusRequested LeaveRequestStatus = "requested"
	LeaveRequestStatusApproved  LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected  LeaveRequestStatus = "rejected"
	LeaveRequestStatusCancelled LeaveRequestStatus = "cancelled"
	LeaveRequestStatusTaken     LeaveRequestStatus = "taken"
)

func (s LeaveRequestStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// transitions lists the statuses reachable from each status.
var transitions = map[LeaveRequestStatus][]LeaveRequestStatus{
	LeaveRequestStatusRequested: {LeaveRequestStatusApproved, LeaveRequestStatusRejected, LeaveRequestStatusCancelled},
	LeaveRequestStatusApproved:  {LeaveRequestStatusCancelled, LeaveRequestStatusTaken},
	LeaveRequestStatusRejected:  {},
	LeaveRequestStatusCancelled: {},
	LeaveRequestStatusTaken:     {},
}

// CanTransition reports whether a request in status from may move to status to.
func CanTransition(from, to LeaveRequestStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type LeaveRequest struct {
	ID         string
	CompanyID  string
	EmployeeID string

	StartDate    time.Time
	EndDate      time.Time
	TotalDays    int
	BusinessDays int

	Notes  *string
	Status LeaveRequestStatus

	DecidedBy *string
	DecidedAt *time.Time

	RequestedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships (for responses)
	EmployeeName *string
}
