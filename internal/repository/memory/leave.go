package memory

import (
	"context"
	"sort"
	"time"

	"github.com/medusa-holding/medusa/internal/domain/leave"
)

type LeaveRequestRepository struct {
	store
	requests  map[string]leave.LeaveRequest
	employees *EmployeeRepository
}

func NewLeaveRequestRepository(employees *EmployeeRepository) *LeaveRequestRepository {
	return &LeaveRequestRepository{requests: make(map[string]leave.LeaveRequest), employees: employees}
}

func (r *LeaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request.ID = newID()
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	if request.RequestedAt.IsZero() {
		request.RequestedAt = request.CreatedAt
	}
	r.requests[request.ID] = request
	return request, nil
}

func (r *LeaveRequestRepository) GetByID(ctx context.Context, id string, companyID string) (leave.LeaveRequest, error) {
	r.mu.RLock()
	request, ok := r.requests[id]
	r.mu.RUnlock()
	if !ok || request.CompanyID != companyID {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if r.employees != nil {
		request.EmployeeName = r.employees.name(request.EmployeeID)
	}
	return request, nil
}

func (r *LeaveRequestRepository) UpdateStatus(ctx context.Context, id string, companyID string, from, to leave.LeaveRequestStatus, decidedBy *string, decidedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok || request.CompanyID != companyID {
		return leave.ErrLeaveRequestNotFound
	}
	if request.Status != from {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	request.Status = to
	request.DecidedBy = decidedBy
	request.DecidedAt = &decidedAt
	request.UpdatedAt = decidedAt
	r.requests[id] = request
	return nil
}

func (r *LeaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter, companyID string) ([]leave.LeaveRequest, int64, error) {
	r.mu.RLock()
	var matched []leave.LeaveRequest
	for _, request := range r.requests {
		if request.CompanyID != companyID {
			continue
		}
		if filter.EmployeeID != nil && request.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && request.Status != *filter.Status {
			continue
		}
		matched = append(matched, request)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].StartDate.After(matched[j].StartDate) })

	total := int64(len(matched))
	page := paginate(matched, filter.Page, filter.Limit)
	for i := range page {
		if r.employees != nil {
			page[i].EmployeeName = r.employees.name(page[i].EmployeeID)
		}
	}
	return page, total, nil
}
