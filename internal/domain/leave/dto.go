package leave

import (
	"time"

	"github.com/medusa-holding/medusa/internal/pkg/validator"
)

// ========== LEAVE REQUEST DTOs ==========

type CreateLeaveRequestRequest struct {
	EmployeeID string  `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}
	if okStart && okEnd && start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: ErrInvalidDateRange.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestFilter struct {
	EmployeeID *string             `json:"employee_id,omitempty"`
	Status     *LeaveRequestStatus `json:"status,omitempty"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
}

func (f *LeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Status != nil && !f.Status.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID           string             `json:"id"`
	EmployeeID   string             `json:"employee_id"`
	EmployeeName *string            `json:"employee_name,omitempty"`
	StartDate    string             `json:"start_date"`
	EndDate      string             `json:"end_date"`
	TotalDays    int                `json:"total_days"`
	BusinessDays int                `json:"business_days"`
	Notes        *string            `json:"notes,omitempty"`
	Status       LeaveRequestStatus `json:"status"`
	DecidedBy    *string            `json:"decided_by,omitempty"`
	DecidedAt    *string            `json:"decided_at,omitempty"`
	RequestedAt  string             `json:"requested_at"`
}

type ListLeaveRequestResponse struct {
	TotalCount int64                  `json:"total_count"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
	Showing    string                 `json:"showing"`
	Requests   []LeaveRequestResponse `json:"requests"`
}

func ToResponse(lr LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:           lr.ID,
		EmployeeID:   lr.EmployeeID,
		EmployeeName: lr.EmployeeName,
		StartDate:    lr.StartDate.Format("2006-01-02"),
		EndDate:      lr.EndDate.Format("2006-01-02"),
		TotalDays:    lr.TotalDays,
		BusinessDays: lr.BusinessDays,
		Notes:        lr.Notes,
		Status:       lr.Status,
		DecidedBy:    lr.DecidedBy,
		RequestedAt:  lr.RequestedAt.Format(time.RFC3339),
	}
	if lr.DecidedAt != nil {
		s := lr.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &s
	}
	return resp
}
