package attendance

import (
	"io"
	"time"

	"github.com/medusa-holding/medusa/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	At         *string `json:"at,omitempty"` // RFC3339, defaults to now
	RecordedBy *string `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	return validatePunch(r.EmployeeID, r.At)
}

type CheckOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	At         *string `json:"at,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	return validatePunch(r.EmployeeID, r.At)
}

func validatePunch(employeeID string, at *string) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if at != nil {
		if _, ok := validator.IsValidDateTime(*at); !ok {
			errs = append(errs, validator.ValidationError{Field: "at", Message: "at must be an RFC3339 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID       string  `json:"-"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Status   *Status `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.CheckIn != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in must be an RFC3339 timestamp"})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "check_out must be an RFC3339 timestamp"})
		}
	}
	if r.Status != nil && !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JustifyAbsenceRequest struct {
	AttendanceID string    `json:"-"`
	Reason       string    `json:"reason"`
	JustifiedBy  *string   `json:"-"`
	File         io.Reader `json:"-"`
	Filename     string    `json:"-"`
	FileSize     int64     `json:"-"`
}

var allowedEvidenceExts = []string{".pdf", ".jpg", ".jpeg", ".png"}

func (r *JustifyAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{Field: "attendance_id", Message: "attendance_id is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if r.File != nil {
		if !validator.HasExtension(r.Filename, allowedEvidenceExts) {
			errs = append(errs, validator.ValidationError{Field: "evidence", Message: "invalid file type: only pdf, jpg, jpeg, png allowed"})
		} else if r.FileSize > 10<<20 {
			errs = append(errs, validator.ValidationError{Field: "evidence", Message: "evidence size must not exceed 10MB"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *Status `json:"status,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
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
	var start, end time.Time
	var okStart, okEnd bool
	if f.StartDate != nil {
		if start, okStart = validator.IsValidDate(*f.StartDate); !okStart {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
		}
	}
	if f.EndDate != nil {
		if end, okEnd = validator.IsValidDate(*f.EndDate); !okEnd {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		}
	}
	if okStart && okEnd && start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must not be after end_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	Date         string          `json:"date"`
	CheckIn      *string         `json:"check_in,omitempty"`
	CheckOut     *string         `json:"check_out,omitempty"`
	WorkedHours  decimal.Decimal `json:"worked_hours"`
	Status       Status          `json:"status"`
	Notes        *string         `json:"notes,omitempty"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
}

type JustificationResponse struct {
	ID          string             `json:"id"`
	Reason      string             `json:"reason"`
	EvidenceRef *string            `json:"evidence_ref,omitempty"`
	Applied     bool               `json:"applied"`
	Message     string             `json:"message"`
	Attendance  AttendanceResponse `json:"attendance"`
}

type SweepRequest struct {
	Date string `json:"date"`
}

func (r *SweepRequest) Validate() error {
	if _, ok := validator.IsValidDate(r.Date); !ok {
		return validator.ValidationErrors{{Field: "date", Message: "date must be YYYY-MM-DD"}}
	}
	return nil
}

type SweepResponse struct {
	Date    string `json:"date"`
	Created int    `json:"created"`
}

// ToResponse maps a record to its API representation.
func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		WorkedHours:  a.WorkedHours,
		Status:       a.Status,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
	if a.CheckIn != nil {
		s := a.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &s
	}
	if a.CheckOut != nil {
		s := a.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &s
	}
	return resp
}
