package shift

import (
	"github.com/medusa-holding/medusa/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateShiftRequest struct {
	Name            string          `json:"name"`
	Type            ShiftType       `json:"type"`
	DailyHours      decimal.Decimal `json:"daily_hours"`
	WeeklyHours     decimal.Decimal `json:"weekly_hours"`
	WorkdaysPerWeek int             `json:"workdays_per_week"`
	Description     *string         `json:"description,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !r.Type.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of fixed_8h, fixed_12h, 12x36, 12x48, 6h, 4h, weekend, custom"})
	}
	if !r.DailyHours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "daily_hours", Message: "must be greater than 0"})
	}
	if r.DailyHours.GreaterThan(decimal.NewFromInt(24)) {
		errs = append(errs, validator.ValidationError{Field: "daily_hours", Message: "must not exceed 24"})
	}
	if r.WeeklyHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "weekly_hours", Message: "must be non-negative"})
	}
	if r.WorkdaysPerWeek < 1 || r.WorkdaysPerWeek > 7 {
		errs = append(errs, validator.ValidationError{Field: "workdays_per_week", Message: "must be between 1 and 7"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID              string           `json:"-"`
	Name            *string          `json:"name,omitempty"`
	Type            *ShiftType       `json:"type,omitempty"`
	DailyHours      *decimal.Decimal `json:"daily_hours,omitempty"`
	WeeklyHours     *decimal.Decimal `json:"weekly_hours,omitempty"`
	WorkdaysPerWeek *int             `json:"workdays_per_week,omitempty"`
	Description     *string          `json:"description,omitempty"`
	IsActive        *bool            `json:"is_active,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID == "" {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Type != nil && !r.Type.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of fixed_8h, fixed_12h, 12x36, 12x48, 6h, 4h, weekend, custom"})
	}
	if r.DailyHours != nil && (!r.DailyHours.IsPositive() || r.DailyHours.GreaterThan(decimal.NewFromInt(24))) {
		errs = append(errs, validator.ValidationError{Field: "daily_hours", Message: "must be greater than 0 and not exceed 24"})
	}
	if r.WeeklyHours != nil && r.WeeklyHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "weekly_hours", Message: "must be non-negative"})
	}
	if r.WorkdaysPerWeek != nil && (*r.WorkdaysPerWeek < 1 || *r.WorkdaysPerWeek > 7) {
		errs = append(errs, validator.ValidationError{Field: "workdays_per_week", Message: "must be between 1 and 7"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignShiftRequest struct {
	EmployeeID string  `json:"-"`
	ShiftID    *string `json:"shift_id"` // nil clears the assignment
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.ShiftID != nil && *r.ShiftID == "" {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID                    string          `json:"id"`
	CompanyID             string          `json:"company_id"`
	Name                  string          `json:"name"`
	Type                  ShiftType       `json:"type"`
	DailyHours            decimal.Decimal `json:"daily_hours"`
	WeeklyHours           decimal.Decimal `json:"weekly_hours"`
	WorkdaysPerWeek       int             `json:"workdays_per_week"`
	MonthlyExpectedHours  decimal.Decimal `json:"monthly_expected_hours"`
	WeeklyHoursConsistent bool            `json:"weekly_hours_consistent"`
	Description           *string         `json:"description,omitempty"`
	IsActive              bool            `json:"is_active"`
	CreatedAt             string          `json:"created_at"`
	UpdatedAt             string          `json:"updated_at"`
}

// ToResponse maps a shift to its API representation.
func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:                    s.ID,
		CompanyID:             s.CompanyID,
		Name:                  s.Name,
		Type:                  s.Type,
		DailyHours:            s.DailyHours,
		WeeklyHours:           s.WeeklyHours,
		WorkdaysPerWeek:       s.WorkdaysPerWeek,
		MonthlyExpectedHours:  s.MonthlyExpectedHours(),
		WeeklyHoursConsistent: s.WeeklyHoursConsistent(),
		Description:           s.Description,
		IsActive:              s.IsActive,
		CreatedAt:             s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:             s.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
