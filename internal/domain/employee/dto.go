package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmployeeResponse struct {
	ID               string           `json:"id"`
	CompanyID        string           `json:"company_id"`
	EmployeeCode     string           `json:"employee_code"`
	FullName         string           `json:"full_name"`
	Email            *string          `json:"email,omitempty"`
	ShiftID          *string          `json:"shift_id,omitempty"`
	HireDate         string           `json:"hire_date"`
	TerminationDate  *string          `json:"termination_date,omitempty"`
	EmploymentStatus EmploymentStatus `json:"employment_status"`
	Salary           decimal.Decimal  `json:"salary"`
	SalaryBand       SalaryBand       `json:"salary_band"`
	TenureMonths     int              `json:"tenure_months"`
}

// ToResponse maps an employee to its API representation as of the given instant.
func ToResponse(e Employee, asOf time.Time) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID,
		CompanyID:        e.CompanyID,
		EmployeeCode:     e.EmployeeCode,
		FullName:         e.FullName,
		Email:            e.Email,
		ShiftID:          e.ShiftID,
		HireDate:         e.HireDate.Format("2006-01-02"),
		EmploymentStatus: e.EmploymentStatus,
		Salary:           e.Salary,
		SalaryBand:       e.SalaryBand(),
		TenureMonths:     e.TenureMonths(asOf),
	}
	if e.TerminationDate != nil {
		d := e.TerminationDate.Format("2006-01-02")
		resp.TerminationDate = &d
	}
	return resp
}
