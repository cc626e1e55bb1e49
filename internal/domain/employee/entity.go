package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	CompanyID        string
	ShiftID          *string
	EmployeeCode     string
	FullName         string
	Email            *string
	HireDate         time.Time
	TerminationDate  *time.Time
	EmploymentStatus EmploymentStatus
	Salary           decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusOnLeave    EmploymentStatus = "on_leave"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
	EmploymentStatusRetired    EmploymentStatus = "retired"
)

// IsActive reports whether the employee is expected at work.
func (e Employee) IsActive() bool {
	return e.EmploymentStatus == EmploymentStatusActive
}

type SalaryBand string

const (
	SalaryBandIntern    SalaryBand = "intern"
	SalaryBandJunior    SalaryBand = "junior"
	SalaryBandMid       SalaryBand = "mid"
	SalaryBandSenior    SalaryBand = "senior"
	SalaryBandExecutive SalaryBand = "executive"
)

var salaryBands = []struct {
	upTo decimal.Decimal
	band SalaryBand
}{
	{decimal.NewFromInt(15000), SalaryBandIntern},
	{decimal.NewFromInt(25000), SalaryBandJunior},
	{decimal.NewFromInt(45000), SalaryBandMid},
	{decimal.NewFromInt(80000), SalaryBandSenior},
}

// SalaryBand classifies the employee by monthly salary. Upper bounds are inclusive.
func (e Employee) SalaryBand() SalaryBand {
	for _, b := range salaryBands {
		if e.Salary.LessThanOrEqual(b.upTo) {
			return b.band
		}
	}
	return SalaryBandExecutive
}

// TenureMonths returns the number of complete months between the hire date and asOf,
// or the termination date when that comes first.
func (e Employee) TenureMonths(asOf time.Time) int {
	end := asOf
	if e.TerminationDate != nil && e.TerminationDate.Before(end) {
		end = *e.TerminationDate
	}
	if end.Before(e.HireDate) {
		return 0
	}

	months := (end.Year()-e.HireDate.Year())*12 + int(end.Month()-e.HireDate.Month())
	if end.Day() < e.HireDate.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
