package payroll

import (
	"time"

	"github.com/medusa-holding/medusa/internal/pkg/money"
	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusDraft PayrollStatus = "draft"
	PayrollStatusPaid  PayrollStatus = "paid"
)

// Period is a calendar month.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Contains reports whether t falls within the period.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && int(t.Month()) == p.Month
}

// Earnings are the itemized earnings of a generic payroll record.
type Earnings struct {
	BaseSalary         decimal.Decimal
	OvertimeHours      decimal.Decimal
	OvertimeAmount     decimal.Decimal
	HazardAllowance    decimal.Decimal
	DangerAllowance    decimal.Decimal
	TechnicalAllowance decimal.Decimal
	OtherEarnings      decimal.Decimal
}

// Total sums the monetary items. OvertimeHours is informational.
func (e Earnings) Total() decimal.Decimal {
	return money.Round(money.Sum(e.BaseSalary, e.OvertimeAmount, e.HazardAllowance, e.DangerAllowance, e.TechnicalAllowance, e.OtherEarnings))
}

// Deductions are the itemized deductions of a generic payroll record.
type Deductions struct {
	Contribution     decimal.Decimal
	IncomeTax        decimal.Decimal
	TransportVoucher decimal.Decimal
	MealVoucher      decimal.Decimal
	HealthPlan       decimal.Decimal
	OtherDeductions  decimal.Decimal
}

func (d Deductions) Total() decimal.Decimal {
	return money.Round(money.Sum(d.Contribution, d.IncomeTax, d.TransportVoucher, d.MealVoucher, d.HealthPlan, d.OtherDeductions))
}

// PayrollRecord is the persisted payroll of one employee for one period.
// At most one exists per (employee, month, year).
type PayrollRecord struct {
	ID          string
	CompanyID   string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int

	Earnings   Earnings
	Deductions Deductions

	GrossTotal     decimal.Decimal
	DeductionTotal decimal.Decimal
	NetPay         decimal.Decimal

	Status      PayrollStatus
	PaymentDate *time.Time
	ProcessedBy *string
	PaidBy      *string
	PaidAt      *time.Time
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// WithTotals returns a copy of r with the derived totals recomputed from its items.
func (r PayrollRecord) WithTotals() PayrollRecord {
	r.GrossTotal = r.Earnings.Total()
	r.DeductionTotal = r.Deductions.Total()
	r.NetPay = r.GrossTotal.Sub(r.DeductionTotal)
	return r
}

// Payslip is the hour-driven payroll result. It is computed on demand and not stored.
type Payslip struct {
	EmployeeID           string          `json:"employee_id"`
	EmployeeName         string          `json:"employee_name"`
	EmployeeCode         string          `json:"employee_code"`
	Period               Period          `json:"period"`
	Regime               string          `json:"regime"`
	ShiftID              *string         `json:"shift_id,omitempty"`
	WorkedHours          decimal.Decimal `json:"worked_hours"`
	MonthlyExpectedHours decimal.Decimal `json:"monthly_expected_hours"`
	HourlyRate           decimal.Decimal `json:"hourly_rate"`
	GrossPay             decimal.Decimal `json:"gross_pay"`
	Contribution         decimal.Decimal `json:"contribution"`
	IncomeTax            decimal.Decimal `json:"income_tax"`
	UnjustifiedAbsences  int             `json:"unjustified_absences"`
	AbsencePenalty       decimal.Decimal `json:"absence_penalty"`
	TotalDeductions      decimal.Decimal `json:"total_deductions"`
	NetPay               decimal.Decimal `json:"net_pay"`
}
