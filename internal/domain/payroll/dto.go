package payroll

import (
	"time"

	"github.com/medusa-holding/medusa/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PAYROLL RECORD DTOs ==========

type CreatePayrollRecordRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`

	BaseSalary         decimal.Decimal `json:"base_salary"`
	OvertimeHours      decimal.Decimal `json:"overtime_hours"`
	OvertimeAmount     decimal.Decimal `json:"overtime_amount"`
	HazardAllowance    decimal.Decimal `json:"hazard_allowance"`
	DangerAllowance    decimal.Decimal `json:"danger_allowance"`
	TechnicalAllowance decimal.Decimal `json:"technical_allowance"`
	OtherEarnings      decimal.Decimal `json:"other_earnings"`

	Contribution     decimal.Decimal `json:"contribution"`
	IncomeTax        decimal.Decimal `json:"income_tax"`
	TransportVoucher decimal.Decimal `json:"transport_voucher"`
	MealVoucher      decimal.Decimal `json:"meal_voucher"`
	HealthPlan       decimal.Decimal `json:"health_plan"`
	OtherDeductions  decimal.Decimal `json:"other_deductions"`

	PaymentDate *string `json:"payment_date,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *CreatePayrollRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidPeriod(1, r.PeriodYear) {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}

	amounts := map[string]decimal.Decimal{
		"base_salary":         r.BaseSalary,
		"overtime_hours":      r.OvertimeHours,
		"overtime_amount":     r.OvertimeAmount,
		"hazard_allowance":    r.HazardAllowance,
		"danger_allowance":    r.DangerAllowance,
		"technical_allowance": r.TechnicalAllowance,
		"other_earnings":      r.OtherEarnings,
		"contribution":        r.Contribution,
		"income_tax":          r.IncomeTax,
		"transport_voucher":   r.TransportVoucher,
		"meal_voucher":        r.MealVoucher,
		"health_plan":         r.HealthPlan,
		"other_deductions":    r.OtherDeductions,
	}
	for field, amount := range amounts {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToRecord builds the record with totals derived from the items.
func (r *CreatePayrollRecordRequest) ToRecord(companyID string, processedBy *string) PayrollRecord {
	record := PayrollRecord{
		CompanyID:   companyID,
		EmployeeID:  r.EmployeeID,
		PeriodMonth: r.PeriodMonth,
		PeriodYear:  r.PeriodYear,
		Earnings: Earnings{
			BaseSalary:         r.BaseSalary,
			OvertimeHours:      r.OvertimeHours,
			OvertimeAmount:     r.OvertimeAmount,
			HazardAllowance:    r.HazardAllowance,
			DangerAllowance:    r.DangerAllowance,
			TechnicalAllowance: r.TechnicalAllowance,
			OtherEarnings:      r.OtherEarnings,
		},
		Deductions: Deductions{
			Contribution:     r.Contribution,
			IncomeTax:        r.IncomeTax,
			TransportVoucher: r.TransportVoucher,
			MealVoucher:      r.MealVoucher,
			HealthPlan:       r.HealthPlan,
			OtherDeductions:  r.OtherDeductions,
		},
		Status:      PayrollStatusDraft,
		ProcessedBy: processedBy,
		Notes:       r.Notes,
	}
	if r.PaymentDate != nil {
		if d, ok := validator.IsValidDate(*r.PaymentDate); ok {
			record.PaymentDate = &d
		}
	}
	return record.WithTotals()
}

type FinalizePayrollRequest struct {
	RecordIDs   []string `json:"record_ids"`
	PaymentDate string   `json:"payment_date"`
}

func (r *FinalizePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.RecordIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "record_ids", Message: "at least one record is required"})
	}
	if _, ok := validator.IsValidDate(r.PaymentDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FinalizePayrollResponse struct {
	Requested int   `json:"requested"`
	Paid      int64 `json:"paid"`
}

type EarningsResponse struct {
	BaseSalary         decimal.Decimal `json:"base_salary"`
	OvertimeHours      decimal.Decimal `json:"overtime_hours"`
	OvertimeAmount     decimal.Decimal `json:"overtime_amount"`
	HazardAllowance    decimal.Decimal `json:"hazard_allowance"`
	DangerAllowance    decimal.Decimal `json:"danger_allowance"`
	TechnicalAllowance decimal.Decimal `json:"technical_allowance"`
	OtherEarnings      decimal.Decimal `json:"other_earnings"`
}

type DeductionsResponse struct {
	Contribution     decimal.Decimal `json:"contribution"`
	IncomeTax        decimal.Decimal `json:"income_tax"`
	TransportVoucher decimal.Decimal `json:"transport_voucher"`
	MealVoucher      decimal.Decimal `json:"meal_voucher"`
	HealthPlan       decimal.Decimal `json:"health_plan"`
	OtherDeductions  decimal.Decimal `json:"other_deductions"`
}

type PayrollRecordResponse struct {
	ID             string             `json:"id"`
	EmployeeID     string             `json:"employee_id"`
	EmployeeName   *string            `json:"employee_name,omitempty"`
	EmployeeCode   *string            `json:"employee_code,omitempty"`
	PeriodMonth    int                `json:"period_month"`
	PeriodYear     int                `json:"period_year"`
	Earnings       EarningsResponse   `json:"earnings"`
	Deductions     DeductionsResponse `json:"deductions"`
	GrossTotal     decimal.Decimal    `json:"gross_total"`
	DeductionTotal decimal.Decimal    `json:"deduction_total"`
	NetPay         decimal.Decimal    `json:"net_pay"`
	Status         PayrollStatus      `json:"status"`
	PaymentDate    *string            `json:"payment_date,omitempty"`
	ProcessedBy    *string            `json:"processed_by,omitempty"`
	PaidAt         *string            `json:"paid_at,omitempty"`
	Notes          *string            `json:"notes,omitempty"`
}

func ToRecordResponse(r PayrollRecord) PayrollRecordResponse {
	resp := PayrollRecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		EmployeeCode: r.EmployeeCode,
		PeriodMonth:  r.PeriodMonth,
		PeriodYear:   r.PeriodYear,
		Earnings: EarningsResponse{
			BaseSalary:         r.Earnings.BaseSalary,
			OvertimeHours:      r.Earnings.OvertimeHours,
			OvertimeAmount:     r.Earnings.OvertimeAmount,
			HazardAllowance:    r.Earnings.HazardAllowance,
			DangerAllowance:    r.Earnings.DangerAllowance,
			TechnicalAllowance: r.Earnings.TechnicalAllowance,
			OtherEarnings:      r.Earnings.OtherEarnings,
		},
		Deductions: DeductionsResponse{
			Contribution:     r.Deductions.Contribution,
			IncomeTax:        r.Deductions.IncomeTax,
			TransportVoucher: r.Deductions.TransportVoucher,
			MealVoucher:      r.Deductions.MealVoucher,
			HealthPlan:       r.Deductions.HealthPlan,
			OtherDeductions:  r.Deductions.OtherDeductions,
		},
		GrossTotal:     r.GrossTotal,
		DeductionTotal: r.DeductionTotal,
		NetPay:         r.NetPay,
		Status:         r.Status,
		ProcessedBy:    r.ProcessedBy,
		Notes:          r.Notes,
	}
	if r.PaymentDate != nil {
		s := r.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &s
	}
	if r.PaidAt != nil {
		s := r.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &s
	}
	return resp
}

type PayrollFilter struct {
	PeriodMonth *int           `json:"period_month,omitempty"`
	PeriodYear  *int           `json:"period_year,omitempty"`
	Status      *PayrollStatus `json:"status,omitempty"`
	EmployeeID  *string        `json:"employee_id,omitempty"`
	Page        int            `json:"page"`
	Limit       int            `json:"limit"`
}

func (f *PayrollFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.PeriodMonth != nil && (*f.PeriodMonth < 1 || *f.PeriodMonth > 12) {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if f.Status != nil && *f.Status != PayrollStatusDraft && *f.Status != PayrollStatusPaid {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'draft' or 'paid'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListPayrollRecordResponse struct {
	Data       []PayrollRecordResponse `json:"data"`
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"total_pages"`
	Showing    string                  `json:"showing"`
}

// ========== PAYSLIP DTOs ==========

type PayslipRequest struct {
	EmployeeID  string  `json:"employee_id"`
	PeriodMonth int     `json:"period_month"`
	PeriodYear  int     `json:"period_year"`
	Regime      *string `json:"regime,omitempty"`
}

func (r *PayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	errs = append(errs, validatePeriod(r.PeriodMonth, r.PeriodYear)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RunPayslipsRequest struct {
	PeriodMonth int     `json:"period_month"`
	PeriodYear  int     `json:"period_year"`
	Regime      *string `json:"regime,omitempty"`
}

func (r *RunPayslipsRequest) Validate() error {
	errs := validatePeriod(r.PeriodMonth, r.PeriodYear)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePeriod(month, year int) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if !validator.IsValidPeriod(1, year) {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}
	return errs
}

type PayslipFailure struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

type RunPayslipsResponse struct {
	Period        Period           `json:"period"`
	Regime        string           `json:"regime"`
	Payslips      []Payslip        `json:"payslips"`
	Failures      []PayslipFailure `json:"failures,omitempty"`
	TotalGrossPay decimal.Decimal  `json:"total_gross_pay"`
	TotalNetPay   decimal.Decimal  `json:"total_net_pay"`
}

// ========== CALCULATOR DTOs ==========

type TaxPreviewRequest struct {
	Regime string          `json:"regime"`
	Salary decimal.Decimal `json:"salary"`
}

func (r *TaxPreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Regime) {
		errs = append(errs, validator.ValidationError{Field: "regime", Message: "is required"})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaxPreviewResponse struct {
	Regime       string          `json:"regime"`
	Salary       decimal.Decimal `json:"salary"`
	Contribution decimal.Decimal `json:"contribution"`
	IncomeTax    decimal.Decimal `json:"income_tax"`
	Net          decimal.Decimal `json:"net"`
}

type BenefitsRequest struct {
	EmployeeID   string `json:"employee_id"`
	MonthsWorked *int   `json:"months_worked,omitempty"` // defaults to tenure
}

func (r *BenefitsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.MonthsWorked != nil && *r.MonthsWorked < 0 {
		errs = append(errs, validator.ValidationError{Field: "months_worked", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BenefitsResponse struct {
	EmployeeID       string          `json:"employee_id"`
	MonthlySalary    decimal.Decimal `json:"monthly_salary"`
	MonthsWorked     int             `json:"months_worked"`
	ThirteenthSalary decimal.Decimal `json:"thirteenth_salary"`
	VacationPay      decimal.Decimal `json:"vacation_pay"`
}
