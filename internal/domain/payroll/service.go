package payroll

import "context"

type PayrollService interface {
	// Itemized records
	CreatePayrollRecord(ctx context.Context, companyID string, processedBy *string, req CreatePayrollRecordRequest) (PayrollRecordResponse, error)
	GetPayrollRecord(ctx context.Context, companyID string, id string) (PayrollRecordResponse, error)
	ListPayrollRecords(ctx context.Context, companyID string, filter PayrollFilter) (ListPayrollRecordResponse, error)
	DeletePayrollRecord(ctx context.Context, companyID string, id string) error
	FinalizePayrollRecords(ctx context.Context, companyID string, paidBy string, req FinalizePayrollRequest) (FinalizePayrollResponse, error)

	// Hour-driven payslips
	ComputePayslip(ctx context.Context, companyID string, req PayslipRequest) (Payslip, error)
	RunPayslips(ctx context.Context, companyID string, req RunPayslipsRequest) (RunPayslipsResponse, error)

	// Calculators
	PreviewTax(ctx context.Context, req TaxPreviewRequest) (TaxPreviewResponse, error)
	CalculateBenefits(ctx context.Context, companyID string, req BenefitsRequest) (BenefitsResponse, error)
}
