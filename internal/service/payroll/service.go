package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/medusa-holding/medusa/internal/domain/attendance"
	"github.com/medusa-holding/medusa/internal/domain/employee"
	"github.com/medusa-holding/medusa/internal/domain/payroll"
	"github.com/medusa-holding/medusa/internal/domain/shift"
	"github.com/medusa-holding/medusa/internal/pkg/money"
	"github.com/medusa-holding/medusa/internal/pkg/validator"
	"github.com/medusa-holding/medusa/internal/service/tax"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds the payslip fan-out when no limit is configured.
const DefaultWorkers = 4

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	shiftRepo      shift.ShiftRepository
	attendanceRepo attendance.AttendanceRepository
	defaultRegime  tax.Regime
	workers        int
	now            func() time.Time
}

// NewPayrollService builds the payroll service. defaultRegime names the tax regime used
// when a request does not choose one; workers bounds RunPayslips.
func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	attendanceRepo attendance.AttendanceRepository,
	defaultRegime string,
	workers int,
) payroll.PayrollService {
	regime, err := tax.RegimeFor(defaultRegime)
	if err != nil {
		slog.Warn("Unknown default tax regime, using mozambique", "regime", defaultRegime)
		regime = tax.Mozambique{}
	}
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		shiftRepo:      shiftRepo,
		attendanceRepo: attendanceRepo,
		defaultRegime:  regime,
		workers:        workers,
		now:            time.Now,
	}
}

func (s *PayrollServiceImpl) regime(name *string) (tax.Regime, error) {
	if name == nil || validator.IsEmpty(*name) {
		return s.defaultRegime, nil
	}
	regime, err := tax.RegimeFor(*name)
	if err != nil {
		return nil, payroll.ErrUnknownTaxRegime
	}
	return regime, nil
}

// ========== PAYROLL RECORDS ==========

func (s *PayrollServiceImpl) CreatePayrollRecord(ctx context.Context, companyID string, processedBy *string, req payroll.CreatePayrollRecordRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	created, err := s.payrollRepo.CreatePayrollRecord(ctx, req.ToRecord(companyID, processedBy))
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollRecordAlreadyExists) {
			return payroll.PayrollRecordResponse{}, err
		}
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	created.EmployeeName = &emp.FullName
	created.EmployeeCode = &emp.EmployeeCode
	return payroll.ToRecordResponse(created), nil
}

func (s *PayrollServiceImpl) GetPayrollRecord(ctx context.Context, companyID string, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetPayrollRecordByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return payroll.ToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListPayrollRecords(ctx context.Context, companyID string, filter payroll.PayrollFilter) (payroll.ListPayrollRecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	records, total, err := s.payrollRepo.ListPayrollRecords(ctx, companyID, filter)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	data := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		data = append(data, payroll.ToRecordResponse(r))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return payroll.ListPayrollRecordResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
	}, nil
}

func (s *PayrollServiceImpl) DeletePayrollRecord(ctx context.Context, companyID string, id string) error {
	record, err := s.payrollRepo.GetPayrollRecordByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if record.Status == payroll.PayrollStatusPaid {
		return payroll.ErrCannotDeletePaidRecord
	}
	return s.payrollRepo.DeletePayrollRecord(ctx, id, companyID)
}

func (s *PayrollServiceImpl) FinalizePayrollRecords(ctx context.Context, companyID string, paidBy string, req payroll.FinalizePayrollRequest) (payroll.FinalizePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.FinalizePayrollResponse{}, err
	}

	paymentDate, _ := validator.IsValidDate(req.PaymentDate)
	paid, err := s.payrollRepo.MarkPaid(ctx, req.RecordIDs, paidBy, paymentDate, companyID)
	if err != nil {
		return payroll.FinalizePayrollResponse{}, fmt.Errorf("failed to finalize payroll records: %w", err)
	}

	return payroll.FinalizePayrollResponse{
		Requested: len(req.RecordIDs),
		Paid:      paid,
	}, nil
}

// ========== PAYSLIPS ==========

func (s *PayrollServiceImpl) ComputePayslip(ctx context.Context, companyID string, req payroll.PayslipRequest) (payroll.Payslip, error) {
	if err := req.Validate(); err != nil {
		return payroll.Payslip{}, err
	}

	regime, err := s.regime(req.Regime)
	if err != nil {
		return payroll.Payslip{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return payroll.Payslip{}, err
	}

	return s.payslipFor(ctx, companyID, emp, payroll.Period{Month: req.PeriodMonth, Year: req.PeriodYear}, regime)
}

// payslipFor loads the employee's shift and attendance for period and runs the engine.
// A shift that no longer exists is treated as no shift.
func (s *PayrollServiceImpl) payslipFor(ctx context.Context, companyID string, emp employee.Employee, period payroll.Period, regime tax.Regime) (payroll.Payslip, error) {
	var empShift *shift.Shift
	if emp.ShiftID != nil {
		found, err := s.shiftRepo.GetByID(ctx, *emp.ShiftID, companyID)
		switch {
		case errors.Is(err, shift.ErrShiftNotFound):
			slog.Debug("Employee shift not found, using default hours", "employee_id", emp.ID, "shift_id", *emp.ShiftID)
		case err != nil:
			return payroll.Payslip{}, fmt.Errorf("failed to get shift: %w", err)
		default:
			empShift = &found
		}
	}

	records, err := s.attendanceRepo.ListByEmployeePeriod(ctx, emp.ID, period.Month, period.Year, companyID)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return ComputeHourlyPayslip(emp, empShift, period, records, regime)
}

// RunPayslips computes the payslip of every active employee. Employees whose payslip
// fails are reported in Failures and do not stop the run.
func (s *PayrollServiceImpl) RunPayslips(ctx context.Context, companyID string, req payroll.RunPayslipsRequest) (payroll.RunPayslipsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RunPayslipsResponse{}, err
	}

	regime, err := s.regime(req.Regime)
	if err != nil {
		return payroll.RunPayslipsResponse{}, err
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return payroll.RunPayslipsResponse{}, fmt.Errorf("failed to get employees: %w", err)
	}

	period := payroll.Period{Month: req.PeriodMonth, Year: req.PeriodYear}
	payslips := make([]payroll.Payslip, len(employees))
	failures := make([]error, len(employees))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			payslips[i], failures[i] = s.payslipFor(gctx, companyID, emp, period, regime)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return payroll.RunPayslipsResponse{}, err
	}

	resp := payroll.RunPayslipsResponse{
		Period:        period,
		Regime:        regime.Name(),
		Payslips:      make([]payroll.Payslip, 0, len(employees)),
		TotalGrossPay: decimal.Zero,
		TotalNetPay:   decimal.Zero,
	}
	for i, emp := range employees {
		if failures[i] != nil {
			slog.Warn("Failed to compute payslip", "company_id", companyID, "employee_id", emp.ID, "error", failures[i])
			resp.Failures = append(resp.Failures, payroll.PayslipFailure{EmployeeID: emp.ID, Error: failures[i].Error()})
			continue
		}
		resp.Payslips = append(resp.Payslips, payslips[i])
		resp.TotalGrossPay = resp.TotalGrossPay.Add(payslips[i].GrossPay)
		resp.TotalNetPay = resp.TotalNetPay.Add(payslips[i].NetPay)
	}

	slog.Info("Payslip run finished",
		"company_id", companyID,
		"period", fmt.Sprintf("%04d-%02d", period.Year, period.Month),
		"regime", resp.Regime,
		"payslips", len(resp.Payslips),
		"failures", len(resp.Failures))

	return resp, nil
}

// ========== CALCULATORS ==========

func (s *PayrollServiceImpl) PreviewTax(ctx context.Context, req payroll.TaxPreviewRequest) (payroll.TaxPreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.TaxPreviewResponse{}, err
	}

	regime, err := s.regime(&req.Regime)
	if err != nil {
		return payroll.TaxPreviewResponse{}, err
	}

	b := tax.Apply(regime, money.Round(req.Salary))
	return payroll.TaxPreviewResponse{
		Regime:       b.Regime,
		Salary:       b.Gross,
		Contribution: b.Contribution,
		IncomeTax:    b.IncomeTax,
		Net:          b.Net,
	}, nil
}

func (s *PayrollServiceImpl) CalculateBenefits(ctx context.Context, companyID string, req payroll.BenefitsRequest) (payroll.BenefitsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BenefitsResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return payroll.BenefitsResponse{}, err
	}

	months := emp.TenureMonths(s.now())
	if req.MonthsWorked != nil {
		months = *req.MonthsWorked
	}

	thirteenth, err := ThirteenthSalary(emp.Salary, months)
	if err != nil {
		return payroll.BenefitsResponse{}, err
	}
	vacation, err := ProportionalVacationPay(emp.Salary, months)
	if err != nil {
		return payroll.BenefitsResponse{}, err
	}

	return payroll.BenefitsResponse{
		EmployeeID:       emp.ID,
		MonthlySalary:    emp.Salary,
		MonthsWorked:     months,
		ThirteenthSalary: thirteenth,
		VacationPay:      vacation,
	}, nil
}
