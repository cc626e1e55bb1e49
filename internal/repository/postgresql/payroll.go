package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/medusa-holding/medusa/internal/domain/payroll"
	"github.com/medusa-holding/medusa/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollRecordColumns = `
	pr.id, pr.company_id, pr.employee_id, pr.period_month, pr.period_year,
	pr.base_salary, pr.overtime_hours, pr.overtime_amount, pr.hazard_allowance,
	pr.danger_allowance, pr.technical_allowance, pr.other_earnings,
	pr.contribution, pr.income_tax, pr.transport_voucher, pr.meal_voucher,
	pr.health_plan, pr.other_deductions,
	pr.gross_total, pr.deduction_total, pr.net_pay,
	pr.status, pr.payment_date, pr.processed_by, pr.paid_by, pr.paid_at, pr.notes,
	pr.created_at, pr.updated_at,
	e.full_name, e.employee_code`

const payrollRecordFrom = `
	FROM payroll_records pr
	LEFT JOIN employees e ON e.id = pr.employee_id`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var r payroll.PayrollRecord
	err := row.Scan(
		&r.ID, &r.CompanyID, &r.EmployeeID, &r.PeriodMonth, &r.PeriodYear,
		&r.Earnings.BaseSalary, &r.Earnings.OvertimeHours, &r.Earnings.OvertimeAmount, &r.Earnings.HazardAllowance,
		&r.Earnings.DangerAllowance, &r.Earnings.TechnicalAllowance, &r.Earnings.OtherEarnings,
		&r.Deductions.Contribution, &r.Deductions.IncomeTax, &r.Deductions.TransportVoucher, &r.Deductions.MealVoucher,
		&r.Deductions.HealthPlan, &r.Deductions.OtherDeductions,
		&r.GrossTotal, &r.DeductionTotal, &r.NetPay,
		&r.Status, &r.PaymentDate, &r.ProcessedBy, &r.PaidBy, &r.PaidAt, &r.Notes,
		&r.CreatedAt, &r.UpdatedAt,
		&r.EmployeeName, &r.EmployeeCode,
	)
	return r, err
}

// ========== PAYROLL RECORDS ==========

func (r *payrollRepository) CreatePayrollRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)
	record = record.WithTotals()

	query := `
		INSERT INTO payroll_records (
			company_id, employee_id, period_month, period_year,
			base_salary, overtime_hours, overtime_amount, hazard_allowance,
			danger_allowance, technical_allowance, other_earnings,
			contribution, income_tax, transport_voucher, meal_voucher,
			health_plan, other_deductions,
			gross_total, deduction_total, net_pay,
			status, payment_date, processed_by, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		)
		RETURNING id, created_at, updated_at`

	e, d := record.Earnings, record.Deductions
	err := q.QueryRow(ctx, query,
		record.CompanyID, record.EmployeeID, record.PeriodMonth, record.PeriodYear,
		e.BaseSalary, e.OvertimeHours, e.OvertimeAmount, e.HazardAllowance,
		e.DangerAllowance, e.TechnicalAllowance, e.OtherEarnings,
		d.Contribution, d.IncomeTax, d.TransportVoucher, d.MealVoucher,
		d.HealthPlan, d.OtherDeductions,
		record.GrossTotal, record.DeductionTotal, record.NetPay,
		record.Status, record.PaymentDate, record.ProcessedBy, record.Notes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "uk_payroll_records_employee_period") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) GetPayrollRecordByID(ctx context.Context, id string, companyID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + payrollRecordColumns + payrollRecordFrom + `
		WHERE pr.id = $1 AND pr.company_id = $2`

	record, err := scanPayrollRecord(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) GetPayrollRecordByEmployeePeriod(ctx context.Context, employeeID string, month, year int, companyID string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + payrollRecordColumns + payrollRecordFrom + `
		WHERE pr.employee_id = $1 AND pr.period_month = $2 AND pr.period_year = $3 AND pr.company_id = $4`

	record, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, month, year, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return record, nil
}

func (r *payrollRepository) ListPayrollRecords(ctx context.Context, companyID string, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := newWhereBuilder("pr.company_id = $1", companyID)
	if filter.PeriodMonth != nil {
		where.And("pr.period_month = $%d", *filter.PeriodMonth)
	}
	if filter.PeriodYear != nil {
		where.And("pr.period_year = $%d", *filter.PeriodYear)
	}
	if filter.Status != nil {
		where.And("pr.status = $%d", *filter.Status)
	}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where.And("pr.employee_id = $%d", *filter.EmployeeID)
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM payroll_records pr WHERE " + where.String()
	if err := q.QueryRow(ctx, countQuery, where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	limit, offset := where.Page(filter.Page, filter.Limit)
	query := fmt.Sprintf(`SELECT`+payrollRecordColumns+payrollRecordFrom+`
		WHERE %s
		ORDER BY pr.period_year DESC, pr.period_month DESC, pr.employee_id
		LIMIT %d OFFSET %d`, where.String(), limit, offset)

	rows, err := q.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	records := make([]payroll.PayrollRecord, 0)
	for rows.Next() {
		record, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return records, total, nil
}

func (r *payrollRepository) MarkPaid(ctx context.Context, ids []string, paidBy string, paymentDate time.Time, companyID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll_records SET
			status = 'paid', paid_by = $1, payment_date = $2, paid_at = NOW(), updated_at = NOW()
		WHERE id = ANY($3) AND company_id = $4 AND status = 'draft'
	`, paidBy, paymentDate, ids, companyID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark payroll records paid: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *payrollRepository) DeletePayrollRecord(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}
