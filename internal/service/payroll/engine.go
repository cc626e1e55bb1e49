package payroll

import (
	"github.com/medusa-holding/medusa/internal/domain/attendance"
	"github.com/medusa-holding/medusa/internal/domain/employee"
	"github.com/medusa-holding/medusa/internal/domain/payroll"
	"github.com/medusa-holding/medusa/internal/domain/shift"
	"github.com/medusa-holding/medusa/internal/pkg/money"
	"github.com/medusa-holding/medusa/internal/service/tax"
	"github.com/shopspring/decimal"
)

// ComputeHourlyPayslip pays the hours worked in period at the employee's hourly rate.
//
// The rate is the monthly salary divided by the shift's expected monthly hours, or
// by 22 × 8 when the employee has no shift. Present and justified-absence records
// count as worked; every unjustified absence costs one shift day at the hourly rate.
// A nil regime defaults to Mozambique. Records outside period are ignored.
func ComputeHourlyPayslip(emp employee.Employee, s *shift.Shift, period payroll.Period, records []attendance.Attendance, regime tax.Regime) (payroll.Payslip, error) {
	if period.Month < 1 || period.Month > 12 {
		return payroll.Payslip{}, payroll.ErrInvalidPeriod
	}
	if regime == nil {
		regime = tax.Mozambique{}
	}

	worked := decimal.Zero
	unjustified := 0
	for _, r := range records {
		if r.EmployeeID != emp.ID || !period.Contains(r.Date) {
			continue
		}
		switch {
		case r.Status.CountsAsWorked():
			worked = worked.Add(r.WorkedHours)
		case r.Status == attendance.StatusAbsent:
			unjustified++
		}
	}

	monthlyHours := shift.MonthlyHoursOrDefault(s)
	dailyHours := shift.DailyHoursOrDefault(s)
	rate := emp.Salary.Div(monthlyHours)

	gross := money.Round(worked.Mul(rate))
	contribution := regime.Contribution(gross)
	incomeTax := regime.IncomeTax(gross, contribution)
	penalty := money.Round(decimal.NewFromInt(int64(unjustified)).Mul(rate).Mul(dailyHours))
	deductions := money.Sum(contribution, incomeTax, penalty)

	payslip := payroll.Payslip{
		EmployeeID:           emp.ID,
		EmployeeName:         emp.FullName,
		EmployeeCode:         emp.EmployeeCode,
		Period:               period,
		Regime:               regime.Name(),
		WorkedHours:          money.Round(worked),
		MonthlyExpectedHours: money.Round(monthlyHours),
		HourlyRate:           money.Round(rate),
		GrossPay:             gross,
		Contribution:         contribution,
		IncomeTax:            incomeTax,
		UnjustifiedAbsences:  unjustified,
		AbsencePenalty:       penalty,
		TotalDeductions:      deductions,
		NetPay:               gross.Sub(deductions),
	}
	if s != nil {
		payslip.ShiftID = &s.ID
	}
	return payslip, nil
}

var (
	monthsPerYear     = decimal.NewFromInt(12)
	vacationBonusRate = money.MustParse("1.33")
)

// ThirteenthSalary is the year-end salary proportional to months worked, capped at twelve.
func ThirteenthSalary(monthly decimal.Decimal, monthsWorked int) (decimal.Decimal, error) {
	if monthsWorked < 0 {
		return decimal.Zero, payroll.ErrInvalidMonthsWorked
	}
	months := decimal.NewFromInt(int64(min(monthsWorked, 12)))
	return money.Round(monthly.Mul(months).Div(monthsPerYear)), nil
}

// ProportionalVacationPay is the vacation salary plus its one-third bonus, proportional
// to months worked until a full year is completed.
func ProportionalVacationPay(monthly decimal.Decimal, monthsWorked int) (decimal.Decimal, error) {
	if monthsWorked < 0 {
		return decimal.Zero, payroll.ErrInvalidMonthsWorked
	}
	if monthsWorked >= 12 {
		return money.Round(monthly.Mul(vacationBonusRate)), nil
	}
	months := decimal.NewFromInt(int64(monthsWorked))
	return money.Round(monthly.Mul(months).Div(monthsPerYear).Mul(vacationBonusRate)), nil
}
