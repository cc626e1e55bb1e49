package payroll

import (
	"testing"
	"time"

	"github.com/medusa-holding/medusa/internal/domain/attendance"
	"github.com/medusa-holding/medusa/internal/domain/employee"
	"github.com/medusa-holding/medusa/internal/domain/payroll"
	"github.com/medusa-holding/medusa/internal/domain/shift"
	"github.com/medusa-holding/medusa/internal/service/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), "%s: want %s, got %s", field, want, got)
}

func day(d int, status attendance.Status, hours string) attendance.Attendance {
	return attendance.Attendance{
		EmployeeID:  "emp-1",
		Date:        time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC),
		Status:      status,
		WorkedHours: dec(hours),
	}
}

var fixed8h = &shift.Shift{ID: "shift-8h", Type: shift.ShiftTypeFixed8h, DailyHours: dec("8"), WorkdaysPerWeek: 5}

func TestComputeHourlyPayslip_Mozambique(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", FullName: "Ana", EmployeeCode: "E001", Salary: dec("17600")}
	records := []attendance.Attendance{
		day(3, attendance.StatusPresent, "9"),
		day(4, attendance.StatusPresent, "9"),
		day(5, attendance.StatusPresent, "9"),
		day(6, attendance.StatusAbsentJustified, "0"),
		day(7, attendance.StatusAbsent, "0"),
	}

	p, err := ComputeHourlyPayslip(emp, fixed8h, payroll.Period{Month: 3, Year: 2025}, records, tax.Mozambique{})
	require.NoError(t, err)

	assert.Equal(t, tax.RegimeMozambique, p.Regime)
	assertDecimal(t, "176", p.MonthlyExpectedHours, "monthly hours")
	assertDecimal(t, "100", p.HourlyRate, "hourly rate")
	assertDecimal(t, "27", p.WorkedHours, "worked hours")
	assertDecimal(t, "2700", p.GrossPay, "gross")
	assertDecimal(t, "307.30", p.Contribution, "contribution")
	assertDecimal(t, "0", p.IncomeTax, "income tax")
	assert.Equal(t, 1, p.UnjustifiedAbsences)
	assertDecimal(t, "800", p.AbsencePenalty, "penalty")
	assertDecimal(t, "1107.30", p.TotalDeductions, "deductions")
	assertDecimal(t, "1592.70", p.NetPay, "net")
	require.NotNil(t, p.ShiftID)
	assert.Equal(t, "shift-8h", *p.ShiftID)
}

func TestComputeHourlyPayslip_IncomeTaxBracket(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", Salary: dec("176000")}
	var records []attendance.Attendance
	for d := 3; d <= 12; d++ {
		records = append(records, day(d, attendance.StatusPresent, "6"))
	}

	p, err := ComputeHourlyPayslip(emp, fixed8h, payroll.Period{Month: 3, Year: 2025}, records, nil)
	require.NoError(t, err)

	assert.Equal(t, tax.RegimeMozambique, p.Regime, "nil regime defaults to mozambique")
	assertDecimal(t, "1000", p.HourlyRate, "hourly rate")
	assertDecimal(t, "60000", p.GrossPay, "gross")
	assertDecimal(t, "1536.50", p.Contribution, "contribution")
	assertDecimal(t, "1679.68", p.IncomeTax, "income tax")
	assertDecimal(t, "56783.82", p.NetPay, "net")
}

func TestComputeHourlyPayslip_NoShiftFallsBack(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", Salary: dec("17600")}
	records := []attendance.Attendance{
		day(3, attendance.StatusPresent, "8"),
		day(4, attendance.StatusAbsent, "0"),
	}

	p, err := ComputeHourlyPayslip(emp, nil, payroll.Period{Month: 3, Year: 2025}, records, tax.Generic{})
	require.NoError(t, err)

	assert.Nil(t, p.ShiftID)
	assertDecimal(t, "176", p.MonthlyExpectedHours, "monthly hours")
	assertDecimal(t, "800", p.GrossPay, "gross")
	assertDecimal(t, "800", p.AbsencePenalty, "penalty uses 8 daily hours")
	// generic: 800 * 7.5% = 60, no income tax
	assertDecimal(t, "60", p.Contribution, "contribution")
	assertDecimal(t, "0", p.IncomeTax, "income tax")
	assertDecimal(t, "-60", p.NetPay, "net may go negative")
}

func TestComputeHourlyPayslip_RotatingShift(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", Salary: dec("9000")}
	s := &shift.Shift{ID: "s", Type: shift.ShiftType12x36, DailyHours: dec("12")}

	p, err := ComputeHourlyPayslip(emp, s, payroll.Period{Month: 3, Year: 2025}, []attendance.Attendance{day(2, attendance.StatusAbsent, "0")}, tax.Generic{})
	require.NoError(t, err)

	assertDecimal(t, "90", p.MonthlyExpectedHours, "monthly hours")
	assertDecimal(t, "100", p.HourlyRate, "hourly rate")
	assertDecimal(t, "1200", p.AbsencePenalty, "penalty uses shift daily hours")
}

func TestComputeHourlyPayslip_IgnoresOtherRecords(t *testing.T) {
	emp := employee.Employee{ID: "emp-1", Salary: dec("17600")}
	other := day(3, attendance.StatusPresent, "8")
	other.EmployeeID = "emp-2"
	april := day(3, attendance.StatusPresent, "8")
	april.Date = time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	records := []attendance.Attendance{
		other,
		april,
		day(4, attendance.StatusLate, "7"),
		day(5, attendance.StatusHoliday, "0"),
		day(6, attendance.StatusDayOff, "0"),
	}

	p, err := ComputeHourlyPayslip(emp, fixed8h, payroll.Period{Month: 3, Year: 2025}, records, tax.Generic{})
	require.NoError(t, err)

	assert.True(t, p.WorkedHours.IsZero())
	assert.Equal(t, 0, p.UnjustifiedAbsences)
	assert.True(t, p.NetPay.IsZero())
}

func TestComputeHourlyPayslip_InvalidPeriod(t *testing.T) {
	_, err := ComputeHourlyPayslip(employee.Employee{}, nil, payroll.Period{Month: 13, Year: 2025}, nil, nil)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestThirteenthSalary(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, "0"},
		{6, "6000"},
		{12, "12000"},
		{30, "12000"},
	}
	for _, tt := range tests {
		got, err := ThirteenthSalary(dec("12000"), tt.months)
		require.NoError(t, err)
		assertDecimal(t, tt.want, got, "thirteenth")
	}

	got, err := ThirteenthSalary(dec("10000"), 7)
	require.NoError(t, err)
	assertDecimal(t, "5833.33", got, "thirteenth 7/12")

	_, err = ThirteenthSalary(dec("10000"), -1)
	assert.ErrorIs(t, err, payroll.ErrInvalidMonthsWorked)
}

func TestProportionalVacationPay(t *testing.T) {
	got, err := ProportionalVacationPay(dec("12000"), 12)
	require.NoError(t, err)
	assertDecimal(t, "15960", got, "full year")

	got, err = ProportionalVacationPay(dec("12000"), 6)
	require.NoError(t, err)
	assertDecimal(t, "7980", got, "half year")

	got, err = ProportionalVacationPay(dec("12000"), 24)
	require.NoError(t, err)
	assertDecimal(t, "15960", got, "capped")

	_, err = ProportionalVacationPay(dec("12000"), -3)
	assert.ErrorIs(t, err, payroll.ErrInvalidMonthsWorked)
}
