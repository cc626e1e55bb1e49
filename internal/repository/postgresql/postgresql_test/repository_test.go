package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/medusa-holding/medusa/internal/domain/attendance"
	"github.com/medusa-holding/medusa/internal/domain/employee"
	"github.com/medusa-holding/medusa/internal/domain/leave"
	"github.com/medusa-holding/medusa/internal/domain/payroll"
	"github.com/medusa-holding/medusa/internal/domain/shift"
	"github.com/medusa-holding/medusa/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftRepository_DeleteClearsEmployees(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	companyID := uuid.NewString()

	shiftRepo := postgresql.NewShiftRepository(setup.DB)
	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)

	created, err := shiftRepo.Create(ctx, shift.Shift{
		CompanyID:       companyID,
		Name:            "Day",
		Type:            shift.ShiftTypeFixed8h,
		DailyHours:      decimal.NewFromInt(8),
		WeeklyHours:     decimal.NewFromInt(40),
		WorkdaysPerWeek: 5,
		IsActive:        true,
	})
	require.NoError(t, err)

	_, err = shiftRepo.Create(ctx, shift.Shift{CompanyID: companyID, Name: "Day", Type: shift.ShiftType6h, DailyHours: decimal.NewFromInt(6)})
	assert.ErrorIs(t, err, shift.ErrShiftNameExists)

	empID, err := setup.InsertEmployee(ctx, companyID, "E001", "Ana", "17600", &created.ID)
	require.NoError(t, err)

	require.NoError(t, shiftRepo.Delete(ctx, created.ID, companyID))

	emp, err := employeeRepo.GetByID(ctx, empID, companyID)
	require.NoError(t, err)
	assert.Nil(t, emp.ShiftID)

	_, err = shiftRepo.GetByID(ctx, created.ID, companyID)
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestAttendanceRepository_UniquePerDayAndBulkAbsences(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	companyID := uuid.NewString()
	repo := postgresql.NewAttendanceRepository(setup.DB)

	first, err := setup.InsertEmployee(ctx, companyID, "E001", "Ana", "17600", nil)
	require.NoError(t, err)
	second, err := setup.InsertEmployee(ctx, companyID, "E002", "Bruno", "20000", nil)
	require.NoError(t, err)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	checkIn := date.Add(8 * time.Hour)
	_, err = repo.Create(ctx, attendance.Attendance{
		CompanyID: companyID, EmployeeID: first, Date: date, CheckIn: &checkIn, Status: attendance.StatusPresent,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, attendance.Attendance{
		CompanyID: companyID, EmployeeID: first, Date: date, Status: attendance.StatusPresent,
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyExists)

	absences := []attendance.Attendance{
		{CompanyID: companyID, EmployeeID: first, Date: date, Status: attendance.StatusAbsent},
		{CompanyID: companyID, EmployeeID: second, Date: date, Status: attendance.StatusAbsent},
	}
	inserted, err := repo.BulkCreateAbsences(ctx, absences)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	inserted, err = repo.BulkCreateAbsences(ctx, absences)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	ids, err := repo.EmployeeIDsWithRecord(ctx, date, companyID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first, second}, ids)

	records, err := repo.ListByEmployeePeriod(ctx, second, 3, 2025, companyID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusAbsent, records[0].Status)

	_, err = repo.GetByID(ctx, records[0].ID, uuid.NewString())
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestJustificationRepository_OnePerAttendance(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	companyID := uuid.NewString()
	attendanceRepo := postgresql.NewAttendanceRepository(setup.DB)
	repo := postgresql.NewJustificationRepository(setup.DB)

	empID, err := setup.InsertEmployee(ctx, companyID, "E001", "Ana", "17600", nil)
	require.NoError(t, err)
	record, err := attendanceRepo.Create(ctx, attendance.Attendance{
		CompanyID: companyID, EmployeeID: empID, Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Status: attendance.StatusAbsent,
	})
	require.NoError(t, err)

	none, err := repo.GetByAttendanceID(ctx, record.ID, companyID)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = repo.Create(ctx, attendance.Justification{CompanyID: companyID, AttendanceID: record.ID, Reason: "Medical appointment"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, attendance.Justification{CompanyID: companyID, AttendanceID: record.ID, Reason: "Again"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyJustified)
}

func TestPayrollRepository_Lifecycle(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	companyID := uuid.NewString()
	repo := postgresql.NewPayrollRepository(setup.DB)

	empID, err := setup.InsertEmployee(ctx, companyID, "E001", "Ana", "17600", nil)
	require.NoError(t, err)

	record := payroll.PayrollRecord{
		CompanyID:   companyID,
		EmployeeID:  empID,
		PeriodMonth: 3,
		PeriodYear:  2025,
		Earnings:    payroll.Earnings{BaseSalary: decimal.NewFromInt(17600)},
		Deductions:  payroll.Deductions{Contribution: decimal.NewFromInt(528)},
		Status:      payroll.PayrollStatusDraft,
	}
	created, err := repo.CreatePayrollRecord(ctx, record)
	require.NoError(t, err)
	assert.True(t, created.NetPay.Equal(decimal.NewFromInt(17072)))

	_, err = repo.CreatePayrollRecord(ctx, record)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordAlreadyExists)

	got, err := repo.GetPayrollRecordByEmployeePeriod(ctx, empID, 3, 2025, companyID)
	require.NoError(t, err)
	require.NotNil(t, got.EmployeeName)
	assert.Equal(t, "Ana", *got.EmployeeName)

	paid, err := repo.MarkPaid(ctx, []string{created.ID}, uuid.NewString(), time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC), companyID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), paid)

	paid, err = repo.MarkPaid(ctx, []string{created.ID}, uuid.NewString(), time.Now(), companyID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), paid)

	status := payroll.PayrollStatusPaid
	records, total, err := repo.ListPayrollRecords(ctx, companyID, payroll.PayrollFilter{Status: &status, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, records, 1)
}

func TestLeaveRequestRepository_UpdateStatus(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	companyID := uuid.NewString()
	repo := postgresql.NewLeaveRequestRepository(setup.DB)

	empID, err := setup.InsertEmployee(ctx, companyID, "E001", "Ana", "17600", nil)
	require.NoError(t, err)

	created, err := repo.Create(ctx, leave.LeaveRequest{
		CompanyID:    companyID,
		EmployeeID:   empID,
		StartDate:    time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
		TotalDays:    11,
		BusinessDays: 7,
		Status:       leave.LeaveRequestStatusRequested,
		RequestedAt:  time.Now(),
	})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, repo.UpdateStatus(ctx, created.ID, companyID, leave.LeaveRequestStatusRequested, leave.LeaveRequestStatusApproved, nil, now))

	err = repo.UpdateStatus(ctx, created.ID, companyID, leave.LeaveRequestStatusRequested, leave.LeaveRequestStatusRejected, nil, now)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	err = repo.UpdateStatus(ctx, uuid.NewString(), companyID, leave.LeaveRequestStatusRequested, leave.LeaveRequestStatusRejected, nil, now)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestEmployeeRepository_ActiveCompanies(t *testing.T) {
	setup := NewTestDatabase(t)
	ctx := context.Background()
	companyA, companyB := uuid.NewString(), uuid.NewString()
	repo := postgresql.NewEmployeeRepository(setup.DB)

	_, err := setup.InsertEmployee(ctx, companyA, "E001", "Ana", "17600", nil)
	require.NoError(t, err)
	_, err = setup.InsertEmployee(ctx, companyB, "E001", "Bruno", "20000", nil)
	require.NoError(t, err)

	ids, err := repo.GetCompanyIDsWithActiveEmployees(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{companyA, companyB}, ids)

	active, err := repo.GetActiveByCompanyID(ctx, companyA)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, employee.EmploymentStatusActive, active[0].EmploymentStatus)
}
