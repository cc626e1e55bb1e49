package attendance

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/medusa-holding/medusa/internal/domain/attendance"
	"github.com/medusa-holding/medusa/internal/domain/employee"
	"github.com/medusa-holding/medusa/internal/pkg/storage"
	"github.com/medusa-holding/medusa/internal/repository/memory"
	"github.com/medusa-holding/medusa/internal/service/file"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companyID = "company-1"

type fixture struct {
	svc            *AttendanceServiceImpl
	employees      *memory.EmployeeRepository
	records        *memory.AttendanceRepository
	justifications *memory.JustificationRepository
	storageDir     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	hired := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	employees := memory.NewEmployeeRepository(
		employee.Employee{ID: "emp-ana", CompanyID: companyID, EmployeeCode: "E001", FullName: "Ana Macuacua", HireDate: hired, EmploymentStatus: employee.EmploymentStatusActive, Salary: decimal.NewFromInt(17600)},
		employee.Employee{ID: "emp-joao", CompanyID: companyID, EmployeeCode: "E002", FullName: "Joao Sitoe", HireDate: hired, EmploymentStatus: employee.EmploymentStatusActive, Salary: decimal.NewFromInt(25000)},
		employee.Employee{ID: "emp-rita", CompanyID: companyID, EmployeeCode: "E003", FullName: "Rita Nhantumbo", HireDate: hired, EmploymentStatus: employee.EmploymentStatusTerminated, Salary: decimal.NewFromInt(30000)},
		employee.Employee{ID: "emp-other", CompanyID: "company-2", EmployeeCode: "E001", FullName: "Outra Empresa", HireDate: hired, EmploymentStatus: employee.EmploymentStatusActive, Salary: decimal.NewFromInt(10000)},
	)
	records := memory.NewAttendanceRepository(employees)
	justifications := memory.NewJustificationRepository()

	dir := t.TempDir()
	local, err := storage.NewLocalStorage(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	svc := NewAttendanceService(memory.Transactor{}, records, justifications, employees, file.NewFileService(local), time.UTC).(*AttendanceServiceImpl)

	return &fixture{svc: svc, employees: employees, records: records, justifications: justifications, storageDir: dir}
}

func at(s string) *string { return &s }

func TestCheckInCheckOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in, err := f.svc.CheckIn(ctx, companyID, attendance.CheckInRequest{EmployeeID: "emp-ana", At: at("2025-03-10T08:00:00Z")})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", in.Date)
	assert.Equal(t, attendance.StatusPresent, in.Status)
	assert.True(t, in.WorkedHours.IsZero())
	require.NotNil(t, in.EmployeeName)
	assert.Equal(t, "Ana Macuacua", *in.EmployeeName)

	_, err = f.svc.CheckIn(ctx, companyID, attendance.CheckInRequest{EmployeeID: "emp-ana", At: at("2025-03-10T08:05:00Z")})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	out, err := f.svc.CheckOut(ctx, companyID, attendance.CheckOutRequest{EmployeeID: "emp-ana", At: at("2025-03-10T17:00:00Z")})
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
	assert.True(t, out.WorkedHours.Equal(decimal.NewFromInt(9)), "got %s", out.WorkedHours)

	_, err = f.svc.CheckOut(ctx, companyID, attendance.CheckOutRequest{EmployeeID: "emp-ana", At: at("2025-03-10T18:00:00Z")})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)

	stored, err := f.svc.GetAttendance(ctx, companyID, in.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CheckIn)
	assert.Equal(t, "2025-03-10T08:00:00Z", *stored.CheckIn)
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CheckOut(context.Background(), companyID, attendance.CheckOutRequest{EmployeeID: "emp-joao", At: at("2025-03-10T17:00:00Z")})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_Overnight(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in, err := f.svc.CheckIn(ctx, companyID, attendance.CheckInRequest{EmployeeID: "emp-joao", At: at("2025-03-10T22:00:00Z")})
	require.NoError(t, err)

	out, err := f.svc.CheckOut(ctx, companyID, attendance.CheckOutRequest{EmployeeID: "emp-joao", At: at("2025-03-11T06:00:00Z")})
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, "2025-03-10", out.Date)
	assert.True(t, out.WorkedHours.Equal(decimal.NewFromInt(8)), "got %s", out.WorkedHours)
}

func TestCheckOut_ForgottenPreviousDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckIn(ctx, companyID, attendance.CheckInRequest{EmployeeID: "emp-ana", At: at("2025-03-10T08:00:00Z")})
	require.NoError(t, err)

	_, err = f.svc.CheckOut(ctx, companyID, attendance.CheckOutRequest{EmployeeID: "emp-ana", At: at("2025-03-11T17:00:00Z")})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)

	open, err := f.records.GetByEmployeeAndDate(ctx, "emp-ana", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), companyID)
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Nil(t, open.CheckOut, "the forgotten day stays open")
	assert.True(t, open.WorkedHours.IsZero())
}

func TestCheckIn_InactiveAndForeignEmployee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckIn(ctx, companyID, attendance.CheckInRequest{EmployeeID: "emp-rita"})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)

	_, err = f.svc.CheckIn(ctx, companyID, attendance.CheckInRequest{EmployeeID: "emp-other"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckIn_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CheckIn(context.Background(), companyID, attendance.CheckInRequest{EmployeeID: "emp-ana", At: at("yesterday")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at")
}

func TestSweepAbsences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	_, err := f.svc.CheckIn(ctx, companyID, attendance.CheckInRequest{EmployeeID: "emp-ana", At: at("2025-03-10T08:00:00Z")})
	require.NoError(t, err)
	f.employees.Put(employee.Employee{ID: "emp-new", CompanyID: companyID, EmployeeCode: "E004", FullName: "Novo", HireDate: day.AddDate(0, 0, 7), EmploymentStatus: employee.EmploymentStatusActive})

	result, err := f.svc.SweepAbsences(ctx, companyID, day)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", result.Date)
	assert.Equal(t, 1, result.Created, "only emp-joao lacks a record")

	again, err := f.svc.SweepAbsences(ctx, companyID, day)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Created)

	absent, err := f.records.GetByEmployeeAndDate(ctx, "emp-joao", day, companyID)
	require.NoError(t, err)
	require.NotNil(t, absent)
	assert.Equal(t, attendance.StatusAbsent, absent.Status)
	assert.True(t, absent.WorkedHours.IsZero())

	other, err := f.records.GetByEmployeeAndDate(ctx, "emp-other", day, "company-2")
	require.NoError(t, err)
	assert.Nil(t, other, "sweep must stay inside the tenant")
}

func TestCheckIn_AfterSweep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	_, err := f.svc.SweepAbsences(ctx, companyID, day)
	require.NoError(t, err)

	in, err := f.svc.CheckIn(ctx, companyID, attendance.CheckInRequest{EmployeeID: "emp-ana", At: at("2025-03-10T10:00:00Z")})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, in.Status)
}

func sweptAbsence(t *testing.T, f *fixture, createdAt time.Time) string {
	t.Helper()
	f.records.SetClock(func() time.Time { return createdAt })
	_, err := f.svc.SweepAbsences(context.Background(), companyID, createdAt.AddDate(0, 0, -1))
	require.NoError(t, err)
	record, err := f.records.GetByEmployeeAndDate(context.Background(), "emp-joao", createdAt.AddDate(0, 0, -1), companyID)
	require.NoError(t, err)
	require.NotNil(t, record)
	return record.ID
}

func TestJustifyAbsence_WithinWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := time.Date(2025, time.March, 11, 1, 0, 0, 0, time.UTC)
	id := sweptAbsence(t, f, created)
	f.svc.now = func() time.Time { return created.Add(24 * time.Hour) }

	result, err := f.svc.JustifyAbsence(ctx, companyID, attendance.JustifyAbsenceRequest{
		AttendanceID: id,
		Reason:       "Consulta medica",
		File:         strings.NewReader("%PDF-1.4"),
		Filename:     "atestado.pdf",
		FileSize:     8,
	})
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, attendance.StatusAbsentJustified, result.Attendance.Status)
	require.NotNil(t, result.EvidenceRef)
	assert.True(t, strings.HasPrefix(*result.EvidenceRef, "justifications/"+companyID+"/"+id+"/"))

	stored, err := f.svc.GetAttendance(ctx, companyID, id)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsentJustified, stored.Status)

	_, err = f.svc.JustifyAbsence(ctx, companyID, attendance.JustifyAbsenceRequest{AttendanceID: id, Reason: "again"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyJustified)
}

func TestJustifyAbsence_AfterWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := time.Date(2025, time.March, 11, 1, 0, 0, 0, time.UTC)
	id := sweptAbsence(t, f, created)
	f.svc.now = func() time.Time { return created.Add(25 * time.Hour) }

	result, err := f.svc.JustifyAbsence(ctx, companyID, attendance.JustifyAbsenceRequest{AttendanceID: id, Reason: "Esqueci"})
	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.NotEmpty(t, result.ID, "justification is stored even when late")
	assert.Equal(t, attendance.StatusAbsent, result.Attendance.Status)

	stored, err := f.justifications.GetByAttendanceID(ctx, id, companyID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Esqueci", stored.Reason)

	_, err = f.svc.JustifyAbsence(ctx, companyID, attendance.JustifyAbsenceRequest{AttendanceID: id, Reason: "again"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyJustified)
}

func TestJustifyAbsence_NotAnAbsence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in, err := f.svc.CheckIn(ctx, companyID, attendance.CheckInRequest{EmployeeID: "emp-ana", At: at("2025-03-10T08:00:00Z")})
	require.NoError(t, err)

	_, err = f.svc.JustifyAbsence(ctx, companyID, attendance.JustifyAbsenceRequest{AttendanceID: in.ID, Reason: "n/a"})
	assert.ErrorIs(t, err, attendance.ErrNotAnAbsence)

	_, err = f.svc.JustifyAbsence(ctx, "company-2", attendance.JustifyAbsenceRequest{AttendanceID: in.ID, Reason: "n/a"})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestUpdateAttendance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in, err := f.svc.CheckIn(ctx, companyID, attendance.CheckInRequest{EmployeeID: "emp-ana", At: at("2025-03-10T08:00:00Z")})
	require.NoError(t, err)

	late := attendance.StatusLate
	updated, err := f.svc.UpdateAttendance(ctx, companyID, attendance.UpdateAttendanceRequest{
		ID:       in.ID,
		CheckIn:  at("2025-03-10T09:30:00Z"),
		CheckOut: at("2025-03-10T17:00:00Z"),
		Status:   &late,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, updated.Status)
	assert.True(t, updated.WorkedHours.Equal(decimal.RequireFromString("7.5")), "got %s", updated.WorkedHours)
}

func TestListAttendance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, punch := range []string{"2025-03-10T08:00:00Z", "2025-03-11T08:00:00Z", "2025-03-12T08:00:00Z"} {
		_, err := f.svc.CheckIn(ctx, companyID, attendance.CheckInRequest{EmployeeID: "emp-ana", At: at(punch)})
		require.NoError(t, err)
	}

	employeeID := "emp-ana"
	list, err := f.svc.ListAttendance(ctx, companyID, attendance.AttendanceFilter{EmployeeID: &employeeID, Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), list.TotalCount)
	assert.Equal(t, 2, list.TotalPages)
	assert.Equal(t, "1-2 of 3", list.Showing)
	require.Len(t, list.Attendances, 2)
	assert.Equal(t, "2025-03-12", list.Attendances[0].Date)

	empty, err := f.svc.ListAttendance(ctx, "company-2", attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Equal(t, "0 of 0", empty.Showing)
}
