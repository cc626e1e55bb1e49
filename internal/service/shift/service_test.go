package shift

import (
	"context"
	"testing"

	"github.com/medusa-holding/medusa/internal/domain/employee"
	"github.com/medusa-holding/medusa/internal/domain/shift"
	"github.com/medusa-holding/medusa/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companyID = "company-1"

func newService() (shift.ShiftService, *memory.EmployeeRepository) {
	employees := memory.NewEmployeeRepository(employee.Employee{
		ID:               "emp-ana",
		CompanyID:        companyID,
		FullName:         "Ana",
		EmploymentStatus: employee.EmploymentStatusActive,
	})
	return NewShiftService(memory.NewShiftRepository(employees), employees), employees
}

func TestCreateShift(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	created, err := svc.CreateShift(ctx, companyID, shift.CreateShiftRequest{
		Name:            "Plantao 12x36",
		Type:            shift.ShiftType12x36,
		DailyHours:      decimal.NewFromInt(12),
		WeeklyHours:     decimal.NewFromInt(42),
		WorkdaysPerWeek: 3,
	})
	require.NoError(t, err)
	assert.True(t, created.MonthlyExpectedHours.Equal(decimal.NewFromInt(90)))
	assert.False(t, created.WeeklyHoursConsistent)
	assert.True(t, created.IsActive)

	_, err = svc.CreateShift(ctx, companyID, shift.CreateShiftRequest{
		Name:            "Plantao 12x36",
		Type:            shift.ShiftTypeFixed8h,
		DailyHours:      decimal.NewFromInt(8),
		WorkdaysPerWeek: 5,
	})
	assert.ErrorIs(t, err, shift.ErrShiftNameExists)

	_, err = svc.CreateShift(ctx, companyID, shift.CreateShiftRequest{Name: "Bad", Type: "night", WorkdaysPerWeek: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type")
	assert.Contains(t, err.Error(), "daily_hours")
}

func TestUpdateShift(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	created, err := svc.CreateShift(ctx, companyID, shift.CreateShiftRequest{
		Name:            "Comercial",
		Type:            shift.ShiftTypeFixed8h,
		DailyHours:      decimal.NewFromInt(8),
		WeeklyHours:     decimal.NewFromInt(40),
		WorkdaysPerWeek: 5,
	})
	require.NoError(t, err)

	six := decimal.NewFromInt(6)
	partTime := shift.ShiftType6h
	updated, err := svc.UpdateShift(ctx, companyID, shift.UpdateShiftRequest{ID: created.ID, Type: &partTime, DailyHours: &six})
	require.NoError(t, err)
	assert.Equal(t, "Comercial", updated.Name)
	// 6 * 5 * 4
	assert.True(t, updated.MonthlyExpectedHours.Equal(decimal.NewFromInt(120)))

	_, err = svc.UpdateShift(ctx, "company-2", shift.UpdateShiftRequest{ID: created.ID, DailyHours: &six})
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestAssignAndDeleteShift(t *testing.T) {
	svc, employees := newService()
	ctx := context.Background()

	created, err := svc.CreateShift(ctx, companyID, shift.CreateShiftRequest{
		Name:            "Fim de semana",
		Type:            shift.ShiftTypeWeekend,
		DailyHours:      decimal.NewFromInt(10),
		WeeklyHours:     decimal.NewFromInt(20),
		WorkdaysPerWeek: 2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.AssignShift(ctx, companyID, shift.AssignShiftRequest{EmployeeID: "emp-ana", ShiftID: &created.ID}))
	emp, err := employees.GetByID(ctx, "emp-ana", companyID)
	require.NoError(t, err)
	require.NotNil(t, emp.ShiftID)
	assert.Equal(t, created.ID, *emp.ShiftID)

	missing := "01890000-0000-7000-8000-000000000000"
	err = svc.AssignShift(ctx, companyID, shift.AssignShiftRequest{EmployeeID: "emp-ana", ShiftID: &missing})
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)

	require.NoError(t, svc.DeleteShift(ctx, companyID, created.ID))
	emp, err = employees.GetByID(ctx, "emp-ana", companyID)
	require.NoError(t, err)
	assert.Nil(t, emp.ShiftID, "deleting a shift clears it from employees")

	assert.ErrorIs(t, svc.DeleteShift(ctx, companyID, created.ID), shift.ErrShiftNotFound)

	list, err := svc.ListShifts(ctx, companyID, false)
	require.NoError(t, err)
	assert.Empty(t, list)
}
