package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleOwner, PermissionPayrollFinalize, true},
		{RoleManager, PermissionPayrollFinalize, false},
		{RoleManager, PermissionLeaveApprove, true},
		{RoleEmployee, PermissionAttendancePunch, true},
		{RoleEmployee, PermissionAttendanceViewAll, false},
		{Role("pending"), PermissionAttendancePunch, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.permission), func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestPrincipal_CanActFor(t *testing.T) {
	own := "emp-1"

	employee := Principal{Role: RoleEmployee, EmployeeID: &own}
	assert.True(t, employee.CanActFor("emp-1"))
	assert.False(t, employee.CanActFor("emp-2"))

	manager := Principal{Role: RoleManager}
	assert.True(t, manager.CanActFor("emp-2"))

	assert.False(t, Principal{Role: RoleEmployee}.CanActFor("emp-1"))
}
