package user

type Permission string

const (
	// Attendance
	PermissionAttendancePunch   Permission = "attendance.punch"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceCorrect Permission = "attendance.correct"
	PermissionAttendanceJustify Permission = "attendance.justify"

	// Leave
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Shifts and employees
	PermissionShiftView      Permission = "shift.view"
	PermissionShiftManage    Permission = "shift.manage"
	PermissionEmployeeView   Permission = "employee.view"
	PermissionEmployeeManage Permission = "employee.manage"

	// Payroll
	PermissionPayrollView     Permission = "payroll.view"
	PermissionPayrollManage   Permission = "payroll.manage"
	PermissionPayrollFinalize Permission = "payroll.finalize"

	// Reviews
	PermissionReviewManage Permission = "review.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermissionAttendancePunch,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceCorrect,
		PermissionAttendanceJustify,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionShiftView,
		PermissionShiftManage,
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionPayrollView,
		PermissionPayrollManage,
		PermissionPayrollFinalize,
		PermissionReviewManage,
	},
	RoleManager: {
		PermissionAttendancePunch,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionAttendanceCorrect,
		PermissionAttendanceJustify,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionShiftView,
		PermissionShiftManage,
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionPayrollView,
		PermissionPayrollManage,
		PermissionReviewManage,
	},
	RoleEmployee: {
		PermissionAttendancePunch,
		PermissionAttendanceViewOwn,
		PermissionAttendanceJustify,
		PermissionLeaveCreate,
		PermissionShiftView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
