package role

type Permission string

const (
	// Employee Management
	PermissionEmployeeManage  Permission = "employee.manage"
	PermissionEmployeeViewAll Permission = "employee.view_all"

	// Attendance Management
	PermissionAttendanceCreate Permission = "attendance.create"
	PermissionAttendanceManage Permission = "attendance.manage"

	// Leave Management
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveApprove Permission = "leave.approve"

	// Payroll Management
	PermissionPayrollManage Permission = "payroll.manage"

	// Reports
	PermissionReportsView Permission = "reports.view"

	// Masters
	PermissionSettingsManage Permission = "settings.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Name][]Permission{
	RoleAdmin: {
		PermissionEmployeeManage,
		PermissionEmployeeViewAll,
		PermissionAttendanceCreate,
		PermissionAttendanceManage,
		PermissionLeaveCreate,
		PermissionLeaveApprove,
		PermissionPayrollManage,
		PermissionReportsView,
		PermissionSettingsManage,
	},
	RoleHR: {
		PermissionEmployeeManage,
		PermissionEmployeeViewAll,
		PermissionAttendanceCreate,
		PermissionAttendanceManage,
		PermissionLeaveCreate,
		PermissionLeaveApprove,
		PermissionPayrollManage,
		PermissionReportsView,
		PermissionSettingsManage,
	},
	RoleDepartmentHead: {
		PermissionEmployeeViewAll,
		PermissionAttendanceCreate,
		PermissionLeaveCreate,
		PermissionLeaveApprove,
		PermissionReportsView,
	},
	RoleTeamLead: {
		PermissionEmployeeViewAll,
		PermissionAttendanceCreate,
		PermissionLeaveCreate,
		PermissionLeaveApprove,
		PermissionReportsView,
	},
	RoleTechnicalExpert: {
		PermissionAttendanceCreate,
		PermissionLeaveCreate,
		PermissionReportsView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(name Name, permission Permission) bool {
	permissions, exists := RolePermissions[name]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
