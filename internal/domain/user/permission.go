package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Attendance Management
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceIngest  Permission = "attendance.ingest"
	PermissionAttendanceJustify Permission = "attendance.justify"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Medical Leave Management
	PermissionMedicalView   Permission = "medical.view"
	PermissionMedicalManage Permission = "medical.manage"

	// Calendar / Schedule Management
	PermissionHolidayManage  Permission = "holiday.manage"
	PermissionScheduleManage Permission = "schedule.manage"

	// User Management
	PermissionUserManage Permission = "user.manage"
)

var reviewerPermissions = []Permission{
	PermissionViewOwnProfile,
	PermissionAttendanceViewOwn,
	PermissionAttendanceViewAll,
	PermissionAttendanceIngest,
	PermissionAttendanceJustify,
	PermissionLeaveViewOwn,
	PermissionLeaveCreate,
	PermissionLeaveViewAll,
	PermissionLeaveApprove,
	PermissionMedicalView,
	PermissionMedicalManage,
	PermissionHolidayManage,
	PermissionScheduleManage,
}

// RolePermissions maps roles to their permissions. ADMIN, DIRECTOR, DIRECTIVO
// and SECRETARIA all review attendance and leave; only ADMIN manages users.
var RolePermissions = map[Role][]Permission{
	RoleAdmin:      append(reviewerPermissions, PermissionUserManage),
	RoleDirector:   reviewerPermissions,
	RoleDirectivo:  reviewerPermissions,
	RoleSecretaria: reviewerPermissions,
	RoleFuncionario: {
		PermissionViewOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
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
