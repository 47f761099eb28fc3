package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Name
		permission Permission
		want       bool
	}{
		{RoleAdmin, PermissionEmployeeManage, true},
		{RoleAdmin, PermissionPayrollManage, true},
		{RoleHR, PermissionEmployeeManage, true},
		{RoleHR, PermissionSettingsManage, true},
		{RoleDepartmentHead, PermissionLeaveApprove, true},
		{RoleDepartmentHead, PermissionEmployeeManage, false},
		{RoleDepartmentHead, PermissionPayrollManage, false},
		{RoleTeamLead, PermissionLeaveApprove, true},
		{RoleTeamLead, PermissionSettingsManage, false},
		{RoleTechnicalExpert, PermissionAttendanceCreate, true},
		{RoleTechnicalExpert, PermissionLeaveCreate, true},
		{RoleTechnicalExpert, PermissionLeaveApprove, false},
		{RoleTechnicalExpert, PermissionEmployeeViewAll, false},
		{Name("UNKNOWN"), PermissionLeaveCreate, false},
	}

	for _, c := range cases {
		got := HasPermission(c.role, c.permission)
		assert.Equal(t, c.want, got, "HasPermission(%s, %s)", c.role, c.permission)
	}
}

func TestScopeFor(t *testing.T) {
	assert.Equal(t, ScopeAll, ScopeFor(RoleAdmin))
	assert.Equal(t, ScopeAll, ScopeFor(RoleHR))
	assert.Equal(t, ScopeDepartment, ScopeFor(RoleDepartmentHead))
	assert.Equal(t, ScopeTeam, ScopeFor(RoleTeamLead))
	assert.Equal(t, ScopeSelf, ScopeFor(RoleTechnicalExpert))
	assert.Equal(t, ScopeSelf, ScopeFor(Name("UNKNOWN")))
}

func TestAccessFilter_FilterRights(t *testing.T) {
	assert.True(t, AccessFilter{Kind: ScopeAll}.CanFilterByEmployee())
	assert.True(t, AccessFilter{Kind: ScopeAll}.CanFilterByDepartment())
	assert.True(t, AccessFilter{Kind: ScopeDepartment}.CanFilterByEmployee())
	assert.False(t, AccessFilter{Kind: ScopeDepartment}.CanFilterByDepartment())
	assert.False(t, AccessFilter{Kind: ScopeTeam}.CanFilterByEmployee())
	assert.False(t, AccessFilter{Kind: ScopeSelf}.CanFilterByEmployee())
}
