package postgresql

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
)

func TestScopeCondition(t *testing.T) {
	t.Run("all scope adds nothing", func(t *testing.T) {
		args := []interface{}{"existing"}
		cond := scopeCondition(role.AccessFilter{Kind: role.ScopeAll}, "a.employee_id", "e.department_id", "e.manager_id", &args)

		assert.Empty(t, cond)
		assert.Len(t, args, 1)
	})

	t.Run("department scope", func(t *testing.T) {
		args := []interface{}{}
		access := role.AccessFilter{Kind: role.ScopeDepartment, DepartmentID: "dept-1"}
		cond := scopeCondition(access, "a.employee_id", "e.department_id", "e.manager_id", &args)

		assert.Equal(t, "e.department_id = $1", cond)
		assert.Equal(t, []interface{}{"dept-1"}, args)
	})

	t.Run("team scope matches self or direct reports", func(t *testing.T) {
		args := []interface{}{"2025-07-01"}
		access := role.AccessFilter{Kind: role.ScopeTeam, EmployeeID: "emp-1"}
		cond := scopeCondition(access, "a.employee_id", "e.department_id", "e.manager_id", &args)

		assert.Equal(t, "(a.employee_id = $2 OR e.manager_id = $2)", cond)
		assert.Equal(t, []interface{}{"2025-07-01", "emp-1"}, args)
	})

	t.Run("self scope", func(t *testing.T) {
		args := []interface{}{}
		access := role.AccessFilter{Kind: role.ScopeSelf, EmployeeID: "emp-1"}
		cond := scopeCondition(access, "a.employee_id", "e.department_id", "e.manager_id", &args)

		assert.Equal(t, "a.employee_id = $1", cond)
		assert.Equal(t, []interface{}{"emp-1"}, args)
	})
}
