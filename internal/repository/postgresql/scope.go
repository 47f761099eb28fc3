package postgresql

import (
	"fmt"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
)

// scopeCondition translates an access filter into a SQL predicate over the
// employee owning the row. employeeCol is the qualified employee ID column of
// the scoped table; deptCol and managerCol come from the joined employees
// table. Returns "" for unrestricted access.
func scopeCondition(access role.AccessFilter, employeeCol, deptCol, managerCol string, args *[]interface{}) string {
	switch access.Kind {
	case role.ScopeAll:
		return ""
	case role.ScopeDepartment:
		*args = append(*args, access.DepartmentID)
		return fmt.Sprintf("%s = $%d", deptCol, len(*args))
	case role.ScopeTeam:
		*args = append(*args, access.EmployeeID)
		n := len(*args)
		return fmt.Sprintf("(%s = $%d OR %s = $%d)", employeeCol, n, managerCol, n)
	default:
		*args = append(*args, access.EmployeeID)
		return fmt.Sprintf("%s = $%d", employeeCol, len(*args))
	}
}
