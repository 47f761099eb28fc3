package role

// ScopeKind describes how far a role can see into other employees' data.
type ScopeKind string

const (
	// ScopeAll sees every employee.
	ScopeAll ScopeKind = "all"
	// ScopeDepartment sees employees of the principal's department.
	ScopeDepartment ScopeKind = "department"
	// ScopeTeam sees the principal and their direct reports.
	ScopeTeam ScopeKind = "team"
	// ScopeSelf sees only the principal's own records.
	ScopeSelf ScopeKind = "self"
)

// ScopeFor returns the visibility scope of a role. Unknown roles collapse to
// self-only visibility.
func ScopeFor(name Name) ScopeKind {
	switch name {
	case RoleAdmin, RoleHR:
		return ScopeAll
	case RoleDepartmentHead:
		return ScopeDepartment
	case RoleTeamLead:
		return ScopeTeam
	default:
		return ScopeSelf
	}
}

// AccessFilter is the per-request visibility filter repositories apply to
// employee-owned rows. It is derived once from the authenticated principal.
type AccessFilter struct {
	Kind         ScopeKind
	EmployeeID   string
	DepartmentID string
}

// CanFilterByEmployee reports whether the role may narrow a listing to an
// arbitrary employee ID.
func (f AccessFilter) CanFilterByEmployee() bool {
	return f.Kind == ScopeAll || f.Kind == ScopeDepartment
}

// CanFilterByDepartment reports whether the role may narrow a listing to an
// arbitrary department ID.
func (f AccessFilter) CanFilterByDepartment() bool {
	return f.Kind == ScopeAll
}
