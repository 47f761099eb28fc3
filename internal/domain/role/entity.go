package role

import "time"

// Name is one of the five fixed role names seeded into the roles table.
type Name string

const (
	RoleAdmin           Name = "ADMIN"
	RoleHR              Name = "HR"
	RoleDepartmentHead  Name = "DEPARTMENT_HEAD"
	RoleTeamLead        Name = "TEAM_LEAD"
	RoleTechnicalExpert Name = "TECHNICAL_EXPERT"
)

type Role struct {
	ID          string
	Name        Name
	Level       int
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
