package employee

import (
	"time"
)

type Employee struct {
	ID            string
	EmployeeCode  string
	Email         string
	FullName      string
	PasswordHash  string
	DepartmentID  string
	RoleID        string
	ManagerID     *string
	Phone         *string
	Address       *string
	DateOfJoining time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	RoleName       *string
	RoleLevel      *int
	DepartmentName *string
	ManagerName    *string
}
