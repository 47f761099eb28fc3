package employee

import (
	"context"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
)

type EmployeeRepository interface {
	// Create creates a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID with role/department joins
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email with role/department joins
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// ExistsByEmailOrCode reports whether an employee with the email or
	// employee code already exists
	ExistsByEmailOrCode(ctx context.Context, email, employeeCode string) (bool, error)

	// List retrieves employees visible under the access filter
	List(ctx context.Context, filter ListFilter, access role.AccessFilter) ([]Employee, error)

	// ListActive retrieves active employees, optionally narrowed to a set of
	// IDs or a department. Used by batch payroll generation.
	ListActive(ctx context.Context, employeeIDs []string, departmentID *string) ([]Employee, error)

	// Update applies partial updates to an employee
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) error

	// Deactivate soft-deletes an employee
	Deactivate(ctx context.Context, id string) error

	// IsManagedBy reports whether employeeID reports directly to managerID
	IsManagedBy(ctx context.Context, employeeID, managerID string) (bool, error)
}
