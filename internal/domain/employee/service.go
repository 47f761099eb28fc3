package employee

import (
	"context"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
)

// EmployeeService defines business logic for employee management
type EmployeeService interface {
	// Create creates an employee together with an initial salary detail and
	// the current year's leave balance
	Create(ctx context.Context, p auth.Principal, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves one employee visible to the principal
	Get(ctx context.Context, p auth.Principal, id string) (EmployeeResponse, error)

	// List retrieves employees visible to the principal
	List(ctx context.Context, p auth.Principal, filter ListFilter) ([]EmployeeResponse, error)

	// Update applies partial updates to an employee
	Update(ctx context.Context, p auth.Principal, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Deactivate soft-deletes an employee; employees are never hard-deleted
	Deactivate(ctx context.Context, p auth.Principal, id string) error
}
