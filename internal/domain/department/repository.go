package department

import "context"

type DepartmentRepository interface {
	// ListActive retrieves active departments ordered by name
	ListActive(ctx context.Context) ([]Department, error)

	// GetByID retrieves a department by ID
	GetByID(ctx context.Context, id string) (Department, error)
}
