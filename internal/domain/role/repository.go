package role

import "context"

type RoleRepository interface {
	// List retrieves all roles ordered by level
	List(ctx context.Context) ([]Role, error)

	// GetByID retrieves a role by ID
	GetByID(ctx context.Context, id string) (Role, error)
}
