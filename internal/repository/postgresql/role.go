package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/database"
)

type roleRepository struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepository{db: db}
}

// List implements role.RoleRepository.
func (r *roleRepository) List(ctx context.Context) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, level, description, created_at, updated_at
		FROM roles
		ORDER BY level
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		var rl role.Role
		if err := rows.Scan(&rl.ID, &rl.Name, &rl.Level, &rl.Description, &rl.CreatedAt, &rl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, rl)
	}

	return roles, rows.Err()
}

// GetByID implements role.RoleRepository.
func (r *roleRepository) GetByID(ctx context.Context, id string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, level, description, created_at, updated_at
		FROM roles
		WHERE id = $1
	`

	var rl role.Role
	err := q.QueryRow(ctx, query, id).Scan(&rl.ID, &rl.Name, &rl.Level, &rl.Description, &rl.CreatedAt, &rl.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, fmt.Errorf("failed to get role by id: %w", err)
	}

	return rl, nil
}
