package auth

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
)

// Principal is the authenticated employee as seen by every service call.
// It is derived once per request from the verified JWT claims; role-based
// visibility is resolved through Access() instead of re-deriving role
// filters ad hoc in each operation.
type Principal struct {
	EmployeeID   string
	Email        string
	Role         role.Name
	DepartmentID string
}

// PrincipalFromContext extracts the authenticated principal from the
// jwtauth-verified request context.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Principal{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return Principal{}, ErrInvalidToken
	}

	roleName, ok := claims["role"].(string)
	if !ok || roleName == "" {
		return Principal{}, ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	departmentID, _ := claims["department_id"].(string)

	return Principal{
		EmployeeID:   employeeID,
		Email:        email,
		Role:         role.Name(roleName),
		DepartmentID: departmentID,
	}, nil
}

// Access returns the visibility filter for this principal.
func (p Principal) Access() role.AccessFilter {
	return role.AccessFilter{
		Kind:         role.ScopeFor(p.Role),
		EmployeeID:   p.EmployeeID,
		DepartmentID: p.DepartmentID,
	}
}

// Can reports whether the principal's role carries a permission.
func (p Principal) Can(permission role.Permission) bool {
	return role.HasPermission(p.Role, permission)
}
