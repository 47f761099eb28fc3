package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
	"github.com/jhex-consulting/hrms-backend-go/internal/handler/http/response"
)

// RequirePermission checks if the authenticated role carries a permission
func RequirePermission(permission role.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			name := role.Name(roleStr)
			if !role.HasPermission(name, permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but role is '%s'", permission, name))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
