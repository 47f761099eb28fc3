package auth

import "context"

// AuthService defines business logic for authentication
type AuthService interface {
	// Login authenticates an active employee by email and password
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh issues a new access token from a valid refresh token
	Refresh(ctx context.Context, req RefreshRequest) (RefreshResponse, error)

	// Profile returns the authenticated employee's profile
	Profile(ctx context.Context, p Principal) (EmployeeSummary, error)
}
