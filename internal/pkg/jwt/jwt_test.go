package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, expiresAt, err := svc.GenerateAccessToken("emp-1", "asha@example.com", role.RoleHR, "dept-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)
	roleName, _ := decoded.Get("role")
	assert.Equal(t, "HR", roleName)
	employeeID, _ := decoded.Get("employee_id")
	assert.Equal(t, "emp-1", employeeID)
	departmentID, _ := decoded.Get("department_id")
	assert.Equal(t, "dept-1", departmentID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, _, err := svc.GenerateRefreshToken("emp-1")
	require.NoError(t, err)

	employeeID, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", employeeID)
}

// An access token must not pass as a refresh token.
func TestValidateRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, _, err := svc.GenerateAccessToken("emp-1", "asha@example.com", role.RoleAdmin, "dept-1")
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestValidateRefreshToken_Revoked(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	token, _, err := svc.GenerateRefreshToken("emp-1")
	require.NoError(t, err)

	svc.RevokeToken(token)

	assert.True(t, svc.IsTokenRevoked(token))
	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService(testSecret, testAccessExp, testRefreshExp)

	cookie := svc.RefreshTokenCookie("some-token", 1893456000)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}
