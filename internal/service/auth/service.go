package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/employee"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwtService jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepo,
		jwtService:         jwtService,
	}
}

func summaryOf(emp employee.Employee) auth.EmployeeSummary {
	s := auth.EmployeeSummary{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		Email:        emp.Email,
		FullName:     emp.FullName,
		DepartmentID: emp.DepartmentID,
	}
	if emp.RoleName != nil {
		s.RoleName = *emp.RoleName
	}
	if emp.DepartmentName != nil {
		s.DepartmentName = *emp.DepartmentName
	}
	return s
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if !emp.IsActive {
		return auth.LoginResponse{}, auth.ErrEmployeeInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	var roleName role.Name
	if emp.RoleName != nil {
		roleName = role.Name(*emp.RoleName)
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, roleName, emp.DepartmentID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
		Employee:              summaryOf(emp),
	}, nil
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.RefreshResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.RefreshResponse{}, err
	}

	employeeID, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	if s.jwtService.IsTokenRevoked(req.RefreshToken) {
		return auth.RefreshResponse{}, auth.ErrTokenRevoked
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if !emp.IsActive {
		return auth.RefreshResponse{}, auth.ErrEmployeeInactive
	}

	var roleName role.Name
	if emp.RoleName != nil {
		roleName = role.Name(*emp.RoleName)
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, roleName, emp.DepartmentID)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessExp,
	}, nil
}

// Profile implements auth.AuthService.
func (s *AuthServiceImpl) Profile(ctx context.Context, p auth.Principal) (auth.EmployeeSummary, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, p.EmployeeID)
	if err != nil {
		return auth.EmployeeSummary{}, fmt.Errorf("failed to load profile: %w", err)
	}

	return summaryOf(emp), nil
}
