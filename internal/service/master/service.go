package master

import (
	"context"
	"time"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/department"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/employee"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
)

type DepartmentResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
}

type RoleResponse struct {
	ID          string            `json:"id"`
	Name        role.Name         `json:"name"`
	Level       int               `json:"level"`
	Description *string           `json:"description,omitempty"`
	Permissions []role.Permission `json:"permissions"`
}

// MasterService exposes the lookup tables and department-level attendance
// settings.
type MasterService interface {
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
	ListRoles(ctx context.Context) ([]RoleResponse, error)
	GetAttendanceSettings(ctx context.Context, p auth.Principal, departmentID string) (attendance.SettingsResponse, error)
	UpsertAttendanceSettings(ctx context.Context, p auth.Principal, departmentID string, req attendance.UpsertSettingsRequest) (attendance.SettingsResponse, error)
}

type MasterServiceImpl struct {
	department.DepartmentRepository
	role.RoleRepository
	settingsRepo attendance.SettingsRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	roleRepo role.RoleRepository,
	settingsRepo attendance.SettingsRepository,
) MasterService {
	return &MasterServiceImpl{
		DepartmentRepository: departmentRepo,
		RoleRepository:       roleRepo,
		settingsRepo:         settingsRepo,
	}
}

// ListDepartments implements MasterService.
func (s *MasterServiceImpl) ListDepartments(ctx context.Context) ([]DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, DepartmentResponse{
			ID:          dept.ID,
			Name:        dept.Name,
			Description: dept.Description,
			IsActive:    dept.IsActive,
		})
	}

	return responses, nil
}

// ListRoles implements MasterService.
func (s *MasterServiceImpl) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.RoleRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]RoleResponse, 0, len(roles))
	for _, rl := range roles {
		responses = append(responses, RoleResponse{
			ID:          rl.ID,
			Name:        rl.Name,
			Level:       rl.Level,
			Description: rl.Description,
			Permissions: role.RolePermissions[rl.Name],
		})
	}

	return responses, nil
}

// GetAttendanceSettings implements MasterService.
func (s *MasterServiceImpl) GetAttendanceSettings(ctx context.Context, p auth.Principal, departmentID string) (attendance.SettingsResponse, error) {
	if departmentID == "" {
		departmentID = p.DepartmentID
	}

	settings, err := s.settingsRepo.GetActiveByDepartment(ctx, departmentID)
	if err != nil {
		return attendance.SettingsResponse{}, err
	}
	if settings == nil {
		return attendance.SettingsResponse{}, attendance.ErrSettingsNotFound
	}

	return attendance.ToSettingsResponse(*settings), nil
}

// UpsertAttendanceSettings implements MasterService.
func (s *MasterServiceImpl) UpsertAttendanceSettings(ctx context.Context, p auth.Principal, departmentID string, req attendance.UpsertSettingsRequest) (attendance.SettingsResponse, error) {
	if !p.Can(role.PermissionSettingsManage) {
		return attendance.SettingsResponse{}, employee.ErrNotAllowed
	}
	if err := req.Validate(); err != nil {
		return attendance.SettingsResponse{}, err
	}

	if _, err := s.DepartmentRepository.GetByID(ctx, departmentID); err != nil {
		return attendance.SettingsResponse{}, err
	}

	checkIn, _ := time.Parse("15:04", req.CheckInTime)
	checkOut, _ := time.Parse("15:04", req.CheckOutTime)

	settings, err := s.settingsRepo.Upsert(ctx, attendance.Settings{
		DepartmentID:      departmentID,
		CheckInTime:       checkIn,
		CheckOutTime:      checkOut,
		GracePeriodMins:   req.GracePeriodMins,
		StandardWorkHours: req.StandardWorkHours,
	})
	if err != nil {
		return attendance.SettingsResponse{}, err
	}

	return attendance.ToSettingsResponse(settings), nil
}
