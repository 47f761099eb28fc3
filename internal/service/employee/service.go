package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/department"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/employee"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/leave"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/payroll"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
	"github.com/jhex-consulting/hrms-backend-go/internal/repository/postgresql"
)

// Seed components applied to a new employee's first salary detail when no
// overrides are given. HRA and fuel scale with basic pay; PF and PT start at
// the statutory flat amounts.
var (
	seedHRARate  = decimal.NewFromFloat(0.3)
	seedFuelRate = decimal.NewFromFloat(0.1286)
	seedPF       = decimal.NewFromInt(3600)
	seedPT       = decimal.NewFromInt(200)
)

type EmployeeServiceImpl struct {
	db postgresql.TxBeginner
	employee.EmployeeRepository
	role.RoleRepository
	department.DepartmentRepository
	salaryDetailRepo payroll.SalaryDetailRepository
	leaveBalanceRepo leave.LeaveBalanceRepository
}

func NewEmployeeService(
	db postgresql.TxBeginner,
	employeeRepo employee.EmployeeRepository,
	roleRepo role.RoleRepository,
	departmentRepo department.DepartmentRepository,
	salaryDetailRepo payroll.SalaryDetailRepository,
	leaveBalanceRepo leave.LeaveBalanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepo,
		RoleRepository:       roleRepo,
		DepartmentRepository: departmentRepo,
		salaryDetailRepo:     salaryDetailRepo,
		leaveBalanceRepo:     leaveBalanceRepo,
	}
}

// canView reports whether the principal may see this employee's record.
func canView(p auth.Principal, emp employee.Employee) bool {
	access := p.Access()
	switch access.Kind {
	case role.ScopeAll:
		return true
	case role.ScopeDepartment:
		return emp.DepartmentID == access.DepartmentID
	case role.ScopeTeam:
		if emp.ID == p.EmployeeID {
			return true
		}
		return emp.ManagerID != nil && *emp.ManagerID == p.EmployeeID
	default:
		return emp.ID == p.EmployeeID
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, p auth.Principal, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if !p.Can(role.PermissionEmployeeManage) {
		return employee.EmployeeResponse{}, employee.ErrNotAllowed
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.EmployeeRepository.ExistsByEmailOrCode(ctx, req.Email, req.EmployeeCode)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check existing employee: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeExists
	}

	if _, err := s.RoleRepository.GetByID(ctx, req.RoleID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if _, err := s.DepartmentRepository.GetByID(ctx, req.DepartmentID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if req.ManagerID != nil {
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.ManagerID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	dateOfJoining, _ := time.Parse(time.DateOnly, req.DateOfJoining)

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			EmployeeCode:  req.EmployeeCode,
			Email:         req.Email,
			FullName:      req.FullName,
			PasswordHash:  string(hash),
			DepartmentID:  req.DepartmentID,
			RoleID:        req.RoleID,
			ManagerID:     req.ManagerID,
			Phone:         req.Phone,
			Address:       req.Address,
			DateOfJoining: dateOfJoining,
		})
		if err != nil {
			return err
		}

		if req.SalaryDetail != nil {
			effectiveFrom := dateOfJoining
			if req.SalaryDetail.EffectiveFrom != nil {
				effectiveFrom, _ = time.Parse(time.DateOnly, *req.SalaryDetail.EffectiveFrom)
			}

			basic := req.SalaryDetail.BasicSalary
			hra := basic.Mul(seedHRARate).Round(0)
			fuel := basic.Mul(seedFuelRate).Round(0)
			pf := seedPF
			pt := seedPT

			if _, err := s.salaryDetailRepo.Create(txCtx, payroll.SalaryDetail{
				EmployeeID:    created.ID,
				BasicSalary:   basic,
				HRA:           &hra,
				FuelAllowance: &fuel,
				PFDeduction:   &pf,
				PTDeduction:   &pt,
				EffectiveFrom: effectiveFrom,
				CreatedBy:     &p.EmployeeID,
			}); err != nil {
				return err
			}
		}

		_, err = s.leaveBalanceRepo.Ensure(txCtx, created.ID, time.Now().Year())
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	full, err := s.EmployeeRepository.GetByID(ctx, created.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(full), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, p auth.Principal, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if !canView(p, emp) {
		return employee.EmployeeResponse{}, employee.ErrNotAllowed
	}

	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, p auth.Principal, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
	access := p.Access()

	if filter.DepartmentID != "" && !access.CanFilterByDepartment() && filter.DepartmentID != p.DepartmentID {
		return nil, employee.ErrNotAllowed
	}

	employees, err := s.EmployeeRepository.List(ctx, filter, access)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, p auth.Principal, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if !p.Can(role.PermissionEmployeeManage) {
		return employee.EmployeeResponse{}, employee.ErrNotAllowed
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.RoleID != nil {
		if _, err := s.RoleRepository.GetByID(ctx, *req.RoleID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.DepartmentID != nil {
		if _, err := s.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}
	if req.ManagerID != nil {
		if *req.ManagerID == id {
			return employee.EmployeeResponse{}, employee.ErrNotAllowed
		}
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.ManagerID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.EmployeeRepository.Update(ctx, id, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, p auth.Principal, id string) error {
	if !p.Can(role.PermissionEmployeeManage) {
		return employee.ErrNotAllowed
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !emp.IsActive {
		return nil
	}

	return s.EmployeeRepository.Deactivate(ctx, id)
}
