package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/validator"
)

// SalaryInput seeds the employee's first effective-dated salary detail.
type SalaryInput struct {
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	EffectiveFrom *string         `json:"effective_from,omitempty"`
}

type CreateEmployeeRequest struct {
	EmployeeCode  string       `json:"employee_code"`
	Email         string       `json:"email"`
	FullName      string       `json:"full_name"`
	Password      string       `json:"password"`
	DepartmentID  string       `json:"department_id"`
	RoleID        string       `json:"role_id"`
	ManagerID     *string      `json:"manager_id,omitempty"`
	Phone         *string      `json:"phone,omitempty"`
	Address       *string      `json:"address,omitempty"`
	DateOfJoining string       `json:"date_of_joining"`
	SalaryDetail  *SalaryInput `json:"salary_detail,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	} else if !validator.IsValidUUID(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "role_id is required",
		})
	} else if !validator.IsValidUUID(r.RoleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "role_id must be a valid UUID",
		})
	}

	if r.ManagerID != nil && !validator.IsValidUUID(*r.ManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "manager_id",
			Message: "manager_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.DateOfJoining) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining is required",
		})
	} else if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining must be in YYYY-MM-DD format",
		})
	}

	if r.SalaryDetail != nil && r.SalaryDetail.EffectiveFrom != nil {
		if _, ok := validator.IsValidDate(*r.SalaryDetail.EffectiveFrom); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "salary_detail.effective_from",
				Message: "effective_from must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	FullName     *string `json:"full_name,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	RoleID       *string `json:"role_id,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

type ListFilter struct {
	DepartmentID string
	RoleID       string
	Search       string
	IncludeInactive bool
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeCode   string  `json:"employee_code"`
	Email          string  `json:"email"`
	FullName       string  `json:"full_name"`
	DepartmentID   string  `json:"department_id"`
	DepartmentName *string `json:"department_name,omitempty"`
	RoleID         string  `json:"role_id"`
	RoleName       *string `json:"role_name,omitempty"`
	ManagerID      *string `json:"manager_id,omitempty"`
	ManagerName    *string `json:"manager_name,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Address        *string `json:"address,omitempty"`
	DateOfJoining  string  `json:"date_of_joining"`
	IsActive       bool    `json:"is_active"`
}

// ToResponse maps an entity to its API shape.
func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		Email:          e.Email,
		FullName:       e.FullName,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		RoleID:         e.RoleID,
		RoleName:       e.RoleName,
		ManagerID:      e.ManagerID,
		ManagerName:    e.ManagerName,
		Phone:          e.Phone,
		Address:        e.Address,
		DateOfJoining:  e.DateOfJoining.Format(time.DateOnly),
		IsActive:       e.IsActive,
	}
}
