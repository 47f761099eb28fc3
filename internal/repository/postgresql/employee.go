package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/employee"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeSelectColumns = `
	e.id, e.employee_code, e.email, e.full_name, e.password_hash,
	e.department_id, e.role_id, e.manager_id, e.phone, e.address,
	e.date_of_joining, e.is_active, e.created_at, e.updated_at,
	r.name, r.level, d.name, m.full_name
`

const employeeJoins = `
	FROM employees e
	JOIN roles r ON r.id = e.role_id
	JOIN departments d ON d.id = e.department_id
	LEFT JOIN employees m ON m.id = e.manager_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.Email, &emp.FullName, &emp.PasswordHash,
		&emp.DepartmentID, &emp.RoleID, &emp.ManagerID, &emp.Phone, &emp.Address,
		&emp.DateOfJoining, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.RoleName, &emp.RoleLevel, &emp.DepartmentName, &emp.ManagerName,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, employee_code, email, full_name, password_hash,
			department_id, role_id, manager_id, phone, address,
			date_of_joining, is_active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeCode,
		emp.Email,
		emp.FullName,
		emp.PasswordHash,
		emp.DepartmentID,
		emp.RoleID,
		emp.ManagerID,
		emp.Phone,
		emp.Address,
		emp.DateOfJoining,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_email") || strings.Contains(err.Error(), "uk_employee_code") {
			return employee.Employee{}, employee.ErrEmployeeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	emp.IsActive = true
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeSelectColumns + employeeJoins + ` WHERE e.id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeSelectColumns + employeeJoins + ` WHERE e.email = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

// ExistsByEmailOrCode implements employee.EmployeeRepository.
func (r *employeeRepository) ExistsByEmailOrCode(ctx context.Context, email, employeeCode string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1 OR employee_code = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, email, employeeCode).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}

	return exists, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.ListFilter, access role.AccessFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}

	if !filter.IncludeInactive {
		conditions = append(conditions, "e.is_active = TRUE")
	}
	if filter.DepartmentID != "" {
		args = append(args, filter.DepartmentID)
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if filter.RoleID != "" {
		args = append(args, filter.RoleID)
		conditions = append(conditions, fmt.Sprintf("e.role_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(e.full_name ILIKE $%d OR e.employee_code ILIKE $%d OR e.email ILIKE $%d)", n, n, n))
	}
	if cond := scopeCondition(access, "e.id", "e.department_id", "e.manager_id", &args); cond != "" {
		conditions = append(conditions, cond)
	}

	query := `SELECT ` + employeeSelectColumns + employeeJoins
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY e.full_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context, employeeIDs []string, departmentID *string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"e.is_active = TRUE"}
	args := []interface{}{}

	if len(employeeIDs) > 0 {
		args = append(args, employeeIDs)
		conditions = append(conditions, fmt.Sprintf("e.id = ANY($%d)", len(args)))
	}
	if departmentID != nil {
		args = append(args, *departmentID)
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", len(args)))
	}

	query := `SELECT ` + employeeSelectColumns + employeeJoins +
		" WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY e.employee_code"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.FullName != nil {
		updates = append(updates, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.DepartmentID != nil {
		updates = append(updates, fmt.Sprintf("department_id = $%d", argIdx))
		args = append(args, *req.DepartmentID)
		argIdx++
	}
	if req.RoleID != nil {
		updates = append(updates, fmt.Sprintf("role_id = $%d", argIdx))
		args = append(args, *req.RoleID)
		argIdx++
	}
	if req.ManagerID != nil {
		updates = append(updates, fmt.Sprintf("manager_id = $%d", argIdx))
		args = append(args, *req.ManagerID)
		argIdx++
	}
	if req.Phone != nil {
		updates = append(updates, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, *req.Phone)
		argIdx++
	}
	if req.Address != nil {
		updates = append(updates, fmt.Sprintf("address = $%d", argIdx))
		args = append(args, *req.Address)
		argIdx++
	}
	if req.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d", strings.Join(updates, ", "), argIdx)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET is_active = FALSE, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// IsManagedBy implements employee.EmployeeRepository.
func (r *employeeRepository) IsManagedBy(ctx context.Context, employeeID, managerID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1 AND manager_id = $2)`

	var managed bool
	if err := q.QueryRow(ctx, query, employeeID, managerID).Scan(&managed); err != nil {
		return false, fmt.Errorf("failed to check manager relation: %w", err)
	}

	return managed, nil
}
