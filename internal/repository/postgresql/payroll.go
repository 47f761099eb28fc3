package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/payroll"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollSelectColumns = `
	p.id, p.employee_id, p.month, p.basic_salary, p.hra, p.fuel_allowance,
	p.performance_incentive, p.other_earnings, p.pf_deduction, p.pt_deduction,
	p.other_deductions, p.total_earnings, p.total_deductions, p.net_pay,
	p.total_days, p.days_present, p.arrear_days, p.lwp_days,
	p.status, p.generated_by, p.generated_at, p.created_at, p.updated_at,
	e.full_name, e.employee_code, e.email, e.date_of_joining,
	e.department_id, d.name, r.name
`

const payrollJoins = `
	FROM payroll_records p
	JOIN employees e ON e.id = p.employee_id
	JOIN departments d ON d.id = e.department_id
	JOIN roles r ON r.id = e.role_id
`

func scanPayroll(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.BasicSalary, &rec.HRA, &rec.FuelAllowance,
		&rec.PerformanceIncentive, &rec.OtherEarnings, &rec.PFDeduction, &rec.PTDeduction,
		&rec.OtherDeductions, &rec.TotalEarnings, &rec.TotalDeductions, &rec.NetPay,
		&rec.TotalDays, &rec.DaysPresent, &rec.ArrearDays, &rec.LWPDays,
		&rec.Status, &rec.GeneratedBy, &rec.GeneratedAt, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode, &rec.EmployeeEmail, &rec.DateOfJoining,
		&rec.DepartmentID, &rec.DepartmentName, &rec.RoleName,
	)
	return rec, err
}

// ExistsForMonth implements payroll.PayrollRepository.
func (r *payrollRepository) ExistsForMonth(ctx context.Context, month string, employeeIDs []string, departmentID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"p.month = $1"}
	args := []interface{}{month}

	if len(employeeIDs) > 0 {
		args = append(args, employeeIDs)
		conditions = append(conditions, fmt.Sprintf("p.employee_id = ANY($%d)", len(args)))
	}
	if departmentID != nil {
		args = append(args, *departmentID)
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", len(args)))
	}

	query := `
		SELECT EXISTS(
			SELECT 1
			FROM payroll_records p
			JOIN employees e ON e.id = p.employee_id
			WHERE ` + strings.Join(conditions, " AND ") + `
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll existence: %w", err)
	}

	return exists, nil
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepository) Create(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			id, employee_id, month, basic_salary, hra, fuel_allowance,
			performance_incentive, other_earnings, pf_deduction, pt_deduction,
			other_deductions, total_earnings, total_deductions, net_pay,
			total_days, days_present, arrear_days, lwp_days,
			status, generated_by, generated_at, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW(), NOW()
		) RETURNING id, generated_at, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.Month,
		rec.BasicSalary,
		rec.HRA,
		rec.FuelAllowance,
		rec.PerformanceIncentive,
		rec.OtherEarnings,
		rec.PFDeduction,
		rec.PTDeduction,
		rec.OtherDeductions,
		rec.TotalEarnings,
		rec.TotalDeductions,
		rec.NetPay,
		rec.TotalDays,
		rec.DaysPresent,
		rec.ArrearDays,
		rec.LWPDays,
		rec.Status,
		rec.GeneratedBy,
	).Scan(&rec.ID, &rec.GeneratedAt, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_employee_month") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollSelectColumns + payrollJoins + ` WHERE p.id = $1`

	rec, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll by id: %w", err)
	}

	return rec, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, query payroll.PayrollQuery, access role.AccessFilter) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{}
	args := []interface{}{}

	if query.Month != "" {
		args = append(args, query.Month)
		conditions = append(conditions, fmt.Sprintf("p.month = $%d", len(args)))
	}
	if query.Year != "" {
		args = append(args, query.Year+"-%")
		conditions = append(conditions, fmt.Sprintf("p.month LIKE $%d", len(args)))
	}
	if query.EmployeeID != "" {
		args = append(args, query.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", len(args)))
	}
	if query.DepartmentID != "" {
		args = append(args, query.DepartmentID)
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if query.Status != "" {
		args = append(args, query.Status)
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", len(args)))
	}
	if cond := scopeCondition(access, "p.employee_id", "e.department_id", "e.manager_id", &args); cond != "" {
		conditions = append(conditions, cond)
	}

	sql := `SELECT ` + payrollSelectColumns + payrollJoins
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += " ORDER BY p.month DESC, e.employee_code"

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepository) Update(ctx context.Context, rec payroll.PayrollRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET other_earnings = $2,
			other_deductions = $3,
			arrear_days = $4,
			total_earnings = $5,
			total_deductions = $6,
			net_pay = $7,
			updated_at = NOW()
		WHERE id = $1 AND status <> 'SENT'
	`

	tag, err := q.Exec(ctx, query,
		rec.ID,
		rec.OtherEarnings,
		rec.OtherDeductions,
		rec.ArrearDays,
		rec.TotalEarnings,
		rec.TotalDeductions,
		rec.NetPay,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollAlreadySent
	}

	return nil
}

// UpdateStatusBulk implements payroll.PayrollRepository.
func (r *payrollRepository) UpdateStatusBulk(ctx context.Context, ids []string, status payroll.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = $2, updated_at = NOW()
		WHERE id = ANY($1) AND status <> 'SENT'
	`

	tag, err := q.Exec(ctx, query, ids, status)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update payroll status: %w", err)
	}

	return tag.RowsAffected(), nil
}

// MarkSent implements payroll.PayrollRepository.
func (r *payrollRepository) MarkSent(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = 'SENT', updated_at = NOW()
		WHERE id = $1 AND status <> 'SENT'
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark payroll as sent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollAlreadySent
	}

	return nil
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1 AND status <> 'SENT'`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}
