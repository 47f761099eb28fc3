package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/payroll"
	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/database"
)

type salaryDetailRepository struct {
	db *database.DB
}

func NewSalaryDetailRepository(db *database.DB) payroll.SalaryDetailRepository {
	return &salaryDetailRepository{db: db}
}

const salaryDetailSelectColumns = `
	id, employee_id, basic_salary, hra, fuel_allowance, other_allowances,
	pf_deduction, pt_deduction, other_deductions,
	bank_name, account_number, ifsc_code, pan_number, uan_number,
	effective_from, effective_to, created_by, created_at, updated_at
`

func scanSalaryDetail(row pgx.Row) (payroll.SalaryDetail, error) {
	var d payroll.SalaryDetail
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.BasicSalary, &d.HRA, &d.FuelAllowance, &d.OtherAllowances,
		&d.PFDeduction, &d.PTDeduction, &d.OtherDeductions,
		&d.BankName, &d.AccountNumber, &d.IFSCCode, &d.PANNumber, &d.UANNumber,
		&d.EffectiveFrom, &d.EffectiveTo, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

// Create implements payroll.SalaryDetailRepository.
func (r *salaryDetailRepository) Create(ctx context.Context, detail payroll.SalaryDetail) (payroll.SalaryDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_details (
			id, employee_id, basic_salary, hra, fuel_allowance, other_allowances,
			pf_deduction, pt_deduction, other_deductions,
			bank_name, account_number, ifsc_code, pan_number, uan_number,
			effective_from, effective_to, created_by, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		detail.EmployeeID,
		detail.BasicSalary,
		detail.HRA,
		detail.FuelAllowance,
		detail.OtherAllowances,
		detail.PFDeduction,
		detail.PTDeduction,
		detail.OtherDeductions,
		detail.BankName,
		detail.AccountNumber,
		detail.IFSCCode,
		detail.PANNumber,
		detail.UANNumber,
		detail.EffectiveFrom,
		detail.EffectiveTo,
		detail.CreatedBy,
	).Scan(&detail.ID, &detail.CreatedAt, &detail.UpdatedAt)

	if err != nil {
		return payroll.SalaryDetail{}, fmt.Errorf("failed to create salary detail: %w", err)
	}

	return detail, nil
}

// GetEffective implements payroll.SalaryDetailRepository.
func (r *salaryDetailRepository) GetEffective(ctx context.Context, employeeID string, asOf time.Time) (*payroll.SalaryDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryDetailSelectColumns + `
		FROM salary_details
		WHERE employee_id = $1
		  AND effective_from <= $2
		  AND (effective_to IS NULL OR effective_to >= $2)
		ORDER BY effective_from DESC
		LIMIT 1
	`

	d, err := scanSalaryDetail(q.QueryRow(ctx, query, employeeID, asOf))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get effective salary detail: %w", err)
	}

	return &d, nil
}

// GetCurrent implements payroll.SalaryDetailRepository.
func (r *salaryDetailRepository) GetCurrent(ctx context.Context, employeeID string) (*payroll.SalaryDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryDetailSelectColumns + `
		FROM salary_details
		WHERE employee_id = $1 AND effective_to IS NULL
		ORDER BY created_at DESC
		LIMIT 1
	`

	d, err := scanSalaryDetail(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current salary detail: %w", err)
	}

	return &d, nil
}
