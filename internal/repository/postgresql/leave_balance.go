package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/leave"
	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/database"
)

type leaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepository{db: db}
}

// Ensure implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepository) Ensure(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	// Seed with defaults if missing; concurrent callers race harmlessly on
	// the (employee_id, year) constraint.
	insert := `
		INSERT INTO leave_balances (
			id, employee_id, year, casual_leaves, sick_leaves, annual_leaves,
			used_casual, used_sick, used_annual, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, 0, 0, 0, NOW(), NOW()
		)
		ON CONFLICT ON CONSTRAINT uk_leave_balance_employee_year DO NOTHING
	`

	if _, err := q.Exec(ctx, insert, employeeID, year,
		leave.DefaultCasualLeaves, leave.DefaultSickLeaves, leave.DefaultAnnualLeaves); err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to seed leave balance: %w", err)
	}

	return r.Get(ctx, employeeID, year)
}

// Get implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepository) Get(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, year, casual_leaves, sick_leaves, annual_leaves,
			   used_casual, used_sick, used_annual, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND year = $2
	`

	var b leave.LeaveBalance
	err := q.QueryRow(ctx, query, employeeID, year).Scan(
		&b.ID, &b.EmployeeID, &b.Year, &b.CasualLeaves, &b.SickLeaves, &b.AnnualLeaves,
		&b.UsedCasual, &b.UsedSick, &b.UsedAnnual, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveBalance{}, leave.ErrBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to get leave balance: %w", err)
	}

	return b, nil
}

// IncrementUsed implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepository) IncrementUsed(ctx context.Context, employeeID string, year int, leaveType leave.Type, days int) error {
	q := GetQuerier(ctx, r.db)

	var column string
	switch leaveType {
	case leave.TypeCasual:
		column = "used_casual"
	case leave.TypeSick:
		column = "used_sick"
	case leave.TypeAnnual:
		column = "used_annual"
	default:
		return nil
	}

	query := fmt.Sprintf(`
		UPDATE leave_balances
		SET %s = %s + $3, updated_at = NOW()
		WHERE employee_id = $1 AND year = $2
	`, column, column)

	tag, err := q.Exec(ctx, query, employeeID, year, days)
	if err != nil {
		return fmt.Errorf("failed to increment used leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrBalanceNotFound
	}

	return nil
}
