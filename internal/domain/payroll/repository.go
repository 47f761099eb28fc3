package payroll

import (
	"context"
	"time"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
)

type PayrollRepository interface {
	// ExistsForMonth reports whether any payroll record exists for the month
	// under the same employee/department narrowing the generation request
	// carries. Checked once before the batch writes anything.
	ExistsForMonth(ctx context.Context, month string, employeeIDs []string, departmentID *string) (bool, error)

	// Create creates a payroll record; a duplicate (employee, month) pair
	// surfaces as ErrPayrollAlreadyExists
	Create(ctx context.Context, rec PayrollRecord) (PayrollRecord, error)

	// GetByID retrieves a payroll record with its employee snapshot joins
	GetByID(ctx context.Context, id string) (PayrollRecord, error)

	// List retrieves records matching the query and visible under the
	// access filter, newest month first
	List(ctx context.Context, q PayrollQuery, access role.AccessFilter) ([]PayrollRecord, error)

	// Update rewrites the mutable line items and totals of a record
	Update(ctx context.Context, rec PayrollRecord) error

	// UpdateStatusBulk sets the status of the given records, skipping SENT
	// ones; returns the number updated
	UpdateStatusBulk(ctx context.Context, ids []string, status Status) (int64, error)

	// MarkSent transitions a record to SENT
	MarkSent(ctx context.Context, id string) error

	// Delete removes a payroll record
	Delete(ctx context.Context, id string) error
}

type SalaryDetailRepository interface {
	// Create creates a salary detail row
	Create(ctx context.Context, detail SalaryDetail) (SalaryDetail, error)

	// GetEffective retrieves the salary detail effective at the given date
	// (effective_from <= asOf and effective_to null-or->= asOf, most recent
	// first); returns nil when the employee has none
	GetEffective(ctx context.Context, employeeID string, asOf time.Time) (*SalaryDetail, error)

	// GetCurrent retrieves the open-ended (effective_to IS NULL) detail,
	// most recently created; returns nil when the employee has none
	GetCurrent(ctx context.Context, employeeID string) (*SalaryDetail, error)
}
