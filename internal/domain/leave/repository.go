package leave

import (
	"context"
	"time"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
)

type LeaveRequestRepository interface {
	// Create creates a new leave request
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request with employee/approver joins
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// CheckOverlapping reports whether the employee has a PENDING or
	// APPROVED request overlapping [startDate, endDate]
	CheckOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) (bool, error)

	// List retrieves requests matching the query and visible under the
	// access filter, newest application first
	List(ctx context.Context, q RequestQuery, access role.AccessFilter) ([]LeaveRequest, error)

	// UpdateDates rewrites the date range, day count and reason of a request
	UpdateDates(ctx context.Context, id string, startDate, endDate time.Time, totalDays int, reason *string) error

	// Decide stamps the one-way PENDING -> APPROVED/REJECTED transition
	Decide(ctx context.Context, id string, status Status, approverID string, approvalDate time.Time, notes *string) error

	// Delete removes a leave request
	Delete(ctx context.Context, id string) error
}

type LeaveBalanceRepository interface {
	// Ensure fetches the (employee, year) balance row, creating it with the
	// default entitlements if absent. Creation is a native upsert
	// (ON CONFLICT DO NOTHING), so concurrent calls cannot duplicate rows.
	Ensure(ctx context.Context, employeeID string, year int) (LeaveBalance, error)

	// Get retrieves the (employee, year) balance row
	Get(ctx context.Context, employeeID string, year int) (LeaveBalance, error)

	// IncrementUsed adds days to the used counter matching a balance-tracked
	// leave type
	IncrementUsed(ctx context.Context, employeeID string, year int, leaveType Type, days int) error
}
