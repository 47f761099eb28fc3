package leave

import (
	"context"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
)

// LeaveService defines business logic for leave requests and balances
type LeaveService interface {
	// CreateRequest validates dates, overlap and balance sufficiency, then
	// creates a PENDING request. Balance counters are not yet debited.
	CreateRequest(ctx context.Context, p auth.Principal, req CreateLeaveRequest) (RequestResponse, error)

	// ListRequests retrieves requests visible to the principal
	ListRequests(ctx context.Context, p auth.Principal, q RequestQuery) ([]RequestResponse, error)

	// GetRequest retrieves one request visible to the principal
	GetRequest(ctx context.Context, p auth.Principal, id string) (RequestResponse, error)

	// DecideRequest approves or rejects a PENDING request. Approval debits
	// the matching used counter for balance-tracked types.
	DecideRequest(ctx context.Context, p auth.Principal, id string, req DecideLeaveRequest) (RequestResponse, error)

	// UpdateRequest edits a PENDING request owned by the principal,
	// recomputing the day count when dates change
	UpdateRequest(ctx context.Context, p auth.Principal, id string, req UpdateLeaveRequest) (RequestResponse, error)

	// DeleteRequest removes a PENDING request owned by the principal
	DeleteRequest(ctx context.Context, p auth.Principal, id string) error

	// GetBalance retrieves (creating if absent) the employee's balance for
	// a year
	GetBalance(ctx context.Context, p auth.Principal, employeeID string, year int) (BalanceResponse, error)
}
