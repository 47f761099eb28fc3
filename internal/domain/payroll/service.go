package payroll

import (
	"context"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
)

// PayrollService defines business logic for payroll generation and payslips
type PayrollService interface {
	// Generate computes and stores payroll records for every active
	// employee matched by the request, for one month. Partial success: a
	// failing employee contributes an error string and the batch continues.
	Generate(ctx context.Context, p auth.Principal, req GeneratePayrollRequest) (GenerateResult, error)

	// List retrieves payroll records visible to the principal
	List(ctx context.Context, p auth.Principal, q PayrollQuery) ([]PayrollResponse, error)

	// Get retrieves one payroll record visible to the principal
	Get(ctx context.Context, p auth.Principal, id string) (PayrollResponse, error)

	// Payslip renders the payslip document for a payroll record
	Payslip(ctx context.Context, p auth.Principal, id string) (PayslipResponse, error)

	// Update edits the mutable line items of a non-SENT record
	Update(ctx context.Context, p auth.Principal, id string, req UpdatePayrollRequest) (PayrollResponse, error)

	// BulkAction sets the status of many records, skipping SENT ones
	BulkAction(ctx context.Context, p auth.Principal, req BulkActionRequest) (BulkActionResult, error)

	// MarkSent transitions a record to SENT, after which it is immutable
	MarkSent(ctx context.Context, p auth.Principal, id string) (PayrollResponse, error)

	// Delete removes a non-SENT payroll record
	Delete(ctx context.Context, p auth.Principal, id string) error
}
