package attendance

import (
	"context"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records today's check-in for the principal, deriving the
	// ON_TIME/LATE status from the department's attendance settings
	CheckIn(ctx context.Context, p auth.Principal, req CheckInRequest) (RecordResponse, error)

	// CheckOut records today's check-out for the principal, computing work
	// hours and possibly downgrading the status to EARLY_OUT
	CheckOut(ctx context.Context, p auth.Principal, req CheckOutRequest) (RecordResponse, error)

	// GetToday retrieves the principal's attendance row for today, if any
	GetToday(ctx context.Context, p auth.Principal) (*RecordResponse, error)

	// ListRecords retrieves attendance records visible to the principal
	ListRecords(ctx context.Context, p auth.Principal, q RecordQuery) ([]RecordResponse, error)
}
