package attendance

import (
	"context"
	"time"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// UpsertCheckIn writes the check-in fields of the (employee, date) row,
	// creating it if absent. The unique constraint on (employee_id, date) is
	// resolved natively (ON CONFLICT), so two racing check-ins cannot
	// produce two rows.
	UpsertCheckIn(ctx context.Context, rec AttendanceRecord) (AttendanceRecord, error)

	// GetByEmployeeAndDate retrieves the attendance row for an employee on a
	// date; returns nil when no row exists
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*AttendanceRecord, error)

	// GetByID retrieves an attendance record by ID
	GetByID(ctx context.Context, id string) (AttendanceRecord, error)

	// UpdateCheckOut writes the check-out fields of an existing row
	UpdateCheckOut(ctx context.Context, id string, checkOut time.Time, workHours float64, status Status, notes *string) error

	// List retrieves records matching the query and visible under the
	// access filter, newest date first
	List(ctx context.Context, q RecordQuery, access role.AccessFilter) ([]AttendanceRecord, error)

	// ListForEmployeeBetween retrieves one employee's records within
	// [from, to], ordered by date
	ListForEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceRecord, error)

	// ListBetween retrieves all visible records within [from, to], ordered
	// by employee then date. Used by the monthly report.
	ListBetween(ctx context.Context, from, to time.Time, access role.AccessFilter) ([]AttendanceRecord, error)
}

// SettingsRepository defines data access for per-department attendance
// settings.
type SettingsRepository interface {
	// GetActiveByDepartment retrieves the single active settings row for a
	// department; returns nil when the department has none
	GetActiveByDepartment(ctx context.Context, departmentID string) (*Settings, error)

	// Upsert replaces the department's active settings row
	Upsert(ctx context.Context, s Settings) (Settings, error)
}
