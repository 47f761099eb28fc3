package attendance

import (
	"time"
)

type Status string

const (
	StatusOnTime   Status = "ON_TIME"
	StatusLate     Status = "LATE"
	StatusEarlyOut Status = "EARLY_OUT"
	StatusAbsent   Status = "ABSENT"
	StatusHalfDay  Status = "HALF_DAY"
)

// AttendanceRecord is one row per (employee, calendar date).
type AttendanceRecord struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Status       Status
	WorkHours    *float64
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeCode   *string
	DepartmentName *string
}

// Settings holds a department's expected attendance window. Only the single
// active row per department is consulted at evaluation time.
type Settings struct {
	ID                string
	DepartmentID      string
	CheckInTime       time.Time
	CheckOutTime      time.Time
	GracePeriodMins   int
	StandardWorkHours float64
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// MonthlyTotals is the attendance roll-up feeding payroll for one
// employee-month. TotalDays is the calendar length of the month, not the
// number of attendance rows.
type MonthlyTotals struct {
	TotalDays      int
	PresentDays    int
	AbsentDays     int
	LateDays       int
	EarlyOutDays   int
	TotalWorkHours float64
}
