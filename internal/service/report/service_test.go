package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
	"github.com/jhex-consulting/hrms-backend-go/internal/pkg/validator"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records []attendance.AttendanceRecord
	from    time.Time
	to      time.Time
}

func (f *fakeAttendanceRepo) ListBetween(ctx context.Context, from, to time.Time, access role.AccessFilter) ([]attendance.AttendanceRecord, error) {
	f.from = from
	f.to = to
	return f.records, nil
}

func recordFor(employeeID, code string, checkedIn bool, status attendance.Status, hours float64) attendance.AttendanceRecord {
	name := "Employee " + code
	dept := "Engineering"
	rec := attendance.AttendanceRecord{
		EmployeeID:     employeeID,
		Status:         status,
		EmployeeName:   &name,
		EmployeeCode:   &code,
		DepartmentName: &dept,
		WorkHours:      &hours,
	}
	if checkedIn {
		now := time.Now()
		rec.CheckInTime = &now
	}
	return rec
}

func TestMonthlyAttendance(t *testing.T) {
	repo := &fakeAttendanceRepo{
		records: []attendance.AttendanceRecord{
			recordFor("emp-2", "JHEX002", true, attendance.StatusOnTime, 9),
			recordFor("emp-2", "JHEX002", true, attendance.StatusLate, 8),
			recordFor("emp-2", "JHEX002", false, attendance.StatusAbsent, 0),
			recordFor("emp-1", "JHEX001", true, attendance.StatusEarlyOut, 6),
		},
	}
	svc := NewReportService(repo)
	p := auth.Principal{EmployeeID: "emp-hr", Role: role.RoleHR}

	report, err := svc.MonthlyAttendance(context.Background(), p, "2025-07")
	require.NoError(t, err)
	require.Len(t, report, 2)

	// Sorted by employee code.
	assert.Equal(t, "JHEX001", report[0].EmployeeCode)
	assert.Equal(t, "JHEX002", report[1].EmployeeCode)

	first := report[0]
	assert.Equal(t, 1, first.TotalDays)
	assert.Equal(t, 1, first.PresentDays)
	assert.Equal(t, 1, first.EarlyOutDays)
	assert.InDelta(t, 6, first.TotalWorkHours, 0.001)

	second := report[1]
	assert.Equal(t, 3, second.TotalDays)
	assert.Equal(t, 2, second.PresentDays)
	assert.Equal(t, 1, second.AbsentDays)
	assert.Equal(t, 1, second.LateDays)
	assert.InDelta(t, 17, second.TotalWorkHours, 0.001)

	// Queried the full calendar month.
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), repo.from)
	assert.Equal(t, time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC), repo.to)
}

func TestMonthlyAttendance_InvalidMonth(t *testing.T) {
	svc := NewReportService(&fakeAttendanceRepo{})
	p := auth.Principal{EmployeeID: "emp-hr", Role: role.RoleHR}

	for _, month := range []string{"2025-13", "July 2025", ""} {
		_, err := svc.MonthlyAttendance(context.Background(), p, month)
		require.Error(t, err)

		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	}
}
