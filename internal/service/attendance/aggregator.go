package attendance

import (
	"time"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
)

// daysInMonth returns the calendar length of a month; day 0 of the next
// month normalizes to its last day.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AggregateMonth rolls one employee's attendance rows for a month up into
// the totals payroll consumes. TotalDays is the calendar length of the
// month; a day counts as present only when its row carries a check-in, so
// days without a row and rows never checked in both land in AbsentDays.
func AggregateMonth(records []attendance.AttendanceRecord, year int, month time.Month) attendance.MonthlyTotals {
	totals := attendance.MonthlyTotals{
		TotalDays: daysInMonth(year, month),
	}

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusLate:
			totals.LateDays++
		case attendance.StatusEarlyOut:
			totals.EarlyOutDays++
		}
		if rec.WorkHours != nil {
			totals.TotalWorkHours += *rec.WorkHours
		}
		if rec.CheckInTime != nil {
			totals.PresentDays++
		}
	}

	totals.AbsentDays = totals.TotalDays - totals.PresentDays
	return totals
}
