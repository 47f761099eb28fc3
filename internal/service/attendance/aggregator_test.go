package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
)

func recWithStatus(status attendance.Status, hours float64) attendance.AttendanceRecord {
	checkIn := time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)
	return attendance.AttendanceRecord{Status: status, CheckInTime: &checkIn, WorkHours: &hours}
}

func TestAggregateMonth(t *testing.T) {
	records := []attendance.AttendanceRecord{
		recWithStatus(attendance.StatusOnTime, 9),
		recWithStatus(attendance.StatusOnTime, 8.5),
		recWithStatus(attendance.StatusLate, 8),
		recWithStatus(attendance.StatusEarlyOut, 6),
		{Status: attendance.StatusAbsent},
	}

	totals := AggregateMonth(records, 2025, time.July)

	assert.Equal(t, 31, totals.TotalDays)
	assert.Equal(t, 4, totals.PresentDays)
	assert.Equal(t, 27, totals.AbsentDays)
	assert.Equal(t, 1, totals.LateDays)
	assert.Equal(t, 1, totals.EarlyOutDays)
	assert.InDelta(t, 31.5, totals.TotalWorkHours, 0.001)
}

// Presence follows the check-in timestamp, not the status column.
func TestAggregateMonth_PresenceRequiresCheckIn(t *testing.T) {
	records := []attendance.AttendanceRecord{
		{Status: attendance.StatusOnTime},
		recWithStatus(attendance.StatusOnTime, 8),
	}

	totals := AggregateMonth(records, 2025, time.July)

	assert.Equal(t, 1, totals.PresentDays)
	assert.Equal(t, 30, totals.AbsentDays)
}

func TestAggregateMonth_Empty(t *testing.T) {
	totals := AggregateMonth(nil, 2025, time.February)

	assert.Equal(t, 28, totals.TotalDays)
	assert.Equal(t, 0, totals.PresentDays)
	assert.Equal(t, 28, totals.AbsentDays)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, daysInMonth(2025, time.January))
	assert.Equal(t, 30, daysInMonth(2025, time.April))
	assert.Equal(t, 28, daysInMonth(2025, time.February))
	assert.Equal(t, 29, daysInMonth(2024, time.February))
	assert.Equal(t, 31, daysInMonth(2025, time.December))
}
