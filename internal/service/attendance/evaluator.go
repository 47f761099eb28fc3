package attendance

import (
	"time"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
)

// expectedAt places a settings clock time onto the calendar day of t.
func expectedAt(clock time.Time, t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, t.Location())
}

// CheckInStatus evaluates a check-in against the department settings. A
// check-in is LATE only when it falls strictly after the expected time plus
// the grace period; landing exactly on the boundary is still ON_TIME.
// Without settings every check-in is ON_TIME.
func CheckInStatus(checkIn time.Time, settings *attendance.Settings) attendance.Status {
	if settings == nil {
		return attendance.StatusOnTime
	}

	deadline := expectedAt(settings.CheckInTime, checkIn).
		Add(time.Duration(settings.GracePeriodMins) * time.Minute)

	if checkIn.After(deadline) {
		return attendance.StatusLate
	}
	return attendance.StatusOnTime
}

// CheckOutStatus evaluates a check-out. The day is EARLY_OUT only when the
// employee leaves before the expected check-out time AND worked fewer hours
// than the department standard; otherwise the check-in status stands.
func CheckOutStatus(current attendance.Status, checkOut time.Time, workHours float64, settings *attendance.Settings) attendance.Status {
	if settings == nil {
		return current
	}

	expectedOut := expectedAt(settings.CheckOutTime, checkOut)
	if checkOut.Before(expectedOut) && workHours < settings.StandardWorkHours {
		return attendance.StatusEarlyOut
	}
	return current
}

// WorkHours is the wall-clock span between check-in and check-out in
// fractional hours.
func WorkHours(checkIn, checkOut time.Time) float64 {
	return checkOut.Sub(checkIn).Hours()
}
