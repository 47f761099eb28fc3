package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
)

func testSettings() *attendance.Settings {
	return &attendance.Settings{
		DepartmentID:      "dept-1",
		CheckInTime:       time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		CheckOutTime:      time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC),
		GracePeriodMins:   15,
		StandardWorkHours: 8,
		IsActive:          true,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 7, 14, hour, minute, 0, 0, time.UTC)
}

func TestCheckInStatus(t *testing.T) {
	settings := testSettings()

	cases := []struct {
		name    string
		checkIn time.Time
		want    attendance.Status
	}{
		{"before expected time", at(8, 45), attendance.StatusOnTime},
		{"exactly at expected time", at(9, 0), attendance.StatusOnTime},
		{"within grace period", at(9, 10), attendance.StatusOnTime},
		{"exactly at grace boundary", at(9, 15), attendance.StatusOnTime},
		{"one minute past grace", at(9, 16), attendance.StatusLate},
		{"well past grace", at(11, 30), attendance.StatusLate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CheckInStatus(c.checkIn, settings))
		})
	}
}

func TestCheckInStatus_NoSettings(t *testing.T) {
	assert.Equal(t, attendance.StatusOnTime, CheckInStatus(at(14, 0), nil))
}

func TestCheckOutStatus(t *testing.T) {
	settings := testSettings()

	cases := []struct {
		name      string
		current   attendance.Status
		checkOut  time.Time
		workHours float64
		want      attendance.Status
	}{
		{"left early with short hours", attendance.StatusOnTime, at(16, 0), 7, attendance.StatusEarlyOut},
		{"left early but full hours", attendance.StatusOnTime, at(17, 30), 8.5, attendance.StatusOnTime},
		{"left at expected time", attendance.StatusOnTime, at(18, 0), 9, attendance.StatusOnTime},
		{"left after expected time", attendance.StatusOnTime, at(19, 0), 10, attendance.StatusOnTime},
		{"late check-in stands", attendance.StatusLate, at(18, 30), 7, attendance.StatusLate},
		{"late check-in leaving early", attendance.StatusLate, at(16, 0), 4, attendance.StatusEarlyOut},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CheckOutStatus(c.current, c.checkOut, c.workHours, settings))
		})
	}
}

func TestCheckOutStatus_NoSettings(t *testing.T) {
	assert.Equal(t, attendance.StatusLate, CheckOutStatus(attendance.StatusLate, at(15, 0), 2, nil))
}

func TestWorkHours(t *testing.T) {
	assert.InDelta(t, 9.0, WorkHours(at(9, 0), at(18, 0)), 0.001)
	assert.InDelta(t, 8.5, WorkHours(at(9, 15), at(17, 45)), 0.001)
}
