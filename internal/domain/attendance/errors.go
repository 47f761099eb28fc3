package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNoCheckInFound    = errors.New("no check-in record found for today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")

	// General errors
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrSettingsNotFound = errors.New("attendance settings not found")
)
