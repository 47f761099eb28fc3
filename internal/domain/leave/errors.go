package leave

import "errors"

// Leave domain errors
var (
	ErrRequestNotFound     = errors.New("leave request not found")
	ErrOverlappingLeave    = errors.New("a leave request already exists for this period")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrAlreadyProcessed    = errors.New("only pending leave requests can be modified")
	ErrNotRequestOwner     = errors.New("only the requesting employee may modify this leave request")
	ErrApprovalNotAllowed  = errors.New("not allowed to approve or reject leave requests")
	ErrPastStartDate       = errors.New("leave start date cannot be in the past")
	ErrEndBeforeStart      = errors.New("leave end date cannot be before start date")
	ErrBalanceNotFound     = errors.New("leave balance not found")
)
