package leave

import (
	"time"
)

type Type string

const (
	TypeCasual    Type = "CASUAL"
	TypeSick      Type = "SICK"
	TypeAnnual    Type = "ANNUAL"
	TypeMaternity Type = "MATERNITY"
	TypePaternity Type = "PATERNITY"
	TypeOther     Type = "OTHER"
)

// IsBalanceTracked reports whether the type consumes a yearly entitlement.
// MATERNITY, PATERNITY and OTHER are recorded but never balance-limited.
func (t Type) IsBalanceTracked() bool {
	return t == TypeCasual || t == TypeSick || t == TypeAnnual
}

// IsValid reports whether t is one of the known leave types.
func (t Type) IsValid() bool {
	switch t {
	case TypeCasual, TypeSick, TypeAnnual, TypeMaternity, TypePaternity, TypeOther:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type LeaveRequest struct {
	ID            string
	EmployeeID    string
	LeaveType     Type
	StartDate     time.Time
	EndDate       time.Time
	TotalDays     int
	Reason        string
	Status        Status
	ApprovedBy    *string
	ApprovalDate  *time.Time
	ApprovalNotes *string
	AppliedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeCode   *string
	DepartmentID   *string
	DepartmentName *string
	ApproverName   *string
}

// Yearly entitlements granted when a balance row is first created.
const (
	DefaultCasualLeaves = 12
	DefaultSickLeaves   = 12
	DefaultAnnualLeaves = 21
)

// LeaveBalance is one row per (employee, year).
type LeaveBalance struct {
	ID           string
	EmployeeID   string
	Year         int
	CasualLeaves int
	SickLeaves   int
	AnnualLeaves int
	UsedCasual   int
	UsedSick     int
	UsedAnnual   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Available returns entitlement minus used for a balance-tracked type.
// Non-tracked types are effectively unlimited.
func (b LeaveBalance) Available(t Type) int {
	switch t {
	case TypeCasual:
		return b.CasualLeaves - b.UsedCasual
	case TypeSick:
		return b.SickLeaves - b.UsedSick
	case TypeAnnual:
		return b.AnnualLeaves - b.UsedAnnual
	default:
		return 999
	}
}
