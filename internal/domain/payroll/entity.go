package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusGenerated Status = "GENERATED"
	StatusSent      Status = "SENT"
)

// IsValid reports whether s is a known payroll status.
func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusGenerated || s == StatusSent
}

// SalaryDetail is an effective-dated salary profile. The current profile
// for an employee has EffectiveTo = nil; fixed component overrides are nil
// (or zero) when the payroll defaults apply.
type SalaryDetail struct {
	ID              string
	EmployeeID      string
	BasicSalary     decimal.Decimal
	HRA             *decimal.Decimal
	FuelAllowance   *decimal.Decimal
	OtherAllowances *decimal.Decimal
	PFDeduction     *decimal.Decimal
	PTDeduction     *decimal.Decimal
	OtherDeductions *decimal.Decimal
	BankName        *string
	AccountNumber   *string
	IFSCCode        *string
	PANNumber       *string
	UANNumber       *string
	EffectiveFrom   time.Time
	EffectiveTo     *time.Time
	CreatedBy       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PayrollRecord is one row per (employee, month "YYYY-MM"). Once SENT it is
// immutable.
type PayrollRecord struct {
	ID                   string
	EmployeeID           string
	Month                string
	BasicSalary          decimal.Decimal
	HRA                  decimal.Decimal
	FuelAllowance        decimal.Decimal
	PerformanceIncentive decimal.Decimal
	OtherEarnings        decimal.Decimal
	PFDeduction          decimal.Decimal
	PTDeduction          decimal.Decimal
	OtherDeductions      decimal.Decimal
	TotalEarnings        decimal.Decimal
	TotalDeductions      decimal.Decimal
	NetPay               decimal.Decimal
	TotalDays            int
	DaysPresent          int
	ArrearDays           int
	LWPDays              int
	Status               Status
	GeneratedBy          string
	GeneratedAt          time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeCode   *string
	EmployeeEmail  *string
	DateOfJoining  *time.Time
	DepartmentID   *string
	DepartmentName *string
	RoleName       *string
}

// Breakdown is the computed earnings/deductions result for one
// employee-month before it is persisted.
type Breakdown struct {
	BasicSalary          decimal.Decimal
	HRA                  decimal.Decimal
	FuelAllowance        decimal.Decimal
	PerformanceIncentive decimal.Decimal
	OtherEarnings        decimal.Decimal
	PFDeduction          decimal.Decimal
	PTDeduction          decimal.Decimal
	OtherDeductions      decimal.Decimal
	TotalEarnings        decimal.Decimal
	TotalDeductions      decimal.Decimal
	NetPay               decimal.Decimal
	TotalDays            int
	DaysPresent          int
	ArrearDays           int
	LWPDays              int
}
