package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/payroll"
)

// Fixed calculation defaults applied when the salary profile carries no
// override for a component.
var (
	defaultHRARate       = decimal.NewFromFloat(0.3)
	defaultFuelAllowance = decimal.NewFromInt(3000)
	defaultPFRate        = decimal.NewFromFloat(0.12)
	defaultPTDeduction   = decimal.NewFromInt(200)

	incentiveHigh = decimal.NewFromInt(10000)
	incentiveLow  = decimal.NewFromInt(5000)

	// Payroll assumes 22 working days per month regardless of the
	// calendar length.
	workingDaysPerMonth = decimal.NewFromInt(22)
)

// override falls back to def when the profile value is absent or zero.
func override(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil || v.IsZero() {
		return def
	}
	return *v
}

// incentiveFor grades the attendance percentage into the performance
// incentive slab.
func incentiveFor(presentDays, totalDays int) decimal.Decimal {
	if totalDays == 0 {
		return decimal.Zero
	}

	pct := float64(presentDays) / float64(totalDays) * 100
	switch {
	case pct >= 95:
		return incentiveHigh
	case pct >= 90:
		return incentiveLow
	default:
		return decimal.Zero
	}
}

// Calculate derives the full payroll breakdown for one employee-month from
// the salary profile and the aggregated attendance totals.
func Calculate(detail payroll.SalaryDetail, totals attendance.MonthlyTotals) payroll.Breakdown {
	basic := detail.BasicSalary

	hra := override(detail.HRA, basic.Mul(defaultHRARate))
	fuel := override(detail.FuelAllowance, defaultFuelAllowance)
	incentive := incentiveFor(totals.PresentDays, totals.TotalDays)

	pf := override(detail.PFDeduction, basic.Mul(defaultPFRate))
	pt := override(detail.PTDeduction, defaultPTDeduction)

	perDay := basic.Div(workingDaysPerMonth)
	absenceDeduction := perDay.Mul(decimal.NewFromInt(int64(totals.AbsentDays)))

	totalEarnings := basic.Add(hra).Add(fuel).Add(incentive)
	totalDeductions := pf.Add(pt).Add(absenceDeduction)

	netPay := totalEarnings.Sub(totalDeductions)
	if netPay.IsNegative() {
		netPay = decimal.Zero
	}

	// The absence deduction is stored in the other-deductions column; it has
	// no dedicated column of its own. Other earnings start at zero and only
	// change through a later payroll update.
	return payroll.Breakdown{
		BasicSalary:          basic,
		HRA:                  hra,
		FuelAllowance:        fuel,
		PerformanceIncentive: incentive,
		OtherEarnings:        decimal.Zero,
		PFDeduction:          pf,
		PTDeduction:          pt,
		OtherDeductions:      absenceDeduction,
		TotalEarnings:        totalEarnings,
		TotalDeductions:      totalDeductions,
		NetPay:               netPay,
		TotalDays:            totals.TotalDays,
		DaysPresent:          totals.PresentDays,
		LWPDays:              totals.AbsentDays,
	}
}

// Recalculate rebuilds a stored record's totals after its editable line
// items changed. The fixed components stay as generated; the other-deductions
// column already carries the absence deduction (or whatever it was edited
// to), so it is not recomputed here.
func Recalculate(rec payroll.PayrollRecord) payroll.PayrollRecord {
	perDay := rec.BasicSalary.Div(workingDaysPerMonth)
	arrears := perDay.Mul(decimal.NewFromInt(int64(rec.ArrearDays)))

	rec.TotalEarnings = rec.BasicSalary.
		Add(rec.HRA).
		Add(rec.FuelAllowance).
		Add(rec.PerformanceIncentive).
		Add(rec.OtherEarnings).
		Add(arrears)
	rec.TotalDeductions = rec.PFDeduction.
		Add(rec.PTDeduction).
		Add(rec.OtherDeductions)

	rec.NetPay = rec.TotalEarnings.Sub(rec.TotalDeductions)
	if rec.NetPay.IsNegative() {
		rec.NetPay = decimal.Zero
	}

	return rec
}
