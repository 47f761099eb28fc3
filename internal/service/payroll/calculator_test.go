package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/attendance"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/payroll"
)

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// Full-attendance month on a 70k basic with no overrides.
func TestCalculate_Defaults(t *testing.T) {
	detail := payroll.SalaryDetail{
		BasicSalary: decimal.NewFromInt(70000),
	}
	totals := attendance.MonthlyTotals{
		TotalDays:   30,
		PresentDays: 30,
		AbsentDays:  0,
	}

	b := Calculate(detail, totals)

	assert.True(t, b.HRA.Equal(decimal.NewFromInt(21000)), "HRA = %s", b.HRA)
	assert.True(t, b.FuelAllowance.Equal(decimal.NewFromInt(3000)), "fuel = %s", b.FuelAllowance)
	assert.True(t, b.PerformanceIncentive.Equal(decimal.NewFromInt(10000)), "incentive = %s", b.PerformanceIncentive)
	assert.True(t, b.PFDeduction.Equal(decimal.NewFromInt(8400)), "PF = %s", b.PFDeduction)
	assert.True(t, b.PTDeduction.Equal(decimal.NewFromInt(200)), "PT = %s", b.PTDeduction)
	assert.True(t, b.TotalEarnings.Equal(decimal.NewFromInt(104000)), "earnings = %s", b.TotalEarnings)
	assert.True(t, b.TotalDeductions.Equal(decimal.NewFromInt(8600)), "deductions = %s", b.TotalDeductions)
	assert.True(t, b.NetPay.Equal(decimal.NewFromInt(95400)), "net = %s", b.NetPay)
	assert.True(t, b.OtherEarnings.IsZero(), "other earnings = %s", b.OtherEarnings)
	assert.True(t, b.OtherDeductions.IsZero(), "other deductions = %s", b.OtherDeductions)
}

// The profile's other-allowances/other-deductions columns are payslip
// metadata; generation derives totals from the fixed formula alone.
func TestCalculate_ProfileExtrasExcluded(t *testing.T) {
	detail := payroll.SalaryDetail{
		BasicSalary:     decimal.NewFromInt(70000),
		OtherAllowances: decPtr(5000),
		OtherDeductions: decPtr(1500),
	}
	totals := attendance.MonthlyTotals{TotalDays: 30, PresentDays: 30}

	b := Calculate(detail, totals)

	assert.True(t, b.TotalEarnings.Equal(decimal.NewFromInt(104000)), "earnings = %s", b.TotalEarnings)
	assert.True(t, b.TotalDeductions.Equal(decimal.NewFromInt(8600)), "deductions = %s", b.TotalDeductions)
	assert.True(t, b.OtherEarnings.IsZero())
	assert.True(t, b.OtherDeductions.IsZero())
}

func TestCalculate_Overrides(t *testing.T) {
	detail := payroll.SalaryDetail{
		BasicSalary:   decimal.NewFromInt(50000),
		HRA:           decPtr(12000),
		FuelAllowance: decPtr(2000),
		PFDeduction:   decPtr(5000),
		PTDeduction:   decPtr(300),
	}
	totals := attendance.MonthlyTotals{TotalDays: 30, PresentDays: 30}

	b := Calculate(detail, totals)

	assert.True(t, b.HRA.Equal(decimal.NewFromInt(12000)))
	assert.True(t, b.FuelAllowance.Equal(decimal.NewFromInt(2000)))
	assert.True(t, b.PFDeduction.Equal(decimal.NewFromInt(5000)))
	assert.True(t, b.PTDeduction.Equal(decimal.NewFromInt(300)))
}

// A stored override of exactly zero falls back to the default, same as a
// missing one.
func TestCalculate_ZeroOverrideFallsBack(t *testing.T) {
	zero := decimal.Zero
	detail := payroll.SalaryDetail{
		BasicSalary: decimal.NewFromInt(40000),
		HRA:         &zero,
		PFDeduction: &zero,
	}
	totals := attendance.MonthlyTotals{TotalDays: 30, PresentDays: 30}

	b := Calculate(detail, totals)

	assert.True(t, b.HRA.Equal(decimal.NewFromInt(12000)), "HRA = %s", b.HRA)
	assert.True(t, b.PFDeduction.Equal(decimal.NewFromInt(4800)), "PF = %s", b.PFDeduction)
}

func TestCalculate_IncentiveSlabs(t *testing.T) {
	cases := []struct {
		name    string
		present int
		total   int
		want    int64
	}{
		{"full attendance", 30, 30, 10000},
		{"exactly 95 percent", 19, 20, 10000},
		{"above 95 percent", 29, 30, 10000},
		{"exactly 90 percent", 27, 30, 5000},
		{"below 90 percent", 26, 30, 0},
		{"empty month", 0, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := incentiveFor(c.present, c.total)
			assert.True(t, got.Equal(decimal.NewFromInt(c.want)), "incentiveFor(%d, %d) = %s", c.present, c.total, got)
		})
	}
}

func TestCalculate_AbsenceDeduction(t *testing.T) {
	detail := payroll.SalaryDetail{
		BasicSalary: decimal.NewFromInt(22000),
	}
	totals := attendance.MonthlyTotals{
		TotalDays:   30,
		PresentDays: 26,
		AbsentDays:  4,
	}

	b := Calculate(detail, totals)

	// 22000/22 = 1000 per day, 4 absent days = 4000
	expectedDeductions := decimal.NewFromInt(2640 + 200 + 4000)
	assert.True(t, b.TotalDeductions.Equal(expectedDeductions), "deductions = %s", b.TotalDeductions)
	// The absence amount lands in the other-deductions column.
	assert.True(t, b.OtherDeductions.Equal(decimal.NewFromInt(4000)), "other deductions = %s", b.OtherDeductions)
	assert.Equal(t, 4, b.LWPDays)
}

func TestCalculate_NetPayNeverNegative(t *testing.T) {
	big := decimal.NewFromInt(1000000)
	detail := payroll.SalaryDetail{
		BasicSalary: decimal.NewFromInt(10000),
		PFDeduction: &big,
	}
	totals := attendance.MonthlyTotals{TotalDays: 30, PresentDays: 30}

	b := Calculate(detail, totals)

	assert.True(t, b.NetPay.IsZero(), "net = %s", b.NetPay)
}

func TestRecalculate_Arrears(t *testing.T) {
	// Generated with 2 absent days, so other deductions hold 2 x 2000.
	rec := payroll.PayrollRecord{
		BasicSalary:          decimal.NewFromInt(44000),
		HRA:                  decimal.NewFromInt(13200),
		FuelAllowance:        decimal.NewFromInt(3000),
		PerformanceIncentive: decimal.Zero,
		OtherEarnings:        decimal.NewFromInt(1000),
		PFDeduction:          decimal.NewFromInt(5280),
		PTDeduction:          decimal.NewFromInt(200),
		OtherDeductions:      decimal.NewFromInt(4000),
		TotalDays:            30,
		DaysPresent:          28,
		ArrearDays:           2,
	}

	got := Recalculate(rec)

	// per day = 44000/22 = 2000; arrears = 4000
	assert.True(t, got.TotalEarnings.Equal(decimal.NewFromInt(44000+13200+3000+1000+4000)), "earnings = %s", got.TotalEarnings)
	assert.True(t, got.TotalDeductions.Equal(decimal.NewFromInt(5280+200+4000)), "deductions = %s", got.TotalDeductions)
	assert.True(t, got.NetPay.Equal(got.TotalEarnings.Sub(got.TotalDeductions)))
}

func TestRecalculate_ClampsNetPay(t *testing.T) {
	rec := payroll.PayrollRecord{
		BasicSalary:     decimal.NewFromInt(10000),
		OtherDeductions: decimal.NewFromInt(500000),
		TotalDays:       30,
		DaysPresent:     30,
	}

	got := Recalculate(rec)

	assert.True(t, got.NetPay.IsZero(), "net = %s", got.NetPay)
}
