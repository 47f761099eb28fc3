package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/payroll"
)

func strPtr(s string) *string { return &s }

func testPayrollRecord() payroll.PayrollRecord {
	doj := time.Date(2022, 4, 18, 0, 0, 0, 0, time.UTC)
	return payroll.PayrollRecord{
		Month:                "2025-07",
		BasicSalary:          decimal.NewFromInt(70000),
		HRA:                  decimal.NewFromInt(21000),
		FuelAllowance:        decimal.NewFromInt(3000),
		PerformanceIncentive: decimal.NewFromInt(10000),
		PFDeduction:          decimal.NewFromInt(8400),
		PTDeduction:          decimal.NewFromInt(200),
		OtherDeductions:      decimal.Zero,
		TotalEarnings:        decimal.NewFromInt(104000),
		TotalDeductions:      decimal.NewFromInt(8600),
		NetPay:               decimal.NewFromInt(95400),
		TotalDays:            31,
		DaysPresent:          31,
		EmployeeName:         strPtr("Asha Patel"),
		EmployeeCode:         strPtr("JHEX042"),
		DateOfJoining:        &doj,
		DepartmentName:       strPtr("Engineering"),
		RoleName:             strPtr("TECHNICAL_EXPERT"),
	}
}

func TestRenderPayslip(t *testing.T) {
	rec := testPayrollRecord()
	detail := &payroll.SalaryDetail{
		BankName:      strPtr("HDFC Bank"),
		AccountNumber: strPtr("50100234567890"),
		IFSCCode:      strPtr("HDFC0001234"),
		PANNumber:     strPtr("ABCDE1234F"),
	}

	html, err := RenderPayslip(rec, detail)
	require.NoError(t, err)

	assert.Contains(t, html, "JHEx Consulting LLP")
	assert.Contains(t, html, "Pay slip for the month of July 2025")
	assert.Contains(t, html, "JHEX042")
	assert.Contains(t, html, "Asha Patel")
	assert.Contains(t, html, "18/04/2022")
	assert.Contains(t, html, "HDFC Bank")
	assert.Contains(t, html, "95,400")
	assert.Contains(t, html, "104,000")
	assert.Contains(t, html, "Performance Incentive")
	assert.NotContains(t, html, "Other Deductions")
	assert.Contains(t, html, "NINETY FIVE THOUSAND FOUR HUNDRED ONLY")
	assert.Contains(t, html, "This is the system generated pay slip, Signature not required")
}

// A month with absences carries the absence amount in other deductions, so
// the payslip itemizes it and the deduction total is fully explained.
func TestRenderPayslip_AbsenceDeductionRow(t *testing.T) {
	rec := testPayrollRecord()
	rec.DaysPresent = 27
	rec.LWPDays = 4
	rec.OtherDeductions = decimal.NewFromInt(4000)

	html, err := RenderPayslip(rec, nil)
	require.NoError(t, err)

	assert.Contains(t, html, "LWP/Absent: 4")
	assert.Contains(t, html, "Other Deductions")
	assert.Contains(t, html, "-4,000")
}

func TestGroupDigits(t *testing.T) {
	cases := []struct {
		input int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{95400, "95,400"},
		{104000, "104,000"},
		{-8600, "-8,600"},
	}
	for _, c := range cases {
		got := groupDigits(decimal.NewFromInt(c.input))
		assert.Equal(t, c.want, got, "groupDigits(%d)", c.input)
	}
}

func TestRenderPayslip_DefaultsWithoutSalaryDetail(t *testing.T) {
	rec := testPayrollRecord()
	rec.PerformanceIncentive = decimal.Zero
	rec.OtherDeductions = decimal.NewFromInt(1500)

	html, err := RenderPayslip(rec, nil)
	require.NoError(t, err)

	assert.Contains(t, html, "State Bank of India")
	assert.Contains(t, html, "N/A")
	assert.NotContains(t, html, "Performance Incentive")
	assert.Contains(t, html, "Other Deductions")
}
