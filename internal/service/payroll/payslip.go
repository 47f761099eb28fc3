package payroll

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/payroll"
)

// groupDigits renders an integer amount with comma thousand separators.
func groupDigits(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}

var payslipTemplate = template.Must(template.New("payslip").Funcs(template.FuncMap{
	"money": groupDigits,
}).Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Payslip - {{.EmployeeName}}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 0; padding: 20px; font-size: 12px; }
    .payslip-container { max-width: 800px; margin: 0 auto; border: 2px solid #000; background: #fff; }
    .header { text-align: center; padding: 15px; border-bottom: 1px solid #000; }
    .company-name { font-size: 20px; font-weight: bold; margin-bottom: 5px; }
    .company-address { font-size: 11px; margin-bottom: 10px; color: #666; }
    .payslip-title { font-size: 16px; font-weight: bold; text-decoration: underline; }
    .employee-info { display: flex; padding: 15px; border-bottom: 1px solid #000; }
    .info-left, .info-right { flex: 1; font-size: 11px; line-height: 1.6; }
    .info-label { font-weight: bold; display: inline-block; width: 80px; }
    .attendance-info { display: flex; justify-content: space-between; padding: 10px 15px; border-bottom: 1px solid #000; font-size: 11px; }
    .attendance-item { font-weight: bold; }
    .earnings-table { width: 100%; border-collapse: collapse; margin: 15px 0; }
    .earnings-table td { padding: 6px 10px; border-bottom: 1px solid #ddd; font-size: 11px; }
    .earnings-table .amount { text-align: right; width: 120px; font-weight: bold; }
    .earnings-header { background: #e9ecef; font-weight: bold; }
    .total-row { font-weight: bold; border-top: 2px solid #333; }
    .net-pay { font-size: 16px; font-weight: bold; text-align: center; padding: 15px; border-bottom: 1px solid #000; }
    .amount-words { padding: 15px; font-size: 11px; border-bottom: 1px solid #000; }
    .footer { text-align: center; padding: 15px; font-style: italic; font-size: 10px; color: #666; }
  </style>
</head>
<body>
  <div class="payslip-container">
    <div class="header">
      <div class="company-name">JHEx Consulting LLP</div>
      <div class="company-address">
        FF-Block-A-103, Ganesh Meridian, Opp High Court, SG<br>
        Highway, Ghatlodiya Ahmedabad - (380061)
      </div>
      <div class="payslip-title">Pay slip for the month of {{.MonthYear}}</div>
    </div>

    <div class="employee-info">
      <div class="info-left">
        <div><span class="info-label">EMP Code:</span> {{.EmployeeCode}}</div>
        <div><span class="info-label">Name:</span> {{.EmployeeName}}</div>
        <div><span class="info-label">DOJ:</span> {{.DateOfJoining}}</div>
        <div><span class="info-label">Bank:</span> {{.BankName}}</div>
        <div><span class="info-label">Designation:</span> {{.Designation}}</div>
        <div><span class="info-label">UAN No:</span> {{.UANNumber}}</div>
      </div>
      <div class="info-right">
        <div><span class="info-label">A/C No:</span> {{.AccountNumber}}</div>
        <div><span class="info-label">IFSC Code:</span> {{.IFSCCode}}</div>
        <div><span class="info-label">Department:</span> {{.Department}}</div>
        <div><span class="info-label">Total Salary:</span> {{money .NetPay}}</div>
        <div><span class="info-label">PAN No:</span> {{.PANNumber}}</div>
      </div>
    </div>

    <div class="attendance-info">
      <span class="attendance-item">Total Days: {{.TotalDays}}</span>
      <span class="attendance-item">Days Present: {{.DaysPresent}}</span>
      <span class="attendance-item">Arrear Days: {{.ArrearDays}}</span>
      <span class="attendance-item">LWP/Absent: {{.LWPDays}}</span>
    </div>

    <table class="earnings-table">
      <tr class="earnings-header">
        <td>Earning</td>
        <td class="amount">Amount</td>
      </tr>
      <tr><td>Basic</td><td class="amount">{{money .BasicSalary}}</td></tr>
      <tr><td>HRA</td><td class="amount">{{money .HRA}}</td></tr>
      <tr><td>Fuel Allowance</td><td class="amount">{{money .FuelAllowance}}</td></tr>
      <tr><td>PF</td><td class="amount">-{{money .PFDeduction}}</td></tr>
      <tr><td>PT</td><td class="amount">-{{money .PTDeduction}}</td></tr>
      {{- if .HasIncentive}}
      <tr><td>Performance Incentive</td><td class="amount">{{money .PerformanceIncentive}}</td></tr>
      {{- end}}
      {{- if .HasOtherDeductions}}
      <tr><td>Other Deductions</td><td class="amount">-{{money .OtherDeductions}}</td></tr>
      {{- end}}
      <tr class="total-row">
        <td><strong>Total Earning</strong></td>
        <td class="amount"><strong>{{money .TotalEarnings}}</strong></td>
      </tr>
    </table>

    <div class="net-pay">
      <strong>Net Pay</strong><br>
      <span style="font-size: 18px;">{{money .NetPay}}</span>
    </div>

    <div class="amount-words">
      <strong>In words:</strong> {{.AmountInWords}} ONLY
    </div>

    <div class="footer">
      This is the system generated pay slip, Signature not required
    </div>
  </div>
</body>
</html>
`))

type payslipData struct {
	MonthYear     string
	EmployeeCode  string
	EmployeeName  string
	DateOfJoining string
	Designation   string
	Department    string
	BankName      string
	AccountNumber string
	IFSCCode      string
	PANNumber     string
	UANNumber     string

	BasicSalary          decimal.Decimal
	HRA                  decimal.Decimal
	FuelAllowance        decimal.Decimal
	PerformanceIncentive decimal.Decimal
	PFDeduction          decimal.Decimal
	PTDeduction          decimal.Decimal
	OtherDeductions      decimal.Decimal
	TotalEarnings        decimal.Decimal
	NetPay               decimal.Decimal

	TotalDays   int
	DaysPresent int
	ArrearDays  int
	LWPDays     int

	HasIncentive       bool
	HasOtherDeductions bool
	AmountInWords      string
}

func strOr(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

// RenderPayslip formats a computed payroll record and its salary profile
// into the payslip document.
func RenderPayslip(rec payroll.PayrollRecord, detail *payroll.SalaryDetail) (string, error) {
	monthYear := rec.Month
	if parsed, err := time.Parse("2006-01", rec.Month); err == nil {
		monthYear = parsed.Format("January 2006")
	}

	data := payslipData{
		MonthYear:     monthYear,
		EmployeeCode:  strOr(rec.EmployeeCode, "N/A"),
		EmployeeName:  strOr(rec.EmployeeName, "N/A"),
		Designation:   strOr(rec.RoleName, "N/A"),
		Department:    strOr(rec.DepartmentName, "N/A"),
		BankName:      "State Bank of India",
		AccountNumber: "N/A",
		IFSCCode:      "N/A",
		PANNumber:     "N/A",
		UANNumber:     "N/A",

		BasicSalary:          rec.BasicSalary,
		HRA:                  rec.HRA,
		FuelAllowance:        rec.FuelAllowance,
		PerformanceIncentive: rec.PerformanceIncentive,
		PFDeduction:          rec.PFDeduction,
		PTDeduction:          rec.PTDeduction,
		OtherDeductions:      rec.OtherDeductions,
		TotalEarnings:        rec.TotalEarnings,
		NetPay:               rec.NetPay,

		TotalDays:   rec.TotalDays,
		DaysPresent: rec.DaysPresent,
		ArrearDays:  rec.ArrearDays,
		LWPDays:     rec.LWPDays,

		HasIncentive:       rec.PerformanceIncentive.IsPositive(),
		HasOtherDeductions: rec.OtherDeductions.IsPositive(),
		AmountInWords:      NumberToWords(rec.NetPay.Round(0).IntPart()),
	}

	if rec.DateOfJoining != nil {
		data.DateOfJoining = rec.DateOfJoining.Format("02/01/2006")
	} else {
		data.DateOfJoining = "N/A"
	}

	if detail != nil {
		data.BankName = strOr(detail.BankName, "State Bank of India")
		data.AccountNumber = strOr(detail.AccountNumber, "N/A")
		data.IFSCCode = strOr(detail.IFSCCode, "N/A")
		data.PANNumber = strOr(detail.PANNumber, "N/A")
		data.UANNumber = strOr(detail.UANNumber, "N/A")
	}

	var sb strings.Builder
	if err := payslipTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render payslip: %w", err)
	}

	return sb.String(), nil
}
