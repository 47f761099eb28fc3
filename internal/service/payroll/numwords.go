package payroll

import "strings"

var (
	onesWords = []string{
		"", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
		"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN", "SIXTEEN",
		"SEVENTEEN", "EIGHTEEN", "NINETEEN",
	}
	tensWords = []string{
		"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY", "EIGHTY", "NINETY",
	}
)

// convertHundreds spells out 1..999.
func convertHundreds(n int64) string {
	var parts []string

	if n >= 100 {
		parts = append(parts, onesWords[n/100], "HUNDRED")
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, tensWords[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, onesWords[n])
	}

	return strings.Join(parts, " ")
}

// NumberToWords spells out an amount in the Indian numbering system
// (crore, lakh, thousand), uppercase.
func NumberToWords(n int64) string {
	if n == 0 {
		return "ZERO"
	}

	var parts []string

	if n >= 1e7 {
		parts = append(parts, convertHundreds(n/1e7), "CRORE")
		n %= 1e7
	}
	if n >= 1e5 {
		parts = append(parts, convertHundreds(n/1e5), "LAKH")
		n %= 1e5
	}
	if n >= 1000 {
		parts = append(parts, convertHundreds(n/1000), "THOUSAND")
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, convertHundreds(n))
	}

	return strings.Join(parts, " ")
}
