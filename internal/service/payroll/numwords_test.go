package payroll

import "testing"

func TestNumberToWords(t *testing.T) {
	cases := []struct {
		input int64
		want  string
	}{
		{0, "ZERO"},
		{7, "SEVEN"},
		{15, "FIFTEEN"},
		{42, "FORTY TWO"},
		{100, "ONE HUNDRED"},
		{215, "TWO HUNDRED FIFTEEN"},
		{1000, "ONE THOUSAND"},
		{70000, "SEVENTY THOUSAND"},
		{95400, "NINETY FIVE THOUSAND FOUR HUNDRED"},
		{100000, "ONE LAKH"},
		{104000, "ONE LAKH FOUR THOUSAND"},
		{2550000, "TWENTY FIVE LAKH FIFTY THOUSAND"},
		{10000000, "ONE CRORE"},
		{12345678, "ONE CRORE TWENTY THREE LAKH FORTY FIVE THOUSAND SIX HUNDRED SEVENTY EIGHT"},
	}

	for _, c := range cases {
		got := NumberToWords(c.input)
		if got != c.want {
			t.Errorf("NumberToWords(%d) = %q, want %q", c.input, got, c.want)
		}
	}
}
