package ledger

import "testing"

func TestParseCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"12.34", 1234},
		{"1000", 100000},
		{"0.1", 10},
		{"0.005", 1},
		{"-3.50", -350},
		{" 42.00 ", 4200},
	}
	for _, tc := range cases {
		got, err := ParseCents(tc.in)
		if err != nil {
			t.Errorf("ParseCents(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}

	invalid := []string{
		"", "abc", "12.3.4", "1,000",
		// cent value overflows int64
		"184467440737095516.17",
		"99999999999999999999",
		"-99999999999999999999",
	}
	for _, in := range invalid {
		if _, err := ParseCents(in); err != ErrInvalidAmount {
			t.Errorf("ParseCents(%q) error = %v, want ErrInvalidAmount", in, err)
		}
	}

	// the largest representable cent values still parse
	if got, err := ParseCents("92233720368547758.07"); err != nil || got != 9223372036854775807 {
		t.Errorf("ParseCents(max) = %d, %v, want 9223372036854775807, nil", got, err)
	}
}

func TestParsePositiveCents(t *testing.T) {
	if got, err := ParsePositiveCents("7.25"); err != nil || got != 725 {
		t.Errorf("ParsePositiveCents(7.25) = %d, %v, want 725, nil", got, err)
	}
	for _, in := range []string{"0", "-1", "0.001", "nope", "184467440737095516.17"} {
		if _, err := ParsePositiveCents(in); err != ErrInvalidAmount {
			t.Errorf("ParsePositiveCents(%q) error = %v, want ErrInvalidAmount", in, err)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0.00"},
		{1234, "12.34"},
		{100000, "1000.00"},
		{-350, "-3.50"},
		{5, "0.05"},
	}
	for _, tc := range cases {
		if got := FormatCents(tc.in); got != tc.want {
			t.Errorf("FormatCents(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRatio(t *testing.T) {
	cases := []struct {
		num, den int64
		want     float64
	}{
		{0, 0, 0},
		{500, 0, 0},
		{25000, 100000, 25},
		{100000, 140000, 71.43},
		{1, 3, 0.33},
	}
	for _, tc := range cases {
		if got := ratio(tc.num, tc.den); got != tc.want {
			t.Errorf("ratio(%d, %d) = %v, want %v", tc.num, tc.den, got, tc.want)
		}
	}
}
