package util

import "testing"

func TestGrouped(t *testing.T) {
	cases := map[float64]string{
		1234.5:     "1,234.50",
		0.004:      "0.00",
		-1234567.1: "-1,234,567.10",
		-0.001:     "0.00",
		95:         "95.00",
	}
	for in, want := range cases {
		if got := Grouped(in); got != want {
			t.Fatalf("Grouped(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestDollars(t *testing.T) {
	if got := Dollars(1234.5); got != "$1,234.50" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestDollarsWhole(t *testing.T) {
	if got := DollarsWhole(61555000000); got != "$61,555,000,000" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestPercentAndCount(t *testing.T) {
	if got := Percent(0.0044); got != "0.44%" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Count(48123456); got != "48,123,456" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestSignedChange(t *testing.T) {
	cases := []struct {
		delta, pct float64
		want       string
		up         bool
	}{
		{5, 5.5555, "+5.00 (+5.56%)", true},
		{-5, -5, "-5.00 (-5.00%)", false},
		{-0.001, -0.0008, "+0.00 (+0.00%)", true},
		{0.004, -0.0001, "+0.00 (+0.00%)", true},
		{-0.01, -0.001, "-0.01 (-0.00%)", false},
	}
	for _, c := range cases {
		got, up := SignedChange(c.delta, c.pct)
		if got != c.want || up != c.up {
			t.Fatalf("SignedChange(%v, %v) = %q, %v; want %q, %v", c.delta, c.pct, got, up, c.want, c.up)
		}
	}
}

func TestNormalizeSymbol(t *testing.T) {
	if got := NormalizeSymbol("  nvda "); got != "NVDA" {
		t.Fatalf("unexpected %q", got)
	}
}
