package util

import (
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// NotAvailable is shown for missing values.
const NotAvailable = "N/A"

// Grouped formats v with two decimals and thousands separators: 1,234.56.
func Grouped(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return sign + s
	}
	if sign == "-" && n == 0 && strings.Trim(frac, "0") == "" {
		sign = ""
	}
	return sign + humanize.Comma(n) + "." + frac
}

// Dollars formats v as USD with cents: $1,234.56.
func Dollars(v float64) string {
	return money.NewFromFloat(v, money.USD).Display()
}

// DollarsWhole formats a large amount without forcing cents: $12,345,678.
func DollarsWhole(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return "$" + humanize.Comma(int64(v))
	}
	return "$" + humanize.Commaf(v)
}

// Count formats an integer quantity with separators: 1,234,567.
func Count(v float64) string {
	return humanize.Comma(int64(v))
}

// Percent formats a ratio as a percentage with two decimals: 0.0123 -> 1.23%.
func Percent(ratio float64) string {
	return decimal.NewFromFloat(ratio).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// Plain formats v in its shortest form: 28.5, 1.2.
func Plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SignedChange formats a price move as "+1.23 (+0.45%)" or "-1.23 (-0.45%)".
// Both parts are rounded to cents first and the sign follows the rounded
// delta, so a move that rounds to zero reads "+0.00 (+0.00%)". up reports
// that sign.
func SignedChange(delta, pct float64) (text string, up bool) {
	d := decimal.NewFromFloat(delta).Round(2)
	p := decimal.NewFromFloat(pct).Round(2)
	up = !d.IsNegative()
	if up {
		return "+" + Grouped(d.InexactFloat64()) + " (+" + p.Abs().StringFixed(2) + "%)", true
	}
	return Grouped(d.InexactFloat64()) + " (-" + p.Abs().StringFixed(2) + "%)", false
}

// Number formats statement values: integers grouped without decimals,
// anything else with two.
func Number(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return Count(v)
	}
	return Grouped(v)
}
