package models

// Period is a lookback window for historical prices.
type Period string

const (
	Period1D  Period = "1d"
	Period5D  Period = "5d"
	Period1M  Period = "1mo"
	Period3M  Period = "3mo"
	Period6M  Period = "6mo"
	Period1Y  Period = "1y"
	Period5Y  Period = "5y"
	PeriodMax Period = "max"
)

// Periods lists the selectable periods in display order.
var Periods = []Period{Period1D, Period5D, Period1M, Period3M, Period6M, Period1Y, Period5Y, PeriodMax}

func IsValidPeriod(p Period) bool {
	for _, v := range Periods {
		if v == p {
			return true
		}
	}
	return false
}

func DefaultPeriod() Period { return Period1Y }

// NormalizePeriod converts a raw value to a valid period (or the default).
func NormalizePeriod(s string) Period {
	p := Period(s)
	if IsValidPeriod(p) {
		return p
	}
	return DefaultPeriod()
}
