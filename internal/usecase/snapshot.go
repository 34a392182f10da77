package usecase

import (
	"VibeFinance/internal/domain/models"
	"VibeFinance/pkg/util"
)

// Found reports whether an info record describes a quotable symbol: it must be
// non-empty and carry currentPrice or regularMarketPrice.
func Found(info models.InfoRecord) bool {
	if len(info) == 0 {
		return false
	}
	return info.Has("currentPrice") || info.Has("regularMarketPrice")
}

// ResolvePrices applies the fallback chains
// currentPrice -> regularMarketPrice -> navPrice and
// previousClose -> regularMarketPreviousClose.
// The quote is nil unless both sides resolve.
func ResolvePrices(info models.InfoRecord) (current, previous *float64, quote *models.Quote) {
	if v, ok := info.FirstNonZero("currentPrice", "regularMarketPrice", "navPrice"); ok {
		current = &v
	}
	if v, ok := info.FirstNonZero("previousClose", "regularMarketPreviousClose"); ok {
		previous = &v
	}
	if current == nil || previous == nil {
		return current, previous, nil
	}

	delta := *current - *previous
	return current, previous, &models.Quote{
		Current:   *current,
		Previous:  *previous,
		Delta:     delta,
		PctDelta:  delta / *previous * 100,
		Direction: models.DirectionOf(delta),
	}
}

// ChartTrend compares the last close of the period with the first. It is
// deliberately independent of the header quote, which uses the previous close.
func ChartTrend(history []models.PricePoint) models.Direction {
	if len(history) == 0 {
		return ""
	}
	if history[len(history)-1].Close >= history[0].Close {
		return models.DirectionUp
	}
	return models.DirectionDown
}

// BuildSnapshot fills everything derived from the info record.
func BuildSnapshot(symbol string, info models.InfoRecord) *models.Snapshot {
	s := &models.Snapshot{
		Symbol:          symbol,
		CompanyName:     info.String("longName"),
		Exchange:        info.String("exchange"),
		BusinessSummary: info.String("longBusinessSummary"),
	}
	if s.CompanyName == "" {
		s.CompanyName = symbol
	}
	s.CurrentPrice, s.PreviousClose, s.Quote = ResolvePrices(info)
	s.DayHigh = floatPtr(info, "dayHigh")
	s.DayLow = floatPtr(info, "dayLow")
	s.Volume = floatPtr(info, "regularMarketVolume")
	s.Valuation, s.Financial = BuildStatistics(info)
	return s
}

// BuildStatistics renders the valuation and financial-health tables.
func BuildStatistics(info models.InfoRecord) (valuation, financial []models.Stat) {
	raw := func(key string) string {
		if v, ok := info.Float(key); ok {
			return util.Plain(v)
		}
		if s := info.String(key); s != "" {
			return s
		}
		return util.NotAvailable
	}
	pct := func(key string) string {
		if v, ok := info.Float(key); ok && v != 0 {
			return util.Percent(v)
		}
		return util.NotAvailable
	}
	amount := func(key string) string {
		if v, ok := info.Float(key); ok {
			return util.DollarsWhole(v)
		}
		return util.NotAvailable
	}

	valuation = []models.Stat{
		{Label: "PE Ratio (Trailing)", Value: raw("trailingPE")},
		{Label: "Forward PE", Value: raw("forwardPE")},
		{Label: "PEG Ratio", Value: raw("pegRatio")},
		{Label: "Price to Sales", Value: raw("priceToSalesTrailing12Months")},
		{Label: "Beta", Value: raw("beta")},
	}
	financial = []models.Stat{
		{Label: "Dividend Yield", Value: pct("dividendYield")},
		{Label: "Profit Margin", Value: pct("profitMargins")},
		{Label: "Return on Equity", Value: pct("returnOnEquity")},
		{Label: "Total Cash", Value: amount("totalCash")},
		{Label: "Total Debt", Value: amount("totalDebt")},
	}
	return valuation, financial
}

func floatPtr(info models.InfoRecord, key string) *float64 {
	if v, ok := info.Float(key); ok {
		return &v
	}
	return nil
}
