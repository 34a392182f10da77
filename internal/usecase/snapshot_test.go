package usecase_test

import (
	"testing"

	"VibeFinance/internal/domain/models"
	"VibeFinance/internal/usecase"

	"github.com/stretchr/testify/require"
)

func TestResolvePricesFallbacks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		info     models.InfoRecord
		current  *float64
		previous *float64
	}{
		{"primary keys", models.InfoRecord{"currentPrice": 10.0, "previousClose": 9.0}, ptr(10), ptr(9)},
		{"regular market fallback", models.InfoRecord{"regularMarketPrice": 11.0, "regularMarketPreviousClose": 8.0}, ptr(11), ptr(8)},
		{"zero falls through", models.InfoRecord{"currentPrice": 0.0, "regularMarketPrice": 12.0, "previousClose": 0.0, "regularMarketPreviousClose": 7.0}, ptr(12), ptr(7)},
		{"nav price last", models.InfoRecord{"currentPrice": nil, "navPrice": 50.0}, ptr(50), nil},
		{"nothing", models.InfoRecord{"longName": "x"}, nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cur, prev, q := usecase.ResolvePrices(tc.info)
			require.Equal(t, tc.current, cur)
			require.Equal(t, tc.previous, prev)
			if tc.current == nil || tc.previous == nil {
				require.Nil(t, q)
			} else {
				require.NotNil(t, q)
			}
		})
	}
}

func TestChartTrend(t *testing.T) {
	t.Parallel()

	require.Equal(t, models.Direction(""), usecase.ChartTrend(nil))
	require.Equal(t, models.DirectionUp, usecase.ChartTrend(history(5)))
	require.Equal(t, models.DirectionUp, usecase.ChartTrend(history(5, 1, 5)))
	require.Equal(t, models.DirectionDown, usecase.ChartTrend(history(5, 9, 4.99)))
}

func TestBuildStatistics(t *testing.T) {
	t.Parallel()

	valuation, financial := usecase.BuildStatistics(models.InfoRecord{
		"trailingPE":     28.53,
		"beta":           1.24,
		"dividendYield":  0.0044,
		"profitMargins":  0.0,
		"returnOnEquity": 1.5,
		"totalCash":      61555000000.0,
		"totalDebt":      "n/a",
	})

	require.Equal(t, []models.Stat{
		{Label: "PE Ratio (Trailing)", Value: "28.53"},
		{Label: "Forward PE", Value: "N/A"},
		{Label: "PEG Ratio", Value: "N/A"},
		{Label: "Price to Sales", Value: "N/A"},
		{Label: "Beta", Value: "1.24"},
	}, valuation)
	require.Equal(t, []models.Stat{
		{Label: "Dividend Yield", Value: "0.44%"},
		{Label: "Profit Margin", Value: "N/A"},
		{Label: "Return on Equity", Value: "150.00%"},
		{Label: "Total Cash", Value: "$61,555,000,000"},
		{Label: "Total Debt", Value: "N/A"},
	}, financial)
}

func ptr(v float64) *float64 { return &v }
