package view_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"VibeFinance/internal/domain/models"
	"VibeFinance/internal/view"

	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func loadedSnapshot() *models.Snapshot {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &models.Snapshot{
		Symbol:          "AAPL",
		CompanyName:     "Apple Inc.",
		Exchange:        "NMS",
		BusinessSummary: "Apple designs *phones*.",
		CurrentPrice:    f(1234.56),
		PreviousClose:   f(1230),
		DayHigh:         f(1240.5),
		Volume:          f(48123456),
		Quote: &models.Quote{
			Current: 1234.56, Previous: 1230, Delta: 4.56, PctDelta: 4.56 / 1230 * 100,
			Direction: models.DirectionUp,
		},
		Valuation: []models.Stat{{Label: "Beta", Value: "1.2"}},
		Financial: []models.Stat{{Label: "Total Cash", Value: "$61,555,000,000"}},
		History: []models.PricePoint{
			{Time: base, Close: 100},
			{Time: base.Add(24 * time.Hour), Close: 95},
		},
		ChartTrend: models.DirectionDown,
		News: []models.NewsItem{
			{Title: "Apple [beats] estimates", Link: "https://x.test/a", Publisher: "Reuters"},
		},
		Statements: []models.StatementResult{
			{Kind: models.StatementIncome, Table: &models.Table{
				Columns: []string{"2024-09-28", "2023-09-30"},
				Rows:    []models.TableRow{{Label: "Total Revenue", Values: []*float64{f(391035000000), nil}}},
			}},
			{Kind: models.StatementBalanceSheet, Err: errors.New("boom")},
			{Kind: models.StatementCashFlow, Err: errors.New("boom")},
		},
	}
}

func TestRenderLoaded(t *testing.T) {
	state := models.SessionState{SelectedTicker: "AAPL"}

	p := view.Render(state, models.Period5D, models.Loaded(loadedSnapshot()))

	require.Equal(t, view.StatusLoaded, p.Status)
	require.Equal(t, "VibeFinance Pro", p.Title)
	require.Equal(t, models.Period5D, p.Period)

	require.NotNil(t, p.Header)
	require.Equal(t, "NMS", p.Header.Exchange)
	require.Equal(t, "Apple Inc. (AAPL)", p.Header.Name)
	require.Equal(t, "1,234.56", p.Header.Price)
	require.Equal(t, "+4.56 (+0.37%)", p.Header.Change)
	require.Equal(t, models.DirectionUp, p.Header.Direction)

	require.Equal(t, []models.Stat{
		{Label: "Previous Close", Value: "$1,230.00"},
		{Label: "Day High", Value: "$1,240.50"},
		{Label: "Day Low", Value: "$0.00"},
		{Label: "Volume", Value: "48,123,456"},
	}, p.Metrics)

	require.Contains(t, string(p.Description), "<em>phones</em>")
	require.Equal(t, "Latest News for AAPL", p.NewsHeading)
	require.Len(t, p.News, 1)
	require.Contains(t, string(p.News[0]), `<a href="https://x.test/a">Apple [beats] estimates</a>`)
	require.Contains(t, string(p.News[0]), "<em>Source: Reuters</em>")
	require.Empty(t, p.NewsEmpty)

	require.Len(t, p.Statements, 3)
	require.Equal(t, "Income Statement", p.Statements[0].Title)
	require.Empty(t, p.Statements[0].Notice)
	require.Equal(t, []string{"391,035,000,000", ""}, p.Statements[0].Rows[0].Cells)
	require.Equal(t, "Balance Sheet data unavailable.", p.Statements[1].Notice)
	require.Equal(t, "Cash Flow data unavailable.", p.Statements[2].Notice)
}

func TestRenderChartUsesTrendNotHeader(t *testing.T) {
	p := view.Render(models.NewSessionState(), models.Period1Y, models.Loaded(loadedSnapshot()))

	var fig view.Figure
	require.NoError(t, json.Unmarshal([]byte(p.Chart), &fig))
	require.Len(t, fig.Data, 1)
	require.Equal(t, "Close Price", fig.Data[0].Name)
	require.Equal(t, "#ff333a", fig.Data[0].Line.Color)
	require.Equal(t, 2, fig.Data[0].Line.Width)
	require.Equal(t, []float64{100, 95}, fig.Data[0].Y)
	require.Equal(t, "2024-03-01T00:00:00Z", fig.Data[0].X[0])
	require.Equal(t, 400, fig.Layout.Height)
	require.Equal(t, "right", fig.Layout.YAxis.Side)
	require.Equal(t, "#30363d", fig.Layout.YAxis.GridColor)
	require.Equal(t, "x unified", fig.Layout.HoverMode)

	require.Equal(t, models.DirectionUp, p.Header.Direction)
}

func TestRenderSparseSnapshot(t *testing.T) {
	snap := &models.Snapshot{
		Symbol:       "XYZ",
		CompanyName:  "XYZ",
		CurrentPrice: f(10),
		Statements: []models.StatementResult{
			{Kind: models.StatementIncome, Err: errors.New("x")},
		},
	}

	p := view.Render(models.SessionState{SelectedTicker: "XYZ"}, models.Period1Y, models.Loaded(snap))

	require.Nil(t, p.Header, "no header without a previous close")
	require.Equal(t, "N/A", p.Metrics[0].Value)
	require.Equal(t, "0", p.Metrics[3].Value)
	require.Empty(t, p.Chart)
	require.Contains(t, string(p.Description), "No summary available.")
	require.Equal(t, "No recent news found for this ticker.", p.NewsEmpty)
	require.Equal(t, "Balance Sheet data unavailable.", p.Statements[1].Notice)
}

func TestRenderHeaderDefaultsExchange(t *testing.T) {
	snap := loadedSnapshot()
	snap.Exchange = ""
	snap.Quote.Delta, snap.Quote.PctDelta, snap.Quote.Direction = -5, -5.0/1230*100, models.DirectionDown

	p := view.Render(models.NewSessionState(), models.Period1Y, models.Loaded(snap))

	require.Equal(t, "Exchange", p.Header.Exchange)
	require.Equal(t, "-5.00 (-0.41%)", p.Header.Change)
	require.Equal(t, models.DirectionDown, p.Header.Direction)
}

func TestRenderHeaderSignFollowsRoundedChange(t *testing.T) {
	snap := loadedSnapshot()
	snap.Quote.Delta, snap.Quote.PctDelta, snap.Quote.Direction = -0.001, -0.0008, models.DirectionDown

	p := view.Render(models.NewSessionState(), models.Period1Y, models.Loaded(snap))

	require.Equal(t, "+0.00 (+0.00%)", p.Header.Change)
	require.Equal(t, models.DirectionUp, p.Header.Direction)
}

func TestRenderMessages(t *testing.T) {
	state := models.SessionState{SelectedTicker: "ZZZZ"}

	p := view.Render(state, models.Period1Y, models.NotFound("ZZZZ"))
	require.Equal(t, view.StatusNotFound, p.Status)
	require.Equal(t, "❌ Ticker 'ZZZZ' not found.", p.Message)
	require.Nil(t, p.Header)
	require.Empty(t, p.Statements)

	p = view.Render(state, models.Period1Y, models.Failed("ZZZZ", errors.New("connection reset")))
	require.Equal(t, view.StatusError, p.Status)
	require.Equal(t, "Something went wrong while fetching data: connection reset", p.Message)
}

func TestRenderNormalizesPeriod(t *testing.T) {
	p := view.Render(models.NewSessionState(), models.Period("2w"), models.FetchResult{})

	require.Equal(t, view.StatusIdle, p.Status)
	require.Equal(t, models.Period1Y, p.Period)
	selected := 0
	for _, o := range p.Periods {
		if o.Selected {
			selected++
			require.Equal(t, models.Period1Y, o.Value)
		}
	}
	require.Equal(t, 1, selected)
}

func TestRenderIsDeterministic(t *testing.T) {
	state := models.NewSessionState()
	a := view.Render(state, models.Period1Y, models.Loaded(loadedSnapshot()))
	b := view.Render(state, models.Period1Y, models.Loaded(loadedSnapshot()))
	require.Equal(t, a, b)
}

func TestRendererEscapesProviderText(t *testing.T) {
	r, err := view.NewRenderer()
	require.NoError(t, err)

	snap := loadedSnapshot()
	snap.CompanyName = "<script>alert(1)</script>"
	snap.BusinessSummary = "<b>raw</b> summary"
	snap.News = []models.NewsItem{{Title: "x", Link: "javascript:alert(1)", Publisher: "p"}}

	var buf bytes.Buffer
	page := view.Render(models.NewSessionState(), models.Period1Y, models.Loaded(snap))
	require.NoError(t, r.Render(&buf, view.DashboardTemplate, page, nil))

	html := buf.String()
	require.NotContains(t, html, "<script>alert(1)</script>")
	require.NotContains(t, html, "<b>raw</b>")
	require.NotContains(t, html, `href="javascript:`)
	require.Contains(t, html, "Plotly.newPlot")
	require.Equal(t, 1, strings.Count(html, `<option value="1y" selected>`))
}
