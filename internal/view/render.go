package view

import (
	"fmt"
	"html/template"

	"VibeFinance/internal/domain/models"
	"VibeFinance/pkg/util"
)

const (
	noSummary = "No summary available."
	noNews    = "No recent news found for this ticker."
)

// Render builds the page for one render cycle. It is pure: the same inputs
// always give the same page.
func Render(state models.SessionState, period models.Period, res models.FetchResult) Page {
	period = models.NormalizePeriod(string(period))
	p := Page{
		Title:   Title,
		Ticker:  state.SelectedTicker,
		Period:  period,
		Periods: periodOptions(period),
		Status:  StatusIdle,
	}

	switch res.Outcome {
	case models.OutcomeNotFound:
		p.Status = StatusNotFound
		p.Message = NotFoundMessage(res.Symbol)
	case models.OutcomeFailed:
		p.Status = StatusError
		p.Message = ErrorMessage(res.Err)
	case models.OutcomeLoaded:
		p.Status = StatusLoaded
		renderSnapshot(&p, res.Snapshot)
	}
	return p
}

func NotFoundMessage(symbol string) string {
	return fmt.Sprintf("❌ Ticker '%s' not found.", symbol)
}

func ErrorMessage(err error) string {
	return fmt.Sprintf("Something went wrong while fetching data: %v", err)
}

// UnavailableNotice is shown in place of a statement that failed to load.
func UnavailableNotice(kind models.StatementKind) string {
	return kind.Title() + " data unavailable."
}

func periodOptions(selected models.Period) []PeriodOption {
	opts := make([]PeriodOption, len(models.Periods))
	for i, p := range models.Periods {
		opts[i] = PeriodOption{Value: p, Selected: p == selected}
	}
	return opts
}

func renderSnapshot(p *Page, s *models.Snapshot) {
	if q := s.Quote; q != nil {
		exchange := s.Exchange
		if exchange == "" {
			exchange = "Exchange"
		}
		change, up := util.SignedChange(q.Delta, q.PctDelta)
		// Styling follows the sign shown, which is rounded to cents.
		dir := models.DirectionDown
		if up {
			dir = models.DirectionUp
		}
		p.Header = &Header{
			Exchange:  exchange,
			Name:      fmt.Sprintf("%s (%s)", s.CompanyName, s.Symbol),
			Price:     util.Grouped(q.Current),
			Change:    change,
			Direction: dir,
		}
	}

	prev := util.NotAvailable
	if s.PreviousClose != nil {
		prev = util.Dollars(*s.PreviousClose)
	}
	p.Metrics = []models.Stat{
		{Label: "Previous Close", Value: prev},
		{Label: "Day High", Value: util.Dollars(orZero(s.DayHigh))},
		{Label: "Day Low", Value: util.Dollars(orZero(s.DayLow))},
		{Label: "Volume", Value: util.Count(orZero(s.Volume))},
	}

	if fig := BuildFigure(s.History, s.ChartTrend); fig != nil {
		if js, err := fig.JSON(); err == nil {
			p.Chart = template.JS(js)
		}
	}

	summary := s.BusinessSummary
	if summary == "" {
		summary = noSummary
	}
	p.Description = markdown(summary)

	p.Valuation = s.Valuation
	p.Financial = s.Financial

	p.NewsHeading = "Latest News for " + s.Symbol
	for _, item := range s.News {
		p.News = append(p.News, markdown(newsMarkdown(item)))
	}
	if len(p.News) == 0 {
		p.NewsEmpty = noNews
	}

	for _, kind := range models.StatementKinds {
		p.Statements = append(p.Statements, statementView(s.Statement(kind)))
	}
}

func statementView(r models.StatementResult) StatementView {
	v := StatementView{Title: r.Kind.Title()}
	if !r.Available() {
		v.Notice = UnavailableNotice(r.Kind)
		return v
	}

	v.Columns = r.Table.Columns
	for _, row := range r.Table.Rows {
		cells := make([]string, len(row.Values))
		for i, val := range row.Values {
			if val != nil {
				cells[i] = util.Number(*val)
			}
		}
		v.Rows = append(v.Rows, StatementRow{Label: row.Label, Cells: cells})
	}
	return v
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
