package view

import (
	"html/template"

	"VibeFinance/internal/domain/models"
)

// Title is the browser title of the dashboard.
const Title = "VibeFinance Pro"

// Status selects which body the dashboard shows.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusLoaded   Status = "loaded"
	StatusNotFound Status = "not_found"
	StatusError    Status = "error"
)

// Page is everything the dashboard template needs for one render cycle.
type Page struct {
	Title   string
	Ticker  string
	Period  models.Period
	Periods []PeriodOption

	Status  Status
	Message string

	Header      *Header
	Metrics     []models.Stat
	Chart       template.JS
	Description template.HTML

	Valuation []models.Stat
	Financial []models.Stat

	NewsHeading string
	News        []template.HTML
	NewsEmpty   string

	Statements []StatementView
}

type PeriodOption struct {
	Value    models.Period
	Selected bool
}

// Header is the company line above the tabs. Nil when either price is missing.
type Header struct {
	Exchange  string
	Name      string
	Price     string
	Change    string
	Direction models.Direction
}

// StatementView is one Financials sub-tab: a table, or a notice when the
// statement could not be fetched.
type StatementView struct {
	Title   string
	Notice  string
	Columns []string
	Rows    []StatementRow
}

type StatementRow struct {
	Label string
	Cells []string
}
