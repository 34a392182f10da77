package models

import "time"

// PricePoint is one close in a price history series.
type PricePoint struct {
	Time  time.Time `json:"time"`
	Close float64   `json:"close"`
}

type NewsItem struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Publisher string `json:"publisher"`
}

type StatementKind string

const (
	StatementIncome       StatementKind = "income"
	StatementBalanceSheet StatementKind = "balance_sheet"
	StatementCashFlow     StatementKind = "cash_flow"
)

// StatementKinds lists statements in tab order.
var StatementKinds = []StatementKind{StatementIncome, StatementBalanceSheet, StatementCashFlow}

// Title is the tab label for the statement.
func (k StatementKind) Title() string {
	switch k {
	case StatementIncome:
		return "Income Statement"
	case StatementBalanceSheet:
		return "Balance Sheet"
	case StatementCashFlow:
		return "Cash Flow"
	default:
		return string(k)
	}
}

// Table is a financial statement: one column per reporting period, one row
// per line item. A nil value is a missing cell.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    []TableRow `json:"rows"`
}

type TableRow struct {
	Label  string     `json:"label"`
	Values []*float64 `json:"values"`
}

func (t *Table) Empty() bool {
	return t == nil || len(t.Columns) == 0 || len(t.Rows) == 0
}

// StatementResult is the outcome of one statement fetch. Exactly one of
// Table or Err is set.
type StatementResult struct {
	Kind  StatementKind
	Table *Table
	Err   error
}

func (s StatementResult) Available() bool {
	return s.Err == nil && s.Table != nil
}
