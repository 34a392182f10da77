package yahoo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"VibeFinance/internal/domain/models"
)

var errNoStatement = errors.New("no statement data")

type statementSpec struct {
	module string
	list   string
}

var statementSpecs = map[models.StatementKind]statementSpec{
	models.StatementIncome:       {"incomeStatementHistory", "incomeStatementHistory"},
	models.StatementBalanceSheet: {"balanceSheetHistory", "balanceSheetStatements"},
	models.StatementCashFlow:     {"cashflowStatementHistory", "cashflowStatements"},
}

func (c *Client) GetIncomeStatement(ctx context.Context, symbol string) (*models.Table, error) {
	return c.statement(ctx, symbol, models.StatementIncome)
}

func (c *Client) GetBalanceSheet(ctx context.Context, symbol string) (*models.Table, error) {
	return c.statement(ctx, symbol, models.StatementBalanceSheet)
}

func (c *Client) GetCashFlow(ctx context.Context, symbol string) (*models.Table, error) {
	return c.statement(ctx, symbol, models.StatementCashFlow)
}

func (c *Client) statement(ctx context.Context, symbol string, kind models.StatementKind) (*models.Table, error) {
	src := statementSpecs[kind]
	doc, err := c.getJSON(ctx, quoteSummaryPath, symbol, map[string]string{"modules": src.module})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind.Title(), err)
	}

	periods := asList(lookup(doc, summaryResult+"."+src.module+"."+src.list))
	t := buildTable(periods)
	if t.Empty() {
		return nil, fmt.Errorf("%s: %w", kind.Title(), errNoStatement)
	}
	return t, nil
}

// buildTable turns a list of per-period statements into one column per
// period (endDate) and one row per line item, rows sorted by label.
func buildTable(periods []any) *models.Table {
	t := &models.Table{}
	values := map[string]map[int]float64{}

	for col, p := range periods {
		m, ok := p.(map[string]any)
		if !ok {
			continue
		}
		t.Columns = append(t.Columns, columnName(m["endDate"], col))
		idx := len(t.Columns) - 1
		for key, v := range m {
			if key == "maxAge" || key == "endDate" {
				continue
			}
			if _, ok := values[key]; !ok {
				values[key] = map[int]float64{}
			}
			if f, ok := scalar(v).(float64); ok {
				values[key][idx] = f
			}
		}
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		row := models.TableRow{Label: Label(k), Values: make([]*float64, len(t.Columns))}
		for idx, f := range values[k] {
			row.Values[idx] = &f
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func columnName(endDate any, col int) string {
	if m, ok := endDate.(map[string]any); ok {
		if s, ok := m["fmt"].(string); ok && s != "" {
			return s
		}
	}
	return fmt.Sprintf("period %d", col+1)
}

// Label turns a camelCase field name into words: totalRevenue -> Total Revenue.
func Label(key string) string {
	var b strings.Builder
	runes := []rune(key)
	for i, r := range runes {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
