package yahoo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"VibeFinance/internal/domain/models"
	"VibeFinance/pkg/logger"

	finance "github.com/piquette/finance-go"
)

const (
	quoteSummaryPath = "/v10/finance/quoteSummary/{symbol}"
	summaryResult    = "$.quoteSummary.result[0]"
)

var infoModules = []string{"price", "summaryDetail", "assetProfile", "defaultKeyStatistics", "financialData"}

// infoFields maps InfoRecord keys to their location in a quoteSummary result.
var infoFields = map[string]string{
	"currentPrice":                 "financialData.currentPrice",
	"regularMarketPrice":           "price.regularMarketPrice",
	"navPrice":                     "summaryDetail.navPrice",
	"previousClose":                "summaryDetail.previousClose",
	"regularMarketPreviousClose":   "price.regularMarketPreviousClose",
	"dayHigh":                      "summaryDetail.dayHigh",
	"dayLow":                       "summaryDetail.dayLow",
	"regularMarketVolume":          "price.regularMarketVolume",
	"longName":                     "price.longName",
	"shortName":                    "price.shortName",
	"exchange":                     "price.exchange",
	"currency":                     "price.currency",
	"longBusinessSummary":          "assetProfile.longBusinessSummary",
	"trailingPE":                   "summaryDetail.trailingPE",
	"forwardPE":                    "summaryDetail.forwardPE",
	"pegRatio":                     "defaultKeyStatistics.pegRatio",
	"priceToSalesTrailing12Months": "summaryDetail.priceToSalesTrailing12Months",
	"beta":                         "summaryDetail.beta",
	"dividendYield":                "summaryDetail.dividendYield",
	"profitMargins":                "financialData.profitMargins",
	"returnOnEquity":               "financialData.returnOnEquity",
	"totalCash":                    "financialData.totalCash",
	"totalDebt":                    "financialData.totalDebt",
}

// GetInfo returns the flattened quote/company record. An unknown symbol
// yields an empty record and no error.
func (c *Client) GetInfo(ctx context.Context, symbol string) (models.InfoRecord, error) {
	info, err := c.quoteSummary(ctx, symbol)
	if err == nil {
		return info, nil
	}
	if errors.Is(err, errNotFound) {
		return models.InfoRecord{}, nil
	}
	if c.quoteFn == nil || ctx.Err() != nil {
		return nil, err
	}

	c.log.Warn("quoteSummary failed, using quote fallback",
		logger.String("symbol", symbol),
		logger.Error(err),
	)
	q, qerr := c.fallbackQuote(ctx, symbol)
	if qerr != nil {
		return nil, fmt.Errorf("%w (fallback: %v)", err, qerr)
	}
	return fromQuote(q), nil
}

type quoteResult struct {
	q   *finance.Quote
	err error
}

// fallbackQuote runs quoteFn, which takes no context, and gives up when ctx ends.
func (c *Client) fallbackQuote(ctx context.Context, symbol string) (*finance.Quote, error) {
	done := make(chan quoteResult, 1)
	go func() {
		q, err := c.quoteFn(symbol)
		done <- quoteResult{q: q, err: err}
	}()

	select {
	case r := <-done:
		return r.q, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Client) quoteSummary(ctx context.Context, symbol string) (models.InfoRecord, error) {
	doc, err := c.getJSON(ctx, quoteSummaryPath, symbol, map[string]string{
		"modules": strings.Join(infoModules, ","),
	})
	if err != nil {
		return nil, err
	}
	if lookup(doc, summaryResult) == nil {
		return models.InfoRecord{}, nil
	}

	info := make(models.InfoRecord, len(infoFields))
	for key, path := range infoFields {
		if v := scalar(lookup(doc, summaryResult+"."+path)); v != nil {
			info[key] = v
		}
	}
	return info, nil
}

// fromQuote maps a finance-go quote onto the InfoRecord vocabulary. A nil
// quote is an unknown symbol.
func fromQuote(q *finance.Quote) models.InfoRecord {
	if q == nil {
		return models.InfoRecord{}
	}
	info := models.InfoRecord{
		"regularMarketPrice":         q.RegularMarketPrice,
		"regularMarketPreviousClose": q.RegularMarketPreviousClose,
		"dayHigh":                    q.RegularMarketDayHigh,
		"dayLow":                     q.RegularMarketDayLow,
		"regularMarketVolume":        float64(q.RegularMarketVolume),
	}
	if q.ShortName != "" {
		info["longName"] = q.ShortName
	}
	if q.FullExchangeName != "" {
		info["exchange"] = q.FullExchangeName
	}
	return info
}
