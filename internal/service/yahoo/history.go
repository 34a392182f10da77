package yahoo

import (
	"context"
	"encoding/json"
	"fmt"

	"VibeFinance/internal/domain/models"
	"VibeFinance/pkg/util"
)

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Interval picks the bar size for a period: intraday bars for short
// windows, daily otherwise.
func Interval(p models.Period) string {
	switch p {
	case models.Period1D:
		return "5m"
	case models.Period5D:
		return "30m"
	default:
		return "1d"
	}
}

// GetHistory returns closes for the period, oldest first. Bars without a
// close are skipped.
func (c *Client) GetHistory(ctx context.Context, symbol string, period models.Period) ([]models.PricePoint, error) {
	req := c.http.R().SetContext(ctx).SetQueryParams(map[string]string{
		"range":    string(period),
		"interval": Interval(period),
	}).SetPathParam("symbol", symbol)
	resp, err := req.Get("/v8/finance/chart/{symbol}")
	if err != nil {
		return nil, fmt.Errorf("yahoo chart: %w", err)
	}

	var body chartResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		if resp.IsError() {
			return nil, fmt.Errorf("yahoo chart: status %d", resp.StatusCode())
		}
		return nil, fmt.Errorf("yahoo chart: decode: %w", err)
	}
	if e := body.Chart.Error; e != nil {
		return nil, fmt.Errorf("yahoo chart: %s: %s", e.Code, e.Description)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("yahoo chart: status %d", resp.StatusCode())
	}
	if len(body.Chart.Result) == 0 {
		return nil, nil
	}

	r := body.Chart.Result[0]
	if len(r.Indicators.Quote) == 0 {
		return nil, nil
	}
	closes := r.Indicators.Quote[0].Close

	out := make([]models.PricePoint, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		out = append(out, models.PricePoint{Time: util.FromUnix(ts), Close: *closes[i]})
	}
	return out, nil
}
