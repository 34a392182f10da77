package api

import (
	"time"

	"VibeFinance/internal/domain/models"
)

// QuoteResponse is the data of a successful GET /api/quote.
type QuoteResponse struct {
	Symbol          string   `json:"symbol"`
	CompanyName     string   `json:"company_name"`
	Exchange        string   `json:"exchange,omitempty"`
	BusinessSummary string   `json:"business_summary,omitempty"`
	Period          string   `json:"period"`
	CurrentPrice    *float64 `json:"current_price"`
	PreviousClose   *float64 `json:"previous_close"`
	DayHigh         *float64 `json:"day_high"`
	DayLow          *float64 `json:"day_low"`
	Volume          *float64 `json:"volume"`

	Quote      *models.Quote     `json:"quote"`
	Statistics Statistics        `json:"statistics"`
	ChartTrend string            `json:"chart_trend,omitempty"`
	History    []HistoryPoint    `json:"history"`
	News       []models.NewsItem `json:"news"`
	Statements []StatementDTO    `json:"statements"`
}

type Statistics struct {
	Valuation []models.Stat `json:"valuation"`
	Financial []models.Stat `json:"financial"`
}

type HistoryPoint struct {
	Time  time.Time `json:"time"`
	Close float64   `json:"close"`
}

type StatementDTO struct {
	Kind      models.StatementKind `json:"kind"`
	Title     string               `json:"title"`
	Available bool                 `json:"available"`
	Error     string               `json:"error,omitempty"`
	Table     *models.Table        `json:"table,omitempty"`
}

func toQuoteResponse(s *models.Snapshot, period models.Period) QuoteResponse {
	resp := QuoteResponse{
		Symbol:          s.Symbol,
		CompanyName:     s.CompanyName,
		Exchange:        s.Exchange,
		BusinessSummary: s.BusinessSummary,
		Period:          string(period),
		CurrentPrice:    s.CurrentPrice,
		PreviousClose:   s.PreviousClose,
		DayHigh:         s.DayHigh,
		DayLow:          s.DayLow,
		Volume:          s.Volume,
		Quote:           s.Quote,
		Statistics:      Statistics{Valuation: s.Valuation, Financial: s.Financial},
		ChartTrend:      string(s.ChartTrend),
		History:         make([]HistoryPoint, len(s.History)),
		News:            s.News,
		Statements:      make([]StatementDTO, 0, len(models.StatementKinds)),
	}
	if resp.News == nil {
		resp.News = []models.NewsItem{}
	}
	for i, p := range s.History {
		resp.History[i] = HistoryPoint{Time: p.Time, Close: p.Close}
	}
	for _, kind := range models.StatementKinds {
		st := s.Statement(kind)
		dto := StatementDTO{Kind: kind, Title: kind.Title(), Available: st.Available()}
		if dto.Available {
			dto.Table = st.Table
		} else if st.Err != nil {
			dto.Error = st.Err.Error()
		}
		resp.Statements = append(resp.Statements, dto)
	}
	return resp
}
