package models

import "time"

// QuoteRequest is the query of GET /api/quote.
type QuoteRequest struct {
	Symbol string `query:"symbol" validate:"required,max=16"`
	Period string `query:"period" default:"1y" validate:"oneof=1d 5d 1mo 3mo 6mo 1y 5y max"`
}

// LookupEvent is one journal entry, written after every fetch.
type LookupEvent struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Source     string    `json:"source"` // page or api
	Symbol     string    `json:"symbol"`
	Period     string    `json:"period"`
	Outcome    Outcome   `json:"outcome"`
	Price      *float64  `json:"price,omitempty"`
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"duration_ms"`
	At         time.Time `json:"at"`
}
