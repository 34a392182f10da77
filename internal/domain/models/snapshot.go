package models

// Direction classifies a price move for display styling.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// DirectionOf is up for non-negative deltas.
func DirectionOf(delta float64) Direction {
	if delta >= 0 {
		return DirectionUp
	}
	return DirectionDown
}

// Quote is the header price line. It exists only when both the current
// price and the previous close resolve.
type Quote struct {
	Current   float64   `json:"current"`
	Previous  float64   `json:"previous"`
	Delta     float64   `json:"delta"`
	PctDelta  float64   `json:"pct_delta"`
	Direction Direction `json:"direction"`
}

// Stat is one formatted row of a statistics table.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Snapshot is everything shown for one symbol at fetch time.
type Snapshot struct {
	Symbol          string
	CompanyName     string
	Exchange        string
	BusinessSummary string

	CurrentPrice  *float64
	PreviousClose *float64
	DayHigh       *float64
	DayLow        *float64
	Volume        *float64

	Quote *Quote

	// Valuation and Financial are the two statistics tables.
	Valuation []Stat
	Financial []Stat

	History    []PricePoint
	ChartTrend Direction
	News       []NewsItem
	Statements []StatementResult
}

// Statement returns the result for kind.
func (s *Snapshot) Statement(kind StatementKind) StatementResult {
	for _, st := range s.Statements {
		if st.Kind == kind {
			return st
		}
	}
	return StatementResult{Kind: kind}
}
