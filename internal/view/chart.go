package view

import (
	"encoding/json"
	"time"

	"VibeFinance/internal/domain/models"
)

const (
	colorUp   = "#00ff73"
	colorDown = "#ff333a"
	colorFont = "#8b949e"
	colorGrid = "#30363d"
)

// Figure is a Plotly figure: traces plus layout, serialized as-is for
// Plotly.newPlot.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type string    `json:"type"`
	Mode string    `json:"mode"`
	Name string    `json:"name"`
	X    []string  `json:"x"`
	Y    []float64 `json:"y"`
	Line Line      `json:"line"`
}

type Line struct {
	Color string `json:"color"`
	Width int    `json:"width"`
}

type Layout struct {
	PaperBGColor string `json:"paper_bgcolor"`
	PlotBGColor  string `json:"plot_bgcolor"`
	Font         Font   `json:"font"`
	XAxis        Axis   `json:"xaxis"`
	YAxis        Axis   `json:"yaxis"`
	Margin       Margin `json:"margin"`
	Height       int    `json:"height"`
	HoverMode    string `json:"hovermode"`
}

type Font struct {
	Color string `json:"color"`
}

type Axis struct {
	ShowGrid  bool   `json:"showgrid"`
	ZeroLine  *bool  `json:"zeroline,omitempty"`
	GridColor string `json:"gridcolor,omitempty"`
	Side      string `json:"side,omitempty"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// BuildFigure draws the close line for history. The line colour follows
// trend, the first-vs-last comparison of the period. Returns nil for an
// empty history.
func BuildFigure(history []models.PricePoint, trend models.Direction) *Figure {
	if len(history) == 0 {
		return nil
	}

	color := colorUp
	if trend == models.DirectionDown {
		color = colorDown
	}

	trace := Trace{
		Type: "scatter",
		Mode: "lines",
		Name: "Close Price",
		X:    make([]string, len(history)),
		Y:    make([]float64, len(history)),
		Line: Line{Color: color, Width: 2},
	}
	for i, p := range history {
		trace.X[i] = p.Time.Format(time.RFC3339)
		trace.Y[i] = p.Close
	}

	noZero := false
	return &Figure{
		Data: []Trace{trace},
		Layout: Layout{
			PaperBGColor: "rgba(0,0,0,0)",
			PlotBGColor:  "rgba(0,0,0,0)",
			Font:         Font{Color: colorFont},
			XAxis:        Axis{ShowGrid: false, ZeroLine: &noZero},
			YAxis:        Axis{ShowGrid: true, GridColor: colorGrid, Side: "right"},
			Margin:       Margin{L: 0, R: 0, T: 10, B: 0},
			Height:       400,
			HoverMode:    "x unified",
		},
	}
}

// JSON encodes the figure for embedding in a script block.
func (f *Figure) JSON() (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
