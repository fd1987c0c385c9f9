package entity

import "time"

// ChartKind identifies how a chart is drawn.
type ChartKind string

const (
	ChartLine    ChartKind = "line"
	ChartBar     ChartKind = "bar"
	ChartScatter ChartKind = "scatter"
)

// ChartPoint is a labelled value of a line or bar chart.
type ChartPoint struct {
	Label string    `json:"label"`
	X     float64   `json:"x,omitempty"`
	Date  time.Time `json:"date,omitempty"`
	Value float64   `json:"value"`
}

// ChartSpec is a render-ready description of one chart.
type ChartSpec struct {
	ID     string       `json:"id"`
	Kind   ChartKind    `json:"kind"`
	Title  string       `json:"title"`
	XLabel string       `json:"x_label"`
	YLabel string       `json:"y_label"`
	Points []ChartPoint `json:"points"`
	Colors []string     `json:"colors,omitempty"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
}

// Section is a titled block of the dashboard. Text carries the printed statistic, if any.
type Section struct {
	Title  string      `json:"title"`
	Text   string      `json:"text,omitempty"`
	Charts []ChartSpec `json:"charts"`
}
