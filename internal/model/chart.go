package model

import "github.com/crimson-sun/errboard/internal/view"

// ChartKind is the shape a renderer should draw.
type ChartKind string

const (
	ChartLine    ChartKind = "line"
	ChartBar     ChartKind = "bar"
	ChartScatter ChartKind = "scatter"
)

// Axis holds the axis titles.
type Axis struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// ChartSeries is one named trace. X and Y are parallel and never nil.
type ChartSeries struct {
	Name string   `json:"name,omitempty"`
	Mode string   `json:"mode,omitempty"` // "markers" for scatter traces
	X    []string `json:"x"`
	Y    []int    `json:"y"`
}

// ChartSpec is a renderer-agnostic chart descriptor built per request.
type ChartSpec struct {
	View       view.ID       `json:"view"`
	Kind       ChartKind     `json:"kind"`
	Title      string        `json:"title"`
	Axis       Axis          `json:"axis"`
	Series     []ChartSeries `json:"series"`
	ShowLegend bool          `json:"show_legend,omitempty"`
}
