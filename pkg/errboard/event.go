package errboard

import "time"

// Event is one system event.
// This is the stable public type; internal representations may evolve
// independently without breaking consumers.
type Event struct {
	Timestamp    time.Time `json:"timestamp"` // zero when missing or unparseable
	Severity     string    `json:"severity"`  // Error, Warning, Information, Critical
	Source       string    `json:"source"`
	TaskCategory string    `json:"task_category"`
	ProcessID    string    `json:"process_id"`
	EventID      string    `json:"event_id"`
}

// Chart describes one chart for any plotting front end.
type Chart struct {
	View       string   `json:"view"`
	Kind       string   `json:"kind"` // line, bar, scatter
	Title      string   `json:"title"`
	XAxis      string   `json:"x_axis"`
	YAxis      string   `json:"y_axis"`
	Series     []Series `json:"series"`
	ShowLegend bool     `json:"show_legend,omitempty"`
}

// Series is one trace. X and Y are parallel and never nil.
type Series struct {
	Name string   `json:"name,omitempty"`
	Mode string   `json:"mode,omitempty"`
	X    []string `json:"x"`
	Y    []int    `json:"y"`
}

// View is a selectable dashboard view.
type View struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
