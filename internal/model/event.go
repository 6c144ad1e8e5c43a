package model

import "time"

// Severity is the normalized classification of an event.
type Severity string

const (
	SeverityCritical    Severity = "Critical"
	SeverityError       Severity = "Error"
	SeverityWarning     Severity = "Warning"
	SeverityInformation Severity = "Information"
)

// Event is a single normalized log record. Events are read-only once the
// normalizer has produced them.
type Event struct {
	Timestamp    *time.Time `json:"timestamp"` // nil when the source value was invalid
	Severity     Severity   `json:"severity"`
	Source       string     `json:"source"`
	TaskCategory string     `json:"task_category"`
	ProcessID    string     `json:"process_id"`
	EventID      string     `json:"event_id"`
}

// HasTimestamp reports whether the event carries a valid timestamp.
func (e Event) HasTimestamp() bool {
	return e.Timestamp != nil
}
