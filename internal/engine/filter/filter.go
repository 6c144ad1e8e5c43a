package filter

import "github.com/crimson-sun/errboard/internal/model"

// Errors returns the events whose severity is Error, in input order.
// The input slice is never modified.
func Errors(events []model.Event) []model.Event {
	return BySeverity(events, model.SeverityError)
}

// BySeverity returns the events with the given severity, in input order.
func BySeverity(events []model.Event, sev model.Severity) []model.Event {
	if len(events) == 0 {
		return nil
	}
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if e.Severity == sev {
			out = append(out, e)
		}
	}
	return out
}
