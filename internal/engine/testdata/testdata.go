package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/crimson-sun/errboard/internal/engine/filter"
	"github.com/crimson-sun/errboard/internal/model"
)

//go:embed events.json
var eventsJSON []byte

// LoadEvents parses the embedded events.json fixture: a week of mixed-severity
// system events, two of the errors without a timestamp.
func LoadEvents() ([]model.Event, error) {
	var events []model.Event
	if err := json.Unmarshal(eventsJSON, &events); err != nil {
		return nil, fmt.Errorf("parse events.json: %w", err)
	}
	return events, nil
}

// LoadErrors returns only the error-severity fixture events.
func LoadErrors() ([]model.Event, error) {
	events, err := LoadEvents()
	if err != nil {
		return nil, err
	}
	return filter.Errors(events), nil
}
