// Package normalize turns raw source rows into typed events. Invalid
// timestamps are coerced to nil; normalization itself never fails.
package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/crimson-sun/errboard/internal/model"
)

// Columns maps each event field to its source column header.
type Columns struct {
	Timestamp    string
	Severity     string
	Source       string
	TaskCategory string
	ProcessID    string
	EventID      string
}

// DefaultColumns returns the headers of the system event export.
func DefaultColumns() Columns {
	return Columns{
		Timestamp:    "Data y hora",
		Severity:     "Nível",
		Source:       "Fuente",
		TaskCategory: "Categoria da Tarea",
		ProcessID:    "Identificación de procesos",
		EventID:      "Identificación de eventos",
	}
}

// Excel serial range accepted for numeric cells: 1970-01-01 up to, not
// including, 10000-01-01. Smaller numbers are more likely counts or years
// than dates.
const (
	minSerial = 25569
	maxSerial = 2958466
)

// DefaultLayouts are tried in order when parsing timestamps.
var DefaultLayouts = []string{
	"01/02/2006 03:04:05 PM",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"1/2/2006 3:04:05 PM",
}

var severities = map[string]model.Severity{
	"erro":        model.SeverityError,
	"error":       model.SeverityError,
	"err":         model.SeverityError,
	"aviso":       model.SeverityWarning,
	"advertencia": model.SeverityWarning,
	"warning":     model.SeverityWarning,
	"warn":        model.SeverityWarning,
	"informações": model.SeverityInformation,
	"información": model.SeverityInformation,
	"information": model.SeverityInformation,
	"info":        model.SeverityInformation,
	"crítico":     model.SeverityCritical,
	"critical":    model.SeverityCritical,
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLocation sets the zone for timestamps that carry no offset. Default: UTC.
func WithLocation(loc *time.Location) Option {
	return func(n *Normalizer) { n.loc = loc }
}

// WithLayouts replaces the timestamp layouts.
func WithLayouts(layouts ...string) Option {
	return func(n *Normalizer) { n.layouts = layouts }
}

// Normalizer maps raw records to events. Safe for concurrent use.
type Normalizer struct {
	cols    Columns
	layouts []string
	loc     *time.Location
}

// New creates a Normalizer for the given column mapping.
func New(cols Columns, opts ...Option) *Normalizer {
	n := &Normalizer{
		cols:    cols,
		layouts: DefaultLayouts,
		loc:     time.UTC,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize converts one raw record into an event.
func (n *Normalizer) Normalize(rec model.RawRecord) model.Event {
	fields := n.index(rec.Fields)
	return model.Event{
		Timestamp:    n.ParseTimestamp(fields[headerKey(n.cols.Timestamp)]),
		Severity:     n.ParseSeverity(fields[headerKey(n.cols.Severity)]),
		Source:       clean(fields[headerKey(n.cols.Source)]),
		TaskCategory: clean(fields[headerKey(n.cols.TaskCategory)]),
		ProcessID:    clean(fields[headerKey(n.cols.ProcessID)]),
		EventID:      clean(fields[headerKey(n.cols.EventID)]),
	}
}

// NormalizeAll converts records in order.
func (n *Normalizer) NormalizeAll(recs []model.RawRecord) []model.Event {
	events := make([]model.Event, 0, len(recs))
	for _, rec := range recs {
		events = append(events, n.Normalize(rec))
	}
	return events
}

// MissingColumns returns the configured headers absent from header.
func (n *Normalizer) MissingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[headerKey(h)] = true
	}
	var missing []string
	for _, c := range []string{n.cols.Timestamp, n.cols.Severity, n.cols.Source, n.cols.TaskCategory, n.cols.ProcessID, n.cols.EventID} {
		if !present[headerKey(c)] {
			missing = append(missing, c)
		}
	}
	return missing
}

// ParseTimestamp parses s with the configured layouts, then as an Excel
// serial date. It returns nil for empty or unparseable input.
func (n *Normalizer) ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range n.layouts {
		if ts, err := time.ParseInLocation(layout, s, n.loc); err == nil {
			return &ts
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && validSerial(serial) {
		ts, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return nil
		}
		// Serial dates carry no zone; reinterpret the wall clock in loc.
		ts = time.Date(ts.Year(), ts.Month(), ts.Day(), ts.Hour(), ts.Minute(), ts.Second(), ts.Nanosecond(), n.loc)
		return &ts
	}
	return nil
}

func validSerial(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f >= minSerial && f < maxSerial
}

// ParseSeverity maps localized severity names onto the severity enum.
// Unknown values pass through trimmed.
func (n *Normalizer) ParseSeverity(s string) model.Severity {
	s = clean(s)
	if sev, ok := severities[fold(s)]; ok {
		return sev
	}
	return model.Severity(s)
}

func (n *Normalizer) index(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[headerKey(k)] = v
	}
	return out
}

// headerKey canonicalizes a header for comparison: NFC, case-folded, trimmed.
func headerKey(s string) string {
	return fold(clean(s))
}

// fold case-folds s. Casers are stateful, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// clean trims s and composes it to NFC so visually equal keys group together.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
