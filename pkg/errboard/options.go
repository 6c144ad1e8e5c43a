package errboard

import (
	"log/slog"
	"time"
)

// Columns maps event fields to source column headers.
type Columns struct {
	Timestamp    string
	Severity     string
	Source       string
	TaskCategory string
	ProcessID    string
	EventID      string
}

type options struct {
	columns  *Columns
	location *time.Location
	logger   *slog.Logger
}

// Option configures a Board.
type Option func(*options)

// WithColumns overrides the source column headers used by LoadFile and
// Normalize. Default: the headers of the Windows event export
// ("Data y hora", "Nível", ...).
func WithColumns(c Columns) Option {
	return func(o *options) { o.columns = &c }
}

// WithLocation sets the zone for timestamps that carry no offset. Default: UTC.
func WithLocation(loc *time.Location) Option {
	return func(o *options) { o.location = loc }
}

// WithLogger sets the logger for failed selections. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func defaultOptions() options {
	return options{
		location: time.UTC,
		logger:   slog.Default(),
	}
}
