package errboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/crimson-sun/errboard/internal/connector"
	"github.com/crimson-sun/errboard/internal/engine"
	"github.com/crimson-sun/errboard/internal/model"
	"github.com/crimson-sun/errboard/internal/normalize"
	"github.com/crimson-sun/errboard/internal/view"
	"github.com/crimson-sun/errboard/internal/viewerr"

	_ "github.com/crimson-sun/errboard/internal/connector/csv"
	_ "github.com/crimson-sun/errboard/internal/connector/ndjson"
	_ "github.com/crimson-sun/errboard/internal/connector/xlsx"
)

// Board renders dashboard views over event collections.
type Board struct {
	engine     *engine.Engine
	normalizer *normalize.Normalizer
}

// New creates a Board.
func New(opts ...Option) *Board {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cols := normalize.DefaultColumns()
	if c := o.columns; c != nil {
		cols = normalize.Columns(*c)
	}
	return &Board{
		engine:     engine.New(engine.WithLogger(o.logger)),
		normalizer: normalize.New(cols, normalize.WithLocation(o.location)),
	}
}

// Render builds the chart for the selected view over the error events in events.
// Failures are reported as errors that satisfy IsNoData, IsUnsupportedView,
// or neither for unexpected failures.
func (b *Board) Render(events []Event, selected string) (Chart, error) {
	spec, err := b.engine.HandleSelection(toModel(events), selected)
	if err != nil {
		return Chart{}, err
	}
	return chartFromSpec(spec), nil
}

// Normalize converts raw rows (column header → cell text) into events.
// Invalid timestamps become the zero time.
func (b *Board) Normalize(rows []map[string]string) []Event {
	return fromModel(b.normalizer.NormalizeAll(toRecords(rows)))
}

// toRecords numbers rows from 1, as the file connectors do.
func toRecords(rows []map[string]string) []model.RawRecord {
	recs := make([]model.RawRecord, len(rows))
	for i, r := range rows {
		recs[i] = model.RawRecord{Row: i + 1, Fields: r}
	}
	return recs
}

// LoadFile reads an .xlsx, .csv, .tsv, .ndjson or .jsonl export and
// normalizes it.
func (b *Board) LoadFile(ctx context.Context, path string) ([]Event, error) {
	cfg := connector.ConnectorConfig{Path: path}
	provider, err := connector.Resolve(cfg)
	if err != nil {
		return nil, fmt.Errorf("errboard: %w", err)
	}
	ctor, err := connector.Get(provider)
	if err != nil {
		return nil, fmt.Errorf("errboard: %w", err)
	}
	recs, err := ctor().Load(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("errboard: %w", err)
	}
	return fromModel(b.normalizer.NormalizeAll(recs)), nil
}

// Views lists the selectable views in dropdown order.
func Views() []View {
	all := view.All()
	out := make([]View, len(all))
	for i, id := range all {
		out[i] = View{ID: string(id), Label: id.Label()}
	}
	return out
}

// IsNoData reports whether err means a time-based view had no valid timestamps.
func IsNoData(err error) bool {
	return errors.Is(err, viewerr.ErrNoData)
}

// IsUnsupportedView reports whether err means the view identifier is unknown.
func IsUnsupportedView(err error) bool {
	return errors.Is(err, viewerr.ErrUnsupportedView)
}

func toModel(events []Event) []model.Event {
	out := make([]model.Event, len(events))
	for i, e := range events {
		out[i] = model.Event{
			Severity:     model.Severity(e.Severity),
			Source:       e.Source,
			TaskCategory: e.TaskCategory,
			ProcessID:    e.ProcessID,
			EventID:      e.EventID,
		}
		if !e.Timestamp.IsZero() {
			ts := e.Timestamp
			out[i].Timestamp = &ts
		}
	}
	return out
}

func fromModel(events []model.Event) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		out[i] = Event{
			Severity:     string(e.Severity),
			Source:       e.Source,
			TaskCategory: e.TaskCategory,
			ProcessID:    e.ProcessID,
			EventID:      e.EventID,
		}
		if e.Timestamp != nil {
			out[i].Timestamp = *e.Timestamp
		}
	}
	return out
}

func chartFromSpec(spec model.ChartSpec) Chart {
	c := Chart{
		View:       string(spec.View),
		Kind:       string(spec.Kind),
		Title:      spec.Title,
		XAxis:      spec.Axis.X,
		YAxis:      spec.Axis.Y,
		Series:     make([]Series, len(spec.Series)),
		ShowLegend: spec.ShowLegend,
	}
	for i, s := range spec.Series {
		c.Series[i] = Series{Name: s.Name, Mode: s.Mode, X: s.X, Y: s.Y}
	}
	return c
}
