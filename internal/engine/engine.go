package engine

import (
	"fmt"
	"log/slog"

	"github.com/crimson-sun/errboard/internal/engine/aggregate"
	"github.com/crimson-sun/errboard/internal/engine/chart"
	"github.com/crimson-sun/errboard/internal/engine/filter"
	"github.com/crimson-sun/errboard/internal/model"
	"github.com/crimson-sun/errboard/internal/view"
	"github.com/crimson-sun/errboard/internal/viewerr"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for failed selections. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// Engine orchestrates the filter → aggregate → build pipeline for one view
// selection. It holds no per-request state and is safe for concurrent use.
type Engine struct {
	logger    *slog.Logger
	aggregate func([]model.Event, view.ID) (model.AggregationResult, error)
	build     func(model.AggregationResult, view.ID) model.ChartSpec
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:    slog.Default(),
		aggregate: aggregate.Aggregate,
		build:     chart.Build,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HandleSelection renders the requested view over the error events in
// events. A non-nil error is always a *viewerr.Error: no_data and
// unsupported_view are expected outcomes, view_error wraps anything
// unexpected (including panics) raised while aggregating or building.
func (e *Engine) HandleSelection(events []model.Event, selected string) (spec model.ChartSpec, err error) {
	id, err := view.Parse(selected)
	if err != nil {
		e.logger.Warn("unsupported view selected", "view", selected)
		return model.ChartSpec{}, err
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("view selection panicked", "view", id, "panic", r)
			spec = model.ChartSpec{}
			err = viewerr.Internal(string(id), fmt.Errorf("panic: %v", r))
		}
	}()

	errs := filter.Errors(events)
	result, err := e.aggregate(errs, id)
	if err != nil {
		ve := viewerr.As(err)
		if ve == nil {
			ve = viewerr.Internal(string(id), err)
		}
		e.logger.Info("no chart for selection", "view", id, "code", ve.Code, "events", len(errs))
		return model.ChartSpec{}, ve
	}

	return e.build(result, id), nil
}

// RenderAll renders every view. Failed views map to their error.
func (e *Engine) RenderAll(events []model.Event) (map[view.ID]model.ChartSpec, map[view.ID]error) {
	specs := make(map[view.ID]model.ChartSpec)
	errs := make(map[view.ID]error)
	for _, id := range view.All() {
		spec, err := e.HandleSelection(events, string(id))
		if err != nil {
			errs[id] = err
			continue
		}
		specs[id] = spec
	}
	return specs, errs
}
