package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/crimson-sun/errboard/internal/connector"
	"github.com/crimson-sun/errboard/internal/model"
	"github.com/crimson-sun/errboard/internal/normalize"
	"github.com/crimson-sun/errboard/internal/output"
	"github.com/crimson-sun/errboard/internal/store"
	"github.com/crimson-sun/errboard/internal/view"
)

// Renderer renders one view selection over an event set.
type Renderer interface {
	HandleSelection(events []model.Event, selected string) (model.ChartSpec, error)
}

// Pipeline connects a connector, normalizer, snapshot store, engine, and
// optional output.
type Pipeline struct {
	connector  connector.Connector
	cfg        connector.ConnectorConfig
	normalizer *normalize.Normalizer
	store      *store.Store
	engine     Renderer
	output     output.Output
}

// New creates a Pipeline from the given components. out may be nil when the
// pipeline only feeds the HTTP server.
func New(conn connector.Connector, cfg connector.ConnectorConfig, n *normalize.Normalizer, st *store.Store, eng Renderer, out output.Output) *Pipeline {
	return &Pipeline{
		connector:  conn,
		cfg:        cfg,
		normalizer: n,
		store:      st,
		engine:     eng,
		output:     out,
	}
}

// Load reads the source, normalizes every record, and installs the result
// as the current snapshot. On failure the previous snapshot is kept.
func (p *Pipeline) Load(ctx context.Context) (*store.Snapshot, error) {
	recs, err := p.connector.Load(ctx, p.cfg)
	if err != nil {
		return nil, fmt.Errorf("pipeline load: %w", err)
	}
	if len(recs) > 0 {
		if missing := p.normalizer.MissingColumns(connector.Header(recs)); len(missing) > 0 {
			slog.Warn("source is missing columns", "path", p.cfg.Path, "columns", missing)
		}
	}

	events := p.normalizer.NormalizeAll(recs)
	snap := p.store.Replace(p.cfg.Path, events)

	st := snap.Stats()
	slog.Info("snapshot loaded",
		"path", p.cfg.Path,
		"version", st.Version,
		"events", st.Total,
		"errors", st.Errors,
		"null_timestamps", st.NullTimestamp,
	)
	return snap, nil
}

// Export renders every view over the current snapshot and writes each chart
// to the output. Views with no chart are logged and skipped.
func (p *Pipeline) Export(ctx context.Context) error {
	if p.output == nil {
		return errors.New("pipeline export: no output configured")
	}
	snap := p.store.Current()

	written := 0
	for _, id := range view.All() {
		if err := ctx.Err(); err != nil {
			return err
		}
		spec, err := p.engine.HandleSelection(snap.Events, string(id))
		if err != nil {
			slog.Warn("skipping view", "view", id, "error", err)
			continue
		}
		if err := p.output.Write(ctx, spec); err != nil {
			return fmt.Errorf("pipeline output: %w", err)
		}
		written++
	}
	slog.Info("export complete", "version", snap.Version, "charts", written)
	return nil
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	if p.output == nil {
		return nil
	}
	return p.output.Close()
}
