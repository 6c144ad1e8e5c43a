package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/crimson-sun/errboard/internal/config"
	"github.com/crimson-sun/errboard/internal/connector"
	"github.com/crimson-sun/errboard/internal/engine"
	"github.com/crimson-sun/errboard/internal/logging"
	"github.com/crimson-sun/errboard/internal/normalize"
	"github.com/crimson-sun/errboard/internal/output"
	"github.com/crimson-sun/errboard/internal/output/file"
	"github.com/crimson-sun/errboard/internal/output/stdout"
	"github.com/crimson-sun/errboard/internal/pipeline"
	"github.com/crimson-sun/errboard/internal/server"
	"github.com/crimson-sun/errboard/internal/store"

	// Register connector implementations.
	_ "github.com/crimson-sun/errboard/internal/connector/csv"
	_ "github.com/crimson-sun/errboard/internal/connector/ndjson"
	_ "github.com/crimson-sun/errboard/internal/connector/xlsx"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	mode := flag.String("mode", "", "override ERRBOARD_MODE (serve or export)")
	source := flag.String("source", "", "override ERRBOARD_SOURCE_PATH")
	flag.Parse()

	if *showVersion {
		fmt.Println("errboard", config.Version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "errboard: %v\n", err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *source != "" {
		cfg.Source.Path = *source
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "errboard: invalid configuration:\n%v\n", err)
		os.Exit(1)
	}

	exportToStdout := cfg.Mode == "export" && cfg.Output.Format == "stdout"
	logging.Init(exportToStdout, logging.ParseLevel(cfg.Log.Level))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("errboard failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	connCfg := connector.ConnectorConfig{
		Provider: cfg.Source.Provider,
		Path:     cfg.Source.Path,
		Extra:    sourceExtra(cfg.Source),
	}
	provider, err := connector.Resolve(connCfg)
	if err != nil {
		return err
	}
	ctor, err := connector.Get(provider)
	if err != nil {
		return err
	}

	cols := normalize.Columns{
		Timestamp:    cfg.Columns.Timestamp,
		Severity:     cfg.Columns.Severity,
		Source:       cfg.Columns.Source,
		TaskCategory: cfg.Columns.TaskCategory,
		ProcessID:    cfg.Columns.ProcessID,
		EventID:      cfg.Columns.EventID,
	}
	norm := normalize.New(cols, normalize.WithLocation(cfg.Location()))
	st := store.New()
	eng := engine.New()

	var out output.Output
	if cfg.Mode == "export" {
		out, err = newOutput(cfg.Output)
		if err != nil {
			return err
		}
	}

	p := pipeline.New(ctor(), connCfg, norm, st, eng, out)
	defer p.Close()

	slog.Info("errboard starting", "version", config.Version, "mode", cfg.Mode, "provider", provider, "path", cfg.Source.Path)

	if cfg.Mode == "export" {
		if _, err := p.Load(ctx); err != nil {
			return err
		}
		return p.Export(ctx)
	}
	return serve(ctx, cfg, p, st, eng)
}

func serve(ctx context.Context, cfg config.Config, p *pipeline.Pipeline, st *store.Store, eng *engine.Engine) error {
	// Serve an empty dashboard rather than refuse to start; the watcher or
	// POST /api/reload can fill it in later.
	if _, err := p.Load(ctx); err != nil {
		slog.Warn("initial load failed, serving empty snapshot", "error", err)
	}

	if cfg.Source.Watch {
		go func() {
			if err := p.Watch(ctx, cfg.Source.Debounce); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("source watcher stopped", "error", err)
			}
		}()
	}

	srv := server.New(st, eng,
		server.WithLoader(p),
		server.WithBasicAuth(cfg.Server.User, cfg.Server.PasswordHash),
	)
	httpSrv := &http.Server{Addr: cfg.Server.Addr, Handler: srv.Handler()}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.Server.Addr, "auth", cfg.Server.User != "")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newOutput(cfg config.OutputConfig) (output.Output, error) {
	if cfg.Format == "file" {
		var opts []file.Option
		if cfg.Pretty {
			opts = append(opts, file.WithPretty())
		}
		return file.New(cfg.Path, opts...)
	}
	return stdout.New(cfg.Pretty), nil
}

// sourceExtra maps provider-specific settings into connector Extra keys.
func sourceExtra(s config.SourceConfig) map[string]string {
	var m map[string]string
	for k, v := range map[string]string{"sheet": s.Sheet, "delimiter": s.Delimiter} {
		if v == "" {
			continue
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[k] = v
	}
	return m
}
