package stdout

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/crimson-sun/errboard/internal/model"
	"github.com/crimson-sun/errboard/internal/output"
)

// Output writes JSON-encoded chart specs to stdout.
type Output struct {
	mu     sync.Mutex
	w      io.Writer
	pretty bool
}

// New creates a stdout Output with optional pretty-printed JSON.
func New(pretty bool) *Output {
	return &Output{w: os.Stdout, pretty: pretty}
}

func (o *Output) Write(_ context.Context, spec model.ChartSpec) error {
	data, err := output.Marshal(spec, o.pretty)
	if err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := o.w.Write(data); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
