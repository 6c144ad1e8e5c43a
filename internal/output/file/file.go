package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/errboard/internal/model"
	"github.com/crimson-sun/errboard/internal/output"
)

const defaultBufSize = 64 * 1024 // 64KB

// Option configures a file Output.
type Option func(*Output)

// WithAppend keeps existing file contents instead of truncating on open.
func WithAppend() Option {
	return func(o *Output) { o.flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND }
}

// WithPretty writes indented JSON instead of NDJSON.
func WithPretty() Option {
	return func(o *Output) { o.pretty = true }
}

// Output writes chart specs to a file with buffered I/O.
type Output struct {
	mu     sync.Mutex
	w      *bufio.Writer
	f      *os.File
	path   string
	flags  int
	pretty bool
}

// New creates a file output at path. By default the file is truncated.
func New(path string, opts ...Option) (*Output, error) {
	o := &Output{
		path:  path,
		flags: os.O_CREATE | os.O_WRONLY | os.O_TRUNC,
	}
	for _, opt := range opts {
		opt(o)
	}
	f, err := os.OpenFile(o.path, o.flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", o.path, err)
	}
	o.f = f
	o.w = bufio.NewWriterSize(f, defaultBufSize)
	return o, nil
}

// Write encodes the chart and appends it to the file.
func (o *Output) Write(_ context.Context, spec model.ChartSpec) error {
	data, err := output.Marshal(spec, o.pretty)
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := o.w.Write(data); err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	return o.f.Close()
}
