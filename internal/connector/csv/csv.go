package csv

import (
	"context"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/crimson-sun/errboard/internal/connector"
	"github.com/crimson-sun/errboard/internal/model"
)

func init() {
	connector.Register("csv", func() connector.Connector {
		return &Connector{}
	}, ".csv", ".tsv")
}

// Connector reads a delimited text export with a header row.
type Connector struct{}

func (c *Connector) Load(ctx context.Context, cfg connector.ConnectorConfig) ([]model.RawRecord, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("csv connector: %w", err)
	}
	defer f.Close()

	r := stdcsv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	if d := cfg.Extra["delimiter"]; d != "" {
		r.Comma, _ = utf8.DecodeRuneInString(d)
	} else if strings.HasSuffix(strings.ToLower(cfg.Path), ".tsv") {
		r.Comma = '\t'
	}

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csv connector: header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var recs []model.RawRecord
	for row := 1; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv connector: row %d: %w", row, err)
		}
		fields := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(line) {
				fields[col] = line[i]
			}
		}
		recs = append(recs, model.RawRecord{Row: row, Origin: cfg.Path, Fields: fields})
	}
	return recs, nil
}
