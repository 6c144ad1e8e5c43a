package ndjson

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/crimson-sun/errboard/internal/connector"
	"github.com/crimson-sun/errboard/internal/model"
)

const maxLineSize = 1 << 20

func init() {
	connector.Register("ndjson", func() connector.Connector {
		return &Connector{}
	}, ".ndjson", ".jsonl")
}

// Connector reads one JSON object per line. Malformed lines are skipped
// with a warning.
type Connector struct{}

func (c *Connector) Load(ctx context.Context, cfg connector.ConnectorConfig) ([]model.RawRecord, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("ndjson connector: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	var recs []model.RawRecord
	row := 0
	for line := 1; sc.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(b, &obj); err != nil {
			slog.Warn("ndjson connector: skipping malformed line", "path", cfg.Path, "line", line, "error", err)
			continue
		}
		row++
		fields := make(map[string]string, len(obj))
		for k, v := range obj {
			fields[k] = stringify(v)
		}
		recs = append(recs, model.RawRecord{Row: row, Origin: cfg.Path, Fields: fields})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ndjson connector: %w", err)
	}
	return recs, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
