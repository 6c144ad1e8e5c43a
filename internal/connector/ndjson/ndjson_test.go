package ndjson

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/crimson-sun/errboard/internal/connector"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.ndjson")
	content := `{"Nível":"Erro","Fuente":"DCOM","Identificación de eventos":10016,"ok":true}

not json
{"Nível":"Aviso","Fuente":null}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	recs, err := (&Connector{}).Load(context.Background(), connector.ConnectorConfig{Path: path})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records (blank and malformed skipped), got %d", len(recs))
	}
	first := recs[0].Fields
	if first["Identificación de eventos"] != "10016" {
		t.Fatalf("number stringified as %q", first["Identificación de eventos"])
	}
	if first["ok"] != "true" {
		t.Fatalf("bool stringified as %q", first["ok"])
	}
	if recs[1].Fields["Fuente"] != "" {
		t.Fatalf("null should become empty, got %q", recs[1].Fields["Fuente"])
	}
	if recs[1].Row != 2 {
		t.Fatalf("Row = %d, want 2", recs[1].Row)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := (&Connector{}).Load(context.Background(), connector.ConnectorConfig{Path: "/nonexistent.ndjson"}); err == nil {
		t.Fatal("expected error for missing file")
	}
}
