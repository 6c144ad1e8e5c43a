package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/crimson-sun/errboard/internal/model"
	"github.com/crimson-sun/errboard/internal/view"
)

func testSpec() model.ChartSpec {
	return model.ChartSpec{
		View:   view.ErrorsByHour,
		Kind:   model.ChartBar,
		Title:  "Frecuencia de Errores por Hora del Día",
		Axis:   model.Axis{X: "Hora del Día", Y: "Número de Errores"},
		Series: []model.ChartSeries{{X: []string{"9", "10"}, Y: []int{1, 1}}},
	}
}

// captureStdout redirects os.Stdout to capture output.
func captureStdout(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestOutputCompactJSON(t *testing.T) {
	result := captureStdout(func() {
		out := New(false)
		out.Write(context.Background(), testSpec())
		out.Write(context.Background(), testSpec())
	})

	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["view"] != "errors_by_hour" {
		t.Fatalf("expected view=errors_by_hour, got %v", m["view"])
	}
}

func TestOutputPrettyJSON(t *testing.T) {
	result := captureStdout(func() {
		out := New(true)
		out.Write(context.Background(), testSpec())
	})

	if !strings.Contains(result, "  ") {
		t.Fatal("expected indented output for pretty mode")
	}
	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected multi-line pretty output, got %d lines", len(lines))
	}
}
