package chart

import (
	"reflect"
	"testing"

	"github.com/crimson-sun/errboard/internal/model"
	"github.com/crimson-sun/errboard/internal/view"
)

func result(id view.ID, series ...model.Series) model.AggregationResult {
	return model.AggregationResult{View: id, Series: series}
}

func TestBuildLayouts(t *testing.T) {
	tests := []struct {
		view  view.ID
		kind  model.ChartKind
		title string
		x     string
	}{
		{view.ErrorsByDay, model.ChartLine, "Frecuencia de Errores por Día", "Fecha"},
		{view.ErrorsByHour, model.ChartBar, "Frecuencia de Errores por Hora del Día", "Hora del Día"},
		{view.ErrorsBySource, model.ChartBar, "Errores por Fuente", "Fuente"},
		{view.ErrorsByTask, model.ChartBar, "Errores por Categoría de Tarea", "Categoría de Tarea"},
		{view.ErrorsByProcessEvent, model.ChartScatter, "Correlación de Errores por Proceso y Evento", "Identificación del Proceso / Evento"},
	}
	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			spec := Build(result(tt.view), tt.view)
			if spec.View != tt.view {
				t.Errorf("View = %q", spec.View)
			}
			if spec.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", spec.Kind, tt.kind)
			}
			if spec.Title != tt.title {
				t.Errorf("Title = %q, want %q", spec.Title, tt.title)
			}
			if spec.Axis.X != tt.x {
				t.Errorf("Axis.X = %q, want %q", spec.Axis.X, tt.x)
			}
			if spec.Axis.Y != "Número de Errores" {
				t.Errorf("Axis.Y = %q", spec.Axis.Y)
			}
		})
	}
}

func TestBuildSingleSeries(t *testing.T) {
	r := result(view.ErrorsByDay, model.Series{Buckets: []model.Bucket{
		{Key: "2024-01-01", Count: 2},
		{Key: "2024-01-02", Count: 1},
	}})
	spec := Build(r, view.ErrorsByDay)
	if len(spec.Series) != 1 {
		t.Fatalf("expected 1 series, got %d", len(spec.Series))
	}
	s := spec.Series[0]
	if !reflect.DeepEqual(s.X, []string{"2024-01-01", "2024-01-02"}) {
		t.Fatalf("X = %v", s.X)
	}
	if !reflect.DeepEqual(s.Y, []int{2, 1}) {
		t.Fatalf("Y = %v", s.Y)
	}
	if spec.ShowLegend {
		t.Fatal("single series chart should not show a legend")
	}
}

func TestBuildScatterSeries(t *testing.T) {
	r := result(view.ErrorsByProcessEvent,
		model.Series{Name: "process", Buckets: []model.Bucket{{Key: "4", Count: 3}}},
		model.Series{Name: "event", Buckets: []model.Bucket{{Key: "41", Count: 1}, {Key: "7000", Count: 2}}},
	)
	spec := Build(r, view.ErrorsByProcessEvent)
	if len(spec.Series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(spec.Series))
	}
	if spec.Series[0].Name != "Errors by Process" || spec.Series[1].Name != "Errors by Event" {
		t.Fatalf("series names = %q, %q", spec.Series[0].Name, spec.Series[1].Name)
	}
	for _, s := range spec.Series {
		if s.Mode != "markers" {
			t.Fatalf("scatter series mode = %q", s.Mode)
		}
	}
	if !reflect.DeepEqual(spec.Series[1].X, []string{"41", "7000"}) || !reflect.DeepEqual(spec.Series[1].Y, []int{1, 2}) {
		t.Fatalf("event series = %+v", spec.Series[1])
	}
	if !spec.ShowLegend {
		t.Fatal("expected legend for two-series chart")
	}
}

func TestBuildEmptyResult(t *testing.T) {
	for _, id := range view.All() {
		spec := Build(result(id), id)
		if len(spec.Series) == 0 {
			t.Fatalf("%s: expected at least one (empty) series", id)
		}
		for _, s := range spec.Series {
			if s.X == nil || s.Y == nil {
				t.Fatalf("%s: series arrays must be non-nil", id)
			}
			if len(s.X) != 0 || len(s.Y) != 0 {
				t.Fatalf("%s: expected empty series, got %+v", id, s)
			}
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	r := result(view.ErrorsBySource, model.Series{Buckets: []model.Bucket{{Key: "A", Count: 2}, {Key: "B", Count: 1}}})
	if !reflect.DeepEqual(Build(r, view.ErrorsBySource), Build(r, view.ErrorsBySource)) {
		t.Fatal("Build is not deterministic")
	}
}

func TestBuildUnknownViewFallsBack(t *testing.T) {
	spec := Build(model.AggregationResult{}, "custom")
	if spec.Kind != model.ChartBar || spec.Title != "custom" {
		t.Fatalf("unexpected fallback spec: %+v", spec)
	}
}
