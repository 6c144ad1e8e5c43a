// Package chart turns aggregation results into renderer-agnostic chart specs.
package chart

import (
	"github.com/crimson-sun/errboard/internal/model"
	"github.com/crimson-sun/errboard/internal/view"
)

const yAxisErrors = "Número de Errores"

// Trace names for the process/event scatter.
const (
	ProcessSeriesName = "Errors by Process"
	EventSeriesName   = "Errors by Event"
)

// layout is the fixed presentation of one view.
type layout struct {
	kind   model.ChartKind
	title  string
	xAxis  string
	traces []string // trace names; a single unnamed trace when empty
}

var layouts = map[view.ID]layout{
	view.ErrorsByDay: {
		kind:  model.ChartLine,
		title: "Frecuencia de Errores por Día",
		xAxis: "Fecha",
	},
	view.ErrorsByHour: {
		kind:  model.ChartBar,
		title: "Frecuencia de Errores por Hora del Día",
		xAxis: "Hora del Día",
	},
	view.ErrorsBySource: {
		kind:  model.ChartBar,
		title: "Errores por Fuente",
		xAxis: "Fuente",
	},
	view.ErrorsByTask: {
		kind:  model.ChartBar,
		title: "Errores por Categoría de Tarea",
		xAxis: "Categoría de Tarea",
	},
	view.ErrorsByProcessEvent: {
		kind:   model.ChartScatter,
		title:  "Correlación de Errores por Proceso y Evento",
		xAxis:  "Identificación del Proceso / Evento",
		traces: []string{ProcessSeriesName, EventSeriesName},
	},
}

// Build maps an aggregation result to the chart for the given view.
// It never fails: a result with no groups produces empty traces, and an
// identifier with no layout falls back to a bar chart titled with it.
func Build(result model.AggregationResult, id view.ID) model.ChartSpec {
	l, ok := layouts[id]
	if !ok {
		l = layout{kind: model.ChartBar, title: string(id)}
	}

	spec := model.ChartSpec{
		View:       id,
		Kind:       l.kind,
		Title:      l.title,
		Axis:       model.Axis{X: l.xAxis, Y: yAxisErrors},
		ShowLegend: len(l.traces) > 1,
	}

	n := len(l.traces)
	if n == 0 {
		n = 1
	}
	spec.Series = make([]model.ChartSeries, n)
	for i := range spec.Series {
		s := model.ChartSeries{X: []string{}, Y: []int{}}
		if i < len(l.traces) {
			s.Name = l.traces[i]
		}
		if l.kind == model.ChartScatter {
			s.Mode = "markers"
		}
		if i < len(result.Series) {
			s.X = result.Series[i].Keys()
			s.Y = result.Series[i].Counts()
		}
		spec.Series[i] = s
	}
	return spec
}
