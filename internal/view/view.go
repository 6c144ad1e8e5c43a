// Package view defines the fixed set of aggregate views an operator can select.
package view

import "github.com/crimson-sun/errboard/internal/viewerr"

// ID identifies one aggregate view.
type ID string

const (
	ErrorsByDay          ID = "errors_by_day"
	ErrorsByHour         ID = "errors_by_hour"
	ErrorsBySource       ID = "errors_by_source"
	ErrorsByTask         ID = "errors_by_task"
	ErrorsByProcessEvent ID = "errors_by_process_event"
)

// Default is the view selected when the dashboard opens.
const Default = ErrorsByDay

// all lists the views in dropdown order.
var all = []ID{ErrorsByDay, ErrorsByHour, ErrorsBySource, ErrorsByTask, ErrorsByProcessEvent}

var labels = map[ID]string{
	ErrorsByDay:          "Frecuencia de Errores por Día",
	ErrorsByHour:         "Frecuencia de Errores por Hora del Día",
	ErrorsBySource:       "Errores por Fuente",
	ErrorsByTask:         "Errores por Categoría de Tarea",
	ErrorsByProcessEvent: "Correlación de Errores por Proceso y Evento",
}

// All returns every view in dropdown order.
func All() []ID {
	out := make([]ID, len(all))
	copy(out, all)
	return out
}

// Parse validates a view identifier. Matching is exact.
func Parse(s string) (ID, error) {
	id := ID(s)
	if !id.Valid() {
		return "", viewerr.UnsupportedView(s)
	}
	return id, nil
}

// Valid reports whether id is one of the fixed views.
func (id ID) Valid() bool {
	_, ok := labels[id]
	return ok
}

// TimeBased reports whether the view groups by timestamp.
func (id ID) TimeBased() bool {
	return id == ErrorsByDay || id == ErrorsByHour
}

// Label is the operator-facing dropdown label.
func (id ID) Label() string {
	return labels[id]
}

func (id ID) String() string {
	return string(id)
}
