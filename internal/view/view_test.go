package view

import (
	"errors"
	"testing"

	"github.com/crimson-sun/errboard/internal/viewerr"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{"errors_by_day", ErrorsByDay, false},
		{"errors_by_hour", ErrorsByHour, false},
		{"errors_by_source", ErrorsBySource, false},
		{"errors_by_task", ErrorsByTask, false},
		{"errors_by_process_event", ErrorsByProcessEvent, false},
		{"  errors_by_day\n", "", true},
		{" errors_by_day ", "", true},
		{"Errors_By_Day", "", true},
		{"errors_by_week", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if !errors.Is(err, viewerr.ErrUnsupportedView) {
				t.Errorf("Parse(%q) error = %v, want unsupported view", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAllIsCopy(t *testing.T) {
	a := All()
	if len(a) != 5 {
		t.Fatalf("expected 5 views, got %d", len(a))
	}
	if a[0] != Default {
		t.Fatalf("first view = %q, want default %q", a[0], Default)
	}
	a[0] = "mutated"
	if All()[0] != ErrorsByDay {
		t.Fatal("All() exposed its backing slice")
	}
}

func TestLabelsAndTimeBased(t *testing.T) {
	for _, id := range All() {
		if id.Label() == "" {
			t.Errorf("%s has no label", id)
		}
	}
	if !ErrorsByDay.TimeBased() || !ErrorsByHour.TimeBased() {
		t.Error("day and hour views should be time based")
	}
	if ErrorsBySource.TimeBased() || ErrorsByProcessEvent.TimeBased() {
		t.Error("grouping views should not be time based")
	}
	if ID("nope").Label() != "" {
		t.Error("unknown view should have no label")
	}
}
