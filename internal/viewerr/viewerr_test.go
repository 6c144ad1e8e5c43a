package viewerr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestIsMatchesByCode(t *testing.T) {
	err := NoData("errors_by_day")
	if !errors.Is(err, ErrNoData) {
		t.Error("NoData should match ErrNoData")
	}
	if errors.Is(err, ErrUnsupportedView) {
		t.Error("NoData should not match ErrUnsupportedView")
	}

	wrapped := fmt.Errorf("render: %w", UnsupportedView("bogus"))
	if !errors.Is(wrapped, ErrUnsupportedView) {
		t.Error("wrapped UnsupportedView should match through fmt.Errorf")
	}
}

func TestInternalUnwraps(t *testing.T) {
	cause := errors.New("index out of range")
	err := Internal("errors_by_task", cause)
	if !errors.Is(err, cause) {
		t.Error("Internal should unwrap to its cause")
	}
	if !errors.Is(err, ErrInternal) {
		t.Error("Internal should match ErrInternal")
	}
	msg := err.Error()
	for _, want := range []string{"view_error", "errors_by_task", "index out of range"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{NoData("errors_by_hour"), CodeNoData},
		{fmt.Errorf("x: %w", UnsupportedView("y")), CodeUnsupportedView},
		{errors.New("plain"), CodeInternal},
	}
	for _, tt := range tests {
		if got := CodeOf(tt.err); got != tt.want {
			t.Errorf("CodeOf(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
	if As(errors.New("plain")) != nil {
		t.Error("As should return nil for foreign errors")
	}
}
