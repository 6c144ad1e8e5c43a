package output

import (
	"context"

	"github.com/crimson-sun/errboard/internal/model"
)

// Output defines the interface for chart spec destinations.
type Output interface {
	Write(ctx context.Context, spec model.ChartSpec) error
	Close() error
}
