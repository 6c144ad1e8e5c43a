package connector

import (
	"context"
	"sort"

	"github.com/crimson-sun/errboard/internal/model"
)

// Connector defines the interface all event sources must implement.
type Connector interface {
	// Load reads every record from the source in source order.
	Load(ctx context.Context, cfg ConnectorConfig) ([]model.RawRecord, error)
}

// ConnectorConfig holds source-specific settings.
type ConnectorConfig struct {
	Provider string
	Path     string
	Extra    map[string]string // e.g. "sheet" for xlsx, "delimiter" for csv
}

// Header returns the sorted union of column names across records.
func Header(recs []model.RawRecord) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, r := range recs {
		for k := range r.Fields {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}
