package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/crimson-sun/errboard/internal/connector"
	"github.com/crimson-sun/errboard/internal/model"
)

func init() {
	connector.Register("xlsx", func() connector.Connector {
		return &Connector{}
	}, ".xlsx", ".xlsm")
}

// Connector reads one worksheet of an Excel workbook. The first row is the
// header. Cell values are read raw, so date cells arrive as serial numbers.
type Connector struct{}

func (c *Connector) Load(ctx context.Context, cfg connector.ConnectorConfig) ([]model.RawRecord, error) {
	f, err := excelize.OpenFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("xlsx connector: %w", err)
	}
	defer f.Close()

	sheet := cfg.Extra["sheet"]
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("xlsx connector: %s has no sheets", cfg.Path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("xlsx connector: sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	recs := make([]model.RawRecord, 0, len(rows)-1)
	for i, line := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if blank(line) {
			continue
		}
		fields := make(map[string]string, len(header))
		for j, col := range header {
			if col == "" {
				continue
			}
			if j < len(line) {
				fields[col] = line[j]
			}
		}
		recs = append(recs, model.RawRecord{Row: i + 1, Origin: cfg.Path, Fields: fields})
	}
	return recs, nil
}

func blank(line []string) bool {
	for _, v := range line {
		if v != "" {
			return false
		}
	}
	return true
}
