package model

// RawRecord is the intermediate type produced by connectors and consumed by the normalizer.
type RawRecord struct {
	Row    int               // 1-based data row in the source (header excluded)
	Origin string            // file the row came from
	Fields map[string]string // column header -> cell text
}
