package output

import (
	"encoding/json"

	"github.com/crimson-sun/errboard/internal/model"
)

// Marshal encodes a spec as one NDJSON line, or as indented JSON followed by
// a newline when pretty is set.
func Marshal(spec model.ChartSpec, pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(spec, "", "  ")
	} else {
		data, err = json.Marshal(spec)
	}
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
