package core

import (
	"encoding/json"
	"io"
)

// MarshalLayer pretty-prints a layer as JSON for humans or pipelines.
func MarshalLayer(w io.Writer, l Layer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}

// UnmarshalLayer decodes layer JSON, useful for ingestion tests.
func UnmarshalLayer(r io.Reader) (Layer, error) {
	var l Layer
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return Layer{}, err
	}
	return l, nil
}
