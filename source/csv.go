package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"github.com/reoring/tinydot/ordered"
)

// DecodeCSV parses data as CSV with a header row. Each following row becomes
// an ordered header -> cell mapping. Cells are kept as strings. Empty input
// yields no rows; rows whose field count differs from the header fail with
// the encoding/csv error.
func DecodeCSV(data []byte) ([]ordered.Map, error) {
	r := csv.NewReader(bytes.NewReader(data))
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []ordered.Map{}, nil
		}
		return nil, err
	}
	rows := []ordered.Map{}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return rows, nil
			}
			return nil, err
		}
		row := make(ordered.Map, len(header))
		for i, name := range header {
			row[i] = ordered.Pair{Key: name, Value: rec[i]}
		}
		rows = append(rows, row)
	}
}
