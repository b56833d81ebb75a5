package tinydot

import (
	"github.com/reoring/tinydot/environ"
	"github.com/reoring/tinydot/source"
)

// FromEnv converts a snapshot of the process environment.
func FromEnv() *Record { return FromEnvReader(environ.OSReader{}) }

// FromEnvReader converts the environment listed by r.
func FromEnvReader(r environ.Reader) *Record {
	rec, _ := Options{}.FromEnvReader(r)
	return rec
}

// FromYAML parses YAML text and converts the first document. Parse errors
// from gopkg.in/yaml.v3 are returned unmodified.
func FromYAML(text string) (any, error) { return Options{}.FromYAML(text) }

// FromJSON parses JSON text and converts it. Parse errors from the JSON
// driver are returned unmodified.
func FromJSON(text string) (any, error) { return Options{}.FromJSON(text) }

// FromCSV parses CSV text with a header row and converts every row into its
// own record. Cells stay strings.
func FromCSV(text string) ([]*Record, error) { return Options{}.FromCSV(text) }

// FromMap converts an already parsed mapping.
func FromMap(m map[string]any) *Record {
	rec, _ := Options{}.FromMap(m)
	return rec
}

// FromEnv converts a snapshot of the process environment.
func (o Options) FromEnv() (*Record, error) { return o.FromEnvReader(environ.OSReader{}) }

// FromEnvReader converts the environment listed by r.
func (o Options) FromEnvReader(r environ.Reader) (*Record, error) {
	return o.record(environ.Ordered(r))
}

// FromYAML parses YAML text and converts the first document.
func (o Options) FromYAML(text string) (any, error) {
	raw, err := source.DecodeYAMLOrdered([]byte(text))
	if err != nil {
		return nil, err
	}
	return ConvertWith(raw, o)
}

// FromJSON parses JSON text and converts it.
func (o Options) FromJSON(text string) (any, error) {
	raw, err := source.DecodeJSONOrdered([]byte(text), o.NumberMode)
	if err != nil {
		return nil, err
	}
	return ConvertWith(raw, o)
}

// FromCSV parses CSV text with a header row and converts every row.
func (o Options) FromCSV(text string) ([]*Record, error) {
	rows, err := source.DecodeCSV([]byte(text))
	if err != nil {
		return nil, err
	}
	out := make([]*Record, 0, len(rows))
	for _, row := range rows {
		rec, err := o.record(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// FromMap converts an already parsed mapping.
func (o Options) FromMap(m map[string]any) (*Record, error) { return o.record(m) }

func (o Options) record(m any) (*Record, error) {
	v, err := ConvertWith(m, o)
	if err != nil {
		return nil, err
	}
	return v.(*Record), nil
}
