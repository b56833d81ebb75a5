package tinydot

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Record is the converted form of a mapping: an ordered, fixed set of
// fields. Values are *Record, []any (with converted elements) or scalars.
//
// Field values may be reassigned with Set, but the field set is fixed once
// the record is built.
type Record struct {
	names  []string
	values map[string]any
}

func newRecord(capacity int) *Record {
	return &Record{names: make([]string, 0, capacity), values: make(map[string]any, capacity)}
}

// put appends a field, or overwrites the value in place when present.
func (r *Record) put(name string, v any) {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = v
}

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.names) }

// Fields returns the field names in construction order.
func (r *Record) Fields() []string { return append([]string(nil), r.names...) }

// Has reports whether the record has a field with this name.
func (r *Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Get returns the value of a field.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Field returns the value of a field, or nil when the record has no such field.
func (r *Record) Field(name string) any { return r.values[name] }

// Set reassigns an existing field. Unknown names fail with ErrUnknownField.
func (r *Record) Set(name string, v any) error {
	if _, ok := r.values[name]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownField, name)
	}
	r.values[name] = v
	return nil
}

// Nested returns the field as a record.
func (r *Record) Nested(name string) (*Record, bool) {
	rec, ok := r.values[name].(*Record)
	return rec, ok
}

// List returns the field as a sequence.
func (r *Record) List(name string) ([]any, bool) {
	l, ok := r.values[name].([]any)
	return l, ok
}

// Text returns the field as a string.
func (r *Record) Text(name string) (string, bool) {
	s, ok := r.values[name].(string)
	return s, ok
}

// Lookup walks a dot separated path. Segments name fields of records or,
// when the current value is a sequence, a zero-based index.
//
//	rec.Lookup("servers.0.host")
func (r *Record) Lookup(path string) (any, bool) {
	var cur any = r
	if path == "" {
		return cur, true
	}
	for _, seg := range strings.Split(path, ".") {
		switch t := cur.(type) {
		case *Record:
			v, ok := t.Get(seg)
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(t) {
				return nil, false
			}
			cur = t[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// ToMap returns a plain copy of the record with nested records converted to
// map[string]any.
func (r *Record) ToMap() map[string]any {
	out := make(map[string]any, len(r.names))
	for _, name := range r.names {
		out[name] = plainValue(r.values[name])
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case *Record:
		return t.ToMap()
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = plainValue(t[i])
		}
		return arr
	default:
		return v
	}
}

// MarshalJSON encodes the record as a JSON object with fields in order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := j.Marshal(name)
		if err != nil {
			return nil, err
		}
		v, err := j.Marshal(r.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a YAML mapping with fields in order.
func (r *Record) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range r.names {
		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		v := &yaml.Node{}
		if err := v.Encode(r.values[name]); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, k, v)
	}
	return n, nil
}

// String renders the record as compact JSON.
func (r *Record) String() string {
	b, err := r.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", r.ToMap())
	}
	return string(b)
}
