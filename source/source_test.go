package source_test

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/tinydot/ordered"
	"github.com/reoring/tinydot/source"
)

const doc = `{"zeta": 1, "alpha": {"b": [true, null, "s", 2.5]}, "empty": [], "obj": {}}`

func TestDecodeJSON_Drivers(t *testing.T) {
	t.Cleanup(source.UseDefaultJSONDriver)

	for _, d := range []source.JSONDriver{source.GoJSONDriver(), source.StdJSONDriver()} {
		t.Run(d.Name(), func(t *testing.T) {
			source.SetJSONDriver(d)
			require.Equal(t, d.Name(), source.CurrentJSONDriver().Name())

			v, err := source.DecodeJSON([]byte(doc), source.NumberJSONNumber)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{
				"zeta":  json.Number("1"),
				"alpha": map[string]any{"b": []any{true, nil, "s", json.Number("2.5")}},
				"empty": []any{},
				"obj":   map[string]any{},
			}, v)

			ov, err := source.DecodeJSONOrdered([]byte(doc), source.NumberFloat64)
			require.NoError(t, err)
			m, ok := ov.(ordered.Map)
			require.True(t, ok)
			assert.Equal(t, []string{"zeta", "alpha", "empty", "obj"}, m.Keys())
			assert.Equal(t, 1.0, m[0].Value)
		})
	}
}

func TestSetJSONDriver_NilIgnored(t *testing.T) {
	source.SetJSONDriver(nil)
	assert.Equal(t, "go-json", source.CurrentJSONDriver().Name())
}

func TestDecodeJSON_Errors(t *testing.T) {
	t.Cleanup(source.UseDefaultJSONDriver)

	malformed := []string{
		`{"a": `,
		`{"a" 1}`,
		`[1 2]`,
		`{"a":1,}`,
		`[1,]`,
		`{"a":1 "b":2}`,
		`tru`,
		`1 2`,
		``,
		`   `,
	}
	for _, d := range []source.JSONDriver{source.GoJSONDriver(), source.StdJSONDriver()} {
		source.SetJSONDriver(d)
		for _, in := range malformed {
			v, err := source.DecodeJSON([]byte(in), source.NumberJSONNumber)
			assert.Error(t, err, "%s: %q decoded to %#v", d.Name(), in, v)

			v, err = source.DecodeJSONOrdered([]byte(in), source.NumberJSONNumber)
			assert.Error(t, err, "%s: %q decoded to %#v", d.Name(), in, v)
		}
	}
}

func TestDecodeJSON_StdDriverErrorsPassThrough(t *testing.T) {
	t.Cleanup(source.UseDefaultJSONDriver)
	source.SetJSONDriver(source.StdJSONDriver())

	_, err := source.DecodeJSON([]byte(`1 2`), source.NumberJSONNumber)
	assert.True(t, errors.Is(err, source.ErrTrailingData))

	_, err = source.DecodeJSON(nil, source.NumberJSONNumber)
	assert.True(t, errors.Is(err, io.EOF))

	_, err = source.DecodeJSON([]byte(`[1 2]`), source.NumberJSONNumber)
	var syn *json.SyntaxError
	assert.True(t, errors.As(err, &syn), "got %v", err)
}

func TestDecodeJSON_Scalars(t *testing.T) {
	v, err := source.DecodeJSON([]byte(`"just a string"`), source.NumberJSONNumber)
	require.NoError(t, err)
	assert.Equal(t, "just a string", v)
}

func TestDecodeYAML_NonStringKeys(t *testing.T) {
	v, err := source.DecodeYAML([]byte("1: one\ntrue: yes\nname: x\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"1": "one", "true": "yes", "name": "x"}, v)
}

func TestDecodeYAMLOrdered(t *testing.T) {
	in := `
base: &base
  host: localhost
  port: 5432
db:
  <<: *base
  port: 6543
  tags: [a, b]
ratio: 0.5
missing: ~
`
	v, err := source.DecodeYAMLOrdered([]byte(in))
	require.NoError(t, err)
	m := v.(ordered.Map)
	assert.Equal(t, []string{"base", "db", "ratio", "missing"}, m.Keys())

	db, _ := m.Get("db")
	dbm := db.(ordered.Map)
	assert.Equal(t, []string{"host", "port", "tags"}, dbm.Keys())
	port, _ := dbm.Get("port")
	assert.Equal(t, 6543, port)
	tags, _ := dbm.Get("tags")
	assert.Equal(t, []any{"a", "b"}, tags)

	ratio, _ := m.Get("ratio")
	assert.Equal(t, 0.5, ratio)
	missing, ok := m.Get("missing")
	assert.True(t, ok)
	assert.Nil(t, missing)
}

func TestDecodeYAMLOrdered_SequenceMergeEarlierWins(t *testing.T) {
	in := "a: &a {x: 1, y: a}\nb: &b {x: 2, z: b}\nc:\n  <<: [*a, *b]\n"

	v, err := source.DecodeYAMLOrdered([]byte(in))
	require.NoError(t, err)
	c, _ := v.(ordered.Map).Get("c")
	cm := c.(ordered.Map)
	assert.Equal(t, []string{"x", "y", "z"}, cm.Keys())
	x, _ := cm.Get("x")
	assert.Equal(t, 1, x)

	plain, err := source.DecodeYAML([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, plain, ordered.Plain(v))
}

func TestDecodeYAML_KeyStringsAgree(t *testing.T) {
	in := "1.0: float\n~: null key\nname: plain\n"

	v, err := source.DecodeYAMLOrdered([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "<nil>", "name"}, v.(ordered.Map).Keys())

	plain, err := source.DecodeYAML([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, plain, ordered.Plain(v))
}

func TestDecodeYAMLOrdered_EmptyAndErrors(t *testing.T) {
	v, err := source.DecodeYAMLOrdered(nil)
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = source.DecodeYAMLOrdered([]byte("a: [unterminated"))
	require.Error(t, err)
	_, err = source.DecodeYAML([]byte("a: [unterminated"))
	require.Error(t, err)
}

func TestDecodeCSV(t *testing.T) {
	rows, err := source.DecodeCSV([]byte("name,age\nAlice,30\nBob,25\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, ordered.Map{{Key: "name", Value: "Alice"}, {Key: "age", Value: "30"}}, rows[0])
	assert.Equal(t, ordered.Map{{Key: "name", Value: "Bob"}, {Key: "age", Value: "25"}}, rows[1])

	rows, err = source.DecodeCSV(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = source.DecodeCSV([]byte("only,header\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = source.DecodeCSV([]byte("a,b\n1\n"))
	assert.True(t, errors.Is(err, csv.ErrFieldCount))
}
