// Package tinydot converts loosely structured data into records whose fields
// are reachable by name.
//
// Inputs are environment variables, YAML text, JSON text, CSV text or an
// already parsed map. Every mapping becomes a *Record whose field names are
// the mapping keys with hyphens and whitespace replaced by underscores;
// sequences are converted element by element; scalars pass through.
//
// Typical usage:
//
//	v, err := tinydot.FromJSON(`{"server": {"listen-port": 8080}}`)
//	rec := v.(*tinydot.Record)
//	port, _ := rec.Lookup("server.listen_port")
//
//	rows, err := tinydot.FromCSV("name,age\nAlice,30\n")
//	name, _ := rows[0].Text("name")
//
// Field order follows the source document for JSON, YAML and CSV input.
// Go maps have no order, so map input (FromMap, FromEnv) is sorted by key.
//
// The lazy subpackage offers a different design that wraps a raw value and
// resolves each access on demand.
package tinydot
