// Package environ snapshots process environment variables behind a small
// interface so callers and tests can inject their own environment.
package environ

import (
	"os"
	"sort"
	"strings"

	"github.com/reoring/tinydot/ordered"
)

// Reader lists environment entries in KEY=VALUE form.
type Reader interface {
	Environ() []string
}

// OSReader implements Reader using the standard os package.
type OSReader struct{}

// Environ returns os.Environ().
func (OSReader) Environ() []string { return os.Environ() }

// Static is a fixed environment, mostly useful in tests.
type Static []string

// Environ returns the entries unchanged.
func (s Static) Environ() []string { return s }

// Snapshot splits every entry on its first '=' and returns the resulting
// mapping. Entries without a name, such as the "=C:" drive markers on
// Windows, are skipped. A nil reader reads the process environment.
func Snapshot(r Reader) map[string]string {
	if r == nil {
		r = OSReader{}
	}
	entries := r.Environ()
	out := make(map[string]string, len(entries))
	for _, kv := range entries {
		k, v, _ := strings.Cut(kv, "=")
		if k == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// Ordered returns the snapshot as an ordered map sorted by variable name.
func Ordered(r Reader) ordered.Map {
	snap := Snapshot(r)
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(ordered.Map, 0, len(keys))
	for _, k := range keys {
		out = append(out, ordered.Pair{Key: k, Value: snap[k]})
	}
	return out
}
