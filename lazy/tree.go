// Package lazy wraps raw values (maps, sequences, scalars) and resolves field
// access one step at a time.
//
// Accessing a name returns a new Tree over the value stored under it. A
// missing name, or any access on a value that is not a mapping, returns a
// Tree over an empty mapping, so chains never fail:
//
//	t := lazy.New(map[string]any{"a": map[string]any{"b": "c"}})
//	t.At("a", "b").Value()       // "c"
//	t.At("x", "y", "z").IsEmpty() // true
//
// A name ending with TerminalMarker ('!') leaves the chain and returns the
// raw value instead of a Tree:
//
//	t.At("a").Get("b!").Raw()    // "c"
//	t.Path("a.b!").Raw()         // "c"
package lazy

import (
	"fmt"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/tinydot/ordered"
)

// TerminalMarker ends an access chain when it suffixes a name.
const TerminalMarker = "!"

// Tree holds exactly one raw value. It never copies that value: Value
// returns the live reference and mutations through it are visible to every
// Tree sharing it. A Tree is not safe for concurrent mutation.
type Tree struct {
	value any
}

// New wraps v. Wrapping never fails.
func New(v any) *Tree { return &Tree{value: v} }

func empty() *Tree { return &Tree{value: map[string]any{}} }

// Value returns the wrapped value.
func (t *Tree) Value() any { return t.value }

// IsEmpty reports whether the Tree wraps an empty mapping, which is where
// every unresolved chain ends.
func (t *Tree) IsEmpty() bool {
	switch m := t.value.(type) {
	case map[string]any:
		return len(m) == 0
	case map[string]string:
		return len(m) == 0
	case map[any]any:
		return len(m) == 0
	case ordered.Map:
		return len(m) == 0
	default:
		return false
	}
}

// Result is what a single access produces: either a Tree to keep chaining
// from, or a terminal raw value.
type Result struct {
	tree     *Tree
	raw      any
	terminal bool
}

// Terminal reports whether the access used TerminalMarker.
func (r Result) Terminal() bool { return r.terminal }

// Tree returns the wrapper, or nil for a terminal result.
func (r Result) Tree() *Tree {
	if r.terminal {
		return nil
	}
	return r.tree
}

// Raw returns the terminal value, or the value wrapped by the Tree.
func (r Result) Raw() any {
	if r.terminal || r.tree == nil {
		return r.raw
	}
	return r.tree.value
}

// Get resolves one access. See the package documentation for the rules.
func (t *Tree) Get(name string) Result {
	if key, ok := strings.CutSuffix(name, TerminalMarker); ok {
		v, _ := lookup(t.value, key)
		return Result{raw: v, terminal: true}
	}
	if v, ok := lookup(t.value, name); ok {
		return Result{tree: New(v)}
	}
	return Result{tree: empty()}
}

// lookup reads key from a mapping value. Non-string keys of map[any]any
// match by their fmt.Sprint form. Anything else has no keys.
func lookup(v any, key string) (any, bool) {
	switch m := v.(type) {
	case map[string]any:
		val, ok := m[key]
		return val, ok
	case map[string]string:
		val, ok := m[key]
		return val, ok
	case map[any]any:
		if val, ok := m[key]; ok {
			return val, true
		}
		for k, val := range m {
			if fmt.Sprint(k) == key {
				return val, true
			}
		}
		return nil, false
	case ordered.Map:
		return m.Get(key)
	default:
		return nil, false
	}
}

// At chains non-terminal accesses. Names are used verbatim, so a trailing
// TerminalMarker is treated as part of the key.
func (t *Tree) At(names ...string) *Tree {
	cur := t
	for _, name := range names {
		v, ok := lookup(cur.value, name)
		if !ok {
			cur = empty()
			continue
		}
		cur = New(v)
	}
	return cur
}

// Lookup is a terminal read of one key: the raw value, or nil.
func (t *Tree) Lookup(key string) any {
	return t.Get(key + TerminalMarker).Raw()
}

// Path resolves a dot separated chain such as "a.b.c!". The marker only
// terminates the chain on the last segment; earlier terminal reads are
// wrapped again and the chain continues.
func (t *Tree) Path(expr string) Result {
	segs := strings.Split(expr, ".")
	cur := t
	for i, seg := range segs {
		res := cur.Get(seg)
		if i == len(segs)-1 {
			return res
		}
		if res.terminal {
			cur = New(res.raw)
			continue
		}
		cur = res.tree
	}
	return Result{tree: cur}
}

// ToJSON serializes the wrapped value.
func (t *Tree) ToJSON() (string, error) {
	b, err := j.Marshal(ordered.Plain(t.value))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ToYAML serializes the wrapped value.
func (t *Tree) ToYAML() (string, error) {
	b, err := yaml.Marshal(ordered.Plain(t.value))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// String returns the JSON form of the wrapped value.
func (t *Tree) String() string {
	s, err := t.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", t.value)
	}
	return s
}
