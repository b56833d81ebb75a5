package tinydot

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/reoring/tinydot/ordered"
)

// Convert turns v into its dot-accessible form with default options:
//
//   - mappings (map[string]any, map[any]any, map[string]string, ordered.Map)
//     become *Record,
//   - sequences ([]any) become new sequences of converted elements,
//   - anything else is returned unchanged.
//
// Colliding field names resolve last-wins. Convert never fails.
func Convert(v any) any {
	out, _ := ConvertWith(v, Options{})
	return out
}

// ConvertWith is Convert with options. It fails only when the collision
// policy is CollisionError and at least one collision was found; the
// returned error is Issues listing every collision in the tree.
func ConvertWith(v any, opt Options) (any, error) {
	c := &converter{opt: opt}
	out := c.convert(v, pathRef{})
	if len(c.issues) > 0 {
		return nil, c.issues
	}
	return out, nil
}

type converter struct {
	opt    Options
	issues Issues
}

func (c *converter) convert(v any, at pathRef) any {
	switch t := v.(type) {
	case ordered.Map:
		return c.record(t, at)
	case map[string]any:
		return c.record(ordered.FromMap(t), at)
	case map[string]string:
		return c.record(stringPairs(t), at)
	case map[any]any:
		return c.record(anyPairs(t), at)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = c.convert(t[i], at.index(i))
		}
		return out
	default:
		return v
	}
}

func (c *converter) record(m ordered.Map, at pathRef) *Record {
	rec := newRecord(len(m))
	// winner is the raw key currently backing each field.
	winner := make(map[string]string, len(m))
	seenKey := make(map[string]bool, len(m))
	for _, p := range m {
		name := SanitizeKey(p.Key)
		val := c.convert(p.Value, at.field(p.Key))
		w, taken := winner[name]
		switch {
		case !taken:
		case seenKey[p.Key]:
			// A repeated raw key is a parser duplicate, not a collision:
			// the later value replaces the earlier one.
			if w != p.Key && c.opt.OnCollision == FirstWins {
				continue
			}
		default:
			c.collision(at, name, w, p.Key)
			if c.opt.OnCollision == FirstWins {
				seenKey[p.Key] = true
				continue
			}
		}
		seenKey[p.Key] = true
		winner[name] = p.Key
		rec.put(name, val)
	}
	return rec
}

func (c *converter) collision(at pathRef, name, first, dup string) {
	if c.opt.Logger != nil {
		c.opt.Logger.WithFields(logrus.Fields{
			"field":  name,
			"key":    dup,
			"first":  first,
			"path":   at.pointer(),
			"policy": c.opt.OnCollision.String(),
		}).Warn("field name collision")
	}
	if c.opt.OnCollision != CollisionError {
		return
	}
	c.issues = append(c.issues, Issue{
		Path:    at.pointer(),
		Code:    CodeKeyCollision,
		Message: fmt.Sprintf("keys %q and %q both map to field %q", first, dup, name),
		Field:   name,
		Keys:    []string{first, dup},
	})
}

func stringPairs(m map[string]string) ordered.Map {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(ordered.Map, 0, len(keys))
	for _, k := range keys {
		out = append(out, ordered.Pair{Key: k, Value: m[k]})
	}
	return out
}

// anyPairs stringifies keys with fmt.Sprint and sorts them.
func anyPairs(m map[any]any) ordered.Map {
	plain := make(map[string]any, len(m))
	for k, v := range m {
		plain[fmt.Sprint(k)] = v
	}
	return ordered.FromMap(plain)
}
