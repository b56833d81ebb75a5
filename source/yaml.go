package source

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/reoring/tinydot/ordered"
)

// DecodeYAML parses the first YAML document in data into plain maps,
// sequences and scalars. Mappings with non-string keys are normalized to
// map[string]any with the keys formatted by fmt.Sprint.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return NormalizeYAML(v), nil
}

// NormalizeYAML converts YAML-decoded values (which may contain map[any]any)
// into JSON-like values recursively.
func NormalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = NormalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = NormalizeYAML(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = NormalizeYAML(t[i])
		}
		return arr
	default:
		return v
	}
}

// DecodeYAMLOrdered parses the first YAML document in data walking the node
// tree, so mappings come back as ordered.Map in document order. Aliases are
// resolved and merge keys ("<<") are expanded the way yaml.v3 does: explicit
// keys of the mapping win over merged ones, and earlier merge sources win
// over later ones. Keys are stringified like DecodeYAML does.
func DecodeYAMLOrdered(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return nodeToOrdered(&root)
}

func nodeToOrdered(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeToOrdered(n.Content[0])
	case yaml.AliasNode:
		return nodeToOrdered(n.Alias)
	case yaml.MappingNode:
		return mappingToOrdered(n)
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeToOrdered(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, nil
	}
}

func mappingToOrdered(n *yaml.Node) (ordered.Map, error) {
	out := make(ordered.Map, 0, len(n.Content)/2)
	explicit := make(map[string]bool, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		if !isMergeKey(n.Content[i]) {
			k, err := keyString(n.Content[i])
			if err != nil {
				return nil, err
			}
			explicit[k] = true
		}
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if isMergeKey(k) {
			merged, err := mergeSources(v)
			if err != nil {
				return nil, err
			}
			for _, p := range merged {
				if explicit[p.Key] {
					continue
				}
				explicit[p.Key] = true
				out = append(out, p)
			}
			continue
		}
		key, err := keyString(k)
		if err != nil {
			return nil, err
		}
		val, err := nodeToOrdered(v)
		if err != nil {
			return nil, err
		}
		out = append(out, ordered.Pair{Key: key, Value: val})
	}
	return out, nil
}

func isMergeKey(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.Tag == "!!merge"
}

// mergeSources flattens the value of a merge key: a mapping, an alias to a
// mapping, or a sequence of those.
func mergeSources(v *yaml.Node) (ordered.Map, error) {
	if v.Kind == yaml.AliasNode {
		v = v.Alias
	}
	switch v.Kind {
	case yaml.MappingNode:
		return mappingToOrdered(v)
	case yaml.SequenceNode:
		var out ordered.Map
		seen := make(map[string]bool)
		for _, c := range v.Content {
			m, err := mergeSources(c)
			if err != nil {
				return nil, err
			}
			for _, p := range m {
				if seen[p.Key] {
					continue
				}
				seen[p.Key] = true
				out = append(out, p)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("yaml: line %d: map merge requires map or sequence of maps as the value", v.Line)
	}
}

// keyString decodes the key node and formats it with fmt.Sprint, matching
// NormalizeYAML for non-string keys.
func keyString(k *yaml.Node) (string, error) {
	v, err := nodeToOrdered(k)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(ordered.Plain(v)), nil
}
