package ordered

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_GetLastWins(t *testing.T) {
	m := Map{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "a", Value: 3}}
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"a", "b", "a"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestMap_ToMapNested(t *testing.T) {
	m := Map{
		{Key: "outer", Value: Map{{Key: "inner", Value: "x"}}},
		{Key: "list", Value: []any{Map{{Key: "k", Value: true}}, 1}},
	}
	assert.Equal(t, map[string]any{
		"outer": map[string]any{"inner": "x"},
		"list":  []any{map[string]any{"k": true}, 1},
	}, m.ToMap())
}

func TestFromMap_SortsKeys(t *testing.T) {
	m := FromMap(map[string]any{"zeta": 1, "alpha": 2, "mid": 3})
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, m.Keys())
}
