package annotate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jsonplus/annotate"
)

func TestMapOrder(t *testing.T) {
	t.Parallel()

	m := annotate.NewMap(
		annotate.Field{Key: "z", Value: 1},
		annotate.Field{Key: "a", Value: 2},
		annotate.Field{Key: "z", Value: 3},
	)

	assert.Equal(t, []string{"z", "a"}, m.Keys())
	assert.Equal(t, 2, m.Len())

	v, ok := m.Get("z")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	m.Set("m", 4)
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	var keys []string
	for k := range m.All() {
		keys = append(keys, k)
		if k == "a" {
			break
		}
	}
	assert.Equal(t, []string{"z", "a"}, keys)
}

func TestMapNil(t *testing.T) {
	t.Parallel()

	var m *annotate.Map

	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.Zero(t, m.Len())
	assert.Nil(t, m.Keys())

	for range m.All() {
		t.Fatal("nil map must not yield")
	}
}

func TestFromGoMap(t *testing.T) {
	t.Parallel()

	nested := map[string]any{"y": 1}
	m := annotate.FromGoMap(map[string]any{"b": nested, "a": "x"})

	assert.Equal(t, []string{"a", "b"}, m.Keys())

	v, _ := m.Get("b")
	assert.Equal(t, nested, v)
}
