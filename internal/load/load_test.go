package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonplus/annotate"
)

func TestMetaPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "data.meta.json", MetaPath("data.json"))
	assert.Equal(t, filepath.Join("dir", "people.meta.yaml"), MetaPath(filepath.Join("dir", "people.yaml")))
	assert.Equal(t, "noext.meta", MetaPath("noext"))
}

func TestParseDocumentJSON(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument([]byte(`{"zeta": 1, "alpha": {"b": [1, 2.5, true, null, "s"]}, "empty": []}`))
	require.NoError(t, err)

	m, ok := doc.(*annotate.Map)
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "empty"}, m.Keys(), "document order is preserved")

	zeta, _ := m.Get("zeta")
	assert.Equal(t, 1, zeta)

	alpha, _ := m.Get("alpha")
	inner, ok := alpha.(*annotate.Map)
	require.True(t, ok)

	b, _ := inner.Get("b")
	assert.Equal(t, []any{1, 2.5, true, nil, "s"}, b)

	empty, _ := m.Get("empty")
	assert.Equal(t, []any{}, empty)
}

func TestParseDocumentYAML(t *testing.T) {
	t.Parallel()

	yml := `
base: &base
  name: shared
copy: *base
quoted: "42"
`
	doc, err := ParseDocument([]byte(yml))
	require.NoError(t, err)

	m := doc.(*annotate.Map)

	quoted, _ := m.Get("quoted")
	assert.Equal(t, "42", quoted)

	cp, _ := m.Get("copy")
	name, _ := cp.(*annotate.Map).Get("name")
	assert.Equal(t, "shared", name)
}

func TestParseDocumentErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseDocument([]byte("a: [1, 2"))
	require.Error(t, err)

	_, err = ParseDocument([]byte("base: &b {x: 1}\nother:\n  <<: *b\n"))
	require.ErrorIs(t, err, ErrMergeKey)

	doc, err := ParseDocument(nil)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestPair(t *testing.T) {
	t.Parallel()

	d1, d2 := annotate.NewMap(), annotate.NewMap()
	m1, m2 := annotate.NewMap(), annotate.NewMap()

	t.Run("single", func(t *testing.T) {
		t.Parallel()

		recs, err := Pair(d1, m1)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Same(t, d1, recs[0].Data)
		assert.Same(t, m1, recs[0].Metadata)
	})

	t.Run("zipped", func(t *testing.T) {
		t.Parallel()

		recs, err := Pair([]any{d1, d2}, []any{m1, m2})
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, 1, recs[1].Index)
		assert.Same(t, d2, recs[1].Data)
		assert.Same(t, m2, recs[1].Metadata)
	})

	t.Run("list without metadata", func(t *testing.T) {
		t.Parallel()

		recs, err := Pair([]any{d1, d2}, nil)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Nil(t, recs[0].Metadata)
	})

	t.Run("length mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := Pair([]any{d1, d2}, []any{m1})
		require.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("shape mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := Pair([]any{d1}, m1)
		require.ErrorIs(t, err, ErrShapeMismatch)

		_, err = Pair(d1, []any{m1})
		require.ErrorIs(t, err, ErrShapeMismatch)
	})
}

func TestLoadPair(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`[{"a": 1}, {"a": 2}]`), 0o644))

	t.Run("conventional metadata missing", func(t *testing.T) {
		recs, err := LoadPair(dataPath, "")
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Nil(t, recs[1].Metadata)
	})

	t.Run("explicit metadata missing", func(t *testing.T) {
		_, err := LoadPair(dataPath, filepath.Join(dir, "nope.json"))
		require.Error(t, err)
	})

	t.Run("conventional metadata", func(t *testing.T) {
		require.NoError(t, os.WriteFile(MetaPath(dataPath), []byte(`[{"a": "first"}, {"a": "second"}]`), 0o644))

		recs, err := LoadPair(dataPath, "")
		require.NoError(t, err)
		require.Len(t, recs, 2)

		note, _ := recs[1].Metadata.(*annotate.Map).Get("a")
		assert.Equal(t, "second", note)
	})

	t.Run("missing data", func(t *testing.T) {
		_, err := LoadPair(filepath.Join(dir, "absent.json"), "")
		require.Error(t, err)
	})
}
