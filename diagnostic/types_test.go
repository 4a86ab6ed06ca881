package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	assert.Zero(t, d.Len())

	d.Warnf(CodeUnsupportedKind, "a.b", "value %v skipped", nil)
	d.Warnf(CodeListCollapsed, "xs", "%d elements", 2)
	d.Warnf("", "", "no path")
	assert.Equal(t, 3, d.Len())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityWarning, all[0].Severity)
	assert.Equal(t, "a.b: [unsupported_kind] value <nil> skipped", all[0].String())
	assert.Equal(t, "no path", all[2].String())

	collapsed := d.ByCode(CodeListCollapsed)
	require.Len(t, collapsed, 1)
	assert.Equal(t, "xs", collapsed[0].FieldPath)
	assert.Empty(t, d.ByCode("other"))
}

func TestDiagnosticsMerge(t *testing.T) {
	t.Parallel()

	var a, b Diagnostics
	a.Warnf(CodeListCollapsed, "x", "first")
	b.Warnf(CodeListCollapsed, "y", "second")

	a.Merge(&b)
	a.Merge(nil)

	require.Len(t, a.All(), 2)
	assert.Equal(t, "y", a.All()[1].FieldPath)
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
