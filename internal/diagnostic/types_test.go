package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("style_attribute", "inline style", "Card", "node")
	d.AddInfo("unused_style_set", "never referenced", "Card", "")
	assert.True(t, d.IsValid())

	d.AddError("unknown_style_set", `style set "primay" is not defined`, "Card", "node.children[0]", "primary")
	d.AddError("missing_type", "node has no type", "", "")

	assert.False(t, d.IsValid())
	assert.EqualError(t, d.Error(),
		`[Card] node.children[0]: [unknown_style_set] style set "primay" is not defined (did you mean primary?); `+
			`[missing_type] node has no type`)

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[2].Severity)
	assert.Equal(t, DiagnosticInfo, all[3].Severity)
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(7).String())
}
