package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter_NoColor(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf, WithColor(false))

	require.NoError(t, p.PrintInfo("dry run"))
	require.NoError(t, p.PrintSuccess("Commit created"))
	require.NoError(t, p.PrintWarning("header is long"))
	require.NoError(t, p.PrintError("git failed"))

	out := buf.String()
	assert.Contains(t, out, "dry run\n")
	assert.Contains(t, out, "✅ Commit created\n")
	assert.Contains(t, out, "header is long\n")
	assert.Contains(t, out, "❌ Error: git failed\n")
	assert.NotContains(t, out, "\x1b[")
}

func TestPrinter_StagedFiles(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf, WithColor(false))

	require.NoError(t, p.PrintStagedFiles(nil))
	assert.Empty(t, buf.String())

	require.NoError(t, p.PrintStagedFiles([]string{"main.go", "go.mod"}))
	assert.Contains(t, buf.String(), "2 staged file(s):")
	assert.Contains(t, buf.String(), "     main.go\n")
	assert.Contains(t, buf.String(), "     go.mod\n")
}
