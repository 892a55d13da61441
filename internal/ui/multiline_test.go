package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultilinePrompt_EndsAtEmptyLine(t *testing.T) {
	input := strings.NewReader("first line\nsecond line\n\nnot read\n")
	output := &bytes.Buffer{}

	p := &MultilinePrompt{Prompt: "Body (optional):", Hint: "Finish with an empty line."}
	result, err := p.Show(input, output)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", result)

	assert.Contains(t, output.String(), "Body (optional):")
	assert.Contains(t, output.String(), "Finish with an empty line.")
}

func TestMultilinePrompt_CtrlD(t *testing.T) {
	input := strings.NewReader("only line\x04\n")
	p := &MultilinePrompt{Prompt: "Body:"}

	result, err := p.Show(input, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "only line", result)
}

func TestMultilinePrompt_EOF(t *testing.T) {
	p := &MultilinePrompt{Prompt: "Body:"}

	result, err := p.Show(strings.NewReader("no newline at end"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "no newline at end", result)
}

func TestMultilinePrompt_EmptyInput(t *testing.T) {
	p := &MultilinePrompt{Prompt: "Body:"}

	result, err := p.Show(strings.NewReader("\n"), &bytes.Buffer{})
	assert.Equal(t, ErrEmptyInput, err)
	assert.Empty(t, result)

	_, err = p.Show(strings.NewReader(""), &bytes.Buffer{})
	assert.Equal(t, ErrEmptyInput, err)
}
