package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineBuffer_InsertAndBackspace(t *testing.T) {
	b := NewLineBuffer("")
	b.Insert("add")
	b.Insert(" login")
	assert.Equal(t, "add login", b.String())
	assert.Equal(t, 9, b.Cursor())

	assert.True(t, b.Backspace())
	assert.Equal(t, "add logi", b.String())

	b.Reset()
	assert.False(t, b.Backspace())
	assert.Equal(t, "", b.String())
}

func TestLineBuffer_Graphemes(t *testing.T) {
	b := NewLineBuffer("fix 🐛 ♻️")
	assert.Equal(t, 7, b.Len())

	b.Backspace()
	assert.Equal(t, "fix 🐛 ", b.String())

	b.Left()
	b.Backspace()
	assert.Equal(t, "fix  ", b.String())
}

func TestLineBuffer_CombiningMarkJoinsCluster(t *testing.T) {
	b := NewLineBuffer("cafe")
	b.Insert("́")
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, 4, b.Cursor())

	b.Backspace()
	assert.Equal(t, "caf", b.String())
}

func TestLineBuffer_CursorMovement(t *testing.T) {
	b := NewLineBuffer("abc")

	b.Home()
	b.Insert("x")
	assert.Equal(t, "xabc", b.String())

	b.Right()
	b.Delete()
	assert.Equal(t, "xac", b.String())
	assert.Equal(t, "xa", b.Before())
	assert.Equal(t, "c", b.After())

	b.End()
	assert.False(t, b.Delete())
	b.Right()
	assert.Equal(t, 3, b.Cursor())

	b.Home()
	b.Left()
	assert.Equal(t, 0, b.Cursor())
}

func TestLineBuffer_Around(t *testing.T) {
	b := NewLineBuffer("a✨b")
	b.Home()
	b.Right()

	before, under, after := b.Around()
	assert.Equal(t, "a", before)
	assert.Equal(t, "✨", under)
	assert.Equal(t, "b", after)

	b.End()
	before, under, after = b.Around()
	assert.Equal(t, "a✨b", before)
	assert.Empty(t, under)
	assert.Empty(t, after)
}
