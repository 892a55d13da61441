package prompt

import (
	"strings"

	"github.com/rivo/uniseg"
)

// LineBuffer is an editable line of text. The cursor moves over grapheme clusters,
// so an emoji or a letter with combining marks is edited as one unit.
type LineBuffer struct {
	clusters []string
	cursor   int
}

// NewLineBuffer returns a buffer holding s with the cursor at the end
func NewLineBuffer(s string) *LineBuffer {
	b := &LineBuffer{}
	b.Set(s)
	return b
}

func splitClusters(s string) []string {
	var clusters []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}

// Set replaces the content and moves the cursor to the end
func (b *LineBuffer) Set(s string) {
	b.clusters = splitClusters(s)
	b.cursor = len(b.clusters)
}

// Reset empties the buffer
func (b *LineBuffer) Reset() {
	b.clusters = nil
	b.cursor = 0
}

func (b *LineBuffer) String() string {
	return strings.Join(b.clusters, "")
}

// Len returns the number of grapheme clusters
func (b *LineBuffer) Len() int {
	return len(b.clusters)
}

// Cursor returns the cursor position in grapheme clusters
func (b *LineBuffer) Cursor() int {
	return b.cursor
}

// Before returns the text left of the cursor
func (b *LineBuffer) Before() string {
	return strings.Join(b.clusters[:b.cursor], "")
}

// After returns the text right of the cursor
func (b *LineBuffer) After() string {
	return strings.Join(b.clusters[b.cursor:], "")
}

// Around splits the text at the cursor: the part before it, the cluster under it
// (empty at the end of the line) and the rest.
func (b *LineBuffer) Around() (before, under, after string) {
	before = b.Before()
	if b.cursor < len(b.clusters) {
		under = b.clusters[b.cursor]
		after = strings.Join(b.clusters[b.cursor+1:], "")
	}
	return before, under, after
}

// Insert adds s at the cursor. The text around the insertion point is segmented again
// because an inserted combining mark joins the cluster before it.
func (b *LineBuffer) Insert(s string) {
	if s == "" {
		return
	}
	head := b.Before() + s
	after := b.After()
	b.clusters = splitClusters(head + after)
	b.cursor = uniseg.GraphemeClusterCount(head)
	if b.cursor > len(b.clusters) {
		b.cursor = len(b.clusters)
	}
}

// Backspace removes the cluster left of the cursor
func (b *LineBuffer) Backspace() bool {
	if b.cursor == 0 {
		return false
	}
	b.clusters = append(b.clusters[:b.cursor-1], b.clusters[b.cursor:]...)
	b.cursor--
	return true
}

// Delete removes the cluster under the cursor
func (b *LineBuffer) Delete() bool {
	if b.cursor >= len(b.clusters) {
		return false
	}
	b.clusters = append(b.clusters[:b.cursor], b.clusters[b.cursor+1:]...)
	return true
}

func (b *LineBuffer) Left() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *LineBuffer) Right() {
	if b.cursor < len(b.clusters) {
		b.cursor++
	}
}

func (b *LineBuffer) Home() { b.cursor = 0 }

func (b *LineBuffer) End() { b.cursor = len(b.clusters) }

// edit applies an editing key and reports whether the content changed.
func (b *LineBuffer) edit(ev Event) (changed bool, handled bool) {
	switch ev.Key {
	case KeyRune:
		b.Insert(ev.Text)
		return ev.Text != "", true
	case KeyBackspace:
		return b.Backspace(), true
	case KeyDelete:
		return b.Delete(), true
	case KeyLeft:
		b.Left()
		return false, true
	case KeyRight:
		b.Right()
		return false, true
	case KeyHome:
		b.Home()
		return false, true
	case KeyEnd:
		b.End()
		return false, true
	case KeyClear:
		changed = b.Len() > 0
		b.Reset()
		return changed, true
	}
	return false, false
}
