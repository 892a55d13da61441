package commit

import "strings"

// Type is a Conventional Commits type. The zero value None means no type was chosen.
type Type int

const (
	None Type = iota
	Feat
	Fix
	Docs
	Style
	Refactor
	Perf
	Test
	CI
	Chore
)

type typeInfo struct {
	label string
	emoji string
}

var typeTable = [...]typeInfo{
	None:     {},
	Feat:     {label: "feat", emoji: "✨"},
	Fix:      {label: "fix", emoji: "🐛"},
	Docs:     {label: "docs", emoji: "📚"},
	Style:    {label: "style", emoji: "💎"},
	Refactor: {label: "refactor", emoji: "♻️"},
	Perf:     {label: "perf", emoji: "⚡"},
	Test:     {label: "test", emoji: "🧪"},
	CI:       {label: "ci", emoji: "👷"},
	Chore:    {label: "chore", emoji: "🔧"},
}

// All returns every commit type in canonical order
func All() []Type {
	types := make([]Type, 0, len(typeTable)-1)
	for t := Feat; t <= Chore; t++ {
		types = append(types, t)
	}
	return types
}

// Valid reports whether t is one of the known commit types
func (t Type) Valid() bool {
	return t >= Feat && t <= Chore
}

// String returns the label used in commit headers
func (t Type) String() string {
	if !t.Valid() {
		return ""
	}
	return typeTable[t].label
}

// Emoji returns the emoji associated with the type
func (t Type) Emoji() string {
	if !t.Valid() {
		return ""
	}
	return typeTable[t].emoji
}

// Display returns the label as shown in the picker
func (t Type) Display(withEmoji bool) string {
	if withEmoji && t.Valid() {
		return t.Emoji() + " " + t.String()
	}
	return t.String()
}

// ParseType looks up a type by its label, ignoring case
func ParseType(label string) (Type, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	for _, t := range All() {
		if typeTable[t].label == label {
			return t, true
		}
	}
	return None, false
}

// typeByEmoji finds the type whose emoji prefixes s.
func typeByEmoji(s string) (Type, string, bool) {
	for _, t := range All() {
		if e := typeTable[t].emoji; strings.HasPrefix(s, e) {
			return t, strings.TrimPrefix(s, e), true
		}
	}
	return None, s, false
}
