package prompt

// Key identifies a discrete input event understood by the engine
type Key int

const (
	KeyRune Key = iota
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeyNewline
	KeyClear
	KeyAbort
)

var keyNames = map[Key]string{
	KeyRune:      "rune",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyEnter:     "enter",
	KeyNewline:   "newline",
	KeyClear:     "clear",
	KeyAbort:     "abort",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one input event. Text is only set for KeyRune and may hold several
// runes when the terminal delivers a paste.
type Event struct {
	Key  Key
	Text string
}

// Press returns an event for a non-text key
func Press(k Key) Event {
	return Event{Key: k}
}

// Text returns a text input event
func Text(s string) Event {
	return Event{Key: KeyRune, Text: s}
}

// Line returns the events for typing s and pressing Enter
func Line(s string) []Event {
	if s == "" {
		return []Event{Press(KeyEnter)}
	}
	return []Event{Text(s), Press(KeyEnter)}
}
