package prompt

import (
	"github.com/huimingz/gcz/internal/commit"
)

// State is the state of a Selector
type State int

const (
	Filtering State = iota
	Confirmed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Filtering:
		return "filtering"
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Direction moves the selection cursor
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

// Selector narrows the commit type list by a typed query and tracks the
// highlighted entry. The cursor is -1 whenever nothing matches.
type Selector struct {
	query    LineBuffer
	matches  []commit.Type
	cursor   int
	state    State
	selected commit.Type
}

// NewSelector returns a selector showing every commit type
func NewSelector() *Selector {
	s := &Selector{}
	s.refilter()
	return s
}

func (s *Selector) refilter() {
	s.matches = commit.Filter(s.query.String())
	if len(s.matches) == 0 {
		s.cursor = -1
		return
	}
	s.cursor = 0
}

func (s *Selector) State() State { return s.state }

// Query returns the current filter text
func (s *Selector) Query() string { return s.query.String() }

// QueryBuffer exposes the query for rendering its cursor
func (s *Selector) QueryBuffer() *LineBuffer { return &s.query }

// Matches returns the commit types matching the query, in canonical order
func (s *Selector) Matches() []commit.Type {
	out := make([]commit.Type, len(s.matches))
	copy(out, s.matches)
	return out
}

// Cursor returns the index of the highlighted match, or -1
func (s *Selector) Cursor() int { return s.cursor }

// Highlighted returns the type under the cursor
func (s *Selector) Highlighted() (commit.Type, bool) {
	if s.cursor < 0 {
		return commit.None, false
	}
	return s.matches[s.cursor], true
}

// MoveCursor moves the highlight and clamps it to the filtered list.
// It is a no-op returning -1 when the list is empty.
func (s *Selector) MoveCursor(d Direction) int {
	if len(s.matches) == 0 {
		s.cursor = -1
		return s.cursor
	}
	next := s.cursor + int(d)
	if next < 0 {
		next = 0
	}
	if next > len(s.matches)-1 {
		next = len(s.matches) - 1
	}
	s.cursor = next
	return s.cursor
}

// Confirm locks in the highlighted type
func (s *Selector) Confirm() (commit.Type, error) {
	switch s.state {
	case Confirmed:
		return s.selected, nil
	case Cancelled:
		return commit.None, ErrUserCancelled
	}

	t, ok := s.Highlighted()
	if !ok {
		return commit.None, ErrNoSelection
	}
	s.selected = t
	s.state = Confirmed
	return t, nil
}

// Cancel moves the selector to the Cancelled state
func (s *Selector) Cancel() {
	if s.state == Filtering {
		s.state = Cancelled
	}
}

// Selected returns the confirmed type, or commit.None
func (s *Selector) Selected() commit.Type { return s.selected }

// Handle applies one event. Only ErrNoSelection is ever returned; the selector keeps
// filtering afterwards.
func (s *Selector) Handle(ev Event) error {
	if s.state != Filtering {
		return nil
	}

	switch ev.Key {
	case KeyAbort:
		s.Cancel()
		return nil
	case KeyEnter:
		_, err := s.Confirm()
		return err
	case KeyUp:
		s.MoveCursor(Up)
		return nil
	case KeyDown:
		s.MoveCursor(Down)
		return nil
	}

	if changed, _ := s.query.edit(ev); changed {
		s.refilter()
	}
	return nil
}
