package prompt

import (
	"strings"

	"github.com/huimingz/gcz/internal/commit"
)

// Stage is the step of a Session
type Stage int

const (
	StageType Stage = iota
	StageScope
	StageSubject
	StageBody
	StageDone
	StageCancelled
)

func (s Stage) String() string {
	switch s {
	case StageType:
		return "type"
	case StageScope:
		return "scope"
	case StageSubject:
		return "subject"
	case StageBody:
		return "body"
	case StageDone:
		return "done"
	case StageCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Options selects which stages a Session asks for. The type stage is always asked.
type Options struct {
	SkipScope   bool
	SkipSubject bool
	SkipBody    bool
}

// Session collects a commit draft: a commit type from the Selector, then scope,
// subject and body as free text.
type Session struct {
	opts     Options
	selector *Selector
	stage    Stage
	field    LineBuffer
	draft    commit.Draft
}

// NewSession starts a session at the type stage
func NewSession(opts Options) *Session {
	return &Session{
		opts:     opts,
		selector: NewSelector(),
		stage:    StageType,
	}
}

func (s *Session) Stage() Stage { return s.stage }

func (s *Session) Selector() *Selector { return s.selector }

// Field returns the buffer of the active text stage
func (s *Session) Field() *LineBuffer { return &s.field }

// Draft returns what has been collected so far
func (s *Session) Draft() commit.Draft { return s.draft }

// Done reports whether the session reached StageDone or StageCancelled
func (s *Session) Done() bool {
	return s.stage == StageDone || s.stage == StageCancelled
}

// Result returns the finished draft
func (s *Session) Result() (commit.Draft, error) {
	switch s.stage {
	case StageDone:
		return s.draft, nil
	case StageCancelled:
		return commit.Draft{}, ErrUserCancelled
	default:
		return commit.Draft{}, ErrIncomplete
	}
}

// Handle applies one event to the active stage. The returned error is always
// recoverable: the event was rejected and the stage is unchanged.
func (s *Session) Handle(ev Event) error {
	if s.Done() {
		return nil
	}

	if ev.Key == KeyAbort {
		s.selector.Cancel()
		s.stage = StageCancelled
		return nil
	}

	if s.stage == StageType {
		if err := s.selector.Handle(ev); err != nil {
			return err
		}
		if s.selector.State() == Confirmed {
			s.draft.Type = s.selector.Selected()
			s.advance()
		}
		return nil
	}

	switch ev.Key {
	case KeyEnter:
		return s.submit()
	case KeyNewline:
		if s.stage == StageBody {
			s.field.Insert("\n")
		}
		return nil
	case KeyRune:
		if s.stage != StageBody {
			ev.Text = strings.ReplaceAll(ev.Text, "\n", " ")
		}
	}

	s.field.edit(ev)
	return nil
}

func (s *Session) submit() error {
	value := strings.TrimSpace(s.field.String())

	switch s.stage {
	case StageScope:
		if !commit.ValidScope(value) {
			return ErrInvalidScope
		}
		s.draft.Scope = value
	case StageSubject:
		if value == "" {
			return ErrBlankSubject
		}
		s.draft.Subject = value
	case StageBody:
		s.draft.Body = value
	}

	s.advance()
	return nil
}

// advance moves to the next stage that is not skipped.
func (s *Session) advance() {
	s.field.Reset()

	next := s.stage + 1
	for ; next < StageDone; next++ {
		if !s.skipped(next) {
			break
		}
	}
	s.stage = next
}

func (s *Session) skipped(stage Stage) bool {
	switch stage {
	case StageScope:
		return s.opts.SkipScope
	case StageSubject:
		return s.opts.SkipSubject
	case StageBody:
		return s.opts.SkipBody
	}
	return false
}

// Replay feeds a scripted event sequence to the session. Rejected events are skipped
// the way the interactive loop skips them. It stops at the first final stage.
func Replay(s *Session, events ...Event) (commit.Draft, error) {
	for _, ev := range events {
		if s.Done() {
			break
		}
		if err := s.Handle(ev); err != nil && !IsRecoverable(err) {
			return commit.Draft{}, err
		}
	}
	return s.Result()
}
