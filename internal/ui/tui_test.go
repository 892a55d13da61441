package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huimingz/gcz/internal/commit"
	"github.com/huimingz/gcz/internal/prompt"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// send feeds messages to the model and reports whether the last one quit the program.
func send(m *Model, msgs ...tea.Msg) bool {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	if cmd == nil {
		return false
	}
	_, quit := cmd().(tea.QuitMsg)
	return quit
}

func TestModel_FullFlow(t *testing.T) {
	s := prompt.NewSession(prompt.Options{})
	m := NewModel(s)

	assert.False(t, send(m, runes("fe")))
	assert.Contains(t, m.View(), "❯ feat")
	assert.NotContains(t, m.View(), "fix")

	send(m, keyOf(tea.KeyEnter))
	assert.Equal(t, prompt.StageScope, s.Stage())
	assert.Contains(t, m.View(), "Scope (optional):")

	send(m, runes("api"), keyOf(tea.KeyEnter))
	send(m, runes("add"), keyOf(tea.KeySpace), runes("login"), keyOf(tea.KeyEnter))
	assert.Contains(t, m.View(), "feat(api): add login")

	quit := send(m, keyOf(tea.KeyEnter))
	assert.True(t, quit)

	draft, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, commit.Draft{Type: commit.Feat, Scope: "api", Subject: "add login"}, draft)
}

func TestModel_NoMatchShowsNotice(t *testing.T) {
	s := prompt.NewSession(prompt.Options{})
	m := NewModel(s)

	quit := send(m, runes("zz"), keyOf(tea.KeyEnter))
	assert.False(t, quit)
	assert.Equal(t, prompt.StageType, s.Stage())
	assert.Contains(t, m.Notice(), `No commit type matches "zz"`)
	assert.Contains(t, m.View(), "no matching commit types")

	send(m, keyOf(tea.KeyBackspace))
	assert.Empty(t, m.Notice())
	assert.Equal(t, "z", s.Selector().Query())
}

func TestModel_ArrowsMoveCursor(t *testing.T) {
	s := prompt.NewSession(prompt.Options{})
	m := NewModel(s, WithEmoji(true))

	send(m, keyOf(tea.KeyDown), keyOf(tea.KeyDown), keyOf(tea.KeyUp))
	assert.Equal(t, 1, s.Selector().Cursor())
	assert.Contains(t, m.View(), "❯ 🐛 fix")

	send(m, keyOf(tea.KeyEnter))
	assert.Equal(t, commit.Fix, s.Draft().Type)
}

func TestModel_CtrlCAborts(t *testing.T) {
	s := prompt.NewSession(prompt.Options{})
	m := NewModel(s)

	send(m, runes("chore"), keyOf(tea.KeyEnter), runes("deps"))
	quit := send(m, keyOf(tea.KeyCtrlC))
	assert.True(t, quit)

	_, err := s.Result()
	assert.ErrorIs(t, err, prompt.ErrUserCancelled)
	assert.Empty(t, m.View())
}

func TestModel_EscClearsQuery(t *testing.T) {
	s := prompt.NewSession(prompt.Options{})
	m := NewModel(s)

	send(m, runes("doc"), keyOf(tea.KeyEsc))
	assert.Equal(t, "", s.Selector().Query())
	assert.Len(t, s.Selector().Matches(), len(commit.All()))
}

func TestModel_BlankSubjectNotice(t *testing.T) {
	s := prompt.NewSession(prompt.Options{SkipScope: true})
	m := NewModel(s)

	send(m, keyOf(tea.KeyEnter), keyOf(tea.KeyEnter))
	assert.Equal(t, prompt.StageSubject, s.Stage())
	assert.Equal(t, "The subject is required.", m.Notice())
}

func TestModel_BodyNewline(t *testing.T) {
	s := prompt.NewSession(prompt.Options{SkipScope: true})
	m := NewModel(s)

	send(m,
		keyOf(tea.KeyEnter),
		runes("cache"), keyOf(tea.KeyEnter),
		runes("one"), keyOf(tea.KeyCtrlJ), runes("two"),
	)
	assert.Equal(t, prompt.StageBody, s.Stage())
	assert.True(t, send(m, keyOf(tea.KeyEnter)))
	assert.Equal(t, "one\ntwo", s.Draft().Body)
}

func TestModel_IgnoresUnboundKeys(t *testing.T) {
	s := prompt.NewSession(prompt.Options{})
	m := NewModel(s)

	assert.False(t, send(m, keyOf(tea.KeyF5), tea.WindowSizeMsg{Width: 80, Height: 24}))
	assert.Equal(t, prompt.StageType, s.Stage())
	assert.Equal(t, 0, s.Selector().Cursor())
}

func TestProgramError(t *testing.T) {
	ctx := context.Background()

	assert.ErrorIs(t, programError(ctx, tea.ErrInterrupted), prompt.ErrUserCancelled)
	assert.ErrorIs(t, programError(ctx, tea.ErrProgramKilled), prompt.ErrUserCancelled)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, programError(cancelled, errors.New("read error")), prompt.ErrUserCancelled)

	err := programError(ctx, errors.New("read error"))
	assert.NotErrorIs(t, err, prompt.ErrUserCancelled)
	assert.Contains(t, err.Error(), "interactive prompt failed")
}
