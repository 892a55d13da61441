package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"

	"github.com/huimingz/gcz/internal/commit"
	"github.com/huimingz/gcz/internal/prompt"
)

var (
	labelStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
)

var stageLabels = map[prompt.Stage]string{
	prompt.StageScope:   "Scope (optional): ",
	prompt.StageSubject: "Subject: ",
	prompt.StageBody:    "Body (optional): ",
}

// ModelOption configures a Model
type ModelOption func(*Model)

// WithEmoji shows the type emoji next to each label
func WithEmoji(enabled bool) ModelOption {
	return func(m *Model) {
		m.emoji = enabled
	}
}

// Model is the bubbletea front-end of a prompt session. Every key press is
// translated into one engine event; the model only renders session state.
type Model struct {
	session *prompt.Session
	keys    keyMap
	help    help.Model
	emoji   bool
	notice  string
}

// NewModel returns a model driving s
func NewModel(s *prompt.Session, opts ...ModelOption) *Model {
	m := &Model{
		session: s,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Session returns the driven session
func (m *Model) Session() *prompt.Session { return m.session }

// Notice returns the message shown for the last rejected event
func (m *Model) Notice() string { return m.notice }

// Init implements the Bubbletea Model interface
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements the Bubbletea Model interface
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		ev, ok := m.keys.event(msg)
		if !ok {
			return m, nil
		}

		m.notice = ""
		if err := m.session.Handle(ev); err != nil {
			m.notice = noticeFor(err, m.session)
		}

		if m.session.Done() {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

func noticeFor(err error, s *prompt.Session) string {
	switch {
	case errors.Is(err, prompt.ErrNoSelection):
		return fmt.Sprintf("No commit type matches %q. Press backspace to widen the filter.", s.Selector().Query())
	case errors.Is(err, prompt.ErrBlankSubject):
		return "The subject is required."
	case errors.Is(err, prompt.ErrInvalidScope):
		return "The scope must not contain parentheses."
	default:
		return err.Error()
	}
}

// View implements the Bubbletea Model interface
func (m *Model) View() string {
	var b strings.Builder

	switch m.session.Stage() {
	case prompt.StageCancelled:
		return ""
	case prompt.StageDone:
		m.viewSummary(&b)
		return b.String()
	case prompt.StageType:
		m.viewSelector(&b)
	default:
		m.viewSummary(&b)
		b.WriteString(labelStyle.Render(stageLabels[m.session.Stage()]))
		b.WriteString(renderField(m.session.Field()))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.helpFor(m.session.Stage())))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) viewSelector(b *strings.Builder) {
	sel := m.session.Selector()

	b.WriteString(labelStyle.Render("Select a commit type: "))
	b.WriteString(renderField(sel.QueryBuffer()))
	b.WriteString("\n")

	matches := sel.Matches()
	if len(matches) == 0 {
		b.WriteString(dimStyle.Render("  (no matching commit types)"))
		b.WriteString("\n")
		return
	}

	for i, t := range matches {
		label := t.Display(m.emoji)
		if i == sel.Cursor() {
			b.WriteString(selectedStyle.Render("❯ " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}
}

func (m *Model) viewSummary(b *strings.Builder) {
	d := m.session.Draft()

	b.WriteString("Selected commit type: ")
	b.WriteString(valueStyle.Render(d.Type.Display(m.emoji)))
	b.WriteString("\n")

	stage := m.session.Stage()
	if stage > prompt.StageScope && d.Scope != "" {
		b.WriteString("Scope: " + valueStyle.Render(d.Scope) + "\n")
	}
	if stage > prompt.StageSubject && d.Subject != "" {
		header := commit.Header(d.Type, d.Scope, commit.FormatOptions{}) + d.Subject
		b.WriteString("Header: " + valueStyle.Render(header) + "\n")
	}
}

func renderField(f *prompt.LineBuffer) string {
	before, under, after := f.Around()
	if under == "" || under == "\n" {
		under = " " + under
	}
	return before + cursorStyle.Render(under) + after
}

// RunTUI drives s with a bubbletea program on the given streams until the
// session is finished or ctx is cancelled.
func RunTUI(ctx context.Context, s *prompt.Session, input io.Reader, output io.Writer, opts ...ModelOption) (commit.Draft, error) {
	m := NewModel(s, opts...)

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(output),
	)

	if _, err := p.Run(); err != nil {
		return commit.Draft{}, programError(ctx, err)
	}

	return s.Result()
}

// programError maps the error of a finished bubbletea program. A kill, a SIGINT
// seen by bubbletea and a cancelled context all mean the user aborted.
func programError(ctx context.Context, err error) error {
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) || ctx.Err() != nil {
		return prompt.ErrUserCancelled
	}
	return errors.Wrap(err, "interactive prompt failed")
}
