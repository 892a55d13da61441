package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/huimingz/gcz/internal/commit"
	"github.com/huimingz/gcz/internal/prompt"
)

// LinePrompter drives a prompt session with plain line input. It is used when
// stdin is not a terminal or when the plain mode is forced.
type LinePrompter struct {
	input  io.Reader
	term   *os.File
	output io.Writer
	emoji  bool
}

// NewLinePrompter creates a LinePrompter reading from input. term is the file
// behind input, or nil; the body is read with readline when it is a terminal.
func NewLinePrompter(input io.Reader, term *os.File, output io.Writer, emoji bool) *LinePrompter {
	return &LinePrompter{input: input, term: term, output: output, emoji: emoji}
}

// Run asks for every stage of s and returns the finished draft.
// End of input and Ctrl+C abort the session.
func (p *LinePrompter) Run(ctx context.Context, s *prompt.Session) (commit.Draft, error) {
	br, ok := p.input.(*LineInput)
	if !ok {
		br = NewLineInput(ctx, p.input)
	}

	for !s.Done() {
		if ctx.Err() != nil {
			_ = s.Handle(prompt.Press(prompt.KeyAbort))
			break
		}

		var err error
		switch s.Stage() {
		case prompt.StageType:
			err = p.askType(br, s)
		case prompt.StageScope:
			err = p.askField(br, s, "Scope (optional): ")
		case prompt.StageSubject:
			err = p.askField(br, s, "Subject: ")
		case prompt.StageBody:
			err = p.askBody(br, s)
		}

		if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupted) {
			_ = s.Handle(prompt.Press(prompt.KeyAbort))
			break
		}
		if err != nil {
			return commit.Draft{}, err
		}
	}

	return s.Result()
}

func (p *LinePrompter) askType(br *LineInput, s *prompt.Session) error {
	bold := color.New(color.Bold)
	if _, err := bold.Fprint(p.output, "Filter commit types (enter for all): "); err != nil {
		return err
	}

	query, err := readLine(br)
	if err != nil {
		return err
	}

	p.feed(s, prompt.Press(prompt.KeyClear), prompt.Text(strings.TrimSpace(query)))

	matches := s.Selector().Matches()
	if len(matches) != 1 {
		if len(matches) == 0 {
			// Enter on an empty list is rejected and reported as a notice.
			p.feed(s, prompt.Press(prompt.KeyEnter))
			return nil
		}

		labels := make([]string, len(matches))
		for i, t := range matches {
			labels[i] = t.Display(p.emoji)
		}
		idx, err := SelectOption("Select a commit type:", labels, 0, br, p.output)
		if err != nil {
			return err
		}
		for i := 0; i < idx; i++ {
			p.feed(s, prompt.Press(prompt.KeyDown))
		}
	}

	p.feed(s, prompt.Press(prompt.KeyEnter))
	if s.Stage() != prompt.StageType {
		fmt.Fprintf(p.output, "Selected commit type: %s\n", color.CyanString(s.Draft().Type.Display(p.emoji)))
	}
	return nil
}

func (p *LinePrompter) askField(br *LineInput, s *prompt.Session, label string) error {
	bold := color.New(color.Bold)
	if _, err := bold.Fprint(p.output, label); err != nil {
		return err
	}

	line, err := readLine(br)
	if err != nil {
		return err
	}

	p.feed(s, prompt.Press(prompt.KeyClear), prompt.Text(line), prompt.Press(prompt.KeyEnter))
	return nil
}

func (p *LinePrompter) askBody(br *LineInput, s *prompt.Session) error {
	mp := &MultilinePrompt{
		Prompt: "Body (optional):",
		Hint:   "Finish with an empty line.",
	}

	body, err := mp.Show(bodySource(br, p.term, isatty.IsTerminal), p.output)
	if err != nil && !errors.Is(err, ErrEmptyInput) {
		return err
	}

	p.feed(s, prompt.Press(prompt.KeyClear), prompt.Text(body), prompt.Press(prompt.KeyEnter))
	return nil
}

// bodySource returns the terminal file for readline when term is a terminal and
// nothing typed ahead is waiting in br, and br otherwise.
func bodySource(br *LineInput, term *os.File, isTerminal func(fd uintptr) bool) io.Reader {
	if term != nil && isTerminal(term.Fd()) && br.Idle() {
		return term
	}
	return br
}

// feed applies events, printing a notice for each rejected one.
func (p *LinePrompter) feed(s *prompt.Session, events ...prompt.Event) {
	for _, ev := range events {
		if err := s.Handle(ev); err != nil {
			color.New(color.FgYellow).Fprintln(p.output, noticeFor(err, s))
		}
	}
}
