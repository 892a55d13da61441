package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// MultilinePrompt collects several lines of text.
// Input ends at an empty line, at Ctrl+D, or at the end of the stream.
type MultilinePrompt struct {
	Prompt string // The main prompt message
	Hint   string // Hint text shown below the prompt
}

// Show displays the prompt and collects the lines
func (p *MultilinePrompt) Show(input io.Reader, output io.Writer) (string, error) {
	if err := p.displayPrompt(output); err != nil {
		return "", err
	}

	if f, ok := input.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return p.readWithReadline(f, output)
	}
	return p.readInput(input, output)
}

func (p *MultilinePrompt) displayPrompt(output io.Writer) error {
	bold := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)

	if _, err := bold.Fprintln(output, p.Prompt); err != nil {
		return err
	}
	if p.Hint != "" {
		if _, err := dim.Fprintln(output, "  "+p.Hint); err != nil {
			return err
		}
	}
	return nil
}

// readInput reads lines from a plain stream.
func (p *MultilinePrompt) readInput(input io.Reader, output io.Writer) (string, error) {
	br := lineReader(input)
	var lines []string

	for {
		if _, err := fmt.Fprint(output, "> "); err != nil {
			return "", err
		}

		line, err := readLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		// some terminals leave the Ctrl+D byte in the line
		before, _, ctrlD := strings.Cut(line, "\x04")
		if before != "" {
			lines = append(lines, before)
		}
		if ctrlD || line == "" {
			break
		}
	}

	return joinLines(lines)
}

// readWithReadline gives line editing and history on a terminal.
func (p *MultilinePrompt) readWithReadline(input *os.File, output io.Writer) (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "^D",
		Stdin:           input,
		Stdout:          output,
	})
	if err != nil {
		return p.readInput(input, output)
	}
	defer rl.Close()

	var lines []string
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return "", ErrInterrupted
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	return joinLines(lines)
}

func joinLines(lines []string) (string, error) {
	result := strings.Join(lines, "\n")
	if strings.TrimSpace(result) == "" {
		return "", ErrEmptyInput
	}
	return result, nil
}
