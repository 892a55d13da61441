// Package editor edits a commit message in an external editor, the way git does.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
	"mvdan.cc/sh/v3/shell"

	"github.com/huimingz/gcz/internal/log"
)

var (
	// ErrEmptyMessage is returned when the saved file holds no message
	ErrEmptyMessage = errors.New("empty commit message")

	// ErrEditorFailed is returned when the editor exits with a non-zero status
	ErrEditorFailed = errors.New("editor exited with an error")
)

const instructions = `# Please enter the commit message for your changes.
# Lines starting with '#' will be ignored, and an empty message aborts the commit.`

// Editor runs an external editor on a temporary file
type Editor struct {
	command string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// New returns an editor for the given command line, e.g. "code --wait".
// The editor is attached to the process terminal.
func New(command string) *Editor {
	return &Editor{
		command: command,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// WithIO replaces the streams the editor process is attached to
func (e *Editor) WithIO(stdin io.Reader, stdout, stderr io.Writer) *Editor {
	e.stdin, e.stdout, e.stderr = stdin, stdout, stderr
	return e
}

// Template returns the initial file content for a header prefix like "feat(api): "
func Template(header string) string {
	return header + "\n\n" + instructions + "\n"
}

// Args splits the editor command line with shell quoting rules
func (e *Editor) Args() ([]string, error) {
	fields, err := shell.Fields(e.command, os.Getenv)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid editor command %q", e.command)
	}
	if len(fields) == 0 {
		return nil, errors.New("editor command is empty")
	}
	return fields, nil
}

// Edit writes initial to a temp file, opens it in the editor and returns the
// saved message with comment lines removed.
func (e *Editor) Edit(ctx context.Context, initial string) (string, error) {
	args, err := e.Args()
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", "gcz-*.txt")
	if err != nil {
		return "", errors.Wrap(err, "failed to create temp file")
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(initial); err != nil {
		f.Close()
		return "", errors.Wrap(err, "failed to write temp file")
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close temp file")
	}

	log.Debug("Opening editor: %v %s", args, path)

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", errors.Mark(errors.Wrapf(err, "editor %q", args[0]), ErrEditorFailed)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to read edited message")
	}

	message := StripComments(string(content))
	if message == "" {
		return "", ErrEmptyMessage
	}
	return message, nil
}

// StripComments drops '#' comment lines and surrounding blank lines, and
// collapses runs of blank lines into one.
func StripComments(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var lines []string
	blank := false
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
			continue
		}
		line = strings.TrimRight(line, " \t")
		if line == "" {
			blank = len(lines) > 0
			continue
		}
		if blank {
			lines = append(lines, "")
			blank = false
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
