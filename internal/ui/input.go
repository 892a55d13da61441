package ui

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrEmptyInput is returned when the user provides no input
	ErrEmptyInput = errors.New("empty input")

	// ErrInterrupted is returned when the user interrupts input with Ctrl+C
	ErrInterrupted = errors.New("input interrupted")

	// ErrNoOptions is returned by SelectOption when there is nothing to choose from
	ErrNoOptions = errors.New("no options to select from")
)

type lineResult struct {
	line string
	err  error
}

// LineInput reads lines from a stream shared by consecutive prompts. A read
// blocked on the stream returns ErrInterrupted as soon as the context is done;
// the line it was waiting for is kept for the next read.
type LineInput struct {
	ctx     context.Context
	br      *bufio.Reader
	pending chan lineResult // non-nil while a read is in flight
	rest    string          // unread part of a line handed out through Read
}

// NewLineInput wraps r. Reads stop waiting once ctx is done.
func NewLineInput(ctx context.Context, r io.Reader) *LineInput {
	return &LineInput{ctx: ctx, br: bufio.NewReader(r)}
}

// lineReader reuses r when it is already a LineInput, so that consecutive prompts
// reading from the same stream do not lose each other's input.
func lineReader(r io.Reader) *LineInput {
	if in, ok := r.(*LineInput); ok {
		return in
	}
	return NewLineInput(context.Background(), r)
}

// ReadLine reads one line without its line ending. A final line without a newline
// is returned normally; io.EOF is only returned when nothing was read.
func (in *LineInput) ReadLine() (string, error) {
	if in.rest != "" {
		line := strings.TrimRight(in.rest, "\r\n")
		in.rest = ""
		return line, nil
	}

	if in.pending == nil {
		ch := make(chan lineResult, 1)
		in.pending = ch
		go func() {
			line, err := in.br.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
	}

	select {
	case <-in.ctx.Done():
		return "", ErrInterrupted
	case res := <-in.pending:
		in.pending = nil
		if res.err != nil {
			if errors.Is(res.err, io.EOF) && res.line != "" {
				return strings.TrimRight(res.line, "\r\n"), nil
			}
			return "", res.err
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	}
}

// Read implements io.Reader on top of ReadLine
func (in *LineInput) Read(p []byte) (int, error) {
	if in.rest == "" {
		line, err := in.ReadLine()
		if err != nil {
			return 0, err
		}
		in.rest = line + "\n"
	}
	n := copy(p, in.rest)
	in.rest = in.rest[n:]
	return n, nil
}

// Idle reports whether no input is buffered and no read is waiting on the
// stream, so another reader may take over the underlying file.
func (in *LineInput) Idle() bool {
	return in.pending == nil && in.rest == "" && in.br.Buffered() == 0
}

func readLine(in *LineInput) (string, error) {
	return in.ReadLine()
}
