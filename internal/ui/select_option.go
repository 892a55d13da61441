package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// SelectOption prints a numbered list and returns the index the user picked.
// Empty input picks defaultIndex, which falls back to 0 when out of range.
func SelectOption(message string, options []string, defaultIndex int, input io.Reader, output io.Writer) (int, error) {
	if len(options) == 0 {
		return -1, ErrNoOptions
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)

	if _, err := bold.Fprintln(output, message); err != nil {
		return -1, err
	}
	for i, option := range options {
		var err error
		if i == defaultIndex {
			_, err = green.Fprintf(output, "❯ %d) %s\n", i+1, option)
		} else {
			_, err = fmt.Fprintf(output, "  %d) %s\n", i+1, option)
		}
		if err != nil {
			return -1, err
		}
	}

	br := lineReader(input)
	for {
		if _, err := fmt.Fprintf(output, "Enter a number [%d]: ", defaultIndex+1); err != nil {
			return -1, err
		}

		line, err := readLine(br)
		if err != nil {
			return -1, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return defaultIndex, nil
		}

		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}

		if _, err := fmt.Fprintf(output, "Please enter a number between 1 and %d\n", len(options)); err != nil {
			return -1, err
		}
	}
}
