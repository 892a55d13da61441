package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ConfirmWithDefault asks the user for a yes/no confirmation with a specified default
func ConfirmWithDefault(message string, defaultYes bool, input io.Reader, output io.Writer) (bool, error) {
	br := lineReader(input)

	prompt := fmt.Sprintf("%s [y/N]: ", message)
	if defaultYes {
		prompt = fmt.Sprintf("%s [Y/n]: ", message)
	}

	for {
		if _, err := fmt.Fprint(output, prompt); err != nil {
			return false, err
		}

		line, err := readLine(br)
		if err != nil {
			return false, err
		}

		switch strings.TrimSpace(strings.ToLower(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if _, err := fmt.Fprintln(output, "Please enter 'y' or 'n'"); err != nil {
			return false, err
		}
	}
}

// ShowCommitMessage displays a formatted commit message
func ShowCommitMessage(message string, output io.Writer) error {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	rule := strings.Repeat("─", 40)

	if _, err := bold.Fprintln(output, "\n📝 Commit message:"); err != nil {
		return err
	}
	if _, err := cyan.Fprintln(output, rule); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(output, message); err != nil {
		return err
	}
	_, err := cyan.Fprintln(output, rule)
	return err
}
