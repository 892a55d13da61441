package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrinterOption is a functional option for Printer
type PrinterOption func(*Printer)

// WithColor enables or disables color output
func WithColor(enabled bool) PrinterOption {
	return func(p *Printer) {
		p.colorEnabled = enabled
	}
}

// Printer writes status lines to the terminal
type Printer struct {
	writer       io.Writer
	colorEnabled bool
}

// NewPrinter creates a new Printer
func NewPrinter(writer io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{
		writer:       writer,
		colorEnabled: true,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Printer) print(attr color.Attribute, prefix, message string) error {
	if p.colorEnabled {
		_, err := color.New(attr).Fprintf(p.writer, "%s %s\n", prefix, message)
		return err
	}
	_, err := fmt.Fprintf(p.writer, "%s %s\n", prefix, message)
	return err
}

// PrintInfo prints an info message
func (p *Printer) PrintInfo(message string) error {
	return p.print(color.FgCyan, "ℹ️ ", message)
}

// PrintSuccess prints a success message
func (p *Printer) PrintSuccess(message string) error {
	return p.print(color.FgGreen, "✅", message)
}

// PrintWarning prints a warning message
func (p *Printer) PrintWarning(message string) error {
	return p.print(color.FgYellow, "⚠️ ", message)
}

// PrintError prints an error message
func (p *Printer) PrintError(message string) error {
	return p.print(color.FgRed, "❌ Error:", message)
}

// PrintStagedFiles lists the files that will be committed
func (p *Printer) PrintStagedFiles(files []string) error {
	if len(files) == 0 {
		return nil
	}
	if err := p.print(color.FgHiBlack, "📦", fmt.Sprintf("%d staged file(s):", len(files))); err != nil {
		return err
	}
	for _, f := range files {
		if _, err := fmt.Fprintf(p.writer, "     %s\n", f); err != nil {
			return err
		}
	}
	return nil
}
