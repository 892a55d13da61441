package log

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

var (
	debugMode           = false
	output    io.Writer = os.Stderr
)

// SetDebugMode enables or disables debug mode
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// SetOutput sets the output writer for log messages
func SetOutput(w io.Writer) {
	output = w
}

// Output returns the current output writer
func Output() io.Writer {
	return output
}

// Debug prints debug messages (only in debug mode)
func Debug(format string, args ...interface{}) {
	if debugMode {
		gray := color.New(color.FgHiBlack)
		gray.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// DebugConfig prints configuration details in debug mode
func DebugConfig(label string, config interface{}) {
	if debugMode {
		gray := color.New(color.FgHiBlack)
		data, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			gray.Fprintf(output, "[DEBUG] %s: (failed to serialize: %v)\n", label, err)
			return
		}
		gray.Fprintf(output, "[DEBUG] %s:\n%s\n", label, string(data))
	}
}

// DebugGit logs a git invocation and its outcome in debug mode
func DebugGit(args []string, err error) {
	if !debugMode {
		return
	}
	if err != nil {
		red := color.New(color.FgRed)
		red.Fprintf(output, "[DEBUG] git %v failed: %v\n", args, err)
		return
	}
	cyan := color.New(color.FgCyan)
	cyan.Fprintf(output, "[DEBUG] git %v\n", args)
}

// DebugDuration logs execution duration in debug mode
func DebugDuration(operation string, duration time.Duration) {
	if debugMode {
		blue := color.New(color.FgBlue)
		blue.Fprintf(output, "[DEBUG] %s took %v\n", operation, duration)
	}
}

// Error prints error messages
func Error(format string, args ...interface{}) {
	red := color.New(color.FgRed)
	red.Fprintf(output, "Error: "+format+"\n", args...)
}

// Warn prints warning messages
func Warn(format string, args ...interface{}) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(output, "Warning: "+format+"\n", args...)
}
