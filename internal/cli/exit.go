package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/huimingz/gcz/internal/config"
	"github.com/huimingz/gcz/internal/log"
	"github.com/huimingz/gcz/internal/prompt"
)

// activeConfig is the configuration of the current run, nil before it is loaded.
var activeConfig *config.Config

func exitCodes() *config.ExitCodeConfig {
	if activeConfig == nil {
		return config.DefaultExitCodeConfig()
	}
	return activeConfig.GetExitCodes()
}

// ExitCode maps the result of a run to the process exit code
func ExitCode(err error, codes *config.ExitCodeConfig) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, prompt.ErrUserCancelled):
		return codes.Cancelled
	default:
		return codes.Failure
	}
}

func reportError(err error) {
	writeError(log.Output(), err)
}

// writeError prints err once. Cancellation is a single line; the full error
// with its stack is only shown in debug mode.
func writeError(w io.Writer, err error) {
	if errors.Is(err, prompt.ErrUserCancelled) {
		if reason := cancelReason(err); reason != "" {
			fmt.Fprintf(w, "Cancelled: %s\n", reason)
			return
		}
		fmt.Fprintln(w, "Cancelled.")
		return
	}

	log.Error("%v", err)
	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
	if errors.HasAssertionFailure(err) {
		log.Error("internal error, rerun with --debug for details")
	}
	log.Debug("%+v", err)
}

// cancelReason returns the context a cancellation was wrapped with, if any
func cancelReason(err error) string {
	msg := err.Error()
	reason := strings.TrimSuffix(msg, ": "+prompt.ErrUserCancelled.Error())
	if reason == msg {
		return ""
	}
	return reason
}
