package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/huimingz/gcz/internal/log"
)

// ErrNotRepository is returned when the working directory is outside a git work tree
var ErrNotRepository = errors.New("not a git repository")

// Executor defines the interface for git command execution
type Executor interface {
	// IsInsideWorkTree reports whether the working directory is inside a work tree
	IsInsideWorkTree(ctx context.Context) (bool, error)

	// HasStagedChanges reports whether the index differs from HEAD
	HasStagedChanges(ctx context.Context) (bool, error)

	// StagedFiles returns the paths of staged files
	StagedFiles(ctx context.Context) ([]string, error)

	// Commit executes a git commit with the given message and returns git's summary
	Commit(ctx context.Context, message string) (string, error)
}

// DefaultExecutor is the default implementation of Executor
type DefaultExecutor struct {
	workDir string
}

// NewExecutor creates a new DefaultExecutor
func NewExecutor(workDir string) *DefaultExecutor {
	return &DefaultExecutor{workDir: workDir}
}

// runGit runs a git command and returns the output
func (e *DefaultExecutor) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = e.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	log.DebugGit(args, err)
	if err != nil {
		return "", errors.Wrapf(err, "git %s failed\n%s", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}

// exitCode returns the exit status of a failed git command, or -1.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// IsInsideWorkTree reports whether the working directory is inside a work tree
func (e *DefaultExecutor) IsInsideWorkTree(ctx context.Context) (bool, error) {
	out, err := e.runGit(ctx, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		// git exits 128 outside a repository
		if exitCode(err) == 128 {
			return false, nil
		}
		return false, err
	}
	return out == "true", nil
}

// HasStagedChanges reports whether the index differs from HEAD
func (e *DefaultExecutor) HasStagedChanges(ctx context.Context) (bool, error) {
	_, err := e.runGit(ctx, "diff", "--cached", "--quiet")
	if err == nil {
		return false, nil
	}
	if exitCode(err) == 1 {
		return true, nil
	}
	return false, err
}

// StagedFiles returns the paths of staged files
func (e *DefaultExecutor) StagedFiles(ctx context.Context) ([]string, error) {
	out, err := e.runGit(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// Commit executes a git commit with the given message
func (e *DefaultExecutor) Commit(ctx context.Context, message string) (string, error) {
	return e.runGit(ctx, "commit", "-m", message)
}

// EnsureRepository returns ErrNotRepository when the executor is outside a work tree
func EnsureRepository(ctx context.Context, e Executor) error {
	inside, err := e.IsInsideWorkTree(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to detect git repository")
	}
	if !inside {
		return errors.WithHint(ErrNotRepository, "run gcz from inside a git work tree")
	}
	return nil
}
