package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"

	"github.com/huimingz/gcz/internal/commit"
	"github.com/huimingz/gcz/internal/config"
	"github.com/huimingz/gcz/internal/editor"
	"github.com/huimingz/gcz/internal/git"
	"github.com/huimingz/gcz/internal/log"
	"github.com/huimingz/gcz/internal/prompt"
	"github.com/huimingz/gcz/internal/ui"
)

// commitOptions holds the root command flags
type commitOptions struct {
	emoji  bool
	editor bool
	plain  bool
	dryRun bool
	copy   bool
	yes    bool
}

var flags commitOptions

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&flags.emoji, "emoji", "e", false, "Show emoji next to commit types")
	f.BoolVar(&flags.editor, "editor", false, "Write subject and body in $EDITOR")
	f.BoolVar(&flags.plain, "plain", false, "Use line prompts instead of the interactive list")
	f.BoolVarP(&flags.dryRun, "dry-run", "n", false, "Print the message without committing")
	f.BoolVarP(&flags.copy, "copy", "c", false, "Copy the message to the clipboard")
	f.BoolVarP(&flags.yes, "yes", "y", false, "Commit without asking for confirmation")
}

type (
	promptFunc func(ctx context.Context, s *prompt.Session) (commit.Draft, error)
	editFunc   func(ctx context.Context, initial string) (string, error)
	copyFunc   func(message string) error
)

// commitRunner composes a message and commits it. Collaborators are fields so
// tests can replace the terminal, the editor and git.
type commitRunner struct {
	cfg     *config.Config
	opts    commitOptions
	git     git.Executor
	input   io.Reader
	output  io.Writer
	printer *ui.Printer
	prompt  promptFunc
	edit    editFunc
	copy    copyFunc
}

func runCommit(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	activeConfig = cfg

	log.DebugConfig("Configuration", cfg)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Outside the interactive list Ctrl+C arrives as a signal
	handler := NewInterruptHandler(cancel)
	handler.Start()
	defer handler.Stop()

	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get current directory")
	}

	r := newCommitRunner(ctx, cfg, flags, git.NewExecutor(cwd), os.Stdin, cmd.OutOrStdout())
	err = r.run(ctx)

	if handler.IsInterrupted() && err != nil && !errors.Is(err, prompt.ErrUserCancelled) {
		log.Debug("Interrupted: %v", err)
		err = prompt.ErrUserCancelled
	}

	log.DebugDuration("gcz", time.Since(startTime))
	return err
}

func newCommitRunner(ctx context.Context, cfg *config.Config, opts commitOptions, exec git.Executor, input *os.File, output io.Writer) *commitRunner {
	r := &commitRunner{
		cfg:     cfg,
		opts:    opts,
		git:     exec,
		output:  output,
		printer: ui.NewPrinter(output, ui.WithColor(isTerminal(output))),
		copy:    clipboard.WriteAll,
	}

	emoji := opts.emoji || cfg.Emoji
	if useTUI(cfg.GetUIMode(), opts.plain, input) {
		log.Debug("Using interactive list")
		r.input = input
		r.prompt = func(ctx context.Context, s *prompt.Session) (commit.Draft, error) {
			return ui.RunTUI(ctx, s, input, output, ui.WithEmoji(emoji))
		}
	} else {
		log.Debug("Using line prompts")
		// One line reader shared by the prompts and the confirmation
		in := ui.NewLineInput(ctx, input)
		r.input = in
		r.prompt = ui.NewLinePrompter(in, input, output, emoji).Run
	}

	r.edit = func(ctx context.Context, initial string) (string, error) {
		return editor.New(cfg.GetEditorCommand()).Edit(ctx, initial)
	}
	return r
}

// useTUI decides between the interactive list and line prompts
func useTUI(mode string, plain bool, input *os.File) bool {
	if plain {
		return false
	}
	switch mode {
	case config.ModeTUI:
		return true
	case config.ModePlain:
		return false
	}
	return input != nil && isatty.IsTerminal(input.Fd())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func (r *commitRunner) useEditor() bool {
	return r.opts.editor || r.cfg.EditorEnabled()
}

// previewOnly is true when the message is not going to be committed
func (r *commitRunner) previewOnly() bool {
	return r.opts.dryRun
}

func (r *commitRunner) run(ctx context.Context) error {
	if !r.previewOnly() {
		ok, err := r.checkRepository(ctx)
		if err != nil || !ok {
			return err
		}
	}

	message, err := r.compose(ctx)
	if err != nil {
		return err
	}

	r.checkHeaderLength(message)

	if r.previewOnly() {
		if err := ui.ShowCommitMessage(message, r.output); err != nil {
			return err
		}
	}

	if r.opts.copy {
		if err := r.copy(message); err != nil {
			// Clipboard access is optional; a missing clipboard tool does not stop the commit
			_ = r.printer.PrintWarning(fmt.Sprintf("Failed to copy message: %v", err))
		} else {
			_ = r.printer.PrintInfo("Message copied to clipboard")
		}
	}

	if r.previewOnly() {
		return nil
	}

	if r.cfg.Confirm && !r.opts.yes {
		if err := ui.ShowCommitMessage(message, r.output); err != nil {
			return err
		}
		confirmed, err := ui.ConfirmWithDefault("\nDo you want to commit with this message?", true, r.input, r.output)
		if errors.Is(err, io.EOF) || errors.Is(err, ui.ErrInterrupted) {
			return prompt.ErrUserCancelled
		}
		if err != nil {
			return err
		}
		if !confirmed {
			return prompt.ErrUserCancelled
		}
	}

	out, err := r.git.Commit(ctx, message)
	if err != nil {
		if ctx.Err() != nil {
			return prompt.ErrUserCancelled
		}
		return errors.Wrap(err, "failed to commit")
	}
	log.Debug("git commit output:\n%s", out)

	return r.printer.PrintSuccess("Commit created successfully!")
}

// checkRepository reports false when there is nothing to commit
func (r *commitRunner) checkRepository(ctx context.Context) (bool, error) {
	if err := git.EnsureRepository(ctx, r.git); err != nil {
		return false, err
	}

	staged, err := r.git.HasStagedChanges(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to get staged changes")
	}
	if !staged {
		fmt.Fprintln(r.output, "No staged changes found.")
		fmt.Fprintln(r.output, "\nTo stage changes, use:")
		fmt.Fprintln(r.output, "  git add <file>")
		fmt.Fprintln(r.output, "  git add -A")
		return false, nil
	}

	files, err := r.git.StagedFiles(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to list staged files")
	}
	if err := r.printer.PrintStagedFiles(files); err != nil {
		return false, err
	}
	return true, nil
}

func (r *commitRunner) sessionOptions() prompt.Options {
	pc := r.cfg.GetPromptConfig()
	opts := prompt.Options{
		SkipScope: pc.SkipScope,
		SkipBody:  pc.SkipBody,
	}
	if r.useEditor() {
		opts.SkipSubject = true
		opts.SkipBody = true
	}
	return opts
}

func (r *commitRunner) formatOptions() commit.FormatOptions {
	return commit.FormatOptions{Emoji: r.cfg.EmojiInMessage}
}

// compose runs the prompt session and, in editor mode, the editor
func (r *commitRunner) compose(ctx context.Context) (string, error) {
	s := prompt.NewSession(r.sessionOptions())

	draft, err := r.prompt(ctx, s)
	if err != nil {
		return "", err
	}
	if ctx.Err() != nil {
		return "", prompt.ErrUserCancelled
	}
	log.Debug("Draft: type=%s scope=%q", draft.Type, draft.Scope)

	if !r.useEditor() {
		return commit.FormatWithOptions(draft, r.formatOptions())
	}
	return r.composeInEditor(ctx, draft)
}

func (r *commitRunner) composeInEditor(ctx context.Context, draft commit.Draft) (string, error) {
	header := commit.Header(draft.Type, strings.TrimSpace(draft.Scope), r.formatOptions())

	edited, err := r.edit(ctx, editor.Template(header))
	if errors.Is(err, editor.ErrEmptyMessage) {
		return "", errors.Wrap(prompt.ErrUserCancelled, "aborting commit due to empty commit message")
	}
	if err != nil {
		if ctx.Err() != nil {
			return "", prompt.ErrUserCancelled
		}
		return "", err
	}

	// An untouched template has no subject
	if strings.TrimSpace(edited) == strings.TrimSpace(header) {
		return "", errors.Wrap(prompt.ErrUserCancelled, "aborting commit due to empty subject")
	}

	parsed, err := commit.Parse(edited)
	if err != nil {
		log.Warn("Message does not follow Conventional Commits: %v", err)
		return edited, nil
	}
	return commit.FormatWithOptions(parsed, r.formatOptions())
}

func (r *commitRunner) checkHeaderLength(message string) {
	limit := r.cfg.GetPromptConfig().MaxHeaderLength
	if limit <= 0 {
		return
	}
	header, _, _ := strings.Cut(message, "\n")
	if n := uniseg.GraphemeClusterCount(header); n > limit {
		_ = r.printer.PrintWarning(fmt.Sprintf("Header is %d characters long, more than %d", n, limit))
	}
}
