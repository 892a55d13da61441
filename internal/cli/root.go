package cli

import (
	"os"

	"github.com/huimingz/gcz/internal/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	debugMode  bool
	configFile string

	// Version info
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gcz",
	Short: "Interactive conventional commit message composer",
	Long: `gcz helps you write Conventional Commits messages for your staged changes:
  1. Pick a commit type from a list you can filter by typing
  2. Enter an optional scope, a subject and an optional body
  3. gcz runs git commit with the composed message

Keys: type to filter, ↑/↓ to move, Enter to confirm, Esc to clear, Ctrl+C to abort.

EDITOR CONFIGURATION:
  With --editor the message is written in an external editor. The editor is
  taken from editor.command in the config file, then $EDITOR, then vim.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode before any command runs
		if debugMode {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
	RunE: runCommit,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err != nil {
		reportError(err)
	}
	return ExitCode(err, exitCodes())
}

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, commit, time string) {
	version = v
	gitCommit = commit
	buildTime = time
}

// GetVersionInfo returns version information
func GetVersionInfo() (string, string, string) {
	return version, gitCommit, buildTime
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode for verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file path (default: ./.gcz.yaml, then ~/.gcz.yaml)")

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
}
