package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/huimingz/gcz/internal/config"
)

const defaultConfigTemplate = `# gcz configuration file

# Show emoji next to commit types in the picker
emoji: false

# Prefix the commit header with the type emoji, e.g. "✨ feat: add login"
emoji_in_message: false

# Show the message and ask before running git commit
confirm: false

ui:
  # auto: interactive list on a terminal, line prompts otherwise
  # tui | plain: force one of them
  mode: auto

prompt:
  skip_scope: false
  skip_body: false
  # Warn when the header is longer than this; 0 disables the check
  max_header_length: 72

editor:
  # Write the message in an external editor after picking type and scope
  enabled: false
  # Defaults to $EDITOR, then vim
  # command: code --wait

exit_codes:
  cancelled: 130
  failure: 1
`

var (
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a gcz configuration file",
	Long: `Create a default configuration file (~/.gcz.yaml).

gcz works without a configuration file; create one to change the defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get home directory")
		}

		configPath := filepath.Join(homeDir, config.FileName)
		if err := writeDefaultConfig(configPath, initForce); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Configuration file created: %s\n", configPath)
		return nil
	},
}

func writeDefaultConfig(path string, force bool) error {
	// Check if file exists
	if _, err := os.Stat(path); err == nil && !force {
		return errors.WithHint(errors.Newf("config file already exists: %s", path), "use --force to overwrite")
	}

	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0600); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config file")
	rootCmd.AddCommand(initCmd)
}
