package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the working and home directories
const FileName = ".gcz.yaml"

// UI modes
const (
	ModeAuto  = "auto"
	ModeTUI   = "tui"
	ModePlain = "plain"
)

var supportedModes = map[string]bool{
	ModeAuto:  true,
	ModeTUI:   true,
	ModePlain: true,
}

// Config represents the application configuration
type Config struct {
	Emoji          bool            `yaml:"emoji" mapstructure:"emoji" json:"emoji"`
	EmojiInMessage bool            `yaml:"emoji_in_message" mapstructure:"emoji_in_message" json:"emoji_in_message"`
	Confirm        bool            `yaml:"confirm" mapstructure:"confirm" json:"confirm"`
	UI             *UIConfig       `yaml:"ui" mapstructure:"ui" json:"ui"`
	Prompt         *PromptConfig   `yaml:"prompt" mapstructure:"prompt" json:"prompt"`
	Editor         *EditorConfig   `yaml:"editor" mapstructure:"editor" json:"editor"`
	ExitCodes      *ExitCodeConfig `yaml:"exit_codes" mapstructure:"exit_codes" json:"exit_codes"`

	// path of the file this config was read from, empty for defaults
	source string
}

// UIConfig selects the front-end
type UIConfig struct {
	Mode string `yaml:"mode" mapstructure:"mode" json:"mode"` // auto, tui or plain
}

// PromptConfig controls which prompt stages are asked
type PromptConfig struct {
	SkipScope       bool `yaml:"skip_scope" mapstructure:"skip_scope" json:"skip_scope"`
	SkipBody        bool `yaml:"skip_body" mapstructure:"skip_body" json:"skip_body"`
	MaxHeaderLength int  `yaml:"max_header_length" mapstructure:"max_header_length" json:"max_header_length"` // 0 disables the warning
}

// EditorConfig controls the external editor mode
type EditorConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled" json:"enabled"`
	Command string `yaml:"command" mapstructure:"command" json:"command"`
}

// ExitCodeConfig holds the process exit codes for non-success outcomes
type ExitCodeConfig struct {
	Cancelled int `yaml:"cancelled" mapstructure:"cancelled" json:"cancelled"`
	Failure   int `yaml:"failure" mapstructure:"failure" json:"failure"`
}

// DefaultExitCodeConfig returns the default exit codes
func DefaultExitCodeConfig() *ExitCodeConfig {
	return &ExitCodeConfig{
		Cancelled: 130, // same as a shell reports for SIGINT
		Failure:   1,
	}
}

// Validate validates the exit codes
func (e *ExitCodeConfig) Validate() error {
	if e.Cancelled < 1 || e.Cancelled > 255 {
		return errors.Newf("cancelled exit code must be between 1 and 255, got %d", e.Cancelled)
	}
	if e.Failure < 1 || e.Failure > 255 {
		return errors.Newf("failure exit code must be between 1 and 255, got %d", e.Failure)
	}
	if e.Cancelled == e.Failure {
		return errors.New("cancelled and failure exit codes must differ")
	}
	return nil
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{
		UI:        &UIConfig{Mode: ModeAuto},
		Prompt:    &PromptConfig{MaxHeaderLength: 72},
		Editor:    &EditorConfig{},
		ExitCodes: DefaultExitCodeConfig(),
	}
}

// Source returns the file the config was loaded from
func (c *Config) Source() string {
	return c.source
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if c.UI != nil && c.UI.Mode != "" && !supportedModes[c.UI.Mode] {
		return errors.Newf("unsupported ui mode: %s", c.UI.Mode)
	}
	if c.Prompt != nil && c.Prompt.MaxHeaderLength < 0 {
		return errors.New("max_header_length must be non-negative")
	}
	if c.ExitCodes != nil {
		if err := c.ExitCodes.Validate(); err != nil {
			return errors.Wrap(err, "invalid exit_codes configuration")
		}
	}
	return nil
}

// GetUIMode returns the ui mode with the default applied
func (c *Config) GetUIMode() string {
	if c.UI == nil || c.UI.Mode == "" {
		return ModeAuto
	}
	return c.UI.Mode
}

// GetPromptConfig returns the prompt configuration with defaults applied
func (c *Config) GetPromptConfig() *PromptConfig {
	if c.Prompt == nil {
		return Default().Prompt
	}
	return c.Prompt
}

// GetExitCodes returns the exit codes with defaults applied
func (c *Config) GetExitCodes() *ExitCodeConfig {
	if c.ExitCodes == nil {
		return DefaultExitCodeConfig()
	}
	defaults := DefaultExitCodeConfig()
	if c.ExitCodes.Cancelled == 0 {
		c.ExitCodes.Cancelled = defaults.Cancelled
	}
	if c.ExitCodes.Failure == 0 {
		c.ExitCodes.Failure = defaults.Failure
	}
	return c.ExitCodes
}

// GetEditorCommand returns the editor command line
// Priority: config file > EDITOR env variable > vim
func (c *Config) GetEditorCommand() string {
	if c.Editor != nil && strings.TrimSpace(c.Editor.Command) != "" {
		return c.Editor.Command
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return "vim"
}

// EditorEnabled reports whether editor mode is on by configuration
func (c *Config) EditorEnabled() bool {
	return c.Editor != nil && c.Editor.Enabled
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("GCZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("emoji", defaults.Emoji)
	v.SetDefault("emoji_in_message", defaults.EmojiInMessage)
	v.SetDefault("confirm", defaults.Confirm)
	v.SetDefault("ui.mode", defaults.UI.Mode)
	v.SetDefault("prompt.skip_scope", defaults.Prompt.SkipScope)
	v.SetDefault("prompt.skip_body", defaults.Prompt.SkipBody)
	v.SetDefault("prompt.max_header_length", defaults.Prompt.MaxHeaderLength)
	v.SetDefault("editor.enabled", defaults.Editor.Enabled)
	v.SetDefault("editor.command", defaults.Editor.Command)
	v.SetDefault("exit_codes.cancelled", defaults.ExitCodes.Cancelled)
	v.SetDefault("exit_codes.failure", defaults.ExitCodes.Failure)
	return v
}

func decode(v *viper.Viper, source string) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	cfg.source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from a file
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	return decode(v, path)
}

// Load loads configuration with the following priority:
// 1. Custom path if provided
// 2. Current directory .gcz.yaml
// 3. Home directory ~/.gcz.yaml
// 4. Built-in defaults
// GCZ_* environment variables override file values in every case.
func Load(customPath string) (*Config, error) {
	// If custom path is provided, use it exclusively
	if customPath != "" {
		return LoadFromFile(customPath)
	}

	candidates := []string{FileName}
	if homeDir, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(homeDir, FileName))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadFromFile(path)
	}

	return decode(newViper(), "")
}
