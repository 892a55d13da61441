package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gcz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ModeAuto, cfg.GetUIMode())
	assert.Equal(t, 72, cfg.GetPromptConfig().MaxHeaderLength)
	assert.Equal(t, 130, cfg.GetExitCodes().Cancelled)
	assert.Equal(t, 1, cfg.GetExitCodes().Failure)
	assert.False(t, cfg.EditorEnabled())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
emoji: true
emoji_in_message: true
confirm: true
ui:
  mode: plain
prompt:
  skip_scope: true
  max_header_length: 50
editor:
  enabled: true
  command: "code --wait"
exit_codes:
  cancelled: 3
  failure: 2
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.Emoji)
	assert.True(t, cfg.EmojiInMessage)
	assert.True(t, cfg.Confirm)
	assert.Equal(t, ModePlain, cfg.GetUIMode())
	assert.True(t, cfg.GetPromptConfig().SkipScope)
	assert.False(t, cfg.GetPromptConfig().SkipBody)
	assert.Equal(t, 50, cfg.GetPromptConfig().MaxHeaderLength)
	assert.True(t, cfg.EditorEnabled())
	assert.Equal(t, "code --wait", cfg.GetEditorCommand())
	assert.Equal(t, 3, cfg.GetExitCodes().Cancelled)
	assert.Equal(t, 2, cfg.GetExitCodes().Failure)
	assert.Equal(t, path, cfg.Source())
}

func TestLoadFromFile_PartialUsesDefaults(t *testing.T) {
	path := writeConfig(t, "emoji: true\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Emoji)
	assert.Equal(t, ModeAuto, cfg.GetUIMode())
	assert.Equal(t, 72, cfg.GetPromptConfig().MaxHeaderLength)
	assert.Equal(t, 130, cfg.GetExitCodes().Cancelled)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "bad mode", content: "ui:\n  mode: fancy\n", errMsg: "unsupported ui mode"},
		{name: "negative header length", content: "prompt:\n  max_header_length: -1\n", errMsg: "max_header_length"},
		{name: "same exit codes", content: "exit_codes:\n  cancelled: 1\n  failure: 1\n", errMsg: "must differ"},
		{name: "exit code out of range", content: "exit_codes:\n  cancelled: 300\n", errMsg: "between 1 and 255"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_FallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Source())
	assert.Equal(t, ModeAuto, cfg.GetUIMode())
}

func TestLoad_CurrentDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("confirm: true\n"), 0644))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Confirm)
	assert.Equal(t, FileName, cfg.Source())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("GCZ_EMOJI", "true")
	t.Setenv("GCZ_UI_MODE", "tui")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Emoji)
	assert.Equal(t, ModeTUI, cfg.GetUIMode())
}

func TestConfig_GetEditorCommand(t *testing.T) {
	t.Run("config wins", func(t *testing.T) {
		t.Setenv("EDITOR", "nano")
		cfg := &Config{Editor: &EditorConfig{Command: "hx"}}
		assert.Equal(t, "hx", cfg.GetEditorCommand())
	})

	t.Run("env variable", func(t *testing.T) {
		t.Setenv("EDITOR", "nano")
		cfg := Default()
		assert.Equal(t, "nano", cfg.GetEditorCommand())
	})

	t.Run("fallback to vim", func(t *testing.T) {
		t.Setenv("EDITOR", "")
		cfg := &Config{}
		assert.Equal(t, "vim", cfg.GetEditorCommand())
	})
}

func TestConfig_GetExitCodesFillsZeroes(t *testing.T) {
	cfg := &Config{ExitCodes: &ExitCodeConfig{Failure: 4}}
	codes := cfg.GetExitCodes()
	assert.Equal(t, 130, codes.Cancelled)
	assert.Equal(t, 4, codes.Failure)

	assert.Equal(t, 130, (&Config{}).GetExitCodes().Cancelled)
}
