// Package config manages the compound-learning config.env file.
//
// The file lives at ~/.config/compound-learning/config.env and holds
// shell-sourceable KEY="value" assignments consumed by the nightly scripts.
// Its presence means the system is already configured.
package config

import "path/filepath"

// AppName is the directory name used under ~/.config.
const AppName = "compound-learning"

// FileName is the name of the config file inside the config directory.
const FileName = "config.env"

// Defaults for the values the wizard asks for.
const (
	DefaultClaudeModel   = "claude-opus-4-5"
	DefaultOpencodeModel = "opencode-default"
)

// Fixed values written alongside the operator's answers.
const (
	DefaultTimeout = 600         // seconds, for both CLAUDE_TIMEOUT and OPENCODE_TIMEOUT
	GitRoot        = "$HOME/git" // expanded by the shell that sources the file
)

// Keys of the config.env schema.
const (
	KeyWebhookURL      = "DISCORD_WEBHOOK_URL"
	KeyClaudeModel     = "CLAUDE_MODEL"
	KeyOpencodeModel   = "OPENCODE_MODEL"
	KeyClaudeTimeout   = "CLAUDE_TIMEOUT"
	KeyOpencodeTimeout = "OPENCODE_TIMEOUT"
	KeyGitRoot         = "GIT_ROOT"
)

// Settings holds the operator-supplied values persisted to config.env.
// - WebhookURL: optional Discord webhook, empty when not provided.
// - ClaudeModel / OpencodeModel: model identifiers used by the nightly jobs.
type Settings struct {
	WebhookURL    string
	ClaudeModel   string
	OpencodeModel string
}

// DefaultSettings returns the values used before the operator answers any prompt.
func DefaultSettings() Settings {
	return Settings{
		ClaudeModel:   DefaultClaudeModel,
		OpencodeModel: DefaultOpencodeModel,
	}
}

// Dir returns the config directory for the given home directory.
func Dir(home string) string {
	return filepath.Join(home, ".config", AppName)
}

// Path returns the full config file path for the given home directory.
func Path(home string) string {
	return filepath.Join(Dir(home), FileName)
}
