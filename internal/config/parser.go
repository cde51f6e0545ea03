package config

import (
	"bytes"
	"fmt"
)

// Render produces the config.env contents for s.
// The layout is fixed; only the three operator values vary.
func Render(s Settings) []byte {
	var b bytes.Buffer

	b.WriteString("# Compound Learning System Configuration\n")
	b.WriteString("# Central config sourced by all scripts\n\n")

	b.WriteString("# Discord Notifications\n")
	fmt.Fprintf(&b, "%s=%q\n\n", KeyWebhookURL, s.WebhookURL)

	b.WriteString("# Claude model configuration\n")
	fmt.Fprintf(&b, "%s=%q\n", KeyClaudeModel, s.ClaudeModel)
	fmt.Fprintf(&b, "%s=%q\n\n", KeyOpencodeModel, s.OpencodeModel)

	b.WriteString("# Execution timeouts (seconds)\n")
	fmt.Fprintf(&b, "%s=%d\n", KeyClaudeTimeout, DefaultTimeout)
	fmt.Fprintf(&b, "%s=%d\n\n", KeyOpencodeTimeout, DefaultTimeout)

	b.WriteString("# Projects root directory\n")
	fmt.Fprintf(&b, "%s=%q\n", KeyGitRoot, GitRoot)

	return b.Bytes()
}
