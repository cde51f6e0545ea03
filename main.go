package main

import (
	"os"

	"compound-setup/cmd"
)

// main delegates to cmd.Execute and exits with the code it returns:
// 0 on completion, cancellation or interrupt, and 1 on a fatal error.
//
// compound-setup is an interactive wizard that provisions the nightly compound
// learning automation. It writes ~/.config/compound-learning/config.env with the
// Discord webhook and model choices, then registers two nightly jobs with the
// host's scheduler (cron on Linux, launchd agents on macOS).
//
// Error handling strategy:
//   - Scheduling problems (chmod, installer script, plist copy or load) are printed
//     as warnings and the run continues to the final summary
//   - An unsupported OS, a config write failure or an interrupt ends the run
func main() {
	os.Exit(cmd.Execute())
}
