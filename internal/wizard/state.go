package wizard

import (
	"compound-setup/internal/config"
	"compound-setup/internal/installer"
)

// Step is the wizard's position in its linear flow.
type Step int

const (
	StepWelcome Step = iota
	StepConfiguration
	StepScheduling
	StepSummary
	StepDone
)

// State is everything one wizard run learns. It lives only for the run;
// the settings reach disk through config.Write, never the struct itself.
type State struct {
	Step      Step
	Settings  config.Settings
	Platform  installer.Platform
	Completed bool
}
