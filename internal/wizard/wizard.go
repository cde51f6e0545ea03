// Package wizard sequences the interactive setup: welcome, configuration,
// scheduling and the final summary. Each step runs once; only the
// configuration step branches, when a config file already exists.
package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"compound-setup/internal/config"
	"compound-setup/internal/installer"
	"compound-setup/internal/logger"
	"compound-setup/internal/ui"
)

// Options wires a Wizard to its collaborators.
type Options struct {
	Console   *ui.Console
	Prompter  ui.Prompter
	Fs        afero.Fs
	Env       installer.Env
	Platform  installer.Platform
	Scheduler installer.Scheduler
}

// Wizard runs the setup flow once.
type Wizard struct {
	console   *ui.Console
	prompter  ui.Prompter
	fs        afero.Fs
	env       installer.Env
	scheduler installer.Scheduler
	state     State
}

// New returns a Wizard with default settings and the given platform.
func New(opts Options) *Wizard {
	return &Wizard{
		console:   opts.Console,
		prompter:  opts.Prompter,
		fs:        opts.Fs,
		env:       opts.Env,
		scheduler: opts.Scheduler,
		state: State{
			Step:     StepWelcome,
			Settings: config.DefaultSettings(),
			Platform: opts.Platform,
		},
	}
}

// State returns a copy of the run's state.
func (w *Wizard) State() State {
	return w.state
}

// ConfigPath is where the wizard reads and writes config.env.
func (w *Wizard) ConfigPath() string {
	return config.Path(w.env.Home)
}

// Run executes the whole flow. Declining the welcome prompt returns nil
// without touching the filesystem. Scheduling problems are printed and do not
// stop the run; configuration write errors, prompt failures and interrupts do.
func (w *Wizard) Run(ctx context.Context) error {
	proceed, err := w.welcome(ctx)
	if err != nil {
		return err
	}
	if !proceed {
		w.console.Info("Setup cancelled")
		return nil
	}

	w.state.Step = StepConfiguration
	if err := w.configure(ctx); err != nil {
		return err
	}

	w.state.Step = StepScheduling
	w.schedule(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	w.state.Step = StepSummary
	w.summary()

	w.state.Step = StepDone
	w.state.Completed = true
	return nil
}

func (w *Wizard) welcome(ctx context.Context) (bool, error) {
	w.console.Header()
	w.console.Section("Welcome")

	w.console.Text("This setup will configure your compound learning system for:")
	w.console.Blank()
	w.console.Bullet("Learning extraction from your projects")
	w.console.Bullet("Automatic implementation of improvements")
	w.console.Bullet("Nightly scheduling (11:00 PM & 11:30 PM)")
	w.console.Bullet("Discord notifications")
	w.console.Blank()

	return ui.Confirm(ctx, w.prompter, "Continue with setup?", "y")
}

// configure handles the existing-config branch, then collects and writes the settings.
func (w *Wizard) configure(ctx context.Context) error {
	w.console.Header()
	w.console.Section("Configuration")

	path := w.ConfigPath()
	exists, err := config.Exists(w.fs, path)
	if err != nil {
		return err
	}
	if exists {
		w.console.Success("Config file exists at " + path)
		update, err := ui.Confirm(ctx, w.prompter, "Update configuration?", "n")
		if err != nil {
			return err
		}
		if !update {
			logger.Debug("[DEBUG] Keeping existing config %s\n", path)
			w.console.Blank()
			return nil
		}
	}

	if err := w.collect(ctx); err != nil {
		return err
	}

	if err := config.Write(w.fs, path, w.state.Settings); err != nil {
		return err
	}
	w.console.Success("Config saved to " + path)
	return nil
}

// collect asks for the webhook and both models, in that order.
func (w *Wizard) collect(ctx context.Context) error {
	s := &w.state.Settings
	var err error

	w.console.Blank()
	w.console.Text("Discord Webhook (optional)")
	w.console.Blank()
	w.console.Info("Get your webhook URL from: Discord → Server → Channel Settings → Integrations → Webhooks")
	w.console.Blank()
	if s.WebhookURL, err = w.prompter.Prompt(ctx, "Discord webhook URL", ""); err != nil {
		return err
	}

	w.console.Blank()
	w.console.Text("Claude Model")
	w.console.Blank()
	if s.ClaudeModel, err = w.prompter.Prompt(ctx, "Claude model", config.DefaultClaudeModel); err != nil {
		return err
	}

	w.console.Blank()
	w.console.Text("OpenCode Model")
	w.console.Blank()
	if s.OpencodeModel, err = w.prompter.Prompt(ctx, "OpenCode model", config.DefaultOpencodeModel); err != nil {
		return err
	}
	return nil
}

// schedule makes the scripts executable and installs the jobs. Every failure
// here is reported and then ignored.
func (w *Wizard) schedule(ctx context.Context) {
	w.console.Header()
	w.console.Section("Platform Detection & Scheduling")

	if err := installer.MakeExecutable(w.fs, w.env.Root); err != nil {
		logger.Debug("[DEBUG] %v\n", err)
		w.console.Failure("Failed to make scripts executable")
	} else {
		w.console.Success("Scripts made executable")
	}
	w.console.Blank()

	w.console.Success(w.state.Platform.DisplayName() + " detected")
	w.console.Blank()

	name := w.scheduler.Name()
	w.console.Step(fmt.Sprintf("Installing %s...", w.scheduler.Artifacts()))
	if err := w.scheduler.Install(ctx); err != nil {
		logger.Debug("[DEBUG] %v\n", err)
		w.console.Failure(fmt.Sprintf("Failed to install %s jobs", name))
	} else {
		w.console.Success(fmt.Sprintf("%s jobs installed", capitalize(name)))
	}

	w.scheduler.Guide(w.console)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
