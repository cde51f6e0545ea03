package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"compound-setup/internal/installer"
	"compound-setup/internal/logger"
	"compound-setup/internal/ui"
	"compound-setup/internal/wizard"
)

// newWizard wires a wizard to the host: real filesystem, real commands, stdio.
// An unsupported goos fails here, before anything is printed or installed.
func newWizard(goos string) (*wizard.Wizard, error) {
	platform, err := installer.Detect(goos)
	if err != nil {
		return nil, err
	}

	env, err := resolveEnv()
	if err != nil {
		return nil, err
	}
	logger.Debug("[DEBUG] Platform %s, home %s, root %s\n", platform, env.Home, env.Root)

	fs := afero.NewOsFs()
	sched, err := installer.New(platform, env, fs, installer.ExecRunner{})
	if err != nil {
		return nil, err
	}

	return wizard.New(wizard.Options{
		Console:   ui.NewConsole(os.Stdout),
		Prompter:  ui.NewPrompter(os.Stdin, os.Stdout),
		Fs:        fs,
		Env:       env,
		Platform:  platform,
		Scheduler: sched,
	}), nil
}

// resolveEnv reads HOME (falling back to a literal "~") and the working directory.
func resolveEnv() (installer.Env, error) {
	home := os.Getenv("HOME")
	if home == "" {
		logger.Warn("[WARN] HOME is not set, using ~\n")
		home = "~"
	}

	root, err := os.Getwd()
	if err != nil {
		return installer.Env{}, fmt.Errorf("determine working directory: %w", err)
	}
	return installer.Env{Home: home, Root: root}, nil
}
