package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"compound-setup/internal/logger"
	"compound-setup/internal/ui"
)

// Exit codes returned by Execute.
// An interrupt counts as the operator cancelling, so it exits like a declined prompt.
const (
	exitOK      = 0
	exitFailure = 1
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd runs the interactive setup wizard. It takes no arguments.
var rootCmd = &cobra.Command{
	Use:   "compound-setup",
	Short: "Configure and schedule the compound learning system",
	Long: `Interactive setup for the compound learning system.

Writes ~/.config/compound-learning/config.env and installs the two nightly
jobs (cron on Linux, launchd on macOS). Run it from the repository checkout:
the working directory is used as the root for scripts/, config/ and reports/.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,

	// Initialize the logger before any subcommand runs.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := newWizard(runtime.GOOS)
		if err != nil {
			return err
		}
		return w.Run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(statusCmd)
}

// Execute runs the CLI and returns the process exit code.
// SIGINT and SIGTERM cancel the context shared by every prompt and command.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return exitCode(rootCmd.ExecuteContext(ctx))
}

// exitCode maps the outcome of a run onto a process exit code, reporting fatal errors.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ui.ErrInterrupted), errors.Is(err, context.Canceled):
		logger.Debug("[DEBUG] Setup interrupted: %v\n", err)
		return exitOK
	default:
		logger.Error("[ERROR] %v\n", err)
		return exitFailure
	}
}
