package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"compound-setup/internal/logger"
)

// statusCmd reports the configuration and whether the nightly jobs are registered.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and scheduled job status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := newWizard(runtime.GOOS)
		if err != nil {
			return err
		}
		logger.Info("[INFO] Reading %s\n", w.ConfigPath())
		return w.Status(cmd.Context())
	},
}
