package installer

import (
	"context"
	"os/exec"
	"strings"

	"compound-setup/internal/logger"
)

// Runner executes an external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands on the host.
type ExecRunner struct{}

// Run implements Runner. The command is killed if ctx is cancelled.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))

	// Capture both stdout and stderr so failures can be logged with context
	output, err := cmd.CombinedOutput()
	if err != nil {
		logger.Debug("[DEBUG] Command failed: %v\nOutput: %s\n", err, output)
	}
	return output, err
}
