package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compound-setup/internal/installer"
	"compound-setup/internal/ui"
)

func TestNewWizard_UnsupportedPlatform(t *testing.T) {
	for _, goos := range []string{"windows", "freebsd", "plan9"} {
		t.Run(goos, func(t *testing.T) {
			w, err := newWizard(goos)

			assert.Nil(t, w)
			assert.ErrorIs(t, err, installer.ErrUnsupportedPlatform)
			assert.Equal(t, exitFailure, exitCode(err))
		})
	}
}

func TestResolveEnv(t *testing.T) {
	t.Setenv("HOME", "/home/dev")

	env, err := resolveEnv()

	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, installer.Env{Home: "/home/dev", Root: wd}, env)
}

func TestResolveEnv_NoHome(t *testing.T) {
	t.Setenv("HOME", "")

	env, err := resolveEnv()

	require.NoError(t, err)
	assert.Equal(t, "~", env.Home)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitFailure, exitCode(errors.New("write config: permission denied")))
}

func TestExitCode_InterruptIsCancellation(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(ui.ErrInterrupted))
	assert.Equal(t, exitOK, exitCode(fmt.Errorf("prompt: %w", context.Canceled)))
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	assert.Error(t, rootCmd.Args(rootCmd, []string{"extra"}))
	assert.NoError(t, rootCmd.Args(rootCmd, nil))
}
