package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_Markers(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Success("Config saved")
	c.Failure("Failed to install cron jobs")
	c.Info("Setup cancelled")

	out := buf.String()
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "Config saved")
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "Failed to install cron jobs")
	assert.Contains(t, out, "ℹ")
	assert.Contains(t, out, "Setup cancelled")
}

func TestConsole_HeaderDoesNotClearNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Header()

	assert.NotContains(t, buf.String(), "\033[2J")
	assert.Contains(t, buf.String(), "Compound Learning System Setup")
}

func TestConsole_Section(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Section("Configuration")

	assert.Contains(t, buf.String(), "Configuration")
	assert.Contains(t, buf.String(), "━━━━")
}

func TestConsole_EntryAndCommand(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Entry("Location:", "/home/dev/.config/compound-learning/config.env")
	c.Command("View jobs:", "crontab -l")

	assert.Contains(t, buf.String(), "Location:")
	assert.Contains(t, buf.String(), "/home/dev/.config/compound-learning/config.env")
	assert.Contains(t, buf.String(), "crontab -l")
}
