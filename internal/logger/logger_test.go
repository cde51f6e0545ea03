package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevNoColor := color.Output, color.NoColor
	color.Output, color.NoColor = &buf, true
	t.Cleanup(func() {
		color.Output, color.NoColor = prevOut, prevNoColor
		Init(false)
	})
	return &buf
}

func TestLevels(t *testing.T) {
	buf := captureOutput(t)

	Info("[INFO] Reading %s\n", "config.env")
	Warn("[WARN] HOME is not set\n")
	Error("[ERROR] %v\n", "boom")

	assert.Equal(t, "[INFO] Reading config.env\n[WARN] HOME is not set\n[ERROR] boom\n", buf.String())
}

func TestDebug_Toggle(t *testing.T) {
	buf := captureOutput(t)

	Init(false)
	Debug("[DEBUG] hidden\n")
	assert.Empty(t, buf.String())

	Init(true)
	Debug("[DEBUG] shown %d\n", 1)
	assert.Equal(t, "[DEBUG] shown 1\n", buf.String())
}
