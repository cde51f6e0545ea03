// Package logger holds the diagnostic printers used outside the wizard's own
// console output. Each one has fmt.Printf's signature.
package logger

import (
	"github.com/fatih/color"
)

// Info reports progress of non-interactive commands, in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn flags a degraded but recoverable environment, in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error prints the fatal error a command exits on, in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug prints in cyan once Init(true) has run and drops everything before that.
var Debug = func(format string, a ...any) {}

// Init switches Debug between cyan output and a no-op.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
