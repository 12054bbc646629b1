package logger

import (
	"github.com/fatih/color" // Colored console output for log levels
)

// Colorized printing functions for the different log levels. These are
// package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the level.

// Info logs informational progress messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Success logs end-of-run results in bright green bold, so the final
// outcome stands apart from ordinary progress lines.
var Success = color.New(color.FgHiGreen, color.Bold).PrintfFunc()

// Warn logs warnings in bright magenta. Bright and stands out, signaling
// caution without being alarming.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red to draw immediate attention.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan if enabled, otherwise is a no-op.
// It is assigned dynamically during Init based on the debug flag.
var Debug func(format string, a ...any)

// Init enables or disables debug logging. When disabled, Debug is a no-op
// function that silently ignores debug logs to avoid runtime overhead.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

func init() {
	// Commands that never call Init (tests, library use) still get a
	// usable Debug function.
	Init(false)
}
