package logger

import "github.com/fatih/color"

// Leveled printf-style output for user-facing messages.
var (
	Info  = color.New(color.FgGreen).PrintfFunc()
	Warn  = color.New(color.FgYellow).PrintfFunc()
	Error = color.New(color.FgRed).PrintfFunc()
)

// Debug is a no-op until Init enables it
var Debug = func(format string, a ...any) {}

// Init enables or disables debug output
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
