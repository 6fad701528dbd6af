// pkg/engine/elevate_windows.go
//go:build windows

package engine

import "os"

// ProcessElevated reports whether the current process runs with
// administrator rights. Opening the raw physical drive only succeeds for
// elevated processes.
func ProcessElevated() bool {
	f, err := os.Open(`\\.\PHYSICALDRIVE0`)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
