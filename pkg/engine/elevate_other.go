// pkg/engine/elevate_other.go
//go:build !windows

package engine

// ProcessElevated is only meaningful on Windows, where package managers
// need the whole process elevated. Unix managers are elevated per command.
func ProcessElevated() bool {
	return true
}
