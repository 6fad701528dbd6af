// pkg/sysprobe/sysprobe.go
package sysprobe

import "os/exec"

// Probe reports whether an executable of the given name resolves on the
// current search path. Probes never invoke the program and never cache.
type Probe func(name string) bool

// LookPath is the default Probe, backed by exec.LookPath
func LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Default returns the PATH-backed probe
func Default() Probe {
	return LookPath
}
