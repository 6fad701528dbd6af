// pkg/core/outcome.go
package core

import "fmt"

// Operation is a package operation requested by the user
type Operation string

const (
	// OpInstall installs a package
	OpInstall Operation = "install"
	// OpUninstall removes a package
	OpUninstall Operation = "uninstall"
)

// Status classifies how a package operation ended
type Status string

const (
	// StatusInstalled means the install command ran and succeeded
	StatusInstalled Status = "installed"
	// StatusAlreadyPresent means the package was installed before the run
	StatusAlreadyPresent Status = "already-present"
	// StatusUninstalled means the uninstall command ran and succeeded
	StatusUninstalled Status = "uninstalled"
	// StatusAlreadyAbsent means the package was not installed to begin with
	StatusAlreadyAbsent Status = "already-absent"
	// StatusSkipped means an override policy forced a skip
	StatusSkipped Status = "skipped"
	// StatusFailed means the manager command exited non-zero
	StatusFailed Status = "failed"
)

// Outcome is the terminal state of one package in one run
type Outcome struct {
	Package  string
	Status   Status
	Reason   string // set for StatusSkipped
	ExitCode int    // set for StatusFailed
}

// Failed reports whether the outcome is a command failure
func (o Outcome) Failed() bool {
	return o.Status == StatusFailed
}

// String renders the outcome for user-facing messages
func (o Outcome) String() string {
	switch o.Status {
	case StatusSkipped:
		return fmt.Sprintf("%s skipped: %s", o.Package, o.Reason)
	case StatusFailed:
		return fmt.Sprintf("%s failed with exit code %d", o.Package, o.ExitCode)
	default:
		return fmt.Sprintf("%s %s", o.Package, o.Status)
	}
}
