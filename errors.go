// errors.go
package hostpkg

import (
	"fmt"

	"github.com/hostpkg/hostpkg/pkg/engine"
	"github.com/hostpkg/hostpkg/pkg/manager"
)

// Re-export the error kinds produced by the core packages so callers can
// match them with errors.Is without importing the internals.
var (
	// ErrInvalidPackageName indicates a package name failed validation
	ErrInvalidPackageName = engine.ErrInvalidPackageName

	// ErrUnknownManager indicates a manager name that is not registered
	ErrUnknownManager = manager.ErrUnknownManager

	// ErrManagerNotInstalled indicates the requested manager is not on PATH
	ErrManagerNotInstalled = manager.ErrManagerNotInstalled

	// ErrNoManagerFound indicates auto-detection found no usable manager
	ErrNoManagerFound = manager.ErrNoManagerFound

	// ErrUnsupportedPlatform indicates the running OS has no registered managers
	ErrUnsupportedPlatform = manager.ErrUnsupportedPlatform
)

// CommandError reports a manager command that ran and exited non-zero
type CommandError = engine.CommandError

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
