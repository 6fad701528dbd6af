// pkg/manager/errors.go
package manager

import "errors"

var (
	// ErrUnknownManager indicates a manager name that is not registered
	ErrUnknownManager = errors.New("unknown package manager")

	// ErrManagerNotInstalled indicates the requested manager is not on PATH
	ErrManagerNotInstalled = errors.New("package manager not installed")

	// ErrNoManagerFound indicates auto-detection found no usable manager
	ErrNoManagerFound = errors.New("no package manager found")

	// ErrUnsupportedPlatform indicates the running OS has no registered managers
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
