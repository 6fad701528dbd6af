// hostpkg.go

// Package hostpkg exposes the package manager abstraction as a library:
// select the best manager on the host, then install, uninstall and probe
// packages through it.
package hostpkg

import (
	"context"

	"github.com/hostpkg/hostpkg/pkg/core"
	"github.com/hostpkg/hostpkg/pkg/engine"
	"github.com/hostpkg/hostpkg/pkg/manager"
	"github.com/hostpkg/hostpkg/pkg/override"
)

// Re-export core types for convenience
type (
	Kind      = manager.Kind
	OSFamily  = manager.OSFamily
	Config    = core.Config
	Operation = core.Operation
	Outcome   = core.Outcome
	Status    = core.Status
)

// Re-export manager kinds
const (
	KindApt    = manager.KindApt
	KindAptGet = manager.KindAptGet
	KindYum    = manager.KindYum
	KindDnf    = manager.KindDnf
	KindPacman = manager.KindPacman
	KindApk    = manager.KindApk
	KindZypper = manager.KindZypper
	KindEmerge = manager.KindEmerge
	KindXbps   = manager.KindXbps
	KindPkg    = manager.KindPkg
	KindDoas   = manager.KindDoas
	KindPkgin  = manager.KindPkgin
	KindPkgAdd = manager.KindPkgAdd
	KindBrew   = manager.KindBrew
	KindPort   = manager.KindPort
	KindChoco  = manager.KindChoco
	KindScoop  = manager.KindScoop
	KindWinget = manager.KindWinget
	KindAuto   = manager.KindAuto
)

// Re-export operations and statuses
const (
	OpInstall   = core.OpInstall
	OpUninstall = core.OpUninstall

	StatusInstalled      = core.StatusInstalled
	StatusAlreadyPresent = core.StatusAlreadyPresent
	StatusUninstalled    = core.StatusUninstalled
	StatusAlreadyAbsent  = core.StatusAlreadyAbsent
	StatusSkipped        = core.StatusSkipped
	StatusFailed         = core.StatusFailed
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Manager drives one selected package manager
type Manager struct {
	engine *engine.Engine
	config *core.Config
}

// New selects a package manager per the configuration and returns a
// Manager bound to it. An empty or "auto" PackageManager auto-detects.
func New(cfg *Config) (*Manager, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}

	family, err := manager.DetectFamily()
	if err != nil {
		return nil, &Error{Op: "detect", Err: err}
	}

	name := cfg.PackageManager
	if name == "" {
		name = manager.KindAuto.String()
	}
	kind, err := manager.ParseKind(name)
	if err != nil {
		return nil, &Error{Op: "select", Err: err}
	}

	desc, err := manager.NewSelector(nil).Select(kind, family)
	if err != nil {
		return nil, &Error{Op: "select", Err: err}
	}

	eng := engine.New(desc, &engine.Config{
		Overrides: override.NewResolver(cfg.OverridesDir, nil),
	})

	return &Manager{engine: eng, config: cfg}, nil
}

// Kind returns the selected manager
func (m *Manager) Kind() Kind {
	return m.engine.Kind()
}

// Install installs a package
func (m *Manager) Install(ctx context.Context, pkg string) (Outcome, error) {
	outcome, err := m.engine.Perform(ctx, pkg, core.OpInstall, m.config.SkipOverrides)
	if err != nil {
		return outcome, &Error{Op: "install", Package: pkg, Err: err}
	}
	return outcome, nil
}

// Uninstall removes a package
func (m *Manager) Uninstall(ctx context.Context, pkg string) (Outcome, error) {
	outcome, err := m.engine.Perform(ctx, pkg, core.OpUninstall, m.config.SkipOverrides)
	if err != nil {
		return outcome, &Error{Op: "uninstall", Package: pkg, Err: err}
	}
	return outcome, nil
}

// IsInstalled probes the manager for a package's installed state
func (m *Manager) IsInstalled(ctx context.Context, pkg string) (bool, error) {
	installed, err := m.engine.IsInstalled(ctx, pkg)
	if err != nil {
		return false, &Error{Op: "probe", Package: pkg, Err: err}
	}
	return installed, nil
}
