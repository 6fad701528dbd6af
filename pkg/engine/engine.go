// pkg/engine/engine.go

// Package engine validates package names, consults override policy,
// probes installed state and drives the selected manager's install and
// uninstall commands.
package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"runtime"
	"strings"

	"github.com/hostpkg/hostpkg/pkg/core"
	"github.com/hostpkg/hostpkg/pkg/manager"
	"github.com/hostpkg/hostpkg/pkg/override"
	"github.com/hostpkg/hostpkg/pkg/sysprobe"
)

// ErrInvalidPackageName indicates a package name failed validation
var ErrInvalidPackageName = errors.New("invalid package name")

// CommandError reports a manager command that ran and exited non-zero
type CommandError struct {
	Argv []string
	Code int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed with exit code %d", strings.Join(e.Argv, " "), e.Code)
}

var nameRE = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateName checks a raw package name before anything shells out.
// Names are validated only, never normalized.
func ValidateName(name string) error {
	if !nameRE.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidPackageName, name)
	}
	return nil
}

// Config configures an Engine
type Config struct {
	// Runner executes external commands; defaults to the os/exec runner
	Runner Runner

	// Probe locates elevation wrappers; defaults to PATH lookup
	Probe sysprobe.Probe

	// Overrides resolves skip policy; defaults to a resolver rooted at
	// "overrides" in the working directory
	Overrides *override.Resolver

	// Logf receives debug traces; nil discards them
	Logf func(format string, a ...any)

	// Privileged overrides the euid-based root check, mainly for tests
	Privileged *bool
}

// Engine performs install and uninstall operations through one selected
// manager. Packages in a batch go through Perform one at a time.
type Engine struct {
	desc      manager.Descriptor
	runner    Runner
	probe     sysprobe.Probe
	overrides *override.Resolver
	logf      func(format string, a ...any)
	priv      bool
}

// New creates an Engine for the given manager descriptor
func New(desc manager.Descriptor, cfg *Config) *Engine {
	if cfg == nil {
		cfg = &Config{}
	}

	runner := cfg.Runner
	if runner == nil {
		runner = NewRunner()
	}
	probe := cfg.Probe
	if probe == nil {
		probe = sysprobe.Default()
	}
	overrides := cfg.Overrides
	if overrides == nil {
		overrides = override.NewResolver("overrides", nil)
	}
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	priv := runtime.GOOS == "windows" || os.Geteuid() == 0
	if cfg.Privileged != nil {
		priv = *cfg.Privileged
	}

	return &Engine{
		desc:      desc,
		runner:    runner,
		probe:     probe,
		overrides: overrides,
		logf:      logf,
		priv:      priv,
	}
}

// Kind returns the manager this engine drives
func (e *Engine) Kind() manager.Kind {
	return e.desc.Kind
}

// Perform runs one operation for one package.
//
// The returned error is fatal for the batch (bad name, probe failure, a
// command that could not be spawned). A manager command that runs and
// exits non-zero yields a StatusFailed outcome together with a
// CommandError so the front end can decide whether to keep going.
func (e *Engine) Perform(ctx context.Context, pkg string, op core.Operation, skipOverrides bool) (core.Outcome, error) {
	if err := ValidateName(pkg); err != nil {
		return core.Outcome{}, err
	}

	if d := e.overrides.Resolve(pkg, e.desc.Kind, op, skipOverrides); d.Skip {
		e.logf("override skips %s of %s: %s", op, pkg, d.Reason)
		return core.Outcome{Package: pkg, Status: core.StatusSkipped, Reason: d.Reason}, nil
	}

	installed, err := e.IsInstalled(ctx, pkg)
	if err != nil {
		return core.Outcome{}, fmt.Errorf("probing installed state of %s: %w", pkg, err)
	}

	var template []string
	switch op {
	case core.OpInstall:
		if installed {
			return core.Outcome{Package: pkg, Status: core.StatusAlreadyPresent}, nil
		}
		template = e.desc.InstallArgs
	case core.OpUninstall:
		if !installed {
			return core.Outcome{Package: pkg, Status: core.StatusAlreadyAbsent}, nil
		}
		template = e.desc.UninstallArgs
	default:
		return core.Outcome{}, fmt.Errorf("unsupported operation: %s", op)
	}

	argv := e.elevate(manager.ExpandArgs(template, pkg))
	e.logf("running: %s", strings.Join(argv, " "))

	code, err := e.runner.Run(ctx, argv)
	if err != nil {
		return core.Outcome{}, fmt.Errorf("running %s: %w", argv[0], err)
	}
	if code != 0 {
		outcome := core.Outcome{Package: pkg, Status: core.StatusFailed, ExitCode: code}
		return outcome, &CommandError{Argv: argv, Code: code}
	}

	status := core.StatusInstalled
	if op == core.OpUninstall {
		status = core.StatusUninstalled
	}
	return core.Outcome{Package: pkg, Status: status}, nil
}

// IsInstalled probes the manager for the package's installed state.
// The result is never cached; every call shells out again.
func (e *Engine) IsInstalled(ctx context.Context, pkg string) (bool, error) {
	if err := ValidateName(pkg); err != nil {
		return false, err
	}

	if e.desc.Check == manager.CheckQuery {
		argv := manager.ExpandArgs(e.desc.QueryArgs, pkg)
		_, code, err := e.runner.Output(ctx, argv)
		if err != nil {
			return false, err
		}
		return code == 0, nil
	}

	out, code, err := e.runner.Output(ctx, e.desc.ListArgs)
	if err != nil {
		return false, err
	}
	if code != 0 {
		return false, &CommandError{Argv: e.desc.ListArgs, Code: code}
	}

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		if e.desc.Match(scanner.Text(), pkg) {
			return true, nil
		}
	}
	return false, nil
}

// elevate prefixes a mutating command with a privilege-escalation wrapper
// when the manager needs root and the invoking user is not privileged.
// Windows managers require the whole process to be elevated instead; that
// precondition is checked once at startup, not here.
func (e *Engine) elevate(argv []string) []string {
	if !e.desc.NeedsRoot || e.priv {
		return argv
	}
	switch {
	case e.probe("sudo"):
		return append([]string{"sudo"}, argv...)
	case e.probe("doas"):
		return append([]string{"doas"}, argv...)
	default:
		// let the manager itself report the permission error
		e.logf("no elevation wrapper found, running %s unprivileged", argv[0])
		return argv
	}
}
