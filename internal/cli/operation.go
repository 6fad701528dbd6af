// internal/cli/operation.go
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/hostpkg/hostpkg/internal/logger"
	"github.com/hostpkg/hostpkg/pkg/core"
	"github.com/hostpkg/hostpkg/pkg/engine"
	"github.com/hostpkg/hostpkg/pkg/manager"
	"github.com/hostpkg/hostpkg/pkg/override"
)

// runOperation is the shared front end for install and uninstall: select
// the manager once, then run the operation per package, in order.
func runOperation(ctx context.Context, op core.Operation, packages []string) error {
	// One bad name aborts the batch before a manager is even selected
	for _, pkg := range packages {
		if err := engine.ValidateName(pkg); err != nil {
			return err
		}
	}

	family, err := manager.DetectFamily()
	if err != nil {
		return err
	}
	if family == manager.FamilyWindows && !engine.ProcessElevated() {
		return fmt.Errorf("hostpkg must run from an elevated shell on Windows")
	}

	kind, err := manager.ParseKind(config.PackageManager)
	if err != nil {
		return err
	}

	desc, err := manager.NewSelector(nil).Select(kind, family)
	if err != nil {
		return err
	}
	logger.Debug("using package manager: %s\n", desc.Kind)

	warnf := func(format string, a ...any) {
		logger.Warn(format+"\n", a...)
	}
	debugf := func(format string, a ...any) {
		logger.Debug(format+"\n", a...)
	}
	eng := engine.New(desc, &engine.Config{
		Overrides: override.NewResolver(config.OverridesDir, warnf),
		Logf:      debugf,
	})

	failed := 0
	for _, pkg := range packages {
		outcome, err := eng.Perform(ctx, pkg, op, config.SkipOverrides)
		if err != nil {
			var cmdErr *engine.CommandError
			if errors.As(err, &cmdErr) && config.KeepGoing {
				logger.Error("✗ %s\n", outcome)
				failed++
				continue
			}
			return err
		}
		report(outcome)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d packages failed", failed, len(packages))
	}
	return nil
}

func report(o core.Outcome) {
	switch o.Status {
	case core.StatusSkipped:
		logger.Warn("- %s\n", o)
	case core.StatusAlreadyPresent, core.StatusAlreadyAbsent:
		logger.Info("  %s\n", o)
	default:
		logger.Info("✓ %s\n", o)
	}
}
