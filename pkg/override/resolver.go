// pkg/override/resolver.go

// Package override loads per-package, per-manager policy documents and
// turns them into skip-or-proceed decisions.
package override

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hostpkg/hostpkg/pkg/core"
	"github.com/hostpkg/hostpkg/pkg/manager"
)

// NoReason is reported when a policy forces a skip without giving one
const NoReason = "No reason specified"

// Policy is the on-disk override document.
// All fields are optional; unknown fields are ignored.
type Policy struct {
	Install   *bool  `json:"install"`
	Uninstall *bool  `json:"uninstall"`
	Exists    *bool  `json:"exists"`
	Reason    string `json:"reason"`
}

// Decision is the result of resolving an override for one operation
type Decision struct {
	Skip   bool
	Reason string // set when Skip is true
}

// Proceed is the decision when no override applies
var Proceed = Decision{}

// Resolver reads override files from a manager-scoped directory layout:
// <dir>/<manager>/<package>.json. Files are read fresh on every call and
// never written.
type Resolver struct {
	dir   string
	warnf func(format string, a ...any)
}

// NewResolver creates a Resolver rooted at dir. warnf receives non-fatal
// load problems; nil discards them.
func NewResolver(dir string, warnf func(format string, a ...any)) *Resolver {
	if warnf == nil {
		warnf = func(string, ...any) {}
	}
	return &Resolver{dir: dir, warnf: warnf}
}

// Path returns the override file location for a (manager, package) pair
func (r *Resolver) Path(kind manager.Kind, pkg string) string {
	return filepath.Join(r.dir, kind.String(), pkg+".json")
}

// Resolve decides whether an operation on a package should proceed.
//
// A missing or malformed override file degrades to Proceed; malformed
// files are reported through warnf but deliberately never fail the run.
// The exists field is asymmetric between the two operations: install skips
// when exists is explicitly true, uninstall skips when exists is
// explicitly false. Both polarities are long-standing observed behavior
// and must not be unified.
func (r *Resolver) Resolve(pkg string, kind manager.Kind, op core.Operation, skipOverrides bool) Decision {
	if skipOverrides {
		return Proceed
	}

	pol, err := r.load(kind, pkg)
	if err != nil {
		r.warnf("ignoring override for %s: %v", pkg, err)
		return Proceed
	}
	if pol == nil {
		return Proceed
	}

	skip := func() Decision {
		reason := pol.Reason
		if reason == "" {
			reason = NoReason
		}
		return Decision{Skip: true, Reason: reason}
	}

	switch op {
	case core.OpInstall:
		if pol.Install != nil && !*pol.Install {
			return skip()
		}
		if pol.Exists != nil && *pol.Exists {
			return skip()
		}
	case core.OpUninstall:
		if pol.Uninstall != nil && !*pol.Uninstall {
			return skip()
		}
		if pol.Exists != nil && !*pol.Exists {
			return skip()
		}
	}
	return Proceed
}

func (r *Resolver) load(kind manager.Kind, pkg string) (*Policy, error) {
	data, err := os.ReadFile(r.Path(kind, pkg))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading override: %w", err)
	}

	var pol Policy
	if err := json.Unmarshal(data, &pol); err != nil {
		return nil, fmt.Errorf("parsing override: %w", err)
	}
	return &pol, nil
}
