// pkg/manager/registry.go
package manager

import (
	"fmt"
	"runtime"
)

// OSFamily identifies the family of the running operating system
type OSFamily string

const (
	FamilyLinux   OSFamily = "linux"
	FamilyDarwin  OSFamily = "darwin"
	FamilyFreeBSD OSFamily = "freebsd"
	FamilyOpenBSD OSFamily = "openbsd"
	FamilyNetBSD  OSFamily = "netbsd"
	FamilyWindows OSFamily = "windows"
)

// DetectFamily maps the running OS onto an OSFamily
func DetectFamily() (OSFamily, error) {
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd", "openbsd", "netbsd", "windows":
		return OSFamily(runtime.GOOS), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
	}
}

// familyKinds fixes the auto-detection priority per OS family.
// On Linux the RPM family is probed first, then pacman/apk, then the apt
// family, then the less common managers.
var familyKinds = map[OSFamily][]Kind{
	FamilyLinux: {
		KindDnf, KindYum, KindPacman, KindApk,
		KindApt, KindAptGet, KindZypper, KindEmerge, KindXbps,
	},
	FamilyDarwin:  {KindBrew, KindPort},
	FamilyFreeBSD: {KindPkg},
	FamilyOpenBSD: {KindDoas, KindPkgAdd},
	FamilyNetBSD:  {KindPkgin, KindPkgAdd},
	FamilyWindows: {KindChoco, KindWinget, KindScoop},
}

var descriptors = map[Kind]Descriptor{
	KindApt: {
		Kind:          KindApt,
		Bin:           "apt",
		InstallArgs:   []string{"apt", "install", "{package}", "--no-install-recommends", "-y"},
		UninstallArgs: []string{"apt", "remove", "-y", "{package}"},
		ListArgs:      []string{"apt", "list", "--installed"},
		Match:         matchDeb,
		NeedsRoot:     true,
	},
	KindAptGet: {
		Kind:          KindAptGet,
		Bin:           "apt-get",
		InstallArgs:   []string{"apt-get", "install", "{package}", "--no-install-recommends", "-y"},
		UninstallArgs: []string{"apt-get", "remove", "-y", "{package}"},
		// apt-get has no listing mode of its own; dpkg-query ships with it
		ListArgs:  []string{"dpkg-query", "-W", "-f", `${Package}\n`},
		Match:     matchPlain,
		NeedsRoot: true,
	},
	KindYum: {
		Kind:          KindYum,
		Bin:           "yum",
		InstallArgs:   []string{"yum", "install", "-y", "{package}"},
		UninstallArgs: []string{"yum", "remove", "-y", "{package}"},
		ListArgs:      []string{"yum", "list", "installed"},
		Match:         matchRPM,
		NeedsRoot:     true,
	},
	KindDnf: {
		Kind:          KindDnf,
		Bin:           "dnf",
		InstallArgs:   []string{"dnf", "install", "-y", "{package}"},
		UninstallArgs: []string{"dnf", "remove", "-y", "{package}"},
		ListArgs:      []string{"dnf", "list", "--installed"},
		Match:         matchRPM,
		NeedsRoot:     true,
	},
	KindPacman: {
		Kind:          KindPacman,
		Bin:           "pacman",
		InstallArgs:   []string{"pacman", "-S", "--noconfirm", "{package}"},
		UninstallArgs: []string{"pacman", "-R", "--noconfirm", "{package}"},
		ListArgs:      []string{"pacman", "-Q"},
		Match:         matchPlain,
		NeedsRoot:     true,
	},
	KindApk: {
		Kind:          KindApk,
		Bin:           "apk",
		InstallArgs:   []string{"apk", "add", "{package}"},
		UninstallArgs: []string{"apk", "del", "{package}"},
		ListArgs:      []string{"apk", "info"},
		Match:         matchPlain,
		NeedsRoot:     true,
	},
	KindZypper: {
		Kind:          KindZypper,
		Bin:           "zypper",
		InstallArgs:   []string{"zypper", "--non-interactive", "install", "{package}"},
		UninstallArgs: []string{"zypper", "--non-interactive", "remove", "{package}"},
		ListArgs:      []string{"zypper", "--quiet", "search", "--installed-only", "--type", "package"},
		Match:         matchPipe(1),
		NeedsRoot:     true,
	},
	KindEmerge: {
		Kind:          KindEmerge,
		Bin:           "emerge",
		InstallArgs:   []string{"emerge", "{package}"},
		UninstallArgs: []string{"emerge", "--unmerge", "{package}"},
		ListArgs:      []string{"qlist", "-I"},
		Match:         matchPortage,
		NeedsRoot:     true,
	},
	KindXbps: {
		Kind:          KindXbps,
		Bin:           "xbps-install",
		InstallArgs:   []string{"xbps-install", "-y", "{package}"},
		UninstallArgs: []string{"xbps-remove", "-y", "{package}"},
		ListArgs:      []string{"xbps-query", "-l"},
		Match:         matchXbps,
		NeedsRoot:     true,
	},
	KindPkg: {
		Kind:          KindPkg,
		Bin:           "pkg",
		InstallArgs:   []string{"pkg", "install", "-y", "{package}"},
		UninstallArgs: []string{"pkg", "delete", "-y", "{package}"},
		ListArgs:      []string{"pkg", "info"},
		Match:         matchNameVersion,
		NeedsRoot:     true,
	},
	KindDoas: {
		Kind: KindDoas,
		Bin:  "doas",
		// doas already wraps the privileged command, so NeedsRoot stays false
		InstallArgs:   []string{"doas", "pkg_add", "{package}"},
		UninstallArgs: []string{"doas", "pkg_delete", "{package}"},
		ListArgs:      []string{"pkg_info"},
		Match:         matchNameVersion,
	},
	KindPkgin: {
		Kind:          KindPkgin,
		Bin:           "pkgin",
		InstallArgs:   []string{"pkgin", "-y", "install", "{package}"},
		UninstallArgs: []string{"pkgin", "-y", "remove", "{package}"},
		ListArgs:      []string{"pkgin", "list"},
		Match:         matchNameVersion,
		NeedsRoot:     true,
	},
	KindPkgAdd: {
		Kind:          KindPkgAdd,
		Bin:           "pkg_add",
		InstallArgs:   []string{"pkg_add", "{package}"},
		UninstallArgs: []string{"pkg_delete", "{package}"},
		ListArgs:      []string{"pkg_info"},
		Match:         matchNameVersion,
		NeedsRoot:     true,
	},
	KindBrew: {
		Kind:          KindBrew,
		Bin:           "brew",
		InstallArgs:   []string{"brew", "install", "{package}"},
		UninstallArgs: []string{"brew", "uninstall", "{package}"},
		ListArgs:      []string{"brew", "list", "--formula", "-1"},
		Match:         matchPlain,
	},
	KindPort: {
		Kind:          KindPort,
		Bin:           "port",
		InstallArgs:   []string{"port", "-N", "install", "{package}"},
		UninstallArgs: []string{"port", "-N", "uninstall", "{package}"},
		ListArgs:      []string{"port", "installed"},
		Match:         matchPlain,
	},
	KindChoco: {
		Kind:          KindChoco,
		Bin:           "choco",
		InstallArgs:   []string{"choco", "install", "{package}", "-y"},
		UninstallArgs: []string{"choco", "uninstall", "{package}", "-y"},
		ListArgs:      []string{"choco", "list", "--local-only", "--limit-output"},
		Match:         matchPipe(0),
	},
	KindScoop: {
		Kind:          KindScoop,
		Bin:           "scoop",
		InstallArgs:   []string{"scoop", "install", "{package}"},
		UninstallArgs: []string{"scoop", "uninstall", "{package}"},
		ListArgs:      []string{"scoop", "list"},
		Match:         matchPlain,
	},
	KindWinget: {
		Kind: KindWinget,
		Bin:  "winget",
		InstallArgs: []string{
			"winget", "install", "--exact", "--id", "{package}",
			"--silent", "--accept-package-agreements", "--accept-source-agreements",
		},
		UninstallArgs: []string{"winget", "uninstall", "--exact", "--id", "{package}", "--silent"},
		QueryArgs:     []string{"winget", "list", "--exact", "--id", "{package}"},
		Check:         CheckQuery,
	},
}

// DescriptorsFor returns the descriptors registered for an OS family in
// auto-detection priority order
func DescriptorsFor(family OSFamily) ([]Descriptor, error) {
	kinds, ok := familyKinds[family]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, family)
	}
	descs := make([]Descriptor, 0, len(kinds))
	for _, k := range kinds {
		descs = append(descs, descriptors[k])
	}
	return descs, nil
}

// DescriptorOf returns the descriptor for a concrete kind, failing when the
// kind is not registered for the given OS family
func DescriptorOf(kind Kind, family OSFamily) (Descriptor, error) {
	kinds, ok := familyKinds[family]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, family)
	}
	for _, k := range kinds {
		if k == kind {
			return descriptors[k], nil
		}
	}
	return Descriptor{}, fmt.Errorf("%w: %s is not registered for %s", ErrUnknownManager, kind, family)
}
