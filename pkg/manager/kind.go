// pkg/manager/kind.go
package manager

import "fmt"

// Kind identifies a native package manager
type Kind string

const (
	// KindApt uses the apt front end on Debian/Ubuntu
	KindApt Kind = "apt"
	// KindAptGet uses the classic apt-get front end
	KindAptGet Kind = "apt-get"
	// KindYum uses the yum package manager on older RPM systems
	KindYum Kind = "yum"
	// KindDnf uses the dnf package manager on Fedora/RHEL
	KindDnf Kind = "dnf"
	// KindPacman uses the pacman package manager on Arch
	KindPacman Kind = "pacman"
	// KindApk uses the apk package manager on Alpine
	KindApk Kind = "apk"
	// KindZypper uses the zypper package manager on openSUSE
	KindZypper Kind = "zypper"
	// KindEmerge uses portage's emerge on Gentoo
	KindEmerge Kind = "emerge"
	// KindXbps uses the xbps tools on Void Linux
	KindXbps Kind = "xbps"
	// KindPkg uses the pkg package manager on FreeBSD
	KindPkg Kind = "pkg"
	// KindDoas drives pkg_add through doas on OpenBSD
	KindDoas Kind = "doas"
	// KindPkgin uses the pkgin package manager on NetBSD
	KindPkgin Kind = "pkgin"
	// KindPkgAdd uses the pkg_add tools on OpenBSD/NetBSD
	KindPkgAdd Kind = "pkg_add"
	// KindBrew uses the Homebrew package manager
	KindBrew Kind = "brew"
	// KindPort uses MacPorts
	KindPort Kind = "port"
	// KindChoco uses Chocolatey on Windows
	KindChoco Kind = "choco"
	// KindScoop uses Scoop on Windows
	KindScoop Kind = "scoop"
	// KindWinget uses the Windows Package Manager client
	KindWinget Kind = "winget"
	// KindAuto automatically selects the best installed manager.
	// It is only ever an input to the selector, never a selected value.
	KindAuto Kind = "auto"
)

// ParseKind converts a user-supplied name into a Kind
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if k == KindAuto {
		return k, nil
	}
	if _, ok := descriptors[k]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownManager, name)
}

// String returns the manager name as used on the command line
func (k Kind) String() string {
	return string(k)
}
