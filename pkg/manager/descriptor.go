// pkg/manager/descriptor.go
package manager

import "strings"

// PackagePlaceholder marks where the package name is substituted into a
// command template.
const PackagePlaceholder = "{package}"

// CheckMode selects how a descriptor probes installed state
type CheckMode int

const (
	// CheckList runs ListArgs once and scans its output lines for the package
	CheckList CheckMode = iota
	// CheckQuery runs QueryArgs with the package substituted in; a zero
	// exit status means the package is installed
	CheckQuery
)

// MatchFunc reports whether one line of list output names the package.
// Matching is exact on the leading token so that e.g. "vi" never matches
// an installed "vim".
type MatchFunc func(line, pkg string) bool

// Descriptor describes how to drive one package manager.
// Descriptors are immutable; the registry hands out copies.
type Descriptor struct {
	Kind Kind

	// Bin is the executable probed to decide whether the manager is installed
	Bin string

	// InstallArgs and UninstallArgs are full argv templates containing
	// PackagePlaceholder where the package name goes
	InstallArgs   []string
	UninstallArgs []string

	// ListArgs lists installed packages (CheckList mode); QueryArgs queries
	// a single package (CheckQuery mode, placeholder substituted)
	ListArgs  []string
	QueryArgs []string

	Check CheckMode
	Match MatchFunc

	// NeedsRoot is true when install/uninstall require elevation on Unix
	NeedsRoot bool
}

// ExpandArgs substitutes the package name into a command template.
// If the template carries no placeholder the name is appended.
func ExpandArgs(template []string, pkg string) []string {
	argv := make([]string, 0, len(template)+1)
	replaced := false
	for _, a := range template {
		if strings.Contains(a, PackagePlaceholder) {
			a = strings.ReplaceAll(a, PackagePlaceholder, pkg)
			replaced = true
		}
		argv = append(argv, a)
	}
	if !replaced {
		argv = append(argv, pkg)
	}
	return argv
}

func firstField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// matchPlain matches lines whose first whitespace field is the package name.
// Used for pacman -Q, apk info, brew list and similar bare listings.
func matchPlain(line, pkg string) bool {
	return firstField(line) == pkg
}

// matchDeb matches "name/suite,now version ..." lines from apt list
func matchDeb(line, pkg string) bool {
	token := firstField(line)
	name, _, _ := strings.Cut(token, "/")
	return name == pkg
}

// matchRPM matches "name.arch  version  repo" lines from dnf/yum list,
// where the package name itself may contain dots.
func matchRPM(line, pkg string) bool {
	token := firstField(line)
	if token == pkg {
		return true
	}
	i := strings.LastIndex(token, ".")
	return i > 0 && token[:i] == pkg
}

// matchNameVersion matches "name-version ..." tokens as produced by pkg
// info, pkg_info, pkgin list and xbps-query. The version is everything
// after the last dash.
func matchNameVersion(line, pkg string) bool {
	return stripVersionDash(firstField(line)) == pkg
}

// matchXbps matches "ii name-version description" lines from xbps-query -l
func matchXbps(line, pkg string) bool {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return false
	}
	return stripVersionDash(fields[1]) == pkg
}

// matchPortage matches "category/name" lines from qlist -I
func matchPortage(line, pkg string) bool {
	token := firstField(line)
	if token == pkg {
		return true
	}
	_, name, ok := strings.Cut(token, "/")
	return ok && name == pkg
}

// matchPipe returns a matcher over "|"-separated output, comparing the
// trimmed field at the given index. choco --limit-output emits
// "name|version"; zypper search tables put the name in the second column.
func matchPipe(idx int) MatchFunc {
	return func(line, pkg string) bool {
		fields := strings.Split(line, "|")
		if idx >= len(fields) {
			return false
		}
		return strings.TrimSpace(fields[idx]) == pkg
	}
}

func stripVersionDash(token string) string {
	i := strings.LastIndex(token, "-")
	if i <= 0 {
		return token
	}
	return token[:i]
}
