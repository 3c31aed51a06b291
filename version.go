// Package inkwell carries the release metadata of the inkwell editor. The
// editing session lives in the session, editor and buffer packages.
package inkwell

import (
	_ "embed"
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

const Name = "inkwell"

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var rawVersion string

// Version returns the release version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(rawVersion)
}

// Tag returns Version with a leading `v`.
func Tag() string {
	return "v" + Version()
}

// Banner is the line printed by `inkwell version`.
func Banner() string {
	return fmt.Sprintf("%s %s (%s %s/%s)", Name, Tag(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
