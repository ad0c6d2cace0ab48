package toolchain

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionToken matches the first version-looking token in tool output like
// "v20.11.1" or "rustc 1.84.0 (abc 2025-01-01)".
var versionToken = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// parseVersion extracts the first semantic version from tool output.
func parseVersion(out string) (*semver.Version, error) {
	token := versionToken.FindString(strings.TrimSpace(out))
	return semver.NewVersion(token)
}

// atLeast reports whether the version in out meets the floor. Unparseable
// output counts as not meeting it, so a broken tool gets reinstalled.
func atLeast(out string, floor *semver.Version) bool {
	v, err := parseVersion(out)
	if err != nil {
		return false
	}
	return !v.LessThan(floor)
}
