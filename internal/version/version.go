// Package version holds build-time metadata injected via ldflags.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// These variables are set at build time using -ldflags:
//
//	-X 'github.com/janekbaraniewski/mediaplan/internal/version.Version=...'
//	-X 'github.com/janekbaraniewski/mediaplan/internal/version.CommitHash=...'
//	-X 'github.com/janekbaraniewski/mediaplan/internal/version.BuildDate=...'
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String returns a formatted version string.
func String() string {
	return Version + " (" + CommitHash + ") built " + BuildDate
}

// Release returns the canonical semver of a stable release build, or ""
// for dev, prerelease and otherwise unversioned builds.
func Release() string {
	return normalizeRelease(Version)
}

func normalizeRelease(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	if semver.Prerelease(v) != "" || semver.Build(v) != "" {
		return ""
	}
	return semver.Canonical(v)
}
