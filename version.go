// Package taginput is a single-line tag input editor: free text with
// catalog suggestions that commit into atomic tags.
//
// The state machine lives in package editor, the tag sequence in package
// buffer and the host abstraction in package surface.
package taginput

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer form, without a leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// ParseVersion splits a SemVer string into its numeric core. ok is false for
// anything that is not SemVer 2.0.0.
func ParseVersion(v string) (major, minor, patch string, ok bool) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return "", "", "", false
	}
	return m[1], m[2], m[3], true
}
