// Package version defines the kickstart syntax releases and the ordering
// used to gate options and commands on the release they appeared in.
package version

import (
	"fmt"
	"strings"
)

// Version identifies one kickstart syntax release. Versions are ordered:
// a larger value is a later release.
type Version int

const (
	// Unknown is the zero value; it never gates anything.
	Unknown Version = iota
	FC1
	FC2
	FC3
	FC4
	FC5
	FC6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24
	F25
)

// Devel is the newest syntax release this package knows about.
const Devel = F25

var names = map[Version]string{
	FC1: "FC1", FC2: "FC2", FC3: "FC3", FC4: "FC4", FC5: "FC5", FC6: "FC6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	F13: "F13", F14: "F14", F15: "F15", F16: "F16", F17: "F17", F18: "F18",
	F19: "F19", F20: "F20", F21: "F21", F22: "F22", F23: "F23", F24: "F24",
	F25: "F25",
}

// String returns the canonical release name, e.g. "FC6" or "F24".
func (v Version) String() string {
	if s, ok := names[v]; ok {
		return s
	}
	return fmt.Sprintf("version(%d)", int(v))
}

// Parse resolves a release name like "fc6", "F24" or "devel" to its Version.
func Parse(s string) (Version, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "DEVEL" {
		return Devel, nil
	}
	for v, n := range names {
		if n == name {
			return v, nil
		}
	}
	return Unknown, fmt.Errorf("unknown kickstart version %q", s)
}
