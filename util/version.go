package util

import (
	"strings"

	"golang.org/x/mod/semver"
)

var InvalidVersionError = NewError("invalid version")

type Version string

func (vs Version) String() string {
	return string(vs)
}

// GO returns the version with a single "v" prefix, as golang.org/x/mod/semver
// expects.
func (vs Version) GO() string {
	s := string(vs)
	for strings.HasPrefix(s, "vv") {
		s = s[1:]
	}

	if !strings.HasPrefix(s, "v") {
		return "v" + s
	}

	return s
}

func (vs Version) IsValid([]byte) error {
	if !semver.IsValid(vs.GO()) {
		return InvalidVersionError.Errorf("invalid version, %q", vs)
	}

	return nil
}
