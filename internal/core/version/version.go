// Package version parses platform and library versions using Maven ordering
// rules, so both "2.0.0.RELEASE" and "3.2.1" style versions compare correctly.
package version

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"deps.dev/util/semver"
)

// ErrInvalidVersion is returned when a text cannot be parsed as a version.
var ErrInvalidVersion = errors.New("invalid version")

var versionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*([.\-][0-9A-Za-z][0-9A-Za-z.\-]*)?$`)

// Version is a parsed version that keeps its original text.
type Version struct {
	text   string
	parsed *semver.Version
}

// Parse parses text as a version. Leading and trailing whitespace is ignored.
func Parse(text string) (Version, error) {
	trimmed := strings.TrimSpace(text)
	if !versionPattern.MatchString(trimmed) {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, text)
	}
	parsed, err := semver.Maven.Parse(trimmed)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, text, err)
	}
	return Version{text: trimmed, parsed: parsed}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// constants and tests.
func MustParse(text string) Version {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the text the version was parsed from.
func (v Version) String() string {
	return v.text
}

// IsZero reports whether v is the zero Version.
func (v Version) IsZero() bool {
	return v.parsed == nil
}

// Compare returns -1, 0 or 1 depending on whether v is lower than, equal to
// or greater than other. The zero Version sorts before every other version.
func (v Version) Compare(other Version) int {
	switch {
	case v.parsed == nil && other.parsed == nil:
		return 0
	case v.parsed == nil:
		return -1
	case other.parsed == nil:
		return 1
	}
	return v.parsed.Compare(other.parsed)
}
