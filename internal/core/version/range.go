package version

import (
	"fmt"
	"strings"

	"deps.dev/util/semver"
)

// Range is a compatibility range such as "[2.0.0.RELEASE,2.1.0.M1)".
// A bare version such as "3.0.0" means "3.0.0 or later".
type Range struct {
	text       string
	constraint *semver.Constraint
}

// ParseRange parses a compatibility range.
func ParseRange(text string) (Range, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Range{}, fmt.Errorf("%w: empty range", ErrInvalidVersion)
	}
	expr := trimmed
	if !strings.ContainsAny(trimmed, "[(") {
		if _, err := Parse(trimmed); err != nil {
			return Range{}, err
		}
		expr = "[" + trimmed + ",)"
	}
	c, err := semver.Maven.ParseConstraint(expr)
	if err != nil {
		return Range{}, fmt.Errorf("%w: range %q: %v", ErrInvalidVersion, text, err)
	}
	return Range{text: trimmed, constraint: c}, nil
}

// Match reports whether v falls inside the range. The zero Range matches
// every version.
func (r Range) Match(v Version) bool {
	if r.constraint == nil {
		return true
	}
	if v.parsed == nil {
		return false
	}
	return r.constraint.MatchVersion(v.parsed)
}

// String returns the range as written.
func (r Range) String() string {
	return r.text
}
