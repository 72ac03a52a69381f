package options

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Version identifies the application release that wrote a campaign save.
// The zero Version is unknown and orders below every parsed version.
type Version struct {
	raw   string
	canon string
}

// ParseVersion parses major[.minor[.patch]][-prerelease][+build] with an
// optional leading "v". Leading zeros are allowed, so "0.50.07" and "0.50.7"
// are the same release.
func ParseVersion(s string) (Version, error) {
	rest := strings.TrimPrefix(strings.TrimSpace(s), "v")
	var build, pre string
	if i := strings.IndexByte(rest, '+'); i >= 0 {
		rest, build = rest[:i], rest[i:]
	}
	if i := strings.IndexByte(rest, '-'); i >= 0 {
		rest, pre = rest[:i], rest[i:]
	}

	parts := strings.Split(rest, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("invalid version %q: too many components", s)
	}
	nums := [3]int{}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version %q: bad component %q", s, p)
		}
		nums[i] = n
	}

	canon := fmt.Sprintf("v%d.%d.%d%s%s", nums[0], nums[1], nums[2], pre, build)
	if !semver.IsValid(canon) {
		return Version{}, fmt.Errorf("invalid version %q", s)
	}
	return Version{raw: strings.TrimSpace(s), canon: canon}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
// It is meant for version literals in rule tables.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1, 0 or +1 as v is lower than, equal to or higher than o.
// Build metadata is ignored.
func (v Version) Compare(o Version) int {
	return semver.Compare(v.canon, o.canon)
}

// Less reports whether v is strictly lower than o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// IsLowerThan reports whether v is strictly lower than the threshold literal.
// It panics if threshold does not parse.
func (v Version) IsLowerThan(threshold string) bool {
	return v.Less(MustParseVersion(threshold))
}

// IsZero reports whether v is the unknown version.
func (v Version) IsZero() bool {
	return v.canon == ""
}

func (v Version) String() string {
	if v.IsZero() {
		return "unknown"
	}
	return v.raw
}
