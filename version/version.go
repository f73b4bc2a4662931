package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned (wrapped) for strings which are not of the form major.minor.patch.
var ErrMalformed = errors.New("malformed version tag")

// Tag is a version tag major.minor.patch. The zero value is 0.0.0.
type Tag struct {
	Major uint
	Minor uint
	Patch uint
}

// New is a shortcut for Tag{major, minor, patch}.
func New(major, minor, patch uint) Tag {
	return Tag{Major: major, Minor: minor, Patch: patch}
}

func (t Tag) String() string {
	return fmt.Sprintf("%d.%d.%d", t.Major, t.Minor, t.Patch)
}

// Experimental is true for tags with major version 0.
func (t Tag) Experimental() bool {
	return t.Major == 0
}

// effective moves the components of an experimental tag up by one position.
func (t Tag) effective() Tag {
	if t.Experimental() {
		return Tag{Major: t.Minor, Minor: t.Patch}
	}
	return t
}

// CompatibleWith checks if a module with tag t may be used where tag required has been
// asked for. After shifting experimental tags, t has to have the same major version
// as required and either a greater minor version, or the same minor version and a patch
// level at least as high.
//
// Note that a stable tag and an experimental tag may only be compatible if the shifted
// components happen to line up; 1.3.4 is not compatible with 0.1.4.
func (t Tag) CompatibleWith(required Tag) bool {
	a, b := t.effective(), required.effective()
	if a.Major != b.Major {
		return false
	}
	if a.Minor > b.Minor {
		return true
	}
	return a.Minor == b.Minor && a.Patch >= b.Patch
}

// Compare orders tags by their components, returning -1, 0 or +1.
func (t Tag) Compare(other Tag) int {
	for _, c := range [3][2]uint{{t.Major, other.Major}, {t.Minor, other.Minor}, {t.Patch, other.Patch}} {
		switch {
		case c[0] < c[1]:
			return -1
		case c[0] > c[1]:
			return +1
		}
	}
	return 0
}

// Parse reads a tag from a string "major.minor.patch". A leading 'v' is accepted.
func Parse(s string) (Tag, error) {
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) != 3 {
		return Tag{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	var comp [3]uint
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 0)
		if err != nil {
			tracer().Debugf("version component %q: %v", p, err)
			return Tag{}, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		comp[i] = uint(n)
	}
	return Tag{Major: comp[0], Minor: comp[1], Patch: comp[2]}, nil
}

// MustParse is like Parse, but panics for malformed input.
// It is intended for tags given as constants in source code.
func MustParse(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return t
}
