// Package version tells the user when a newer release is published.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// semver is a parsed major.minor.patch triple. Pre-release and build
// suffixes are dropped.
type semver [3]int

func parse(s string) (semver, error) {
	var v semver

	core := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}

	parts := strings.Split(core, ".")
	if len(parts) != len(v) {
		return v, fmt.Errorf("version %q: want major.minor.patch", s)
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return v, fmt.Errorf("version %q: bad component %q", s, part)
		}
		v[i] = n
	}

	return v, nil
}

// Compare orders two versions, with or without a leading "v".
// The result is 1 when a is newer, -1 when b is newer and 0 when they match.
func Compare(a, b string) (int, error) {
	va, err := parse(a)
	if err != nil {
		return 0, err
	}

	vb, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range va {
		switch {
		case va[i] > vb[i]:
			return 1, nil
		case va[i] < vb[i]:
			return -1, nil
		}
	}

	return 0, nil
}
