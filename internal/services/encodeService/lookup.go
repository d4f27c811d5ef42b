package encodeservice

import (
	"slices"
	"strings"
)

// Classification splits a match set for reporting.
type Classification struct {
	// Common holds the UTF and ASCII family matches.
	Common []string
	// All holds every match.
	All []string
}

// IsCommon reports whether name contains "utf" or "ascii". The check is case-sensitive.
func IsCommon(name string) bool {
	return strings.Contains(name, "utf") || strings.Contains(name, "ascii")
}

// Classify sorts matches and extracts the common subset. An empty match set
// returns ErrNoMatch, which callers must tell apart from a classification
// whose Common list is empty.
func Classify(matches []string) (*Classification, error) {
	if len(matches) == 0 {
		return nil, ErrNoMatch
	}

	all := slices.Clone(matches)
	slices.Sort(all)
	all = slices.Compact(all)

	common := make([]string, 0, len(all))
	for _, name := range all {
		if IsCommon(name) {
			common = append(common, name)
		}
	}

	return &Classification{Common: common, All: all}, nil
}
