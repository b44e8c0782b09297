package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters test files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test files by name pattern using wildcard matching.
// Supports patterns like "test_basics.py" or "*oop*".
func (f *Filter) FilterByName(tests []string, pattern string) []string {
	if pattern == "" {
		return tests
	}

	var filtered []string

	for _, test := range tests {
		testName := filepath.Base(test)

		// filepath.Match handles * and ? wildcards
		matched, err := filepath.Match(pattern, testName)
		if err == nil && matched {
			filtered = append(filtered, test)
			continue
		}

		// Flexible substring match for patterns like "*oop*": every
		// non-empty part between wildcards must appear in the name.
		if strings.Contains(pattern, "*") {
			parts := strings.Split(pattern, "*")
			allMatch := true
			hasPart := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				hasPart = true
				if !strings.Contains(testName, part) {
					allMatch = false
					break
				}
			}
			if allMatch && hasPart {
				filtered = append(filtered, test)
			}
			continue
		}

		// No wildcards: plain contains check
		if !strings.Contains(pattern, "?") && strings.Contains(testName, pattern) {
			filtered = append(filtered, test)
		}
	}

	return filtered
}

// MatchStem reports the first test file whose stem matches stem exactly.
// A stem matches "control_flow" for tests/test_control_flow.py and also
// for an exact file name without the .py suffix.
func (f *Filter) MatchStem(tests []string, stem string) (string, bool) {
	stem = strings.TrimSuffix(stem, ".py")
	for _, test := range tests {
		base := strings.TrimSuffix(filepath.Base(test), ".py")
		if base == stem || base == "test_"+stem {
			return test, true
		}
	}
	return "", false
}
