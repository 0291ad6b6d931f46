package tfs

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PathFilter selects items by server path using doublestar globs.
// Patterns are matched against the path with the "$/" prefix removed,
// so "Project/src/**" matches "$/Project/src/Main.cs".
type PathFilter struct {
	Include []string
	Exclude []string
}

// NewPathFilter validates the patterns and returns a filter.
func NewPathFilter(include, exclude []string) (*PathFilter, error) {
	for _, p := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(normalizePattern(p)) {
			return nil, fmt.Errorf("invalid path pattern %q", p)
		}
	}
	return &PathFilter{Include: include, Exclude: exclude}, nil
}

// Matches reports whether path passes the filter.
func (f *PathFilter) Matches(path string) bool {
	path = strings.TrimPrefix(strings.ReplaceAll(path, "\\", "/"), ServerPathPrefix)

	// Check exclude patterns first
	for _, pattern := range f.Exclude {
		if matched, _ := doublestar.Match(normalizePattern(pattern), path); matched {
			return false
		}
	}

	if len(f.Include) == 0 {
		return true
	}

	for _, pattern := range f.Include {
		if matched, _ := doublestar.Match(normalizePattern(pattern), path); matched {
			return true
		}
	}

	return false
}

// IsEmpty reports whether the filter has no patterns.
func (f *PathFilter) IsEmpty() bool {
	return f == nil || (len(f.Include) == 0 && len(f.Exclude) == 0)
}

// FilterChangeSets returns change sets restricted to matching items.
// Change sets left without items are dropped.
func (f *PathFilter) FilterChangeSets(changeSets []ChangeSet) []ChangeSet {
	if f.IsEmpty() {
		return changeSets
	}

	results := make([]ChangeSet, 0, len(changeSets))
	for _, cs := range changeSets {
		var items []Item
		for _, item := range cs.Items {
			if f.Matches(item.Path) {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		cs.Items = items
		results = append(results, cs)
	}
	return results
}

func normalizePattern(p string) string {
	return strings.TrimPrefix(strings.ReplaceAll(p, "\\", "/"), ServerPathPrefix)
}
