package bugfix

import (
	"regexp"
	"strings"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
)

// DefaultPatterns match the usual wording of fix check-in comments.
var DefaultPatterns = []string{
	`\bfix(ed|es)?\b`,
	`\bbug\s*#?\d*\b`,
	`\bhotfix\b`,
}

// Result holds the result of bugfix detection for a set of changesets.
type Result struct {
	// Versions is the set of changeset versions classified as fixes.
	Versions map[string]struct{}
	// PathCounts maps server paths to the number of fix changesets that touched them.
	PathCounts map[string]int
	Total      int
}

// IsFix reports whether the changeset with version was classified as a fix.
func (r *Result) IsFix(version string) bool {
	if r == nil {
		return false
	}
	_, ok := r.Versions[version]
	return ok
}

// Detector classifies changesets by matching their comments against regex patterns.
type Detector struct {
	patterns []*regexp.Regexp
}

// NewDetector creates a new Detector from a list of regex pattern strings.
// Patterns are compiled as case-insensitive. Returns an error if any pattern fails to compile.
func NewDetector(patterns []string) (*Detector, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "(?i)") {
			p = "(?i)" + p
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return &Detector{patterns: compiled}, nil
}

// IsFix returns true if comment matches any of the detector's patterns.
func (d *Detector) IsFix(comment string) bool {
	for _, re := range d.patterns {
		if re.MatchString(comment) {
			return true
		}
	}
	return false
}

// Detect classifies changeSets. Deleted items do not count towards
// PathCounts.
func (d *Detector) Detect(changeSets []tfs.ChangeSet) *Result {
	result := &Result{
		Versions:   make(map[string]struct{}),
		PathCounts: make(map[string]int),
	}

	if len(d.patterns) == 0 {
		return result
	}

	for _, cs := range changeSets {
		if !d.IsFix(cs.Comment) {
			continue
		}

		result.Versions[cs.Version] = struct{}{}
		result.Total++

		for _, item := range cs.Items {
			if item.Kind() == tfs.ChangeKindDeleted {
				continue
			}
			result.PathCounts[item.Path]++
		}
	}

	return result
}
