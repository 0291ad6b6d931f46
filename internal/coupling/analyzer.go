// Package coupling finds server paths that tend to be checked in together.
package coupling

import (
	"sort"
	"strings"

	"github.com/jenkinsci/tfs-plugin-sub001/config"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
)

// PathPair is an unordered pair of server paths, stored with the
// case-insensitively smaller path first.
type PathPair struct {
	PathA string
	PathB string
}

// NewPathPair creates a pair with consistent ordering.
func NewPathPair(a, b string) PathPair {
	if strings.ToLower(a) > strings.ToLower(b) {
		a, b = b, a
	}
	return PathPair{PathA: a, PathB: b}
}

// CoChange holds how often two paths changed in the same changeset.
type CoChange struct {
	PathA    string
	PathB    string
	Together int // changesets touching both paths
	CountA   int // changesets touching PathA
	CountB   int // changesets touching PathB
	// Jaccard is |A ∩ B| / |A ∪ B|.
	Jaccard float64
	// Confidence is P(B|A).
	Confidence float64
}

// Result holds the outcome of Analyze.
type Result struct {
	Pairs           []CoChange
	TotalChangeSets int
	TotalPaths      int
	TotalPairs      int
}

// Analyzer computes co-change metrics.
type Analyzer struct {
	options config.CouplingConfig
}

// NewAnalyzer creates a new co-change analyzer.
func NewAnalyzer(options config.CouplingConfig) *Analyzer {
	return &Analyzer{options: options}
}

// Analyze counts path pairs over changeSets. TFVC paths are
// case-insensitive; the casing first seen is reported. Deleted items are
// ignored, and changesets with more than MaxItemsPerChangeSet distinct
// paths (branch creation, bulk merges) do not contribute pairs.
func (a *Analyzer) Analyze(changeSets []tfs.ChangeSet) Result {
	display := make(map[string]string)
	pathCounts := make(map[string]int)
	pairCounts := make(map[PathPair]int)

	for _, cs := range changeSets {
		seen := make(map[string]struct{})
		var paths []string
		for _, item := range cs.Items {
			if item.Kind() == tfs.ChangeKindDeleted {
				continue
			}
			key := strings.ToLower(item.Path)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			if _, ok := display[key]; !ok {
				display[key] = item.Path
			}
			pathCounts[key]++
			paths = append(paths, key)
		}

		if len(paths) < 2 || (a.options.MaxItemsPerChangeSet > 0 && len(paths) > a.options.MaxItemsPerChangeSet) {
			continue
		}
		for i := 0; i < len(paths)-1; i++ {
			for j := i + 1; j < len(paths); j++ {
				pairCounts[NewPathPair(paths[i], paths[j])]++
			}
		}
	}

	var pairs []CoChange
	for pair, together := range pairCounts {
		if together < a.options.MinTogether {
			continue
		}
		countA := pathCounts[pair.PathA]
		countB := pathCounts[pair.PathB]
		jaccard := float64(together) / float64(countA+countB-together)
		if jaccard < a.options.MinJaccard {
			continue
		}
		pairs = append(pairs, CoChange{
			PathA:      display[pair.PathA],
			PathB:      display[pair.PathB],
			Together:   together,
			CountA:     countA,
			CountB:     countB,
			Jaccard:    jaccard,
			Confidence: float64(together) / float64(countA),
		})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Jaccard != pairs[j].Jaccard {
			return pairs[i].Jaccard > pairs[j].Jaccard
		}
		if pairs[i].Together != pairs[j].Together {
			return pairs[i].Together > pairs[j].Together
		}
		if pairs[i].PathA != pairs[j].PathA {
			return pairs[i].PathA < pairs[j].PathA
		}
		return pairs[i].PathB < pairs[j].PathB
	})

	if a.options.TopPairs > 0 && len(pairs) > a.options.TopPairs {
		pairs = pairs[:a.options.TopPairs]
	}

	return Result{
		Pairs:           pairs,
		TotalChangeSets: len(changeSets),
		TotalPaths:      len(pathCounts),
		TotalPairs:      len(pairCounts),
	}
}
