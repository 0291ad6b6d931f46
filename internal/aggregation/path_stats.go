package aggregation

import (
	"sort"
	"strings"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
)

// PathStats holds aggregated history for a single server path.
type PathStats struct {
	Path          string
	ChangeCount   int
	Added         int
	Edited        int
	Deleted       int
	LastChangedAt time.Time
	LastVersion   string
	Users         map[string]struct{}
	UserCounts    map[string]int
}

// NewPathStats creates a new PathStats instance.
func NewPathStats(path string) *PathStats {
	return &PathStats{
		Path:       path,
		Users:      make(map[string]struct{}),
		UserCounts: make(map[string]int),
	}
}

// UserCount returns number of unique users.
func (p *PathStats) UserCount() int {
	return len(p.Users)
}

// OwnershipRatio returns the share of changes made by the most active user.
// A path nobody changed counts as fully owned.
func (p *PathStats) OwnershipRatio() float64 {
	if p.ChangeCount == 0 || len(p.UserCounts) == 0 {
		return 1.0
	}

	most := 0
	for _, count := range p.UserCounts {
		if count > most {
			most = count
		}
	}

	return float64(most) / float64(p.ChangeCount)
}

// AddChange records one item of a changeset.
func (p *PathStats) AddChange(cs *tfs.ChangeSet, item tfs.Item) {
	p.ChangeCount++
	switch item.Kind() {
	case tfs.ChangeKindAdded:
		p.Added++
	case tfs.ChangeKindDeleted:
		p.Deleted++
	default:
		p.Edited++
	}

	if p.LastChangedAt.IsZero() || !cs.Date.Before(p.LastChangedAt) {
		p.LastChangedAt = cs.Date
		p.LastVersion = cs.Version
	}

	user := strings.ToLower(cs.QualifiedUser())
	p.Users[user] = struct{}{}
	p.UserCounts[user]++
}

// PathAggregator aggregates changeset items by server path.
type PathAggregator struct {
	stats map[string]*PathStats
}

// NewPathAggregator creates a new aggregator.
func NewPathAggregator() *PathAggregator {
	return &PathAggregator{
		stats: make(map[string]*PathStats),
	}
}

// Process aggregates all items of changeSets.
func (a *PathAggregator) Process(changeSets []tfs.ChangeSet) map[string]*PathStats {
	for i := range changeSets {
		cs := &changeSets[i]
		for _, item := range cs.Items {
			if _, exists := a.stats[item.Path]; !exists {
				a.stats[item.Path] = NewPathStats(item.Path)
			}
			a.stats[item.Path].AddChange(cs, item)
		}
	}
	return a.stats
}

// Ranked returns the path stats ordered by change count, most changed
// first, ties broken by path.
func (a *PathAggregator) Ranked() []*PathStats {
	ranked := make([]*PathStats, 0, len(a.stats))
	for _, s := range a.stats {
		ranked = append(ranked, s)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].ChangeCount != ranked[j].ChangeCount {
			return ranked[i].ChangeCount > ranked[j].ChangeCount
		}
		return ranked[i].Path < ranked[j].Path
	})
	return ranked
}
