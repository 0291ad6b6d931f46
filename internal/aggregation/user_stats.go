package aggregation

import (
	"sort"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
)

// UserStats holds per-user changeset activity.
type UserStats struct {
	User           string // DOMAIN\user as printed by tf
	ChangeSetCount int
	ItemCount      int
	FirstAt        time.Time
	LastAt         time.Time
}

// AggregateUsers counts changesets and items per qualified user. The result
// is ordered by changeset count, most active first, ties broken by name.
func AggregateUsers(changeSets []tfs.ChangeSet) []*UserStats {
	byUser := make(map[string]*UserStats)
	for i := range changeSets {
		cs := &changeSets[i]
		name := cs.QualifiedUser()
		s, ok := byUser[name]
		if !ok {
			s = &UserStats{User: name, FirstAt: cs.Date, LastAt: cs.Date}
			byUser[name] = s
		}
		s.ChangeSetCount++
		s.ItemCount += len(cs.Items)
		if cs.Date.Before(s.FirstAt) {
			s.FirstAt = cs.Date
		}
		if cs.Date.After(s.LastAt) {
			s.LastAt = cs.Date
		}
	}

	result := make([]*UserStats, 0, len(byUser))
	for _, s := range byUser {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].ChangeSetCount != result[j].ChangeSetCount {
			return result[i].ChangeSetCount > result[j].ChangeSetCount
		}
		return result[i].User < result[j].User
	})
	return result
}
