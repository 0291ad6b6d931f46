package history

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/dateutil"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/texttable"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
	"github.com/sirupsen/logrus"
)

// Columns of the brief history table.
const (
	briefColumnChangeset = iota
	briefColumnUser
	briefColumnDate
	briefColumnComment
)

// BriefOptions configures ParseBrief.
type BriefOptions struct {
	// From is the exclusive lower bound. The requested version range already
	// excludes it, but tf may return the boundary changeset anyway.
	From  time.Time
	Dates *dateutil.Parser
	Log   logrus.FieldLogger
}

// ParseBrief parses `tf history -format:brief` output, oldest first.
// Brief change sets carry no items.
func ParseBrief(r io.Reader, opts BriefOptions) ([]tfs.ChangeSet, error) {
	dates := opts.Dates
	if dates == nil {
		dates = dateutil.Default()
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	results := make([]tfs.ChangeSet, 0)
	table := texttable.New(r, 1)
	for table.Next() {
		version, _ := table.Column(briefColumnChangeset)
		user, _ := table.Column(briefColumnUser)
		rawDate, _ := table.Column(briefColumnDate)
		comment, _ := table.Column(briefColumnComment)

		date, err := dates.Parse(rawDate)
		if err != nil {
			return nil, newParseError(FaultDate, table.Line(), -1, err)
		}

		if !date.After(opts.From) {
			log.WithFields(logrus.Fields{
				"changeset": version,
				"date":      date,
				"from":      opts.From,
			}).Debug("Skipping changeset not after the lower bound")
			continue
		}

		results = append(results, *tfs.NewChangeSet(version, date, user, comment))
	}
	if err := table.Err(); err != nil {
		return nil, fmt.Errorf("read brief history: %w", err)
	}

	slices.Reverse(results)
	return results, nil
}
