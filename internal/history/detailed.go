// Package history parses the console output of `tf history` into change
// sets. Two layouts are supported: the brief table and the detailed
// key/value blocks separated by dashed lines.
package history

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/dateutil"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
	"github.com/sirupsen/logrus"
)

// DetailedOptions configures ParseDetailed.
type DetailedOptions struct {
	// From is the exclusive lower bound; change sets dated at or before it
	// are dropped unless SkipDateCheck is set.
	From          time.Time
	SkipDateCheck bool
	// Separator overrides DefaultSeparator.
	Separator string
	Dates     *dateutil.Parser
	Languages []Language
	Log       logrus.FieldLogger
}

// ParseDetailed parses `tf history -format:detailed` output. The result is
// ordered oldest first. Any fault aborts the whole parse; no partial result
// is returned.
func ParseDetailed(r io.Reader, opts DetailedOptions) ([]tfs.ChangeSet, error) {
	extractor := NewExtractor(opts.Dates, opts.Languages, opts.Log)
	log := extractor.log

	results := make([]tfs.ChangeSet, 0)
	segments := NewSegmentReader(r, opts.Separator)
	for {
		segment, ok := segments.Next()
		if !ok {
			break
		}

		cs, err := extractor.Extract(segment)
		if err != nil {
			return nil, err
		}

		if !opts.SkipDateCheck && !cs.Date.After(opts.From) {
			log.WithFields(logrus.Fields{
				"changeset": cs.Version,
				"date":      cs.Date,
				"from":      opts.From,
			}).Debug("Skipping changeset not after the lower bound")
			continue
		}

		results = append(results, *cs)
	}
	if err := segments.Err(); err != nil {
		return nil, fmt.Errorf("read detailed history: %w", err)
	}

	// tf prints the newest changeset first.
	slices.Reverse(results)
	return results, nil
}
