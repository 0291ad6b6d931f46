package history

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/dateutil"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/keyvalue"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
	"github.com/sirupsen/logrus"
)

// rawChangeSet holds the unparsed fields of one changeset segment.
type rawChangeSet struct {
	version     string
	user        string
	date        string
	comment     string
	checkedInBy string
	items       string
}

// strategy turns a segment into raw fields. ok is false when the strategy
// does not recognise the segment.
type strategy interface {
	name() string
	extract(segment string) (raw rawChangeSet, ok bool)
}

// keyValueStrategy reads the segment as "Key: value" blocks and looks the
// fields up by label, trying each language in order.
type keyValueStrategy struct {
	languages []Language
}

func (keyValueStrategy) name() string { return "labelled" }

func (s keyValueStrategy) extract(segment string) (rawChangeSet, bool) {
	values := keyvalue.Parse(segment)
	if len(values) == 0 {
		return rawChangeSet{}, false
	}
	for _, lang := range s.languages {
		if raw, ok := lang.match(values); ok {
			return raw, true
		}
	}
	return rawChangeSet{}, false
}

var itemLine = regexp.MustCompile(`^[ \t]*([^$ \t][^$]*?)[ \t]+(\$.*?)[ \t\r]*$`)

// Extractor turns changeset segments into change sets.
type Extractor struct {
	strategies []strategy
	dates      *dateutil.Parser
	log        logrus.FieldLogger
}

// NewExtractor creates an extractor that tries the labelled strategy for
// languages (DefaultLanguages when empty) and then the positional one.
// A nil dates parser selects dateutil.Default; a nil log selects the
// standard logrus logger.
func NewExtractor(dates *dateutil.Parser, languages []Language, log logrus.FieldLogger) *Extractor {
	if dates == nil {
		dates = dateutil.Default()
	}
	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Extractor{
		strategies: []strategy{keyValueStrategy{languages: languages}, legacyStrategy{}},
		dates:      dates,
		log:        log,
	}
}

// Extract parses one segment. Faults are returned as *ParseError.
func (e *Extractor) Extract(segment string) (*tfs.ChangeSet, error) {
	for _, s := range e.strategies {
		raw, ok := s.extract(segment)
		if !ok {
			continue
		}
		e.log.WithFields(logrus.Fields{
			"changeset": raw.version,
			"strategy":  s.name(),
		}).Debug("Parsed changeset segment")
		return e.build(segment, raw)
	}
	return nil, newParseError(FaultUnrecognized, segment, -1, nil)
}

func (e *Extractor) build(segment string, raw rawChangeSet) (*tfs.ChangeSet, error) {
	date, err := e.dates.Parse(raw.date)
	if err != nil {
		return nil, newParseError(FaultDate, segment, -1, err)
	}

	cs := tfs.NewChangeSet(strings.TrimSpace(raw.version), date, strings.TrimSpace(raw.user), normalizeComment(raw.comment))
	if by := strings.TrimSpace(raw.checkedInBy); by != "" {
		cs.SetCheckedInBy(by)
	}

	items, perr := parseItems(raw.items)
	if perr != nil {
		perr.Segment = segment
		return nil, perr
	}
	if len(items) == 0 {
		return nil, newParseError(FaultNoItems, segment, -1, nil)
	}
	for _, item := range items {
		cs.AddItem(item)
	}
	return cs, nil
}

// parseItems reads "action $/path" lines. Every non-blank line must be an
// item with a "$/" path; anything else is a fault whose offset is counted
// in characters into block.
func parseItems(block string) ([]tfs.Item, *ParseError) {
	var items []tfs.Item
	start := 0
	for _, line := range strings.SplitAfter(block, "\n") {
		lineStart := start
		start += len(line)
		line = strings.TrimRight(line, "\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		m := itemLine.FindStringSubmatchIndex(line)
		if m == nil {
			pos := lineStart + len(line) - len(strings.TrimLeft(line, " \t"))
			return nil, newParseError(FaultItemPath, block, utf8.RuneCountInString(block[:pos]),
				fmt.Errorf("item %q is not an action followed by a %q path in items %q",
					strings.TrimSpace(line), tfs.ServerPathPrefix, block))
		}
		action := strings.TrimSpace(line[m[2]:m[3]])
		path := line[m[4]:m[5]]
		if !strings.HasPrefix(path, tfs.ServerPathPrefix) {
			offset := utf8.RuneCountInString(block[:lineStart+m[4]])
			return nil, newParseError(FaultItemPath, block, offset,
				fmt.Errorf("path %q does not start with %q in items %q", path, tfs.ServerPathPrefix, block))
		}
		items = append(items, tfs.Item{Path: path, Action: action})
	}
	return items, nil
}

// normalizeComment removes the two-space indentation tf puts before every
// comment line and a single leading newline.
func normalizeComment(comment string) string {
	comment = strings.ReplaceAll(comment, "\n  ", "\n")
	return strings.TrimPrefix(comment, "\n")
}
