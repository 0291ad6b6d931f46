package history

import "regexp"

// legacyPattern captures revision, user, date, comment block and items
// block by position instead of by label, so it works for any label
// language. It relies on the exact layout of the detailed format: three
// single-line fields, a comment block, one blank line, then an items block
// whose lines are indented by two spaces.
var legacyPattern = regexp.MustCompile(
	`^[^:]*:[ \t]([0-9]+)\n` +
		`[^:]*:[ \t](.*)\n` +
		`[^:]*:[ \t](.*)\n` +
		`[^:]*:((?:\n.*)*)\n\n` +
		`[^\n :]*:((?:\n  .*)(?:\n[ \t]+.*)*)`)

// legacyStrategy is the positional fallback used when no label set matches.
type legacyStrategy struct{}

func (legacyStrategy) name() string { return "positional" }

func (legacyStrategy) extract(segment string) (rawChangeSet, bool) {
	m := legacyPattern.FindStringSubmatch(segment)
	if m == nil {
		return rawChangeSet{}, false
	}
	return rawChangeSet{
		version: m[1],
		user:    m[2],
		date:    m[3],
		comment: m[4],
		items:   m[5],
	}, true
}
