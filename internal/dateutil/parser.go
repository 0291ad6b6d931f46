// Package dateutil parses the dates printed by the tf client, whose format
// depends on the locale and time zone of the machine running it.
package dateutil

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrUnparseableDate is matched by every *DateError.
var ErrUnparseableDate = errors.New("unparseable date")

// DateError reports a date that no configured format accepts.
type DateError struct {
	Value  string
	Locale string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("unparseable date %q (locale %s)", e.Value, e.Locale)
}

// Is reports whether target is ErrUnparseableDate.
func (e *DateError) Is(target error) bool {
	return target == ErrUnparseableDate
}

// TFSDateTimeLayout is the layout used in -version:D date version specs.
const TFSDateTimeLayout = "2006-01-02T15:04:05Z"

// Parser parses dates for one locale and time zone.
// A Parser is immutable and safe for concurrent use.
type Parser struct {
	profile  localeProfile
	location *time.Location
}

// NewParser creates a parser for locale (a BCP 47 tag such as "en-US" or
// "de_DE") and timezone (an IANA name; empty or "Local" means the local zone).
func NewParser(locale, timezone string) (*Parser, error) {
	loc := time.Local
	if tz := strings.TrimSpace(timezone); tz != "" && !strings.EqualFold(tz, "Local") {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("load time zone %q: %w", tz, err)
		}
	}
	return &Parser{profile: lookupProfile(locale), location: loc}, nil
}

// Default returns a US English parser in the local time zone.
func Default() *Parser {
	return &Parser{profile: englishUS, location: time.Local}
}

// Locale returns the matched locale tag.
func (p *Parser) Locale() string {
	return p.profile.tag.String()
}

// Location returns the time zone dates without an explicit zone are read in.
func (p *Parser) Location() *time.Location {
	return p.location
}

var (
	dottedPM = regexp.MustCompile(`[pP]\.[mM]\.`)
	dottedAM = regexp.MustCompile(`[aA]\.[mM]\.`)
	meridiem = regexp.MustCompile(`\b([aApP][mM])\b`)
)

// Parse parses value. The lenient legacy parser is tried first; when it
// does not apply or fails, the locale's style battery is tried in order.
func (p *Parser) Parse(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	s = dottedPM.ReplaceAllString(s, "PM")
	s = dottedAM.ReplaceAllString(s, "AM")
	s = meridiem.ReplaceAllStringFunc(s, strings.ToUpper)

	if s != "" && acceptsLegacy(s) {
		if t, err := dateparse.ParseIn(s, p.location); err == nil {
			return t, nil
		}
	}

	if p.profile.names != nil {
		s = p.profile.names.Replace(s)
	}
	for _, layout := range p.profile.layouts() {
		if t, err := time.ParseInLocation(layout, s, p.location); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &DateError{Value: value, Locale: p.Locale()}
}

// FormatVersionDate renders t as used in a date version spec ("D<date>").
func FormatVersionDate(t time.Time) string {
	return t.UTC().Format(TFSDateTimeLayout)
}
