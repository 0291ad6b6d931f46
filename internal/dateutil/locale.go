package dateutil

import (
	"strings"

	"golang.org/x/text/language"
)

// localeProfile holds the date and time styles one locale prints, from the
// most verbose (full) to the most compact (short). Layouts use Go reference
// time notation with non-padded fields so padded input parses as well.
type localeProfile struct {
	tag        language.Tag
	dateStyles []string
	timeStyles []string
	// names translates localized month and weekday names to English so the
	// layouts above can parse them. Nil for English locales.
	names *strings.Replacer
}

var (
	englishUS = localeProfile{
		tag: language.AmericanEnglish,
		dateStyles: []string{
			"Monday, January 2, 2006",
			"January 2, 2006",
			"Jan 2, 2006",
			"1/2/06",
			"1/2/2006",
		},
		timeStyles: []string{
			"3:04:05 PM MST",
			"3:04:05 PM",
			"3:04 PM",
		},
	}

	englishGB = localeProfile{
		tag: language.BritishEnglish,
		dateStyles: []string{
			"Monday, 2 January 2006",
			"2 January 2006",
			"2-Jan-2006",
			"2/1/06",
			"2/1/2006",
		},
		timeStyles: []string{
			"15:04:05 o'clock MST",
			"15:04:05 MST",
			"15:04:05",
			"15:04",
		},
	}

	german = localeProfile{
		tag: language.German,
		dateStyles: []string{
			"Monday, 2. January 2006",
			"2. January 2006",
			"2.1.2006",
			"2.1.06",
		},
		timeStyles: []string{
			"15:04 Uhr MST",
			"15:04:05 MST",
			"15:04:05",
			"15:04",
		},
		names: strings.NewReplacer(
			"Januar", "January",
			"Februar", "February",
			"März", "March",
			"Mai", "May",
			"Juni", "June",
			"Juli", "July",
			"Oktober", "October",
			"Dezember", "December",
			"Montag", "Monday",
			"Dienstag", "Tuesday",
			"Mittwoch", "Wednesday",
			"Donnerstag", "Thursday",
			"Freitag", "Friday",
			"Samstag", "Saturday",
			"Sonntag", "Sunday",
		),
	}

	profiles = []localeProfile{englishUS, englishGB, german}

	matcher = language.NewMatcher([]language.Tag{englishUS.tag, englishGB.tag, german.tag})
)

// invariantLayouts are tried after every locale style. The tf client prints
// these when the server or the user forces an ISO date format.
var invariantLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// lookupProfile returns the supported profile closest to locale.
// Unknown or empty locales fall back to US English.
func lookupProfile(locale string) localeProfile {
	if strings.TrimSpace(locale) == "" {
		return englishUS
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return englishUS
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return englishUS
	}
	return profiles[idx]
}

// layouts returns the full (dateStyle x timeStyle) battery followed by the
// date-only styles and the invariant layouts.
func (p localeProfile) layouts() []string {
	layouts := make([]string, 0, len(p.dateStyles)*(len(p.timeStyles)+1)+len(invariantLayouts))
	for _, d := range p.dateStyles {
		for _, t := range p.timeStyles {
			layouts = append(layouts, d+" "+t)
		}
	}
	layouts = append(layouts, p.dateStyles...)
	return append(layouts, invariantLayouts...)
}
