package dateutil

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`\p{L}+`)

// legacyWords are the only words the lenient parser understands: English
// month and weekday names, meridiem markers and a few US zone names.
var legacyWords = func() map[string]bool {
	words := []string{
		"january", "february", "march", "april", "may", "june", "july",
		"august", "september", "october", "november", "december",
		"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "sept", "oct", "nov", "dec",
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
		"mon", "tue", "wed", "thu", "fri", "sat", "sun",
		"am", "pm",
		"gmt", "ut", "utc", "est", "edt", "cst", "cdt", "mst", "mdt", "pst", "pdt",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}()

// acceptsLegacy reports whether s only uses tokens the lenient parser
// knows. Dotted dates and localized words are left to the locale battery,
// otherwise "01.08.2008" would be read month first.
func acceptsLegacy(s string) bool {
	if strings.ContainsRune(s, '.') {
		return false
	}
	for _, w := range wordPattern.FindAllString(s, -1) {
		if !legacyWords[strings.ToLower(w)] {
			return false
		}
	}
	return true
}
