// Package keyvalue decodes blocks of "Key: value" lines where a value may
// continue over indented lines, as printed by `tf history -format:detailed`.
package keyvalue

import (
	"bufio"
	"regexp"
	"strings"
)

// Keys are made of word characters and spaces; letters may be non-ASCII so
// localized labels such as "Änderungssatz" are recognised.
var keyLine = regexp.MustCompile(`^([\p{L}\p{N}_][\p{L}\p{N}_ ]*):(.*)$`)

// Parse returns the key/value pairs found in text. Continuation lines
// (starting with a space or tab) are trimmed and joined to the current
// value with "\n". Committed values are trimmed as a whole. A text without
// any key line yields an empty map.
func Parse(text string) map[string]string {
	values := make(map[string]string)

	var (
		key     string
		value   strings.Builder
		pending bool
	)
	commit := func() {
		if pending {
			values[strings.TrimSpace(key)] = strings.TrimSpace(value.String())
		}
		pending = false
		key = ""
		value.Reset()
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if m := keyLine.FindStringSubmatch(line); m != nil {
			commit()
			key = m[1]
			value.WriteString(m[2])
			pending = true
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if line[0] == ' ' || line[0] == '\t' {
			if pending {
				value.WriteByte('\n')
				value.WriteString(strings.TrimSpace(line))
			}
			continue
		}

		// Unrecognised top-level line, e.g. "Check-in Notes:".
		commit()
	}
	commit()

	return values
}
