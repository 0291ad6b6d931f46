package history

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// DefaultSeparator starts the line tf prints between changesets in the
// detailed history layout. A separator line begins at column 0 and holds
// nothing but dashes; indented dash rules inside comments are content.
const DefaultSeparator = "------------"

var fieldLine = regexp.MustCompile(`^[\p{L}\p{N}_]+:`)

// looksLikeFieldLine reports whether line looks like the start of a
// "Key: value" block. This is a heuristic: any "word:" line matches,
// including banner text that merely happens to contain a colon.
func looksLikeFieldLine(line string) bool {
	return fieldLine.MatchString(line)
}

// SegmentReader splits a detailed history transcript into one text segment
// per changeset.
type SegmentReader struct {
	scanner   *bufio.Scanner
	separator string
	foundData bool
	done      bool
}

// NewSegmentReader returns a reader that splits r on separator lines.
// An empty separator selects DefaultSeparator.
func NewSegmentReader(r io.Reader, separator string) *SegmentReader {
	if separator == "" {
		separator = DefaultSeparator
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &SegmentReader{scanner: scanner, separator: separator}
}

func (s *SegmentReader) isSeparator(line string) bool {
	line = strings.TrimRight(line, " \t")
	return strings.HasPrefix(line, s.separator) && strings.Trim(line, "-") == ""
}

// Next returns the next changeset segment. ok is false once the input is
// exhausted. Text before the first field line is ignored.
func (s *SegmentReader) Next() (segment string, ok bool) {
	if s.done {
		return "", false
	}

	var buf strings.Builder
	lines := 0
	for s.scanner.Scan() {
		line := strings.TrimRight(s.scanner.Text(), "\r")

		if !s.foundData && looksLikeFieldLine(line) {
			s.foundData = true
		}

		if s.isSeparator(line) {
			if lines > 0 && s.foundData {
				return buf.String(), true
			}
			buf.Reset()
			lines = 0
			continue
		}

		if strings.TrimSpace(line) == "" {
			// Blank lines inside a segment are kept for the positional parser.
			if lines > 0 {
				buf.WriteByte('\n')
			}
			continue
		}

		buf.WriteString(line)
		buf.WriteByte('\n')
		lines++
	}

	s.done = true
	if lines > 0 && s.foundData {
		return buf.String(), true
	}
	return "", false
}

// Err returns the first read error encountered.
func (s *SegmentReader) Err() error {
	return s.scanner.Err()
}
