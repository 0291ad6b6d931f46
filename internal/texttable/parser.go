// Package texttable decodes the fixed-width tables printed by the tf client,
// such as `tf history -format:brief` and `tf workspaces`.
//
// A table is recognised by its header separator line, a line made only of
// dash runs separated by spaces. Every dash run defines one column.
package texttable

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

var (
	separatorLine = regexp.MustCompile(`^-+( +-+)*\s*$`)
	dashRun       = regexp.MustCompile(`-+`)
)

type column struct {
	start int
	end   int
}

// Parser reads rows of a fixed-width text table.
type Parser struct {
	scanner        *bufio.Scanner
	columns        []column
	line           []rune
	mandatoryStart int
	err            error
}

// New creates a parser over r. optionalColumns counts the trailing columns
// that may be missing from a row (for example an empty comment).
func New(r io.Reader, optionalColumns int) *Parser {
	p := &Parser{scanner: bufio.NewScanner(r)}
	p.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	p.readHeader(optionalColumns)
	return p
}

// readHeader scans forward to the separator line and records the column ranges.
func (p *Parser) readHeader(optionalColumns int) {
	for p.scanner.Scan() {
		line := strings.TrimRight(p.scanner.Text(), "\r")
		if !separatorLine.MatchString(line) {
			continue
		}
		for _, loc := range dashRun.FindAllStringIndex(line, -1) {
			p.columns = append(p.columns, column{start: loc[0], end: loc[1]})
		}
		last := len(p.columns) - 1 - optionalColumns
		if last < 0 {
			last = 0
		}
		p.mandatoryStart = p.columns[last].start
		return
	}
	p.err = p.scanner.Err()
}

// ColumnCount returns the number of columns found in the header.
func (p *Parser) ColumnCount() int {
	return len(p.columns)
}

// Next advances to the next row that is long enough to hold every
// mandatory column. It returns false at the end of input or when no
// header was found.
func (p *Parser) Next() bool {
	if len(p.columns) == 0 || p.err != nil {
		return false
	}
	for p.scanner.Scan() {
		line := []rune(strings.TrimRight(p.scanner.Text(), "\r"))
		if len(line) < p.mandatoryStart || strings.TrimSpace(string(line)) == "" {
			continue
		}
		p.line = line
		return true
	}
	p.err = p.scanner.Err()
	p.line = nil
	return false
}

// Column returns the trimmed value of column i in the current row.
// Offsets count characters, not bytes.
// ok is false when the row does not reach the column at all, which is how
// optional trailing columns report "no value".
func (p *Parser) Column(i int) (value string, ok bool) {
	if i < 0 || i >= len(p.columns) {
		return "", false
	}
	col := p.columns[i]
	if len(p.line) < col.start {
		return "", false
	}
	if len(p.line) < col.end {
		return strings.TrimSpace(string(p.line[col.start:])), true
	}
	return strings.TrimSpace(string(p.line[col.start:col.end])), true
}

// Line returns the raw text of the current row.
func (p *Parser) Line() string {
	return string(p.line)
}

// Err returns the first read error encountered.
func (p *Parser) Err() error {
	return p.err
}
