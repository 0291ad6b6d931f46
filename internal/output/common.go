package output

import (
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
)

const (
	reportDateLayout     = "2006-01-02"
	reportDateTimeLayout = "2006-01-02T15:04:05"
)

func limitTop[T any](items []T, top int) []T {
	if top <= 0 || top >= len(items) {
		return items
	}
	return items[:top]
}

// limitNewest keeps the top newest change sets of an oldest-first list.
func limitNewest(changeSets []tfs.ChangeSet, top int) []tfs.ChangeSet {
	if top <= 0 || top >= len(changeSets) {
		return changeSets
	}
	return changeSets[len(changeSets)-top:]
}

func dateRangeLabelAndValue(since *time.Time, until time.Time) (string, string) {
	if since != nil {
		return "Period", since.Format(reportDateLayout) + " to " + until.Format(reportDateLayout)
	}
	return "Until", until.Format(reportDateLayout)
}

func formatSinceDate(since *time.Time) *string {
	if since == nil {
		return nil
	}
	formatted := since.Format(reportDateLayout)
	return &formatted
}

// openOutputWriter returns options.Out when set, else the file at
// options.OutputPath, else stdout. The returned file must be closed by the
// caller when non-nil.
func openOutputWriter(options OutputOptions) (io.Writer, *os.File, error) {
	if options.Out != nil {
		return options.Out, nil, nil
	}
	if options.OutputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(options.OutputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

// firstLine returns the first line of a multi-line comment.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncateMessage(msg string, maxLen int) string {
	if utf8.RuneCountInString(msg) <= maxLen {
		return msg
	}
	runes := []rune(msg)
	return string(runes[:maxLen-3]) + "..."
}
