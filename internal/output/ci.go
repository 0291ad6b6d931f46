package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// CIHistoryWriter writes history reports as NDJSON (one JSON object per line) for CI pipelines.
type CIHistoryWriter struct{}

// CISummary is the first line of CI output, containing aggregate statistics.
type CISummary struct {
	Type            string `json:"type"`
	TotalChangeSets int    `json:"totalChangeSets"`
	TotalItems      int    `json:"totalItems"`
	FixCount        int    `json:"fixCount"`
	FirstVersion    string `json:"firstVersion,omitempty"`
	LastVersion     string `json:"lastVersion,omitempty"`
}

// CIChangeSetEntry represents a single changeset in CI output.
type CIChangeSetEntry struct {
	Type string `json:"type"`
	JSONChangeSet
}

// Write outputs the history report as NDJSON.
func (w *CIHistoryWriter) Write(report *HistoryReport, options OutputOptions) error {
	changeSets := limitNewest(report.ChangeSets, options.Top)

	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	summary := CISummary{
		Type:            "summary",
		TotalChangeSets: len(changeSets),
	}
	for _, cs := range changeSets {
		summary.TotalItems += len(cs.Items)
		if report.Fixes.IsFix(cs.Version) {
			summary.FixCount++
		}
	}
	if len(changeSets) > 0 {
		summary.FirstVersion = changeSets[0].Version
		summary.LastVersion = changeSets[len(changeSets)-1].Version
	}

	if err := writeNDJSONLine(out, summary); err != nil {
		return err
	}

	for _, cs := range changeSets {
		entry := CIChangeSetEntry{
			Type:          "changeset",
			JSONChangeSet: toJSONChangeSet(cs, report.Fixes.IsFix(cs.Version)),
		}
		if err := writeNDJSONLine(out, entry); err != nil {
			return err
		}
	}

	return nil
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON line: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
