package cmd

import (
	"slices"
	"testing"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/output"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
)

func TestParseDateFlag(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		got, err := parseDateFlag("", time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("ValidDate", func(t *testing.T) {
		got, err := parseDateFlag("2025-12-31", time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("parseDateFlag(valid) = %v, want %v", got, want)
		}
	})

	t.Run("Location", func(t *testing.T) {
		loc := time.FixedZone("CET", 3600)
		got, err := parseDateFlag("2008-06-01", loc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2008, 5, 31, 23, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("parseDateFlag in CET = %v, want %v", got, want)
		}
	})

	t.Run("InvalidDate", func(t *testing.T) {
		if _, err := parseDateFlag("31-12-2025", time.UTC); err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}

func TestGetOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  output.OutputFormat
	}{
		{input: "json", want: output.FormatJSON},
		{input: "JSON", want: output.FormatJSON},
		{input: "csv", want: output.FormatCSV},
		{input: "markdown", want: output.FormatMarkdown},
		{input: "md", want: output.FormatMarkdown},
		{input: "ci", want: output.FormatCI},
		{input: "ndjson", want: output.FormatCI},
		{input: "", want: output.FormatConsole},
		{input: "unknown", want: output.FormatConsole},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := getOutputFormat(tt.input); got != tt.want {
				t.Fatalf("getOutputFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCommandKinds(t *testing.T) {
	kinds := commandKinds()
	if !slices.IsSorted(kinds) {
		t.Errorf("commandKinds() = %v, expected sorted", kinds)
	}
	for _, want := range []string{
		"brief-history", "detailed-history", "changeset-version", "workspaces",
		"new-workspace", "delete-workspace", "workfold", "unmap", "get", "label",
	} {
		if !slices.Contains(kinds, want) {
			t.Errorf("commandKinds() is missing %q", want)
		}
	}
}

func TestKeepUntil(t *testing.T) {
	until := time.Date(2008, 6, 1, 23, 59, 59, 0, time.UTC)
	changeSets := []tfs.ChangeSet{
		{Version: "1", Date: time.Date(2008, 5, 31, 0, 0, 0, 0, time.UTC)},
		{Version: "2", Date: until},
		{Version: "3", Date: until.Add(time.Second)},
	}

	got := keepUntil(changeSets, until)
	if len(got) != 2 || got[0].Version != "1" || got[1].Version != "2" {
		t.Fatalf("keepUntil = %v, expected versions 1 and 2", got)
	}
	if len(changeSets) != 3 || changeSets[2].Version != "3" {
		t.Fatalf("keepUntil modified its input: %v", changeSets)
	}
}
