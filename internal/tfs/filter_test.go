package tfs

import "testing"

func TestPathFilter_Matches(t *testing.T) {
	tests := []struct {
		name     string
		include  []string
		exclude  []string
		path     string
		expected bool
	}{
		{name: "No patterns", path: "$/Project/src/a.cs", expected: true},
		{name: "Include match", include: []string{"Project/src/**"}, path: "$/Project/src/a.cs", expected: true},
		{name: "Include with prefix", include: []string{"$/Project/src/**"}, path: "$/Project/src/a.cs", expected: true},
		{name: "Include miss", include: []string{"Project/src/**"}, path: "$/Project/docs/a.md", expected: false},
		{name: "Exclude wins", include: []string{"**"}, exclude: []string{"**/*.md"}, path: "$/Project/docs/a.md", expected: false},
		{name: "Exclude miss", exclude: []string{"**/*.md"}, path: "$/Project/src/a.cs", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewPathFilter(tt.include, tt.exclude)
			if err != nil {
				t.Fatalf("NewPathFilter: %v", err)
			}
			if got := f.Matches(tt.path); got != tt.expected {
				t.Errorf("Matches(%q) = %v, expected %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNewPathFilter_InvalidPattern(t *testing.T) {
	if _, err := NewPathFilter([]string{"src/[a"}, nil); err == nil {
		t.Fatal("expected error for invalid pattern, got nil")
	}
}

func TestPathFilter_FilterChangeSets(t *testing.T) {
	changeSets := []ChangeSet{
		{Version: "1", Items: []Item{{Path: "$/P/src/a.cs", Action: "edit"}, {Path: "$/P/docs/r.md", Action: "edit"}}},
		{Version: "2", Items: []Item{{Path: "$/P/docs/x.md", Action: "add"}}},
	}

	f, err := NewPathFilter(nil, []string{"**/*.md"})
	if err != nil {
		t.Fatalf("NewPathFilter: %v", err)
	}

	got := f.FilterChangeSets(changeSets)
	if len(got) != 1 {
		t.Fatalf("len = %d, expected 1", len(got))
	}
	if got[0].Version != "1" || len(got[0].Items) != 1 || got[0].Items[0].Path != "$/P/src/a.cs" {
		t.Errorf("got %#v", got[0])
	}
	if len(changeSets[0].Items) != 2 {
		t.Errorf("input change set was modified")
	}
}

func TestPathFilter_EmptyPassesThrough(t *testing.T) {
	var f *PathFilter
	in := []ChangeSet{{Version: "1"}}
	if got := f.FilterChangeSets(in); len(got) != 1 {
		t.Errorf("nil filter dropped change sets")
	}
}
