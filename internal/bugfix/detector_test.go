package bugfix

import (
	"testing"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
)

func TestNewDetector_InvalidPattern(t *testing.T) {
	if _, err := NewDetector([]string{`[invalid`}); err == nil {
		t.Fatal("expected error for invalid pattern, got nil")
	}
}

func TestNewDetector_SkipsBlankPatterns(t *testing.T) {
	d, err := NewDetector([]string{"fix", "", "  ", "bug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.patterns) != 2 {
		t.Errorf("expected 2 compiled patterns, got %d", len(d.patterns))
	}
}

func TestIsFix(t *testing.T) {
	d, err := NewDetector(DefaultPatterns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		comment string
		want    bool
	}{
		{"matches fix", "fix: resolve null pointer", true},
		{"matches fixed", "Fixed login issue", true},
		{"matches bug number", "Bug 4711: wrong total", true},
		{"matches bug hash", "bug #12 in build script", true},
		{"matches hotfix", "Hotfix for production crash", true},
		{"no match", "Created team project folder", false},
		{"partial word no match", "prefix fixation debugging", false},
		{"empty comment", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.IsFix(tt.comment); got != tt.want {
				t.Errorf("IsFix(%q) = %v, want %v", tt.comment, got, tt.want)
			}
		})
	}
}

func makeChangeSets() []tfs.ChangeSet {
	now := time.Date(2008, 6, 7, 10, 0, 0, 0, time.UTC)
	newCS := func(version, comment string, items ...tfs.Item) tfs.ChangeSet {
		cs := tfs.NewChangeSet(version, now, `DOM\alice`, comment)
		for _, item := range items {
			cs.AddItem(item)
		}
		return *cs
	}
	return []tfs.ChangeSet{
		newCS("100", "fix: resolve null pointer in auth",
			tfs.Item{Path: "$/p/auth/login.cs", Action: "edit"},
			tfs.Item{Path: "$/p/auth/session.cs", Action: "edit"}),
		newCS("101", "Add user profile page",
			tfs.Item{Path: "$/p/user/profile.cs", Action: "add"}),
		newCS("102", "Bug 17: incorrect validation logic",
			tfs.Item{Path: "$/p/auth/login.cs", Action: "edit"},
			tfs.Item{Path: "$/p/old/file.cs", Action: "delete"}),
	}
}

func TestDetect(t *testing.T) {
	d, err := NewDetector(DefaultPatterns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := d.Detect(makeChangeSets())

	if result.Total != 2 {
		t.Errorf("Total = %d, want 2", result.Total)
	}
	if !result.IsFix("100") || result.IsFix("101") || !result.IsFix("102") {
		t.Errorf("Versions = %v", result.Versions)
	}
	if result.PathCounts["$/p/auth/login.cs"] != 2 {
		t.Errorf("PathCounts[login.cs] = %d, want 2", result.PathCounts["$/p/auth/login.cs"])
	}
	if result.PathCounts["$/p/auth/session.cs"] != 1 {
		t.Errorf("PathCounts[session.cs] = %d, want 1", result.PathCounts["$/p/auth/session.cs"])
	}
	if result.PathCounts["$/p/old/file.cs"] != 0 {
		t.Errorf("PathCounts[file.cs] = %d, want 0 (deleted items are skipped)", result.PathCounts["$/p/old/file.cs"])
	}
}

func TestDetect_NoPatterns(t *testing.T) {
	d, _ := NewDetector(nil)
	result := d.Detect(makeChangeSets())

	if result.Total != 0 || len(result.Versions) != 0 || len(result.PathCounts) != 0 {
		t.Errorf("result = %+v, expected empty", result)
	}
}

func TestResult_IsFixNil(t *testing.T) {
	var r *Result
	if r.IsFix("1") {
		t.Error("nil result reported a fix")
	}
}
