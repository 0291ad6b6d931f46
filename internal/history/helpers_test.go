package history

import (
	"strings"
	"testing"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/dateutil"
	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
)

const longSeparator = "-----------------------------------------------------------------------------------------------------------------------"

// utcParser returns a US English date parser reading dates as UTC.
func utcParser(t testing.TB, locale string) *dateutil.Parser {
	t.Helper()
	p, err := dateutil.NewParser(locale, "UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

// renderDetailed writes change sets the way `tf history -format:detailed`
// prints them, in the order given.
func renderDetailed(changeSets []tfs.ChangeSet) string {
	var b strings.Builder
	for _, cs := range changeSets {
		b.WriteString(longSeparator + "\n")
		b.WriteString("Changeset: " + cs.Version + "\n")
		b.WriteString("User: " + cs.QualifiedUser() + "\n")
		if cs.CheckedInBy != "" {
			b.WriteString("Checked in by: " + cs.CheckedInBy + "\n")
		}
		b.WriteString("Date: " + cs.Date.UTC().Format("2006-01-02 15:04:05") + "\n")
		b.WriteString("\n")
		b.WriteString("Comment:\n")
		for _, line := range strings.Split(cs.Comment, "\n") {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
		b.WriteString("Items:\n")
		for _, item := range cs.Items {
			b.WriteString("  " + item.Action + " " + item.Path + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func mustDate(t testing.TB, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}
