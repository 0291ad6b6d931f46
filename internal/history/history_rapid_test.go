package history

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/tfs"
	"pgregory.net/rapid"
)

// --- Generators ---

// genChangeSets returns change sets ordered newest first, the way tf
// prints them, with strictly decreasing versions and dates.
func genChangeSets() *rapid.Generator[[]tfs.ChangeSet] {
	return rapid.Custom(func(t *rapid.T) []tfs.ChangeSet {
		count := rapid.IntRange(0, 8).Draw(t, "count")
		version := rapid.IntRange(count+1, 100000).Draw(t, "topVersion")
		date := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC).
			Add(time.Duration(rapid.IntRange(0, 1_000_000).Draw(t, "topDate")) * time.Minute)

		list := make([]tfs.ChangeSet, count)
		for i := 0; i < count; i++ {
			user := rapid.StringMatching(`[a-z_]{1,8}`).Draw(t, fmt.Sprintf("user%d", i))
			if rapid.Bool().Draw(t, fmt.Sprintf("domain%d", i)) {
				user = rapid.StringMatching(`[A-Z]{1,5}`).Draw(t, fmt.Sprintf("dom%d", i)) + `\` + user
			}
			lines := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z0-9][A-Za-z0-9 ,]{0,20}[A-Za-z0-9]`), 1, 3).
				Draw(t, fmt.Sprintf("comment%d", i))

			cs := tfs.NewChangeSet(fmt.Sprint(version), date, user, strings.Join(lines, "\n"))
			itemCount := rapid.IntRange(1, 4).Draw(t, fmt.Sprintf("items%d", i))
			for j := 0; j < itemCount; j++ {
				cs.AddItem(tfs.Item{
					Action: rapid.SampledFrom([]string{"add", "edit", "delete", "delete, rename"}).Draw(t, fmt.Sprintf("action%d_%d", i, j)),
					Path:   "$/project/" + rapid.StringMatching(`[a-z]{1,8}/[a-z]{1,8}\.txt`).Draw(t, fmt.Sprintf("path%d_%d", i, j)),
				})
			}
			list[i] = *cs

			version -= rapid.IntRange(1, 20).Draw(t, fmt.Sprintf("vstep%d", i))
			if version < 1 {
				version = 1
			}
			date = date.Add(-time.Duration(rapid.IntRange(1, 10_000).Draw(t, fmt.Sprintf("dstep%d", i))) * time.Second)
		}
		return list
	})
}

// --- Property Tests ---

func TestRapidDetailed_RoundTrip(t *testing.T) {
	dates := utcParser(t, "en-US")
	rapid.Check(t, func(t *rapid.T) {
		input := genChangeSets().Draw(t, "changeSets")

		list, err := ParseDetailed(strings.NewReader(renderDetailed(input)), DetailedOptions{Dates: dates})
		if err != nil {
			t.Fatalf("ParseDetailed: %v", err)
		}
		if len(list) != len(input) {
			t.Fatalf("parsed %d change sets, rendered %d", len(list), len(input))
		}

		for i, got := range list {
			want := input[len(input)-1-i]
			if got.Version != want.Version || got.User != want.User || got.Domain != want.Domain {
				t.Fatalf("list[%d] = %s %s\\%s, expected %s %s\\%s",
					i, got.Version, got.Domain, got.User, want.Version, want.Domain, want.User)
			}
			if !got.Date.Equal(want.Date) {
				t.Fatalf("list[%d].Date = %v, expected %v", i, got.Date, want.Date)
			}
			if got.Comment != want.Comment {
				t.Fatalf("list[%d].Comment = %q, expected %q", i, got.Comment, want.Comment)
			}
			if len(got.Items) != len(want.Items) {
				t.Fatalf("list[%d] has %d items, expected %d", i, len(got.Items), len(want.Items))
			}
			for j := range want.Items {
				if got.Items[j] != want.Items[j] {
					t.Fatalf("list[%d].Items[%d] = %#v, expected %#v", i, j, got.Items[j], want.Items[j])
				}
			}
		}
	})
}

func TestRapidDetailed_OldestFirst(t *testing.T) {
	dates := utcParser(t, "en-US")
	rapid.Check(t, func(t *rapid.T) {
		input := genChangeSets().Draw(t, "changeSets")

		list, err := ParseDetailed(strings.NewReader(renderDetailed(input)), DetailedOptions{Dates: dates})
		if err != nil {
			t.Fatalf("ParseDetailed: %v", err)
		}
		for i := 1; i < len(list); i++ {
			if list[i].Date.Before(list[i-1].Date) {
				t.Fatalf("list[%d] (%v) is older than list[%d] (%v)", i, list[i].Date, i-1, list[i-1].Date)
			}
		}
	})
}

func TestRapidDetailed_FromBound(t *testing.T) {
	dates := utcParser(t, "en-US")
	rapid.Check(t, func(t *rapid.T) {
		input := genChangeSets().Draw(t, "changeSets")
		if len(input) == 0 {
			return
		}
		pivot := input[rapid.IntRange(0, len(input)-1).Draw(t, "pivot")].Date

		list, err := ParseDetailed(strings.NewReader(renderDetailed(input)), DetailedOptions{From: pivot, Dates: dates})
		if err != nil {
			t.Fatalf("ParseDetailed: %v", err)
		}
		for _, cs := range list {
			if !cs.Date.After(pivot) {
				t.Fatalf("change set %s dated %v is not after %v", cs.Version, cs.Date, pivot)
			}
		}

		expected := 0
		for _, cs := range input {
			if cs.Date.After(pivot) {
				expected++
			}
		}
		if len(list) != expected {
			t.Fatalf("kept %d change sets, expected %d", len(list), expected)
		}
	})
}
