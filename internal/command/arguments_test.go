package command

import (
	"slices"
	"strings"
	"testing"

	"github.com/kballard/go-shellquote"
)

func TestArguments_AddAndMask(t *testing.T) {
	args := NewArguments().Add("history", "$/Project").AddMasked("-login:bob,secret").Add("-noprompt")

	wantArgs := []string{"history", "$/Project", "-login:bob,secret", "-noprompt"}
	wantMask := []bool{false, false, true, false}
	if !slices.Equal(args.Args(), wantArgs) {
		t.Errorf("Args() = %q, expected %q", args.Args(), wantArgs)
	}
	if !slices.Equal(args.Mask(), wantMask) {
		t.Errorf("Mask() = %v, expected %v", args.Mask(), wantMask)
	}
	if args.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", args.Len())
	}
}

func TestArguments_CopiesAreIndependent(t *testing.T) {
	args := NewArguments().Add("a").AddMasked("b")

	got := args.Args()
	got[0] = "changed"
	mask := args.Mask()
	mask[1] = false

	if args.Args()[0] != "a" {
		t.Errorf("Args() shares storage with the list")
	}
	if !args.Mask()[1] {
		t.Errorf("Mask() shares storage with the list")
	}
}

func TestArguments_Redacted(t *testing.T) {
	args := NewArguments().Add("workspaces").AddMasked("-login:bob,secret")
	want := []string{"workspaces", MaskedToken}
	if got := args.Redacted(); !slices.Equal(got, want) {
		t.Errorf("Redacted() = %q, expected %q", got, want)
	}
}

func TestArguments_String(t *testing.T) {
	args := NewArguments().
		Add("history", "$/Project/My Folder", "-noprompt").
		AddMasked("-login:bob,p@ss word")

	s := args.String()
	if strings.Contains(s, "p@ss") {
		t.Fatalf("String() leaks the password: %s", s)
	}

	words, err := shellquote.Split(s)
	if err != nil {
		t.Fatalf("shellquote.Split(%q): %v", s, err)
	}
	want := []string{"history", "$/Project/My Folder", "-noprompt", MaskedToken}
	if !slices.Equal(words, want) {
		t.Errorf("split String() = %q, expected %q", words, want)
	}
}

func TestArguments_StringPlain(t *testing.T) {
	args := NewArguments().Add("workspace", "-new", "build01", "-noprompt")
	if got := args.String(); got != "workspace -new build01 -noprompt" {
		t.Errorf("String() = %q", got)
	}
}
