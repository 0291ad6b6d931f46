package command

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/dateutil"
)

var testServer = ServerConfig{URL: "http://tfs:8080/tfs/DefaultCollection", UserName: `DOM\bob`, Password: "secret"}

func utcDates(t *testing.T) *dateutil.Parser {
	t.Helper()
	p, err := dateutil.NewParser("en-US", "UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

func TestCommands_Arguments(t *testing.T) {
	from := time.Date(2008, 6, 1, 9, 0, 0, 0, time.UTC)
	to := time.Date(2008, 6, 7, 18, 30, 0, 0, time.UTC)
	const server = "-server:http://tfs:8080/tfs/DefaultCollection"
	const login = `-login:DOM\bob,secret`

	tests := []struct {
		name     string
		cmd      Command
		expected []string
	}{
		{
			name: "Brief history",
			cmd:  &BriefHistoryCommand{Server: testServer, ProjectPath: "$/tfsandbox", From: from, To: to},
			expected: []string{"history", "$/tfsandbox", "-noprompt",
				"-version:D2008-06-01T09:00:01Z~D2008-06-07T18:30:00Z",
				"-recursive", "-format:brief", server, login},
		},
		{
			name: "Detailed history",
			cmd:  &DetailedHistoryCommand{Server: testServer, ProjectPath: "$/tfsandbox", From: from, To: to},
			expected: []string{"history", "$/tfsandbox", "-noprompt",
				"-version:D2008-06-01T09:00:01Z~D2008-06-07T18:30:00Z",
				"-recursive", "-format:detailed", server, login},
		},
		{
			name: "Changeset version",
			cmd:  &ChangesetVersionCommand{Server: testServer, Path: "$/tfsandbox", VersionSpec: LabelVersionSpec("release-1")},
			expected: []string{"history", "$/tfsandbox", "-recursive", "-noprompt", "-stopafter:1",
				"-version:Lrelease-1", "-format:brief", server, login},
		},
		{
			name:     "List workspaces",
			cmd:      &ListWorkspacesCommand{Server: testServer},
			expected: []string{"workspaces", "-format:brief", server, login},
		},
		{
			name:     "List workspaces on computer",
			cmd:      &ListWorkspacesCommand{Server: testServer, Computer: "BUILD01"},
			expected: []string{"workspaces", "-format:brief", "-computer:BUILD01", server, login},
		},
		{
			name:     "New workspace",
			cmd:      &NewWorkspaceCommand{Server: testServer, Workspace: "Hudson-job"},
			expected: []string{"workspace", "-new", "Hudson-job", "-noprompt", server, login},
		},
		{
			name:     "Delete workspace",
			cmd:      &DeleteWorkspaceCommand{Server: testServer, Workspace: "Hudson-job"},
			expected: []string{"workspace", "-delete", "Hudson-job", "-noprompt", server, login},
		},
		{
			name:     "Workfold",
			cmd:      &WorkfoldCommand{Server: testServer, ProjectPath: "$/tfsandbox", LocalFolder: "src", Workspace: "Hudson-job"},
			expected: []string{"workfold", "$/tfsandbox", "src", "-workspace:Hudson-job", server, login},
		},
		{
			name:     "Unmap workfold",
			cmd:      &UnmapWorkfoldCommand{Server: testServer, LocalFolder: "src", Workspace: "Hudson-job"},
			expected: []string{"workfold", "-unmap", "src", "-workspace:Hudson-job", server, login},
		},
		{
			name:     "Get latest",
			cmd:      &GetFilesToWorkFolderCommand{Server: testServer, LocalFolder: "src"},
			expected: []string{"get", "src", "-recursive", "-noprompt", login},
		},
		{
			name:     "Get at changeset",
			cmd:      &GetFilesToWorkFolderCommand{Server: testServer, LocalFolder: "src", VersionSpec: ChangesetVersionSpec(12472)},
			expected: []string{"get", "src", "-recursive", "-noprompt", "-version:C12472", login},
		},
		{
			name: "Label with comment",
			cmd:  &LabelCommand{Server: testServer, Label: "build-42", ProjectPath: "$/tfsandbox", Workspace: "Hudson-job", Comment: "Built"},
			expected: []string{"label", "build-42", "$/tfsandbox", "-version:WHudson-job", "-comment:Built",
				"-noprompt", "-recursive", server, login},
		},
		{
			name: "Label without comment",
			cmd:  &LabelCommand{Server: testServer, Label: "build-42", ProjectPath: "$/tfsandbox", Workspace: "Hudson-job"},
			expected: []string{"label", "build-42", "$/tfsandbox", "-version:WHudson-job",
				"-noprompt", "-recursive", server, login},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.cmd.Arguments()
			if got := args.Args(); !slices.Equal(got, tt.expected) {
				t.Errorf("Args() = %q\nexpected %q", got, tt.expected)
			}
			mask := args.Mask()
			if len(mask) != len(tt.expected) {
				t.Fatalf("len(Mask()) = %d, expected %d", len(mask), len(tt.expected))
			}
			for i, arg := range tt.expected {
				if want := strings.HasPrefix(arg, "-login:"); mask[i] != want {
					t.Errorf("Mask()[%d] for %q = %v, expected %v", i, arg, mask[i], want)
				}
			}
		})
	}
}

func TestCommands_NoCredentials(t *testing.T) {
	cmd := &NewWorkspaceCommand{Server: ServerConfig{URL: "http://tfs"}, Workspace: "ws"}
	want := []string{"workspace", "-new", "ws", "-noprompt", "-server:http://tfs"}
	args := cmd.Arguments()
	if !slices.Equal(args.Args(), want) {
		t.Errorf("Args() = %q, expected %q", args.Args(), want)
	}
	if slices.Contains(args.Mask(), true) {
		t.Errorf("Mask() = %v, expected nothing masked", args.Mask())
	}
}

func TestVersionSpecs(t *testing.T) {
	tests := []struct {
		got      string
		expected string
	}{
		{DateVersionSpec(time.Date(2008, 6, 7, 10, 24, 20, 0, time.UTC)), "D2008-06-07T10:24:20Z"},
		{DateVersionSpec(time.Date(2008, 6, 7, 12, 24, 20, 0, time.FixedZone("CEST", 2*3600))), "D2008-06-07T10:24:20Z"},
		{ChangesetVersionSpec(12472), "C12472"},
		{LabelVersionSpec("v1"), "Lv1"},
		{WorkspaceVersionSpec("ws"), "Wws"},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("version spec = %q, expected %q", tt.got, tt.expected)
		}
	}
}
