package command

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jenkinsci/tfs-plugin-sub001/internal/dateutil"
)

// ServerConfig identifies the collection a command runs against.
type ServerConfig struct {
	URL      string
	UserName string
	Password string
}

// Command is one tf client invocation.
type Command interface {
	// Arguments returns the argument vector, without the executable name.
	Arguments() *Arguments
}

// ParseableCommand is a command whose console output decodes into T.
type ParseableCommand[T any] interface {
	Command
	Parse(r io.Reader) (T, error)
}

// addServer appends -server:<url> when a URL is configured.
func (s ServerConfig) addServer(args *Arguments) {
	if s.URL != "" {
		args.Add("-server:" + s.URL)
	}
}

// addLogin appends the masked -login:<user>,<password> token when a user
// name is configured.
func (s ServerConfig) addLogin(args *Arguments) {
	if s.UserName != "" {
		args.AddMasked(fmt.Sprintf("-login:%s,%s", s.UserName, s.Password))
	}
}

// DateVersionSpec returns the version spec selecting the latest changeset
// at t.
func DateVersionSpec(t time.Time) string {
	return "D" + dateutil.FormatVersionDate(t)
}

// ChangesetVersionSpec returns the version spec of changeset n.
func ChangesetVersionSpec(n int) string {
	return "C" + strconv.Itoa(n)
}

// LabelVersionSpec returns the version spec of a label.
func LabelVersionSpec(label string) string {
	return "L" + label
}

// WorkspaceVersionSpec returns the version spec of what workspace has.
func WorkspaceVersionSpec(workspace string) string {
	return "W" + workspace
}

// dateRange returns the version range (from, to]. The range syntax is
// inclusive, so the lower bound is moved one second forward.
func dateRange(from, to time.Time) string {
	return DateVersionSpec(from.Add(time.Second)) + "~" + DateVersionSpec(to)
}
