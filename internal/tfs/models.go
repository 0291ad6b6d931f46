package tfs

import (
	"strings"
	"time"
)

// ServerPathPrefix is the prefix every repository-rooted TFVC path carries.
const ServerPathPrefix = "$/"

// ChangeSet represents one TFVC changeset as reported by `tf history`.
type ChangeSet struct {
	Version     string // kept as text, e.g. "12472"
	User        string
	Domain      string // empty when the user had no DOMAIN\ prefix
	Date        time.Time
	Comment     string
	CheckedInBy string
	Items       []Item
}

// NewChangeSet creates a change set, splitting user on the first backslash
// into domain and user name.
func NewChangeSet(version string, date time.Time, user, comment string) *ChangeSet {
	domain, name := SplitUser(user)
	return &ChangeSet{
		Version: version,
		User:    name,
		Domain:  domain,
		Date:    date,
		Comment: comment,
	}
}

// SplitUser splits "DOMAIN\user" into ("DOMAIN", "user").
// A user without a backslash yields an empty domain.
func SplitUser(raw string) (domain, user string) {
	if idx := strings.IndexByte(raw, '\\'); idx != -1 {
		return raw[:idx], raw[idx+1:]
	}
	return "", raw
}

// AddItem appends an affected item.
func (c *ChangeSet) AddItem(item Item) {
	c.Items = append(c.Items, item)
}

// SetCheckedInBy records the identity that performed the check-in when it
// differs from the owner.
func (c *ChangeSet) SetCheckedInBy(who string) {
	c.CheckedInBy = who
}

// QualifiedUser returns the user in DOMAIN\user form.
func (c *ChangeSet) QualifiedUser() string {
	if c.Domain == "" {
		return c.User
	}
	return c.Domain + `\` + c.User
}

// AffectedPaths returns the server paths of all items in order.
func (c *ChangeSet) AffectedPaths() []string {
	paths := make([]string, len(c.Items))
	for i, item := range c.Items {
		paths[i] = item.Path
	}
	return paths
}

// Item is one path touched by a changeset.
type Item struct {
	Path   string
	Action string // free text from the tool: "add", "edit", "delete, rename", ...
}

// Kind maps the free-text action to a display change kind.
func (i Item) Kind() ChangeKind {
	action := strings.ToLower(strings.TrimSpace(i.Action))
	switch {
	case strings.HasPrefix(action, "add"):
		return ChangeKindAdded
	case strings.HasPrefix(action, "delete"):
		return ChangeKindDeleted
	default:
		return ChangeKindEdited
	}
}

// ChangeKind represents the type of change.
type ChangeKind int

const (
	ChangeKindAdded ChangeKind = iota
	ChangeKindEdited
	ChangeKindDeleted
)

// String returns a string representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeKindAdded:
		return "added"
	case ChangeKindEdited:
		return "edited"
	case ChangeKindDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Workspace is one row of `tf workspaces` output.
type Workspace struct {
	Name     string
	Owner    string
	Computer string
	Comment  string
}
